// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package mbrt

import (
	"bytes"
	"sync"
)

// Node is the five-variant algebra of spec.md §3: Empty, FullLeaf,
// PrunedLeaf, Inner, PrunedInner. Unlike the teacher's VerkleNode (whose
// methods mutate the receiver in place — Insert, Delete, SetChild all
// return error and act on `n`), every Node here is immutable from
// construction; mutation operations live outside the interface and return
// a new root.
type Node interface {
	// Hash returns the node's cached hash, computing it on first call.
	// Safe to call concurrently on a shared node: the lazy computation is
	// guarded by a sync.Once, so parallel builders (build.go's errgroup
	// split) can't race on the cache.
	Hash() Hash

	// isNode is unexported so Node can only be implemented by the five
	// variants in this package, the same closed-sum-type trick the
	// teacher uses implicitly by keeping VerkleNode's only constructors
	// unexported.
	isNode()
}

// emptyNode is the Empty variant. Per spec.md invariant 6, there is exactly
// one: theEmpty below. The type is unexported so nothing outside the
// package can mint a second instance.
type emptyNode struct{}

// theEmpty is the process-wide singleton Empty instance (spec.md §5: "the
// singleton Empty node is read-only and safe to share globally").
var theEmpty = &emptyNode{}

// Empty returns the singleton empty node.
func Empty() Node { return theEmpty }

func (*emptyNode) isNode() {}

func (*emptyNode) Hash() Hash {
	return emptyHash
}

// emptyHash is computed against the default config's hash function once,
// at init time, since H(0x00) never depends on which Config a caller picks
// for KeySize or value hashing — only the node HashFunc matters, and every
// Config in this module shares crypto.HashNode as its HashFunc unless a
// caller goes out of their way to override it. Empty().Hash() always
// reports this default-config value, even under a Config with a different
// HashFunc; an InnerNode hashes an Empty child with emptyHashFor of its
// own Config instead.
var emptyHash = emptyHashFor(DefaultConfig())

func emptyHashFor(cfg *Config) Hash {
	return cfg.HashFunc([]byte{tagEmpty})
}

// leafNode is the shared shape of FullLeaf and PrunedLeaf: both carry a key
// and hash the same way, differing only in whether the value or its hash
// is in hand.
type leafNode struct {
	key      []byte
	cfg      *Config
	hash     Hash
	hashOnce sync.Once
}

// FullLeafNode is the FullLeaf variant: a present key with its value.
type FullLeafNode struct {
	leafNode
	value []byte
}

// PrunedLeafNode is the PrunedLeaf variant: a present key whose value has
// been withheld, retaining only its hash.
type PrunedLeafNode struct {
	leafNode
	valueHash Hash
}

func (*FullLeafNode) isNode()   {}
func (*PrunedLeafNode) isNode() {}

// Key returns the leaf's key. Both leaf variants carry one.
func (n *FullLeafNode) Key() []byte { return n.key }
func (n *PrunedLeafNode) Key() []byte { return n.key }

// Value returns the leaf's value (only meaningful on FullLeafNode).
func (n *FullLeafNode) Value() []byte { return n.value }

// ValueHash returns the hash of the withheld value (only meaningful on
// PrunedLeafNode).
func (n *PrunedLeafNode) ValueHash() Hash { return n.valueHash }

func (n *FullLeafNode) Hash() Hash {
	n.hashOnce.Do(func() {
		n.hash = n.computeHash(n.valueHashBytes())
	})
	return n.hash
}

// valueHashBytes recomputes the value hash on demand; FullLeafNode doesn't
// cache it because it's only needed inside Hash(), which itself caches the
// result.
func (n *FullLeafNode) valueHashBytes() Hash {
	return n.cfg.ValueHashFunc(n.value)
}

func (n *PrunedLeafNode) Hash() Hash {
	n.hashOnce.Do(func() {
		n.hash = n.computeHash(n.valueHash)
	})
	return n.hash
}

// computeHash implements spec.md §3: H(value_hash ‖ key ‖ 0x02). It's
// shared between the two leaf variants since they're hash-equivalent by
// construction (invariant: "same preimage as the equivalent FullLeaf").
func (n *leafNode) computeHash(valueHash Hash) Hash {
	preimage := make([]byte, 0, HashSize+len(n.key)+1)
	preimage = append(preimage, valueHash[:]...)
	preimage = append(preimage, n.key...)
	preimage = append(preimage, tagLeaf)
	return n.cfg.HashFunc(preimage)
}

// cfg is threaded onto every leaf so Hash() can call back into the
// collaborator without a package-global. It's set once at construction and
// never changes (leaves are immutable), so there is no synchronization
// concern sharing it across goroutines.
func (n *leafNode) withConfig(cfg *Config) *leafNode {
	n.cfg = cfg
	return n
}

// InnerNode is the Inner variant: a branch with a left (bit=1) and right
// (bit=0) child, per spec.md invariant 4.
type InnerNode struct {
	left, right Node
	cfg         *Config
	hash        Hash
	hashOnce    sync.Once
}

func (*InnerNode) isNode() {}

// Left returns the subtree selected by bit=1.
func (n *InnerNode) Left() Node { return n.left }

// Right returns the subtree selected by bit=0.
func (n *InnerNode) Right() Node { return n.right }

func (n *InnerNode) Hash() Hash {
	n.hashOnce.Do(func() {
		lh, rh := n.left.Hash(), n.right.Hash()
		if _, ok := n.left.(*emptyNode); ok {
			lh = emptyHashFor(n.cfg)
		}
		if _, ok := n.right.(*emptyNode); ok {
			rh = emptyHashFor(n.cfg)
		}
		preimage := make([]byte, 0, 2*HashSize+1)
		preimage = append(preimage, lh[:]...)
		preimage = append(preimage, rh[:]...)
		preimage = append(preimage, tagInner)
		n.hash = n.cfg.HashFunc(preimage)
	})
	return n.hash
}

// PrunedInnerNode is the PrunedInner variant: an opaque placeholder for a
// subtree whose hash is known but whose contents are withheld.
type PrunedInnerNode struct {
	hash Hash
}

func (*PrunedInnerNode) isNode() {}

func (n *PrunedInnerNode) Hash() Hash { return n.hash }

// newPrunedInner wraps a hash as a PrunedInner. Unexported: callers only
// ever receive one out of ProveContains or internal bookkeeping, never
// construct one directly (there would be no way to keep it honest).
func newPrunedInner(hash Hash) *PrunedInnerNode {
	return &PrunedInnerNode{hash: hash}
}

// newFullLeaf builds a FullLeafNode. Unexported: the public surface is
// Put/FromItems, which own validation and config-threading.
func newFullLeaf(cfg *Config, key, value []byte) *FullLeafNode {
	n := &FullLeafNode{value: value}
	n.key = key
	n.withConfig(cfg)
	return n
}

func newPrunedLeaf(cfg *Config, key []byte, valueHash Hash) *PrunedLeafNode {
	n := &PrunedLeafNode{valueHash: valueHash}
	n.key = key
	n.withConfig(cfg)
	return n
}

func prunedLeafFromFull(cfg *Config, full *FullLeafNode) *PrunedLeafNode {
	return newPrunedLeaf(cfg, full.key, full.valueHashBytes())
}

// newInner is the smart constructor of spec.md §4.1: it collapses
// Inner(Empty,Empty), Inner(Empty,leaf) and Inner(leaf,Empty) to preserve
// compactness (invariant 2), and otherwise allocates a fresh InnerNode.
// This is the single chokepoint every mutation and build path funnels
// through, matching the teacher's InternalNode smart-constructor comment
// in tree.go ("Ensure attempts to create deeper than necessary inner nodes
// fail"), generalized from verkle's 256-ary collapse to binary.
func newInner(cfg *Config, left, right Node) Node {
	_, leftEmpty := left.(*emptyNode)
	_, rightEmpty := right.(*emptyNode)

	if leftEmpty && rightEmpty {
		return theEmpty
	}
	if leftEmpty {
		if isLeaf(right) {
			return right
		}
	}
	if rightEmpty {
		if isLeaf(left) {
			return left
		}
	}
	return &InnerNode{left: left, right: right, cfg: cfg}
}

func isLeaf(n Node) bool {
	switch n.(type) {
	case *FullLeafNode, *PrunedLeafNode:
		return true
	default:
		return false
	}
}

// leafKey extracts the key from whichever leaf variant n is. Panics if n
// isn't a leaf; callers must check isLeaf (or already know from context,
// e.g. "this came out of from_leaf_nodes") first.
func leafKey(n Node) []byte {
	switch v := n.(type) {
	case *FullLeafNode:
		return v.key
	case *PrunedLeafNode:
		return v.key
	default:
		panic("mbrt: leafKey called on a non-leaf node")
	}
}

// keyEqual is a small helper so callers don't reach for bytes.Equal
// directly at every comparison site; kept here since it's purely a key
// (not a general byte-slice) comparison and may later special-case
// fixed-width keys.
func keyEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
