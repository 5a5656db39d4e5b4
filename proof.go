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

import "github.com/bits-and-blooms/bitset"

// ProveContains implements spec.md §4.6: produce a pruned view of root that
// retains full FullLeaf detail along the path to every key in keys. An
// Inner the batch never visits becomes a PrunedInner, and a FullLeaf whose
// key isn't one of the queried keys becomes a PrunedLeaf. The result hashes
// identically to root (invariant: pruning never changes the commitment).
// A PrunedInner already present in root is returned unchanged, with no
// error, even when a queried key routes into it; Get/Contains on the
// result then report PrunedError for that key.
//
// touched tracks, per recursion, which of the original key indices are
// still live at this subtree using a bitset rather than re-slicing keys at
// every level — the same batch-membership bookkeeping the teacher does
// with indices []int in stateless.go's GetProofItems, swapped for a fixed-
// width bitset since the batch size is known up front and indices never
// need to be re-sorted.
func ProveContains(cfg *Config, root Node, keys [][]byte) (Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, k := range keys {
		if err := cfg.checkKey(k); err != nil {
			return nil, err
		}
	}

	all := bitset.New(uint(len(keys)))
	for i := range keys {
		all.Set(uint(i))
	}
	return prove(cfg, root, keys, all, 0), nil
}

func prove(cfg *Config, n Node, keys [][]byte, live *bitset.BitSet, depth int) Node {
	if live.None() {
		return prunedView(n)
	}

	switch v := n.(type) {
	case *emptyNode:
		return theEmpty

	case *FullLeafNode:
		if batchHasKey(keys, live, v.key) {
			return n // keep full detail: this leaf answers a query
		}
		return prunedLeafFromFull(cfg, v)

	case *PrunedLeafNode:
		return n // already opaque; nothing more to withhold or reveal

	case *InnerNode:
		leftLive := bitset.New(uint(len(keys)))
		rightLive := bitset.New(uint(len(keys)))
		for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
			if side(keys[i], depth) == 1 {
				leftLive.Set(i)
			} else {
				rightLive.Set(i)
			}
		}
		newLeft := prove(cfg, v.left, keys, leftLive, depth+1)
		newRight := prove(cfg, v.right, keys, rightLive, depth+1)
		return newInner(cfg, newLeft, newRight)

	case *PrunedInnerNode:
		return n

	default:
		panic("mbrt: unreachable node variant")
	}
}

// prunedView opaques out a subtree the batch never visits: Empty stays
// Empty (it carries no information to withhold), a leaf becomes a
// PrunedLeaf, and anything already Inner-shaped collapses to a single
// PrunedInner carrying just its hash.
func prunedView(n Node) Node {
	switch v := n.(type) {
	case *emptyNode:
		return theEmpty
	case *FullLeafNode:
		return newPrunedLeaf(v.cfg, v.key, v.valueHashBytes())
	case *PrunedLeafNode:
		return n
	default:
		return newPrunedInner(v.Hash())
	}
}

// batchHasKey reports whether any still-live key in the batch equals
// target, scanning only the bits live still has set.
func batchHasKey(keys [][]byte, live *bitset.BitSet, target []byte) bool {
	for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
		if keyEqual(keys[i], target) {
			return true
		}
	}
	return false
}
