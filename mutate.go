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

// Edit is a single change to apply in a batch mutation: delete Key
// (Remove true), set a PrunedLeaf's value hash directly (HasValueHash true,
// ValueHash set — PutValueHash), or otherwise Put Value at Key.
type Edit struct {
	Key       []byte
	Value     []byte
	ValueHash Hash
	HasValueHash bool
	Remove    bool
}

// ChangeSet records the keys a batch mutation actually touched, generalizing
// the original implementation's changed_keys bookkeeping (original_source/
// merbinnertree/__init__.py) from a single put/remove to an arbitrary batch.
type ChangeSet struct {
	Changed [][]byte
}

// Put implements spec.md §4.5 for a single key: insert or overwrite a value,
// returning the new root. The prior root is left untouched (nodes along the
// untouched path are shared by pointer, not copied).
func Put(cfg *Config, root Node, key, value []byte) (Node, error) {
	newRoot, _, err := Apply(cfg, root, []Edit{{Key: key, Value: value}})
	return newRoot, err
}

// PutValueHash sets a leaf to PrunedLeaf form directly from a precomputed
// value hash, without ever holding the value — spec.md §4.5's variant for
// callers reconstructing a tree from a proof or a remote source that only
// ever reveals hashes.
func PutValueHash(cfg *Config, root Node, key []byte, valueHash Hash) (Node, error) {
	newRoot, _, err := Apply(cfg, root, []Edit{{Key: key, ValueHash: valueHash, HasValueHash: true}})
	return newRoot, err
}

// Remove implements spec.md §4.5 for a single key: delete it if present.
// Returns KeyNotFoundError if the key doesn't already exist in the tree.
func Remove(cfg *Config, root Node, key []byte) (Node, error) {
	newRoot, _, err := Apply(cfg, root, []Edit{{Key: key, Remove: true}})
	return newRoot, err
}

// Apply implements spec.md §4.5's unified batch primitive: every Put,
// PutValueHash and Remove above folds down to a single Edit batch applied
// here. A batch is split by side(key,depth) at each Inner exactly like
// FromItems, recurses, and rebuilds bottom-up through the smart Inner
// constructor so removals that empty out a subtree collapse the same way a
// freshly built one would (spec.md invariant 2).
//
// Apply is all-or-nothing: if any edit in the batch fails (most commonly a
// Remove on a key that isn't present), the whole call returns an error and
// root is unaffected — there's nothing to roll back, since a failed call
// never finishes constructing a replacement root in the first place. On
// success, the returned ChangeSet lists every key the batch touched,
// generalizing the original implementation's changed_keys bookkeeping
// (original_source/merbinnertree/__init__.py, _mt_put_keys) from a single
// put/remove to an arbitrary batch: a key overwritten with an equal value
// still counts as changed, matching that original's own semantics.
func Apply(cfg *Config, root Node, edits []Edit) (Node, ChangeSet, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for i := range edits {
		if err := cfg.checkKey(edits[i].Key); err != nil {
			return nil, ChangeSet{}, err
		}
		if !edits[i].Remove && !edits[i].HasValueHash {
			if err := cfg.checkValue(edits[i].Value); err != nil {
				return nil, ChangeSet{}, err
			}
		}
	}
	newRoot, err := apply(cfg, root, edits, 0)
	if err != nil {
		return nil, ChangeSet{}, err
	}
	return newRoot, changeSetOf(edits), nil
}

// changeSetOf collects the unique keys touched by a successful batch, each
// listed once in the order of its first appearance in the batch.
func changeSetOf(edits []Edit) ChangeSet {
	var cs ChangeSet
	seen := make(map[string]bool, len(edits))
	for _, e := range edits {
		if seen[string(e.Key)] {
			continue
		}
		seen[string(e.Key)] = true
		cs.Changed = append(cs.Changed, e.Key)
	}
	return cs
}

func apply(cfg *Config, n Node, edits []Edit, depth int) (Node, error) {
	if len(edits) == 0 {
		return n, nil
	}

	switch v := n.(type) {
	case *emptyNode:
		return applyAtEmpty(cfg, edits, depth)

	case *FullLeafNode:
		return applyAtLeaf(cfg, n, v.key, edits, depth)

	case *PrunedLeafNode:
		// A pruned leaf can absorb an edit for its own key without
		// revealing the old value, and since it keeps its key, edits for
		// other keys are split around it exactly as for a FullLeaf.
		return applyAtLeaf(cfg, n, v.key, edits, depth)

	case *InnerNode:
		left, right := splitEdits(edits, depth)
		newLeft, err := apply(cfg, v.left, left, depth+1)
		if err != nil {
			return nil, err
		}
		newRight, err := apply(cfg, v.right, right, depth+1)
		if err != nil {
			return nil, err
		}
		if sameNode(newLeft, v.left) && sameNode(newRight, v.right) {
			return n, nil // nothing below changed; share the original
		}
		return newInner(cfg, newLeft, newRight), nil

	case *PrunedInnerNode:
		return nil, &PrunedError{Op: "set", Depth: depth, Hash: v.Hash()}

	default:
		panic("mbrt: unreachable node variant")
	}
}

// applyAtEmpty handles a batch landing on Empty: every Remove is a
// KeyNotFoundError, and the surviving Puts/PutValueHashes get built fresh
// via fromLeafNodes (last-edit-wins on a duplicate key, matching FromItems).
func applyAtEmpty(cfg *Config, edits []Edit, depth int) (Node, error) {
	leaves := make([]Node, 0, len(edits))
	seen := make(map[string]int, len(edits))
	for _, e := range edits {
		if e.Remove {
			return nil, &KeyNotFoundError{Key: e.Key}
		}
		leaf := editToLeaf(cfg, e)
		if idx, ok := seen[string(e.Key)]; ok {
			leaves[idx] = leaf
			continue
		}
		seen[string(e.Key)] = len(leaves)
		leaves = append(leaves, leaf)
	}
	return fromLeafNodes(cfg, leaves, depth), nil
}

// applyAtLeaf handles a batch landing on an existing leaf (full or pruned).
// Edits matching the leaf's own key are resolved last-wins against it;
// every other key in the batch must be split out into a fresh subtree
// alongside the surviving (possibly updated) leaf.
func applyAtLeaf(cfg *Config, leaf Node, leafKeyBytes []byte, edits []Edit, depth int) (Node, error) {
	var own *Edit
	others := make([]Edit, 0, len(edits))
	for i := range edits {
		if keyEqual(edits[i].Key, leafKeyBytes) {
			own = &edits[i]
			continue
		}
		others = append(others, edits[i])
	}

	current := leaf
	if own != nil {
		if own.Remove {
			current = theEmpty
		} else {
			current = editToLeaf(cfg, *own)
		}
	}

	if len(others) == 0 {
		return current, nil
	}

	// others all disagree with leafKeyBytes, so they must route around it.
	// Build a fresh subtree containing the surviving leaf (if any) plus
	// every other edit, partitioned from this depth down.
	leaves := make([]Node, 0, len(others)+1)
	if _, empty := current.(*emptyNode); !empty {
		leaves = append(leaves, current)
	}
	seen := make(map[string]int, len(others))
	for _, e := range others {
		if e.Remove {
			return nil, &KeyNotFoundError{Key: e.Key}
		}
		l := editToLeaf(cfg, e)
		if idx, ok := seen[string(e.Key)]; ok {
			leaves[idx] = l
			continue
		}
		seen[string(e.Key)] = len(leaves)
		leaves = append(leaves, l)
	}
	return fromLeafNodes(cfg, leaves, depth), nil
}

func editToLeaf(cfg *Config, e Edit) Node {
	if e.HasValueHash {
		return newPrunedLeaf(cfg, e.Key, e.ValueHash)
	}
	return newFullLeaf(cfg, e.Key, e.Value)
}

// splitEdits partitions a batch by side(key, depth), the mutate-path
// counterpart of build.go's partition for already-leaf-shaped Nodes.
func splitEdits(edits []Edit, depth int) (left, right []Edit) {
	left = make([]Edit, 0, len(edits))
	right = make([]Edit, 0, len(edits))
	for _, e := range edits {
		if side(e.Key, depth) == 1 {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	return left, right
}

// sameNode reports whether a and b are the identical Node value (pointer
// identity for the pointer-shaped variants, always true for the Empty
// singleton), letting apply short-circuit rebuilding an Inner whose
// children didn't actually change.
func sameNode(a, b Node) bool {
	switch av := a.(type) {
	case *emptyNode:
		_, ok := b.(*emptyNode)
		return ok
	case *FullLeafNode:
		bv, ok := b.(*FullLeafNode)
		return ok && av == bv
	case *PrunedLeafNode:
		bv, ok := b.(*PrunedLeafNode)
		return ok && av == bv
	case *InnerNode:
		bv, ok := b.(*InnerNode)
		return ok && av == bv
	case *PrunedInnerNode:
		bv, ok := b.(*PrunedInnerNode)
		return ok && av == bv
	default:
		return false
	}
}
