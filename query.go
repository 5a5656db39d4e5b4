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

// Get implements spec.md §4.4: walk from root to the key's leaf position.
// Returns the value on a FullLeaf hit, KeyNotFoundError if routing lands on
// Empty or a differing leaf, and PrunedError if the walk is blocked by a
// PrunedLeaf or PrunedInner standing where the answer would otherwise be —
// a matching PrunedLeaf still withholds the value, so Get fails there even
// though the key is known to be present (see Contains).
func Get(cfg *Config, root Node, key []byte) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.checkKey(key); err != nil {
		return nil, err
	}
	value, _, err := locate(root, key, 0)
	return value, err
}

// locate walks to key's leaf position and reports, alongside the usual
// value/error pair, whether the walk stopped on a PrunedLeaf whose key
// matches — present in the tree, just not holding its value — as opposed
// to KeyNotFoundError (definitely absent) or a PrunedError from a
// PrunedInner (presence unknown). Get and Contains both call this and
// differ only in how they treat that presentButPruned case.
func locate(n Node, key []byte, depth int) (value []byte, presentButPruned bool, err error) {
	switch v := n.(type) {
	case *emptyNode:
		return nil, false, &KeyNotFoundError{Key: key}

	case *FullLeafNode:
		if keyEqual(v.key, key) {
			return v.value, false, nil
		}
		return nil, false, &KeyNotFoundError{Key: key}

	case *PrunedLeafNode:
		if keyEqual(v.key, key) {
			return nil, true, &PrunedError{Op: "get", Key: key, Depth: depth, Hash: v.Hash()}
		}
		return nil, false, &KeyNotFoundError{Key: key}

	case *InnerNode:
		if side(key, depth) == 1 {
			return locate(v.left, key, depth+1)
		}
		return locate(v.right, key, depth+1)

	case *PrunedInnerNode:
		return nil, false, &PrunedError{Op: "get", Key: key, Depth: depth, Hash: v.Hash()}

	default:
		panic("mbrt: unreachable node variant")
	}
}

// Contains implements spec.md §4.4: like Get, but reports presence as a
// bool rather than revealing the value. Per spec.md §4.4's walk table, a
// matching PrunedLeaf counts as present (the key is known to be in the
// tree even though its value is withheld) — only a PrunedInner standing
// between the root and the answer leaves presence genuinely unknown, and
// that's the only case Contains still surfaces as an error. A
// KeyNotFoundError from the walk means "definitely absent" and resolves to
// (false, nil) rather than propagating.
func Contains(cfg *Config, root Node, key []byte) (bool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.checkKey(key); err != nil {
		return false, err
	}
	_, presentButPruned, err := locate(root, key, 0)
	if err == nil || presentButPruned {
		return true, nil
	}
	if _, ok := err.(*KeyNotFoundError); ok {
		return false, nil
	}
	return false, err
}
