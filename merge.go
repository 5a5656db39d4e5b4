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

// Merge implements spec.md §4.7: combine two pruned views of the same
// logical tree (same root hash) into one that retains the union of detail
// each side revealed. It is how a verifier assembles several independently
// obtained proofs (ProveContains results) back into a single tree that
// answers every key any one proof covered.
//
// Precedence at each position, from most to least informative:
// FullLeaf > PrunedLeaf > PrunedInner for leaves, Inner > PrunedInner for
// branches, and Empty only merges with Empty (both sides already agree
// there's nothing there once the root hashes match). Two Inner nodes are
// merged child by child. A FullLeaf on the left is returned as is, without
// comparing it to the right side. An Inner facing anything other than an
// Inner or a PrunedInner can only arise from a hash collision at the root,
// which HashMismatchError cannot distinguish from a caller error and so is
// reported the same way.
//
// The original_source/merbinnertree implementation leaves the Inner/Inner
// case as `raise NotImplementedError` (see DESIGN.md); this module
// implements it in full since spec.md §4.7 specifies it completely and
// nothing about the algebra makes it hard — the Python's gap looks like an
// oversight in an early draft, not a deliberate limitation.
func Merge(cfg *Config, left, right Node) (Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if left.Hash() != right.Hash() {
		return nil, &HashMismatchError{Left: left.Hash(), Right: right.Hash()}
	}
	return merge(cfg, left, right)
}

func merge(cfg *Config, left, right Node) (Node, error) {
	if sameNode(left, right) {
		return left, nil
	}

	switch lv := left.(type) {
	case *emptyNode:
		return left, nil // right must also be Empty: hashes already agreed

	case *PrunedInnerNode:
		return right, nil // right is at least as informative

	case *PrunedLeafNode:
		if _, ok := right.(*PrunedInnerNode); ok {
			return left, nil
		}
		return right, nil // right is a FullLeaf or an equally-pruned leaf

	case *FullLeafNode:
		return left, nil // nothing can out-rank full detail

	case *InnerNode:
		switch rv := right.(type) {
		case *PrunedInnerNode:
			return left, nil
		case *InnerNode:
			newLeft, err := merge(cfg, lv.left, rv.left)
			if err != nil {
				return nil, err
			}
			newRight, err := merge(cfg, lv.right, rv.right)
			if err != nil {
				return nil, err
			}
			return newInner(cfg, newLeft, newRight), nil
		default:
			return nil, &HashMismatchError{Left: left.Hash(), Right: right.Hash()}
		}

	default:
		panic("mbrt: unreachable node variant")
	}
}
