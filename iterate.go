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

// Item is a single (key, value) pair yielded by Items.
type Item struct {
	Key, Value []byte
}

// Keys implements spec.md §4.8: every key reachable as a FullLeaf, in an
// unspecified (depth-first, left-before-right) order — spec.md leaves
// traversal order open, so this only needs to be *some* stable order, not
// key-sorted.
func Keys(root Node) [][]byte {
	var out [][]byte
	walk(root, func(k, _ []byte) {
		out = append(out, k)
	})
	return out
}

// Values implements spec.md §4.8: every value reachable as a FullLeaf, in
// the same order as the corresponding Keys call would produce.
func Values(root Node) [][]byte {
	var out [][]byte
	walk(root, func(_, v []byte) {
		out = append(out, v)
	})
	return out
}

// Items implements spec.md §4.8: every (key, value) pair reachable as a
// FullLeaf.
func Items(root Node) []Item {
	var out []Item
	walk(root, func(k, v []byte) {
		out = append(out, Item{Key: k, Value: v})
	})
	return out
}

// walk performs the depth-first traversal shared by Keys/Values/Items. A
// PrunedLeaf or PrunedInner contributes nothing — it carries no value to
// yield, and spec.md's edge cases call this out explicitly rather than
// treating it as an error, unlike Get/Contains which do treat "needed
// detail isn't here" as exceptional.
func walk(n Node, visit func(key, value []byte)) {
	switch v := n.(type) {
	case *emptyNode, *PrunedLeafNode, *PrunedInnerNode:
		return
	case *FullLeafNode:
		visit(v.key, v.value)
	case *InnerNode:
		walk(v.left, visit)
		walk(v.right, visit)
	default:
		panic("mbrt: unreachable node variant")
	}
}
