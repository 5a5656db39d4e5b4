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

import "fmt"

// InvalidKeyTypeError is returned when a key passed to the public API isn't
// a byte slice. Go's type system makes this mostly unreachable through
// normal use (the public methods all take []byte), but it's kept so a
// caller going through reflection-based bindings gets the same diagnosis
// spec.md promises.
type InvalidKeyTypeError struct {
	Key any
}

func (e *InvalidKeyTypeError) Error() string {
	return fmt.Sprintf("mbrt: key must be a byte slice, got %T", e.Key)
}

// InvalidKeyLengthError is returned when a key isn't exactly KeySize bytes.
type InvalidKeyLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("mbrt: key must be %d bytes, got %d", e.Expected, e.Actual)
}

// KeyNotFoundError is returned by Get and Remove when the key is known to
// be absent from the tree.
type KeyNotFoundError struct {
	Key []byte
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("mbrt: key not found: %x", e.Key)
}

// PrunedError is returned when an operation needs to descend into a
// PrunedInner (or answer past a PrunedLeaf) and the information required
// was not retained. Key is nil when the pruned node was reached without a
// single offending key to blame (e.g. a batch mutation whose path passes
// through a PrunedInner carries a depth and the subtree's hash, but no
// specific key is meaningful there — see DESIGN.md for why the original
// implementation's attempt to attach one here was unreachable dead code).
type PrunedError struct {
	Op    string // "get" (Get, Contains) or "set" (Put, PutValueHash, Remove, Apply)
	Key   []byte
	Depth int
	Hash  Hash
}

func (e *PrunedError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("mbrt: %s: key %x pruned at depth %d", e.Op, e.Key, e.Depth)
	}
	return fmt.Sprintf("mbrt: %s: subtree %x pruned at depth %d", e.Op, e.Hash, e.Depth)
}

// HashMismatchError is returned by Merge when the two trees don't share a
// root hash.
type HashMismatchError struct {
	Left, Right Hash
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("mbrt: merge: hash mismatch %x != %x", e.Left, e.Right)
}
