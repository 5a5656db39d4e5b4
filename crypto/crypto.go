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

// Package crypto supplies the hash-function collaborators the core tree
// consumes (spec.md §6): a key size, a node HashFunc and a ValueHashFunc.
// It plays the role the teacher's crypto package plays for the
// banderwagon/IPA commitment scheme, except the commitment scheme here is
// just a hash function, so the package is a thin SHA-256 wrapper rather
// than elliptic-curve glue.
package crypto

import (
	"crypto/sha256"
)

// KeySize is the default key width used throughout the module and its
// tests, matching spec.md's KEYSIZE=32 example.
const KeySize = 32

// valueHashDomain separates the value-hash preimage from the node-hash
// preimage (the latter is tagged by the core package itself), so a value
// can never be replayed as a node.
var valueHashDomain = []byte{0x76} // 'v'

// HashNode hashes a node preimage (already tagged by the core) down to a
// fixed-size digest.
func HashNode(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HashValue hashes a leaf's value to the digest a PrunedLeaf stores in
// place of the value itself.
func HashValue(value []byte) [32]byte {
	h := sha256.New()
	h.Write(valueHashDomain)
	h.Write(value)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
