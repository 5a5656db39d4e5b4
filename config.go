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

import "github.com/merbinner/mbrt/crypto"

// HashSize is the fixed width of every node hash. The core is written
// against a single concrete width rather than a generic []byte so that
// Hash can be compared and used as a map key without allocation.
const HashSize = 32

// Hash is the fixed-size digest every node carries.
type Hash [HashSize]byte

// tag bytes, used for domain separation between the three hash preimages
// defined in spec.md §3. They are appended, not prepended, to match the
// reference layout exactly.
const (
	tagEmpty byte = 0x00
	tagInner byte = 0x01
	tagLeaf  byte = 0x02
)

// HashFunc hashes an arbitrary-length preimage down to a Hash. It must be
// deterministic: the same bytes always produce the same digest.
type HashFunc func(data []byte) Hash

// ValueHashFunc hashes a value to the digest stored in a PrunedLeaf in
// place of the value itself. It is typically HashFunc applied to the value,
// but is kept distinct because a collaborator may want a different domain
// (e.g. to make value hashes incomparable with node hashes).
type ValueHashFunc func(value []byte) Hash

// Config bundles everything the core consumes from a collaborator: the key
// size, the two hash functions, and the key/value shape validators. It
// plays the role of the teacher's GetConfig()/Config pair (config.go,
// config_ipa.go), generalized from "which commitment scheme" to "which hash
// function and key size".
type Config struct {
	KeySize       int
	HashFunc      HashFunc
	ValueHashFunc ValueHashFunc
	CheckKey      func(key []byte) error
	CheckValue    func(value []byte) error
}

// checkKey runs CheckKey when one is set; otherwise it only enforces the
// configured KeySize, since Go's []byte already rules out
// InvalidKeyTypeError for any caller going through the normal API.
func (c *Config) checkKey(key []byte) error {
	if c.CheckKey != nil {
		return c.CheckKey(key)
	}
	if len(key) != c.KeySize {
		return &InvalidKeyLengthError{Expected: c.KeySize, Actual: len(key)}
	}
	return nil
}

func (c *Config) checkValue(value []byte) error {
	if c.CheckValue != nil {
		return c.CheckValue(value)
	}
	return nil
}

// DefaultConfig returns the SHA-256-backed Config used when none is
// supplied explicitly: 32-byte keys, crypto.HashNode/crypto.HashValue as
// the hash collaborators, and no extra key/value validation beyond length.
// This plays the role of the teacher's GetConfig(), minus the lazy
// singleton — the hash functions here are cheap enough that eager
// construction per call that is passed a nil Config is unmeasurable, so there is no
// process-wide cache to get wrong across goroutines.
func DefaultConfig() *Config {
	return &Config{
		KeySize:       crypto.KeySize,
		HashFunc:      func(data []byte) Hash { return Hash(crypto.HashNode(data)) },
		ValueHashFunc: func(value []byte) Hash { return Hash(crypto.HashValue(value)) },
	}
}
