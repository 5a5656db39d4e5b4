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

import "github.com/merbinner/mbrt/internal/wire"

// Marshal serializes a node (and everything reachable below it) to the SSZ
// wire format in internal/wire. A pruned subtree serializes compactly: a
// PrunedInner contributes only its hash, no matter how large the subtree it
// stands in for actually is, and a PrunedLeaf only its key and hashes.
func Marshal(n Node) ([]byte, error) {
	return wire.Encode(toEnvelope(n))
}

// Unmarshal parses bytes produced by Marshal back into a Node tree, using
// cfg's hash functions to re-populate each node's cached hash rather than
// trusting the wire bytes' Hash fields blindly — a FullLeaf's hash is
// always recomputed from its revealed value, so a tampered Hash field on
// the wire is simply ignored rather than treated as authoritative.
func Unmarshal(cfg *Config, data []byte) (Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	env, err := wire.Decode(data)
	if err != nil {
		return nil, err
	}
	return fromEnvelope(cfg, env), nil
}

func toEnvelope(n Node) *wire.Envelope {
	switch v := n.(type) {
	case *emptyNode:
		return &wire.Envelope{Tag: wire.TagEmpty}

	case *FullLeafNode:
		return &wire.Envelope{
			Tag:   wire.TagFullLeaf,
			Key:   v.key,
			Value: v.value,
			Hash:  v.Hash(),
		}

	case *PrunedLeafNode:
		return &wire.Envelope{
			Tag:       wire.TagPrunedLeaf,
			Key:       v.key,
			ValueHash: v.valueHash,
			Hash:      v.Hash(),
		}

	case *InnerNode:
		return &wire.Envelope{
			Tag:      wire.TagInner,
			Hash:     v.Hash(),
			Children: []*wire.Envelope{toEnvelope(v.left), toEnvelope(v.right)},
		}

	case *PrunedInnerNode:
		return &wire.Envelope{Tag: wire.TagPrunedInner, Hash: v.Hash()}

	default:
		panic("mbrt: unreachable node variant")
	}
}

func fromEnvelope(cfg *Config, env *wire.Envelope) Node {
	switch env.Tag {
	case wire.TagEmpty:
		return theEmpty

	case wire.TagFullLeaf:
		return newFullLeaf(cfg, env.Key, env.Value)

	case wire.TagPrunedLeaf:
		return newPrunedLeaf(cfg, env.Key, Hash(env.ValueHash))

	case wire.TagInner:
		left := fromEnvelope(cfg, env.Children[0])
		right := fromEnvelope(cfg, env.Children[1])
		return newInner(cfg, left, right)

	case wire.TagPrunedInner:
		return newPrunedInner(Hash(env.Hash))

	default:
		panic("mbrt: unrecognized wire tag")
	}
}
