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

// Package wire is the on-disk/on-wire encoding for tree nodes (spec.md §6):
// a tagged envelope per node, SSZ-encoded, that round-trips any of the five
// variants including the partial detail a pruned view carries. It plays the
// role the teacher's encoding.go plays for RLP-encoded VerkleNode bodies,
// swapped to SSZ (github.com/karalabe/ssz) since the commitment here is a
// plain hash rather than a banderwagon point, and SSZ's fixed/offset layout
// is a closer match for a container that only ever holds one of five known
// shapes.
package wire

import "github.com/karalabe/ssz"

// Tag identifies which of the five node variants an Envelope holds.
type Tag uint8

const (
	TagEmpty Tag = iota
	TagFullLeaf
	TagPrunedLeaf
	TagInner
	TagPrunedInner
)

// Bounds on the dynamic fields below. SSZ needs a compile-time ceiling to
// size its offset table; these are generous relative to spec.md's 32-byte
// key example and left as constants rather than plumbed through from
// Config, since the wire format is a fixed contract independent of any one
// tree's collaborator choices.
const (
	maxKeySize   = 128
	maxValueSize = 1 << 24 // 16 MiB
	hashSize     = 32
)

// Envelope is the wire shape of one node. Only the fields meaningful for
// Tag are populated; the rest are left zero, matching the teacher's
// encoding.go convention of a single leading type byte followed by a
// type-specific body.
//
// Children holds the two sub-envelopes for TagInner, encoded recursively;
// every other tag leaves it empty. A pruned subtree below an Inner is
// still an Envelope (TagPrunedInner or TagPrunedLeaf), not absent, so
// Children always has exactly 0 or 2 elements.
type Envelope struct {
	Tag       Tag
	Key       []byte
	Value     []byte
	ValueHash [hashSize]byte
	Hash      [hashSize]byte
	Children  []*Envelope
}

// SizeSSZ reports the envelope's encoded size, fixed part plus the dynamic
// tail (Key, Value, Children), the way every karalabe/ssz container
// predeclares the bytes its dynamic fields will need before the codec
// writes them.
func (e *Envelope) SizeSSZ(sizer *ssz.Sizer, fixed bool) uint32 {
	size := uint32(1 + 4 + 4 + hashSize + hashSize + 4) // tag + three offsets + two fixed hashes
	if fixed {
		return size
	}
	size += ssz.SizeDynamicBytes(sizer, e.Key)
	size += ssz.SizeDynamicBytes(sizer, e.Value)
	size += ssz.SizeSliceOfDynamicObjects(sizer, e.Children)
	return size
}

// DefineSSZ declares the envelope's field layout to the codec: a one-byte
// tag, two length-bounded dynamic byte slices, two fixed 32-byte hashes,
// and a dynamic list of child envelopes (0 or 2 long). The ordering here
// is load-bearing for wire compatibility and must never change without a
// version bump.
func (e *Envelope) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint8(codec, (*uint8)(&e.Tag))
	ssz.DefineDynamicBytesOffset(codec, &e.Key, maxKeySize)
	ssz.DefineDynamicBytesOffset(codec, &e.Value, maxValueSize)
	ssz.DefineStaticBytes(codec, &e.ValueHash)
	ssz.DefineStaticBytes(codec, &e.Hash)
	ssz.DefineSliceOfDynamicObjectsOffset(codec, &e.Children, 2)

	ssz.DefineDynamicBytesContent(codec, &e.Key, maxKeySize)
	ssz.DefineDynamicBytesContent(codec, &e.Value, maxValueSize)
	ssz.DefineSliceOfDynamicObjectsContent(codec, &e.Children, 2)
}

// Encode serializes an envelope tree to SSZ bytes.
func Encode(e *Envelope) ([]byte, error) {
	return ssz.EncodeToBytes(e)
}

// Decode parses SSZ bytes back into an envelope tree.
func Decode(data []byte) (*Envelope, error) {
	e := new(Envelope)
	if err := ssz.DecodeFromBytes(data, e); err != nil {
		return nil, err
	}
	return e, nil
}
