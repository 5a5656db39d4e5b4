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

import (
	"math/rand"
	"testing"
)

func randomItems(r *rand.Rand, cfg *Config, n int) []KeyValue {
	items := make([]KeyValue, n)
	for i := range items {
		key := make([]byte, cfg.KeySize)
		r.Read(key)
		value := make([]byte, 8)
		r.Read(value)
		items[i] = KeyValue{Key: key, Value: value}
	}
	return items
}

// TestFromItemsOrderIndependent is property 1 from spec.md §8: the
// canonical hash of a tree built from a set of items must not depend on
// the order the items were supplied in.
func TestFromItemsOrderIndependent(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(1))
	items := randomItems(r, cfg, 500)

	root1, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}

	shuffled := make([]KeyValue, len(items))
	copy(shuffled, items)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	root2, err := FromItems(cfg, shuffled)
	if err != nil {
		t.Fatalf("FromItems (shuffled): %v", err)
	}

	if root1.Hash() != root2.Hash() {
		t.Fatalf("FromItems is not order-independent: %x != %x", root1.Hash(), root2.Hash())
	}
}

func TestFromItemsDuplicateKeyLastWins(t *testing.T) {
	cfg := DefaultConfig()
	key := make([]byte, cfg.KeySize)
	items := []KeyValue{
		{Key: key, Value: []byte("first")},
		{Key: key, Value: []byte("second")},
	}

	root, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}
	v, err := Get(cfg, root, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(v) != "second" {
		t.Fatalf("expected last-wins semantics, got %q", v)
	}
}

func TestFromItemsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	root, err := FromItems(cfg, nil)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}
	if root.Hash() != Empty().Hash() {
		t.Fatal("FromItems with no items should equal Empty")
	}
}

func TestFromItemsMatchesSequentialPut(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(2))
	items := randomItems(r, cfg, 200)

	bulk, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}

	sequential := Empty()
	for _, it := range items {
		sequential, err = Put(cfg, sequential, it.Key, it.Value)
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	if bulk.Hash() != sequential.Hash() {
		t.Fatalf("FromItems and sequential Put diverged: %x != %x", bulk.Hash(), sequential.Hash())
	}
}
