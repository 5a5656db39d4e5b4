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
	"bytes"
	"math/rand"
	"testing"
)

func TestPutThenGet(t *testing.T) {
	cfg := DefaultConfig()
	key := bytes.Repeat([]byte{0x03}, cfg.KeySize)

	root, err := Put(cfg, Empty(), key, []byte("v1"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, err := Get(cfg, root, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(v) != "v1" {
		t.Fatalf("got %q, want v1", v)
	}
}

// TestPutOverwritePreservesOtherKeys is property 2-ish from spec.md §8:
// overwriting one key must not disturb any other key already present.
func TestPutOverwritePreservesOtherKeys(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(3))
	items := randomItems(r, cfg, 100)

	root, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}

	root, err = Put(cfg, root, items[0].Key, []byte("overwritten"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	for i, it := range items {
		v, err := Get(cfg, root, it.Key)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if i == 0 {
			if string(v) != "overwritten" {
				t.Fatalf("overwrite did not take effect")
			}
			continue
		}
		if !bytes.Equal(v, it.Value) {
			t.Fatalf("Put disturbed an unrelated key at index %d", i)
		}
	}
}

// TestRemoveThenGetNotFound is property 3-ish from spec.md §8: removing a
// key makes subsequent Get on it fail with KeyNotFoundError.
func TestRemoveThenGetNotFound(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(4))
	items := randomItems(r, cfg, 50)

	root, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}

	root, err = Remove(cfg, root, items[10].Key)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := Get(cfg, root, items[10].Key); err == nil {
		t.Fatal("expected KeyNotFoundError after Remove")
	} else if _, ok := err.(*KeyNotFoundError); !ok {
		t.Fatalf("expected *KeyNotFoundError, got %T", err)
	}

	for i, it := range items {
		if i == 10 {
			continue
		}
		if _, err := Get(cfg, root, it.Key); err != nil {
			t.Fatalf("Remove disturbed unrelated key %d: %v", i, err)
		}
	}
}

func TestRemoveMissingKeyErrors(t *testing.T) {
	cfg := DefaultConfig()
	root, err := Put(cfg, Empty(), bytes.Repeat([]byte{0x01}, cfg.KeySize), []byte("v"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := Remove(cfg, root, bytes.Repeat([]byte{0x02}, cfg.KeySize)); err == nil {
		t.Fatal("expected KeyNotFoundError removing an absent key")
	}
}

// TestRemoveAllCollapsesToEmpty is invariant 2 (maximal compactness)
// exercised through the mutation path rather than FromItems.
func TestRemoveAllCollapsesToEmpty(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(5))
	items := randomItems(r, cfg, 30)

	root, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}

	for _, it := range items {
		root, err = Remove(cfg, root, it.Key)
		if err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}

	if root.Hash() != Empty().Hash() {
		t.Fatalf("removing every key should collapse back to Empty, got hash %x", root.Hash())
	}
	if _, ok := root.(*emptyNode); !ok {
		t.Fatalf("expected the Empty singleton, got %T", root)
	}
}

// TestPutDoesNotMutatePriorRoot is the persistence guarantee from spec.md
// §5: mutation returns a new root and never disturbs the old one.
func TestPutDoesNotMutatePriorRoot(t *testing.T) {
	cfg := DefaultConfig()
	r := rand.New(rand.NewSource(6))
	items := randomItems(r, cfg, 40)

	before, err := FromItems(cfg, items)
	if err != nil {
		t.Fatalf("FromItems: %v", err)
	}
	beforeHash := before.Hash()

	newKey := bytes.Repeat([]byte{0xee}, cfg.KeySize)
	if _, err := Put(cfg, before, newKey, []byte("new")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if before.Hash() != beforeHash {
		t.Fatal("Put mutated the prior root in place")
	}
	if _, err := Get(cfg, before, newKey); err == nil {
		t.Fatal("the prior root should not see keys added after it was captured")
	}
}

func TestPutValueHashProducesPrunedLeaf(t *testing.T) {
	cfg := DefaultConfig()
	key := bytes.Repeat([]byte{0x05}, cfg.KeySize)
	valueHash := cfg.ValueHashFunc([]byte("value"))

	root, err := PutValueHash(cfg, Empty(), key, valueHash)
	if err != nil {
		t.Fatalf("PutValueHash: %v", err)
	}
	if _, ok := root.(*PrunedLeafNode); !ok {
		t.Fatalf("expected a PrunedLeafNode, got %T", root)
	}
	if _, err := Get(cfg, root, key); err == nil {
		t.Fatal("Get on a PrunedLeaf should fail")
	} else if _, ok := err.(*PrunedError); !ok {
		t.Fatalf("expected *PrunedError, got %T", err)
	}

	// spec.md §4.4: a matching PrunedLeaf still counts as present for
	// Contains, even though Get can't reveal its value.
	ok, err := Contains(cfg, root, key)
	if err != nil {
		t.Fatalf("Contains on a PrunedLeaf: %v", err)
	}
	if !ok {
		t.Fatal("Contains should be true for a key present as a PrunedLeaf")
	}
}
