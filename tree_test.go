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
	"fmt"
	mRandV1 "math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"
)

// This file is scenario S8 from spec.md §8 (the open-ended soak property),
// run as a testing/quick property instead of the freestanding loop
// cmd/mbrtsoak runs, the same split the teacher keeps between tree_test.go's
// TestRandom and cmd/fuzzinsertstemordered's infinite loop: the quick.Check
// variant stays bounded enough to run in `go test`, the cmd one runs however
// long an operator wants it to.

type randTest []randTestStep

type randTestStep struct {
	op    int
	key   []byte // for opPut, opRemove, opGet
	value []byte // for opPut
	err   error  // for debugging
}

const (
	opPut = iota
	opRemove
	opGet
	opHash
	opProve
	numOps
)

// Generate implements the quick.Generator interface from testing/quick to
// generate random test cases.
func (randTest) Generate(r *mRandV1.Rand, size int) reflect.Value {
	finished := func() bool {
		if size == 0 {
			return true
		}
		size--
		return false
	}
	return reflect.ValueOf(generateSteps(finished, r))
}

func generateSteps(finished func() bool, r *mRandV1.Rand) randTest {
	var allKeys [][]byte
	tmp := []byte{0}
	genKey := func() []byte {
		if _, err := r.Read(tmp); err != nil {
			panic(err)
		}
		// the first 2 calls always create a new key, then about 7% of the
		// time (tmp[0]%100 > 90 holds for 18 of the 256 byte values) we
		// create a new key, otherwise reuse an existing one.
		if len(allKeys) < 2 || tmp[0]%100 > 90 {
			key := make([]byte, 32)
			if _, err := r.Read(key); err != nil {
				panic(err)
			}
			allKeys = append(allKeys, key)
			return key
		}
		idx := int(tmp[0]) % len(allKeys)
		return allKeys[idx]
	}

	var steps randTest
	for !finished() {
		if _, err := r.Read(tmp); err != nil {
			panic(err)
		}
		step := randTestStep{op: int(tmp[0]) % numOps}
		switch step.op {
		case opPut:
			step.key = genKey()
			step.value = make([]byte, 8)
			if _, err := r.Read(step.value); err != nil {
				panic(err)
			}
		case opGet, opRemove, opProve:
			step.key = genKey()
		}
		steps = append(steps, step)
	}
	return steps
}

// runRandTestBool coerces error to boolean, for use in quick.Check.
func runRandTestBool(rt randTest) bool {
	return runRandTest(rt) == nil
}

func runRandTest(rt randTest) error {
	var (
		cfg    = DefaultConfig()
		root   = Empty()
		values = make(map[string]string)
	)
	for i, step := range rt {
		switch step.op {
		case opPut:
			newRoot, err := Put(cfg, root, step.key, step.value)
			if err != nil {
				rt[i].err = err
				break
			}
			root = newRoot
			values[string(step.key)] = string(step.value)

		case opRemove:
			want, existed := values[string(step.key)]
			_ = want
			newRoot, err := Remove(cfg, root, step.key)
			if existed {
				if err != nil {
					rt[i].err = fmt.Errorf("remove of existing key %x failed: %v", step.key, err)
					break
				}
				root = newRoot
				delete(values, string(step.key))
			} else if err == nil {
				rt[i].err = fmt.Errorf("remove of absent key %x should have failed", step.key)
			}

		case opGet:
			v, err := Get(cfg, root, step.key)
			want, existed := values[string(step.key)]
			if existed {
				if err != nil || string(v) != want {
					rt[i].err = fmt.Errorf("mismatch for key %#x: got %#x (err %v), want %#x", step.key, v, err, want)
				}
			} else if err == nil {
				rt[i].err = fmt.Errorf("get of absent key %#x unexpectedly succeeded with %#x", step.key, v)
			}

		case opProve:
			if len(values) == 0 {
				continue
			}
			var keys [][]byte
			for k := range values {
				keys = append(keys, []byte(k))
			}
			pruned, err := ProveContains(cfg, root, keys)
			if err != nil {
				rt[i].err = fmt.Errorf("ProveContains: %v", err)
				break
			}
			if pruned.Hash() != root.Hash() {
				rt[i].err = fmt.Errorf("pruned view hash %x != root hash %x", pruned.Hash(), root.Hash())
			}

		case opHash:
			var zero Hash
			if root.Hash() == zero && root != Node(theEmpty) {
				rt[i].err = fmt.Errorf("non-empty tree hashed to the zero value")
			}
		}
		if rt[i].err != nil {
			return rt[i].err
		}
	}
	return nil
}

func TestRandom(t *testing.T) {
	t.Parallel()

	if err := quick.Check(runRandTestBool, nil); err != nil {
		if cerr, ok := err.(*quick.CheckError); ok {
			t.Fatalf("random test iteration %d failed: %s", cerr.Count, spew.Sdump(cerr.In))
		}
		t.Fatal(err)
	}
}
