// Command mbrtsoak runs scenario S8 from spec.md §8: a long-running
// randomized interleaving of Put/Remove against a reference Go map,
// checking every 997 steps and at the end of each attempt that the tree
// and the map agree on membership and values, that the tree's hash equals
// that of FromItems over the map, and that fresh random keys are absent.
// It plays the same role the teacher's
// cmd/fuzzinsertstemordered/main.go plays for verkle trees — an infinite
// fuzz loop that panics on the first divergence — generalized from a
// single bulk-insert-and-compare pass to an open-ended mixed workload.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"sort"

	"github.com/merbinner/mbrt"
)

func main() {
	steps := flag.Int("steps", 100000, "number of put/remove operations per attempt")
	attempts := flag.Int("attempts", 0, "number of attempts to run (0 = forever)")
	flag.Parse()

	cfg := mbrt.DefaultConfig()

	for attempt := 0; *attempts == 0 || attempt < *attempts; attempt++ {
		fmt.Println("attempt #", attempt)
		runAttempt(cfg, *steps)
	}
}

func runAttempt(cfg *mbrt.Config, steps int) {
	root := mbrt.New()
	reference := map[string][]byte{}

	for i := 0; i < steps; i++ {
		key := make([]byte, cfg.KeySize)

		// Bias toward reusing an existing key so removes and overwrites
		// actually exercise those paths instead of almost always missing.
		if len(reference) > 0 && i%3 != 0 {
			key = []byte(pickExisting(reference))
		} else {
			_, _ = rand.Read(key)
		}

		if i%5 == 0 && len(reference) > 0 {
			if _, ok := reference[string(key)]; ok {
				var err error
				root, err = mbrt.Remove(cfg, root, key)
				if err != nil {
					panic(fmt.Sprintf("step %d: unexpected Remove error: %v", i, err))
				}
				delete(reference, string(key))
				continue
			}
		}

		value := make([]byte, 8)
		_, _ = rand.Read(value)

		var err error
		root, err = mbrt.Put(cfg, root, key, value)
		if err != nil {
			panic(fmt.Sprintf("step %d: unexpected Put error: %v", i, err))
		}
		reference[string(key)] = value

		if i%997 == 0 {
			checkAgreement(cfg, root, reference)
		}
	}
	checkAgreement(cfg, root, reference)
}

func checkAgreement(cfg *mbrt.Config, root mbrt.Node, reference map[string][]byte) {
	for k, v := range reference {
		got, err := mbrt.Get(cfg, root, []byte(k))
		if err != nil {
			panic(fmt.Sprintf("key %x: expected present, got error %v", k, err))
		}
		if string(got) != string(v) {
			panic(fmt.Sprintf("key %x: value mismatch", k))
		}
	}

	keys := mbrt.Keys(root)
	if len(keys) != len(reference) {
		panic(fmt.Sprintf("key count mismatch: tree has %d, reference has %d", len(keys), len(reference)))
	}
	sort.Slice(keys, func(i, j int) bool { return string(keys[i]) < string(keys[j]) })
	for _, k := range keys {
		if _, ok := reference[string(k)]; !ok {
			panic(fmt.Sprintf("tree has key %x absent from reference", k))
		}
	}

	items := make([]mbrt.KeyValue, 0, len(reference))
	for k, v := range reference {
		items = append(items, mbrt.KeyValue{Key: []byte(k), Value: v})
	}
	if want, err := mbrt.FromItems(cfg, items); err != nil || want.Hash() != root.Hash() {
		panic(fmt.Sprintf("tree hash differs from FromItems of the reference (err %v)", err))
	}
	for i := 0; i < 1000; i++ {
		key := make([]byte, cfg.KeySize)
		_, _ = rand.Read(key)
		if ok, err := mbrt.Contains(cfg, root, key); ok || err != nil {
			panic(fmt.Sprintf("fresh random key %x: Contains = %v, err %v", key, ok, err))
		}
	}
}

func pickExisting(reference map[string][]byte) string {
	for k := range reference {
		return k
	}
	return ""
}
