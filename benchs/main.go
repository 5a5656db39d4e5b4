package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/merbinner/mbrt"
)

func main() {
	benchmarkBuild()
	benchmarkInsertInExisting()
	benchmarkProve()
}

func benchmarkBuild() {
	cfg := mbrt.DefaultConfig()
	n := 1000000

	items := make([]mbrt.KeyValue, n)
	for i := range items {
		key := make([]byte, cfg.KeySize)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
		items[i] = mbrt.KeyValue{Key: key, Value: []byte("value")}
	}

	start := time.Now()
	root, err := mbrt.FromItems(cfg, items)
	if err != nil {
		panic(err)
	}
	root.Hash()
	fmt.Printf("Took %v to build and hash a %d-leaf tree\n", time.Since(start), n)
}

func benchmarkInsertInExisting() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	cfg := mbrt.DefaultConfig()
	// Number of existing leaves in tree
	n := 1000000
	// Leaves to be inserted afterwards
	toInsert := 10000
	total := n + toInsert

	items := make([]mbrt.KeyValue, n)
	toInsertItems := make([]mbrt.KeyValue, toInsert)
	value := []byte("value")

	for i := 0; i < 4; i++ {
		for j := 0; j < total; j++ {
			key := make([]byte, cfg.KeySize)
			if _, err := rand.Read(key); err != nil {
				panic(err)
			}
			if j < n {
				items[j] = mbrt.KeyValue{Key: key, Value: value}
			} else {
				toInsertItems[j-n] = mbrt.KeyValue{Key: key, Value: value}
			}
		}
		fmt.Printf("Generated key set %d\n", i)

		for j := 0; j < 5; j++ {
			root, err := mbrt.FromItems(cfg, items)
			if err != nil {
				panic(err)
			}
			root.Hash()

			start := time.Now()
			for _, it := range toInsertItems {
				root, err = mbrt.Put(cfg, root, it.Key, it.Value)
				if err != nil {
					panic(err)
				}
			}
			root.Hash()
			elapsed := time.Since(start)
			fmt.Printf("Took %v to insert and hash %d leaves\n", elapsed, toInsert)
		}
	}
}

func benchmarkProve() {
	cfg := mbrt.DefaultConfig()
	n := 100000
	batch := 1000

	items := make([]mbrt.KeyValue, n)
	for i := range items {
		key := make([]byte, cfg.KeySize)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
		items[i] = mbrt.KeyValue{Key: key, Value: []byte("value")}
	}
	root, err := mbrt.FromItems(cfg, items)
	if err != nil {
		panic(err)
	}
	root.Hash()

	keys := make([][]byte, batch)
	for i := range keys {
		keys[i] = items[i].Key
	}

	start := time.Now()
	if _, err := mbrt.ProveContains(cfg, root, keys); err != nil {
		panic(err)
	}
	fmt.Printf("Took %v to prove containment of %d keys out of %d\n", time.Since(start), batch, n)
}
