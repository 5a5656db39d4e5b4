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

import "golang.org/x/sync/errgroup"

// parallelBuildThreshold is the leaf count above which FromItems forks its
// recursive left/right partition into goroutines instead of recursing
// inline. Below it, goroutine setup costs more than the work it would
// parallelize — the same reasoning the teacher applies with
// multiExpThreshold8, just for the CPU side of the equation
// instead of the commitment side.
const parallelBuildThreshold = 4096

// KeyValue is an (key, value) input pair for FromItems.
type KeyValue struct {
	Key, Value []byte
}

// FromItems implements spec.md §4.3: build a canonical tree from a
// collection of (key, value) pairs in one pass. Duplicate keys are
// resolved last-wins, matching the "reference behavior" spec.md calls out
// (equivalent to folding Put over the items in order).
func FromItems(cfg *Config, items []KeyValue) (Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	leaves := make([]Node, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, it := range items {
		if err := cfg.checkKey(it.Key); err != nil {
			return nil, err
		}
		if err := cfg.checkValue(it.Value); err != nil {
			return nil, err
		}
		leaf := newFullLeaf(cfg, it.Key, it.Value)
		if idx, ok := seen[string(it.Key)]; ok {
			leaves[idx] = leaf // last wins
			continue
		}
		seen[string(it.Key)] = len(leaves)
		leaves = append(leaves, leaf)
	}
	return fromLeafNodes(cfg, leaves, 0), nil
}

// New returns the empty tree.
func New() Node {
	return theEmpty
}

// fromLeafNodes implements spec.md §4.3's recursive partitioning: empty
// set -> Empty, singleton -> that leaf, otherwise split by side(key,depth)
// and recombine through the smart Inner constructor. It is also the
// rebuild step mutate.go uses at the bottom of a put/remove batch, which is
// why it takes an explicit depth rather than always starting at 0.
func fromLeafNodes(cfg *Config, leaves []Node, depth int) Node {
	switch len(leaves) {
	case 0:
		return theEmpty
	case 1:
		return leaves[0]
	}

	if len(leaves) < parallelBuildThreshold {
		left, right := partition(leaves, depth)
		return newInner(cfg,
			fromLeafNodes(cfg, left, depth+1),
			fromLeafNodes(cfg, right, depth+1),
		)
	}

	left, right := partition(leaves, depth)
	var (
		leftNode, rightNode Node
		g                    errgroup.Group
	)
	g.Go(func() error {
		leftNode = fromLeafNodes(cfg, left, depth+1)
		return nil
	})
	g.Go(func() error {
		rightNode = fromLeafNodes(cfg, right, depth+1)
		return nil
	})
	_ = g.Wait() // neither goroutine can return an error; building never fails
	return newInner(cfg, leftNode, rightNode)
}

// partition splits leaves by side(key, depth), preserving relative order
// within each side (not load-bearing for correctness — the smart
// constructor and hash are order-independent — but keeps construction
// deterministic for any caller diffing intermediate states).
func partition(leaves []Node, depth int) (left, right []Node) {
	left = make([]Node, 0, len(leaves))
	right = make([]Node, 0, len(leaves))
	for _, leaf := range leaves {
		if side(leafKey(leaf), depth) == 1 {
			left = append(left, leaf)
		} else {
			right = append(right, leaf)
		}
	}
	return left, right
}
