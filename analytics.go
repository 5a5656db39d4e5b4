package mbrt

// Stats summarizes the shape of a tree: how deep it goes and how many
// nodes of each variant it contains. It plays the same diagnostic role the
// teacher's TreeWitness plays for a verkle tree (depth bounds, leaf/internal
// counts, key-value counts), generalized from a 256-ary witness walk to a
// binary one and extended with the two pruned variants verkle's witness
// never had to account for.
type Stats struct {
	DepthMin, DepthMax int
	FullLeafCount      int
	PrunedLeafCount    int
	InnerCount         int
	PrunedInnerCount   int
}

// Analyze walks the whole tree once and reports Stats for it. Depth bounds
// are measured in levels below root (root itself is depth 0); an Empty
// tree reports DepthMin == DepthMax == 0 with every count at zero.
func Analyze(root Node) Stats {
	var s Stats
	s.DepthMin, s.DepthMax = analyze(root, 0, &s)
	return s
}

func analyze(n Node, depth int, s *Stats) (depthMin, depthMax int) {
	switch v := n.(type) {
	case *emptyNode:
		return depth, depth

	case *FullLeafNode:
		s.FullLeafCount++
		return depth, depth

	case *PrunedLeafNode:
		s.PrunedLeafCount++
		return depth, depth

	case *PrunedInnerNode:
		s.PrunedInnerCount++
		return depth, depth

	case *InnerNode:
		s.InnerCount++
		leftMin, leftMax := analyze(v.left, depth+1, s)
		rightMin, rightMax := analyze(v.right, depth+1, s)
		depthMin = leftMin
		if rightMin < depthMin {
			depthMin = rightMin
		}
		depthMax = leftMax
		if rightMax > depthMax {
			depthMax = rightMax
		}
		return depthMin, depthMax

	default:
		panic("mbrt: unreachable node variant")
	}
}
