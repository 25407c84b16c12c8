package simd

// Lane values selected where query < leaf. Leaf i is reported as candidate
// i+1 minus 3, so lane 0 flags a query below the first leaf.
var floor4Candidates = [4]int32{0, 3, 4, 5}

// floor4Sentinel is selected by lanes whose leaf is <= query.
const floor4Sentinel int32 = 6

// kernelFloor4 is set once during init.
var kernelFloor4 = floor4Lanes

// Floor4 locates query among the four leaves of a height-3 subtree.
//
// The result is 3+i where leaf i is the last leaf <= query, or 0 when
// query is smaller than leaves[0]:
//
//	result = min over lanes of (query < leaves[lane] ? {0,3,4,5}[lane] : 6)
func Floor4(query int32, leaves *[4]int32) int32 {
	return kernelFloor4(query, leaves)
}

// Floor4Scalar is the branching equivalent of Floor4.
func Floor4Scalar(query int32, leaves *[4]int32) int32 {
	switch {
	case query < leaves[0]:
		return 0
	case query < leaves[1]:
		return 3
	case query < leaves[2]:
		return 4
	case query < leaves[3]:
		return 5
	}
	return floor4Sentinel
}

// floor4Lanes emulates the vector kernel: compare, select, horizontal min.
func floor4Lanes(query int32, leaves *[4]int32) int32 {
	var selected [4]int32
	for lane := range 4 {
		mask := lessMask(query, leaves[lane])
		selected[lane] = floor4Candidates[lane]&mask | floor4Sentinel&^mask
	}
	return min(selected[0], selected[1], selected[2], selected[3])
}

// lessMask returns all ones if a < b and zero otherwise.
func lessMask(a, b int32) int32 {
	return int32((int64(a) - int64(b)) >> 63)
}

func setKernels(isa ISA) {
	switch isa {
	case Scalar:
		kernelFloor4 = Floor4Scalar
	case Generic:
		kernelFloor4 = floor4Lanes
	default:
		if k, ok := platformFloor4(isa); ok {
			kernelFloor4 = k
			return
		}
		kernelFloor4 = floor4Lanes
	}
}
