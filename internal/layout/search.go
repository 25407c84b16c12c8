package layout

import "github.com/hupe1980/cotree/internal/simd"

// Leaf identifies the leaf a search ended on.
type Leaf struct {
	// Index is the buffer position of the leaf.
	Index int
	// LeafNumber is the rank of the leaf among all leaves.
	LeafNumber int
}

// Search returns the leaf holding the largest key <= query in a tree of the
// given height laid out in buf.
//
// query must not be smaller than buf[0]; the result is meaningless otherwise.
func Search(query int32, height int, buf []int32) Leaf {
	switch height {
	case 1:
		return Leaf{}
	case 2:
		return searchHeight2(query, buf)
	case 3:
		return searchHeight3(query, buf)
	}

	top, bottom := Split(height)
	topSize := SizeOfTree(top)
	subtreeSize := SizeOfTree(bottom)

	pair := Search(query, top, buf[:topSize]).LeafNumber

	subtree := 2 * pair
	if query >= buf[topSize+subtreeSize*(subtree+1)] {
		subtree++
	}

	start := topSize + subtreeSize*subtree
	local := Search(query, bottom, buf[start:start+subtreeSize])

	return Leaf{
		Index:      start + local.Index,
		LeafNumber: NumberOfLeaves(bottom)*subtree + local.LeafNumber,
	}
}

func searchHeight2(query int32, buf []int32) Leaf {
	if query >= buf[2] {
		return Leaf{Index: 2, LeafNumber: 1}
	}
	return Leaf{Index: 1, LeafNumber: 0}
}

func searchHeight3(query int32, buf []int32) Leaf {
	idx := int(simd.Floor4(query, (*[4]int32)(buf[3:7])))
	return Leaf{Index: idx, LeafNumber: idx - 3}
}
