package layout

import (
	"math/bits"
	"strconv"
)

// MaxHeight is the tallest supported tree. 2^(MaxHeight-1) leaves is the most
// distinct int32 keys there are (64-bit) or what fits an int sized buffer (32-bit).
const MaxHeight = min(32, strconv.IntSize-2) + 1

// SizeOfTree returns the number of slots of a complete tree of the given height.
func SizeOfTree(height int) int {
	return 1<<height - 1
}

// NumberOfLeaves returns the number of leaves of a complete tree of the given height.
func NumberOfLeaves(height int) int {
	return 1 << (height - 1)
}

// IsOdd reports whether height is odd.
func IsOdd(height int) bool {
	return height&1 == 1
}

// Split returns the heights of the top and bottom subtrees of a recursive split.
// The top subtree is the taller one when height is odd.
func Split(height int) (top, bottom int) {
	bottom = height >> 1
	top = bottom
	if IsOdd(height) {
		top++
	}
	return top, bottom
}

// SubtreeRootIndex returns the offset of bottom subtree n within a tree of the
// given height.
func SubtreeRootIndex(height, n int) int {
	top, bottom := Split(height)
	return SizeOfTree(top) + SizeOfTree(bottom)*n
}

// HeightForCount returns the height of a tree with count leaves.
// count must be a power of two.
func HeightForCount(count int) int {
	return bits.TrailingZeros(uint(count)) + 1
}

// LeafIndex returns the buffer position of the leaf with rank n.
func LeafIndex(height, n int) int {
	switch height {
	case 1:
		return 0
	case 2:
		return 1 + n
	case 3:
		return 3 + n
	}

	_, bottom := Split(height)
	perSubtree := NumberOfLeaves(bottom)
	subtree := n / perSubtree

	return SubtreeRootIndex(height, subtree) + LeafIndex(bottom, n%perSubtree)
}
