package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(n int) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(i)
	}
	return keys
}

func TestBuildHeight1(t *testing.T) {
	buf := []int32{1}

	lowest, err := Build(buf, NewSliceSource([]int32{6}), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), lowest)
	assert.Equal(t, []int32{6}, buf)
}

func TestBuildHeight2(t *testing.T) {
	buf := make([]int32, 3)

	lowest, err := Build(buf, NewSliceSource([]int32{10, 16}), 2)
	require.NoError(t, err)
	assert.Equal(t, int32(10), lowest)
	assert.Equal(t, []int32{10, 10, 16}, buf)
}

func TestBuildHeight3(t *testing.T) {
	buf := make([]int32, 7)

	lowest, err := Build(buf, NewSliceSource(ascending(4)), 3)
	require.NoError(t, err)
	assert.Equal(t, int32(0), lowest)
	assert.Equal(t, []int32{0, 0, 2, 0, 1, 2, 3}, buf)
}

func TestBuildHeight4(t *testing.T) {
	buf := make([]int32, 15)

	lowest, err := Build(buf, NewSliceSource(ascending(8)), 4)
	require.NoError(t, err)
	assert.Equal(t, int32(0), lowest)
	assert.Equal(t, []int32{0, 0, 4, 0, 0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7}, buf)
}

func TestBuildHeight7(t *testing.T) {
	expected := []int32{
		0, 0, 32,

		0, 0, 8,
		16, 16, 24,
		32, 32, 40,
		48, 48, 56,

		0, 0, 2, 0, 1, 2, 3,
		4, 4, 6, 4, 5, 6, 7,
		8, 8, 10, 8, 9, 10, 11,
		12, 12, 14, 12, 13, 14, 15,
		16, 16, 18, 16, 17, 18, 19,
		20, 20, 22, 20, 21, 22, 23,
		24, 24, 26, 24, 25, 26, 27,
		28, 28, 30, 28, 29, 30, 31,
		32, 32, 34, 32, 33, 34, 35,
		36, 36, 38, 36, 37, 38, 39,
		40, 40, 42, 40, 41, 42, 43,
		44, 44, 46, 44, 45, 46, 47,
		48, 48, 50, 48, 49, 50, 51,
		52, 52, 54, 52, 53, 54, 55,
		56, 56, 58, 56, 57, 58, 59,
		60, 60, 62, 60, 61, 62, 63,
	}

	buf := make([]int32, 127)
	lowest, err := Build(buf, NewSliceSource(ascending(64)), 7)
	require.NoError(t, err)
	assert.Equal(t, int32(0), lowest)
	assert.Equal(t, expected, buf)
}

func TestBuildConsumesExactlyLeafCount(t *testing.T) {
	for height := 1; height <= 12; height++ {
		src := NewSliceSource(ascending(NumberOfLeaves(height) + 5))
		buf := make([]int32, SizeOfTree(height))

		_, err := Build(buf, src, height)
		require.NoError(t, err)
		assert.Equal(t, NumberOfLeaves(height), src.Consumed(), "height %d", height)
	}
}

func TestBuildInsufficientInput(t *testing.T) {
	for height := 1; height <= 10; height++ {
		for _, short := range []int{0, 1, NumberOfLeaves(height) / 2, NumberOfLeaves(height) - 1} {
			if short >= NumberOfLeaves(height) {
				continue
			}
			buf := make([]int32, SizeOfTree(height))
			_, err := Build(buf, NewSliceSource(ascending(short)), height)
			assert.ErrorIs(t, err, ErrInsufficientInput, "height %d with %d keys", height, short)
		}
	}
}

// TestBuildMinInvariant checks that every internal slot equals the minimum of
// the leaves below it by rebuilding the logical tree from the layout.
func TestBuildMinInvariant(t *testing.T) {
	for height := 1; height <= 11; height++ {
		keys := make([]int32, NumberOfLeaves(height))
		for i := range keys {
			keys[i] = int32(i*7 - 1000)
		}

		buf := make([]int32, SizeOfTree(height))
		_, err := Build(buf, NewSliceSource(keys), height)
		require.NoError(t, err)

		assert.Equal(t, keys[0], buf[0])
		for n, k := range keys {
			require.Equal(t, k, buf[LeafIndex(height, n)], "height %d leaf %d", height, n)
		}
		checkSubtreeMinimums(t, buf, height)
	}
}

// checkSubtreeMinimums verifies that the root of every recursive piece holds
// the smallest leaf of that piece.
func checkSubtreeMinimums(t *testing.T, buf []int32, height int) {
	t.Helper()

	lowest := buf[LeafIndex(height, 0)]
	require.Equal(t, lowest, buf[0])

	switch height {
	case 1:
		return
	case 2:
		require.Equal(t, buf[1], buf[0])
		return
	case 3:
		require.Equal(t, buf[3], buf[1])
		require.Equal(t, buf[5], buf[2])
		return
	}

	top, bottom := Split(height)
	size := SizeOfTree(bottom)
	for n := range 1 << top {
		start := SubtreeRootIndex(height, n)
		checkSubtreeMinimums(t, buf[start:start+size], bottom)
		if n%2 == 0 {
			// Left subtree minima feed the top subtree's leaves.
			require.Equal(t, buf[start], buf[LeafIndex(top, n/2)])
		}
	}
	checkSubtreeMinimums(t, buf[:SizeOfTree(top)], top)
}

func TestBuildParallelMatchesBuild(t *testing.T) {
	for height := 1; height <= 12; height++ {
		keys := ascending(NumberOfLeaves(height))

		want := make([]int32, SizeOfTree(height))
		_, err := Build(want, NewSliceSource(keys), height)
		require.NoError(t, err)

		for _, workers := range []int{1, 2, 8} {
			got := make([]int32, SizeOfTree(height))
			lowest, err := BuildParallel(got, keys, height, workers)
			require.NoError(t, err)
			assert.Equal(t, keys[0], lowest)
			assert.Equal(t, want, got, "height %d workers %d", height, workers)
		}
	}
}

func TestBuildParallelInsufficientInput(t *testing.T) {
	buf := make([]int32, SizeOfTree(6))
	_, err := BuildParallel(buf, ascending(31), 6, 4)
	assert.ErrorIs(t, err, ErrInsufficientInput)
}
