package benchmark_test

import (
	"testing"

	"github.com/google/btree"
	"github.com/hupe1980/cotree"
	"github.com/hupe1980/cotree/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard leaf counts used across benchmarks. All are powers of two.
const (
	sizeSmall  = 1 << 12 // fits in L1/L2
	sizeMedium = 1 << 18 // Default CI
	sizeLarge  = 1 << 22 // exceeds LLC on most machines
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// btreeDegree matches the degree google/btree recommends for in-memory use.
const btreeDegree = 32

// ============================================================================
// Benchmark Helpers
// ============================================================================

// benchData is one key set plus query workload shared by all contenders.
type benchData struct {
	keys    []int32
	queries []int32
}

func makeBenchData(b *testing.B, n int) benchData {
	b.Helper()

	rng := testutil.NewRNG(benchSeed)
	keys := rng.AscendingKeys(n, 8)
	return benchData{
		keys:    keys,
		queries: rng.Queries(1<<16, keys[0], keys[n-1]),
	}
}

func buildTree(b *testing.B, keys []int32, opts ...cotree.Option) *cotree.Tree {
	b.Helper()

	tree, err := cotree.NewFromSlice(keys, opts...)
	if err != nil {
		b.Fatalf("failed to build tree: %v", err)
	}
	return tree
}

func buildBTree(keys []int32) *btree.BTreeG[int32] {
	bt := btree.NewOrderedG[int32](btreeDegree)
	for _, k := range keys {
		bt.ReplaceOrInsert(k)
	}
	return bt
}

// btreeFloor returns the largest key <= q.
func btreeFloor(bt *btree.BTreeG[int32], q int32) (int32, bool) {
	var (
		found int32
		ok    bool
	)
	bt.DescendLessOrEqual(q, func(k int32) bool {
		found, ok = k, true
		return false
	})
	return found, ok
}
