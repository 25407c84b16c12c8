package cotree

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/cotree/internal/layout"
)

// MaxLeaves is the largest supported number of keys.
const MaxLeaves = 1 << (layout.MaxHeight - 1)

// Leaf identifies the result of a search.
type Leaf struct {
	// Index is the position of the leaf in the backing array. It depends on the
	// layout and is meant for diagnostics.
	Index int
	// LeafNumber is the 0-based rank of the leaf among all keys.
	LeafNumber int
	// Key is the indexed key stored at the leaf.
	Key int32
}

// Tree is a static search index in cache-oblivious layout.
// It is immutable and safe for concurrent reads once constructed.
type Tree struct {
	keys    []int32
	height  int
	count   int
	metrics MetricsCollector
}

// New builds a tree with count leaves from the first count keys of src.
//
// count must be a power of two in [1, MaxLeaves]; otherwise ErrInvalidLeafCount
// is returned. If src yields fewer than count keys, ErrInsufficientInput is
// returned. Keys must be strictly ascending; this is the caller's
// responsibility and is not checked.
func New(src Source, count int, optFns ...Option) (*Tree, error) {
	o := applyOptions(optFns)

	return build(o, count, func(buf []int32, height int) error {
		cs := &countingSource{src: src}
		if _, err := layout.Build(buf, cs, height); err != nil {
			return fmt.Errorf("%w: got %d of %d keys", err, cs.seen, count)
		}
		return nil
	})
}

// NewFromSlice builds a tree over all of keys. len(keys) must be a power of two.
//
// With WithParallelism the bottom subtrees are laid out concurrently.
func NewFromSlice(keys []int32, optFns ...Option) (*Tree, error) {
	o := applyOptions(optFns)
	count := len(keys)

	return build(o, count, func(buf []int32, height int) error {
		_, err := layout.BuildParallel(buf, keys, height, o.parallelism)
		return err
	})
}

// NewFromSeq builds a tree with count leaves from the first count values of seq.
func NewFromSeq(seq iter.Seq[int32], count int, optFns ...Option) (*Tree, error) {
	next, stop := iter.Pull(seq)
	defer stop()

	return New(SourceFunc(next), count, optFns...)
}

func build(o options, count int, layoutFn func(buf []int32, height int) error) (*Tree, error) {
	ctx := context.Background()
	logger := o.logger

	if err := validateCount(count); err != nil {
		o.metricsCollector.RecordBuild(count, 0, err)
		logger.LogBuild(ctx, count, 0, 0, err)
		return nil, err
	}

	height := layout.HeightForCount(count)
	start := time.Now()

	buf := make([]int32, 2*count-1)
	err := layoutFn(buf, height)

	duration := time.Since(start)
	o.metricsCollector.RecordBuild(count, duration, err)
	logger.LogBuild(ctx, count, height, duration, err)

	if err != nil {
		return nil, err
	}

	t := &Tree{
		keys:   buf,
		height: height,
		count:  count,
	}
	if _, noop := o.metricsCollector.(NoopMetricsCollector); !noop {
		t.metrics = o.metricsCollector
	}
	return t, nil
}

func validateCount(count int) error {
	if count <= 0 || count > MaxLeaves || count&(count-1) != 0 {
		return fmt.Errorf("%w: %d is not a power of two in [1, %d]", ErrInvalidLeafCount, count, MaxLeaves)
	}
	return nil
}

// Search returns the leaf holding the largest key <= query.
// It returns false if query is smaller than every key in the tree.
func (t *Tree) Search(query int32) (Leaf, bool) {
	if t.metrics == nil {
		return t.search(query)
	}

	start := time.Now()
	leaf, ok := t.search(query)
	t.metrics.RecordSearch(time.Since(start), ok)
	return leaf, ok
}

func (t *Tree) search(query int32) (Leaf, bool) {
	if query < t.keys[0] {
		return Leaf{}, false
	}

	l := layout.Search(query, t.height, t.keys)
	return Leaf{
		Index:      l.Index,
		LeafNumber: l.LeafNumber,
		Key:        t.keys[l.Index],
	}, true
}

// SearchBatch searches every query and appends the results to dst.
// Queries below the smallest key yield a Leaf with LeafNumber -1.
func (t *Tree) SearchBatch(queries []int32, dst []Leaf) []Leaf {
	for _, q := range queries {
		leaf, ok := t.Search(q)
		if !ok {
			leaf = Leaf{Index: -1, LeafNumber: -1}
		}
		dst = append(dst, leaf)
	}
	return dst
}

// LeafSet returns the set of leaf numbers the queries resolve to. Queries
// below the smallest key are skipped.
//
// Read as a range partitioning (leaf i owns [key i, key i+1)), this is the set
// of partitions a batch of keys touches.
func (t *Tree) LeafSet(queries []int32) *roaring.Bitmap {
	bm := roaring.New()
	for _, q := range queries {
		if leaf, ok := t.Search(q); ok {
			bm.Add(uint32(leaf.LeafNumber))
		}
	}
	return bm
}

// At returns the key with the given rank.
func (t *Tree) At(rank int) (int32, error) {
	if rank < 0 || rank >= t.count {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRank, rank, t.count)
	}
	return t.keys[layout.LeafIndex(t.height, rank)], nil
}

// All returns an iterator over (rank, key) pairs in ascending key order.
func (t *Tree) All() iter.Seq2[int, int32] {
	return func(yield func(int, int32) bool) {
		for rank := range t.count {
			if !yield(rank, t.keys[layout.LeafIndex(t.height, rank)]) {
				return
			}
		}
	}
}

// Height returns the number of levels of the tree.
func (t *Tree) Height() int {
	return t.height
}

// Len returns the number of keys.
func (t *Tree) Len() int {
	return t.count
}

// Min returns the smallest key.
func (t *Tree) Min() int32 {
	return t.keys[0]
}

// Max returns the largest key.
func (t *Tree) Max() int32 {
	return t.keys[len(t.keys)-1]
}
