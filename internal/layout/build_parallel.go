package layout

import "golang.org/x/sync/errgroup"

// SliceSource is a Source over an in-memory slice.
type SliceSource struct {
	keys []int32
	pos  int
}

// NewSliceSource returns a Source yielding keys in order.
func NewSliceSource(keys []int32) *SliceSource {
	return &SliceSource{keys: keys}
}

// Next implements Source.
func (s *SliceSource) Next() (int32, bool) {
	if s.pos >= len(s.keys) {
		return 0, false
	}
	k := s.keys[s.pos]
	s.pos++
	return k, true
}

// Consumed returns how many keys have been pulled so far.
func (s *SliceSource) Consumed() int {
	return s.pos
}

// BuildParallel produces the same layout as Build for the first
// NumberOfLeaves(height) entries of keys, laying out the bottom subtrees of the
// outermost split on up to workers goroutines. Every goroutine writes a disjoint
// sub-slice of buf.
func BuildParallel(buf []int32, keys []int32, height, workers int) (int32, error) {
	count := NumberOfLeaves(height)
	if len(keys) < count {
		return 0, ErrInsufficientInput
	}
	if height <= 3 || workers <= 1 {
		return Build(buf, NewSliceSource(keys[:count]), height)
	}

	top, bottom := Split(height)
	topSize := SizeOfTree(top)
	subtreeSize := SizeOfTree(bottom)
	perSubtree := NumberOfLeaves(bottom)
	pairs := NumberOfLeaves(top)

	mins := make([]int32, pairs)

	var g errgroup.Group
	g.SetLimit(workers)

	for p := range pairs {
		g.Go(func() error {
			offset := SubtreeRootIndex(height, 2*p)
			region := buf[offset : offset+2*subtreeSize]
			first := keys[2*p*perSubtree : (2*p+2)*perSubtree]

			lowest, err := Build(region[:subtreeSize], NewSliceSource(first[:perSubtree]), bottom)
			if err != nil {
				return err
			}
			if _, err := Build(region[subtreeSize:], NewSliceSource(first[perSubtree:]), bottom); err != nil {
				return err
			}
			mins[p] = lowest
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return Build(buf[:topSize], NewSliceSource(mins), top)
}
