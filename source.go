package cotree

import "github.com/hupe1980/cotree/internal/layout"

// Source produces the keys of a tree in strictly ascending order.
// Next reports false once the source is exhausted.
//
// Construction pulls keys one at a time and stops after the requested leaf
// count, so a Source may be longer than the tree.
type Source interface {
	Next() (int32, bool)
}

// SourceFunc adapts a function to a Source. The next function returned by
// iter.Pull is a SourceFunc.
type SourceFunc func() (int32, bool)

// Next implements Source.
func (f SourceFunc) Next() (int32, bool) {
	return f()
}

// FromSlice returns a Source yielding keys in order.
func FromSlice(keys []int32) Source {
	return layout.NewSliceSource(keys)
}

// FromRange returns a Source yielding lo, lo+1, ..., hi-1.
func FromRange(lo, hi int32) Source {
	next := int64(lo)
	return SourceFunc(func() (int32, bool) {
		if next >= int64(hi) {
			return 0, false
		}
		k := int32(next)
		next++
		return k, true
	})
}

// FromChannel returns a Source draining ch until it is closed.
func FromChannel(ch <-chan int32) Source {
	return SourceFunc(func() (int32, bool) {
		k, ok := <-ch
		return k, ok
	})
}

// countingSource counts keys handed out, for error reporting.
type countingSource struct {
	src  Source
	seen int
}

func (c *countingSource) Next() (int32, bool) {
	k, ok := c.src.Next()
	if ok {
		c.seen++
	}
	return k, ok
}
