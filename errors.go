package cotree

import (
	"errors"

	"github.com/hupe1980/cotree/internal/layout"
)

var (
	// ErrInvalidLeafCount is returned when the leaf count is not a power of two
	// in [1, MaxLeaves].
	ErrInvalidLeafCount = errors.New("invalid leaf count")

	// ErrInsufficientInput is returned when the key source yields fewer keys
	// than the requested leaf count.
	ErrInsufficientInput = layout.ErrInsufficientInput

	// ErrInvalidRank is returned by At for a rank outside [0, Len()).
	ErrInvalidRank = errors.New("rank out of range")
)
