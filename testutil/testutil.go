package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32 returns a pseudo-random int32 over the whole range.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32())
}

// AscendingKeys returns n strictly ascending keys with gaps drawn from
// [1, maxGap]. The first key is drawn from [-n, n).
// The keys stay within int32 as long as n*(maxGap+1) < 2^31.
func (r *RNG) AscendingKeys(n, maxGap int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if maxGap < 1 {
		maxGap = 1
	}

	keys := make([]int32, n)
	if n == 0 {
		return keys
	}

	next := int64(r.rand.Intn(2*n) - n)
	for i := range keys {
		keys[i] = int32(next)
		next += int64(r.rand.Intn(maxGap)) + 1
	}
	return keys
}

// Queries returns n queries drawn uniformly from [lo, hi].
func (r *RNG) Queries(n int, lo, hi int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := int64(hi) - int64(lo) + 1
	queries := make([]int32, n)
	for i := range queries {
		queries[i] = int32(int64(lo) + r.rand.Int63n(span))
	}
	return queries
}

// SkewedQueries returns n queries taken from keys with Zipfian popularity:
// P(rank k) ∝ 1/(1+k)^s. s must be > 1.
// This is how real-world lookups are distributed (power law).
func (r *RNG) SkewedQueries(keys []int32, n int, s float64) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	queries := make([]int32, n)
	if len(keys) == 0 {
		return queries
	}

	zipf := rand.NewZipf(r.rand, s, 1, uint64(len(keys)-1))
	for i := range queries {
		queries[i] = keys[zipf.Uint64()]
	}
	return queries
}

// Floor returns the rank of the largest key <= q in sorted keys.
// It returns false when q is smaller than every key.
func Floor(keys []int32, q int32) (int, bool) {
	rank := sort.Search(len(keys), func(i int) bool { return keys[i] > q }) - 1
	return rank, rank >= 0
}

// IsStrictlyAscending reports whether keys are sorted without duplicates.
func IsStrictlyAscending(keys []int32) bool {
	prev := int64(math.MinInt64)
	for _, k := range keys {
		if int64(k) <= prev {
			return false
		}
		prev = int64(k)
	}
	return true
}
