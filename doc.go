// Package cotree provides a static, cache-oblivious search index over int32 keys.
//
// A Tree is built once from strictly ascending keys and is read-only afterwards.
// Keys are stored in a single flat []int32 whose layout recursively splits the
// logical binary tree into a top subtree and bottom subtrees (van Emde Boas
// order), so a root-to-leaf walk touches few memory blocks for any cache line or
// page size.
//
// # Quick Start
//
//	tree, err := cotree.New(cotree.FromRange(0, 1024), 1024)
//	if err != nil {
//	    return err
//	}
//	leaf, ok := tree.Search(42)
//	// ok == true, leaf.LeafNumber == 42
//
// # Search Semantics
//
// Search returns the leaf holding the largest key <= query (the lower bound of
// the query within the index). Queries below the smallest key report false.
// LeafNumber is the rank of the key among all indexed keys and is the stable
// identity of a result; Index is the position inside the backing array and is
// exposed for inspection only.
//
// # Construction
//
// The number of leaves must be a power of two. New pulls exactly that many keys
// from a Source and never reads past them:
//
//	cotree.New(cotree.FromSlice(keys), len(keys))
//	cotree.NewFromSlice(keys, cotree.WithParallelism(8))
//	cotree.NewFromSeq(slices.Values(keys), len(keys))
//
// Keys must be strictly ascending. This is not validated; unsorted input yields
// unspecified search results.
//
// # Concurrency
//
// A built Tree is immutable. Search and all other read methods are safe for
// concurrent use.
//
// # Key Features
//
//   - Cache-oblivious recursive layout, 2n-1 slots for n keys
//   - Pair-wise separator elision (one separator per pair of bottom subtrees)
//   - SIMD base case (SSE2 on amd64, portable fallback elsewhere)
//   - Parallel construction from in-memory keys
package cotree
