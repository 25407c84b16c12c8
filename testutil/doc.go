// Package testutil provides testing utilities for cotree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating strictly ascending key sets, query
// workloads, and the expected answer of a search.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.AscendingKeys(1<<16, 10) // gaps in [1, 10]
//	queries := rng.Queries(1000, keys[0], keys[len(keys)-1])
//
// # Ground Truth
//
//	rank, ok := testutil.Floor(keys, q)
package testutil
