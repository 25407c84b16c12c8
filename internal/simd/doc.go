// Package simd provides the 4-lane comparison kernel used by the height-3 base
// case of the search.
//
// # Supported Platforms
//
//   - x86-64: SSE2 (Go assembly)
//   - everything else: branch-free 4-lane emulation in Go
//
// Runtime CPU feature detection selects the implementation. Build with
// -tags noasm to force the Go fallback, or set COTREE_SIMD to one of
// generic, scalar or sse2.
//
// All kernels return the same value for every input, including leaf arrays
// that are not sorted.
package simd
