// Package layout builds and searches the recursive (van Emde Boas) layout of a
// complete binary tree stored in a flat []int32.
//
// A tree of height h is split into a top subtree of height ceil(h/2) followed by
// 2^top bottom subtrees of height floor(h/2). Each internal slot holds the minimum
// key of its subtree. The top subtree only carries one separator per pair of
// bottom subtrees (the left one's minimum); the right one's minimum is read from
// its own root slot during search.
//
// # Buffer shape for height 4 (keys 0..7)
//
//	[0 0 4 | 0 0 1 | 2 2 3 | 4 4 5 | 6 6 7]
//	  top    sub 0   sub 1   sub 2   sub 3
//
// Functions in this package assume valid inputs (power-of-two leaf counts,
// correctly sized buffers); validation is done by the caller.
package layout
