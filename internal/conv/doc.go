// Package conv provides checked integer conversions.
//
// These functions perform bounds checking to prevent overflow when narrowing
// untrusted integers (command line flags, counts) to the int32 key domain.
//
// For conversions that are provably safe by domain constraints (e.g., leaf
// ranks below MaxLeaves), use direct type casts instead to avoid overhead.
package conv
