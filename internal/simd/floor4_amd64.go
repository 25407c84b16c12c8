//go:build amd64 && !noasm

package simd

// floor4SSE2 broadcasts query, compares it against the four leaves with
// PCMPGTL, blends candidates and sentinel, and reduces with a signed min.
//
//go:noescape
func floor4SSE2(query int32, leaves *[4]int32) int32

func platformFloor4(isa ISA) (func(int32, *[4]int32) int32, bool) {
	if isa == SSE2 && hasSSE2 {
		return floor4SSE2, true
	}
	return nil, false
}
