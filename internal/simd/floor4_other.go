//go:build !amd64 || noasm

package simd

func platformFloor4(ISA) (func(int32, *[4]int32) int32, bool) {
	return nil, false
}
