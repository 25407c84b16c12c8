package layout

import "errors"

// ErrInsufficientInput is returned when a Source runs dry before every leaf of
// the tree has been written.
var ErrInsufficientInput = errors.New("insufficient input")

// Source produces strictly ascending keys, one per call.
// Next reports false once the source is exhausted.
type Source interface {
	Next() (int32, bool)
}

// Build lays out NumberOfLeaves(height) keys pulled from src into buf and
// returns the smallest of them. buf must hold exactly SizeOfTree(height) slots.
//
// Keys must be strictly ascending; this is not checked. On error the contents
// of buf are unspecified.
func Build(buf []int32, src Source, height int) (int32, error) {
	switch height {
	case 1:
		return buildHeight1(buf, src)
	case 2:
		return buildHeight2(buf, src)
	case 3:
		return buildHeight3(buf, src)
	}

	top, bottom := Split(height)
	topSize := SizeOfTree(top)

	pairs := &pairSource{
		region: buf[topSize:],
		src:    src,
		height: bottom,
	}

	lowest, err := Build(buf[:topSize], pairs, top)
	if pairs.err != nil {
		return 0, pairs.err
	}
	return lowest, err
}

func buildHeight1(buf []int32, src Source) (int32, error) {
	key, ok := src.Next()
	if !ok {
		return 0, ErrInsufficientInput
	}
	buf[0] = key
	return buf[0], nil
}

func buildHeight2(buf []int32, src Source) (int32, error) {
	for i := 1; i <= 2; i++ {
		key, ok := src.Next()
		if !ok {
			return 0, ErrInsufficientInput
		}
		buf[i] = key
	}
	buf[0] = buf[1]
	return buf[0], nil
}

func buildHeight3(buf []int32, src Source) (int32, error) {
	for i := 3; i <= 6; i++ {
		key, ok := src.Next()
		if !ok {
			return 0, ErrInsufficientInput
		}
		buf[i] = key
	}
	buf[0] = buf[3]
	buf[1] = buf[3]
	buf[2] = buf[5]
	return buf[0], nil
}

// pairSource lays out the bottom region of a split one pair of subtrees at a
// time and yields the minimum of the left subtree of each pair. It is the key
// source of the top subtree.
type pairSource struct {
	region []int32
	src    Source
	height int
	pair   int
	err    error
}

func (p *pairSource) Next() (int32, bool) {
	if p.err != nil {
		return 0, false
	}

	size := SizeOfTree(p.height)
	offset := 2 * p.pair * size
	if offset+2*size > len(p.region) {
		return 0, false
	}
	p.pair++

	left := p.region[offset : offset+size]
	right := p.region[offset+size : offset+2*size]

	lowest, err := Build(left, p.src, p.height)
	if err != nil {
		p.err = err
		return 0, false
	}
	if _, err := Build(right, p.src, p.height); err != nil {
		p.err = err
		return 0, false
	}
	return lowest, true
}
