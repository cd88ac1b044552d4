package xor

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/xormatrix/pkg/matrix"
)

// Transform applies the keystream byte at offset to b.
func Transform(m *matrix.Matrix, offset int64, b byte) byte {
	return b ^ m.KeyByte(offset)
}

type matrixScreen struct {
	key  *matrix.Matrix
	init int64
	cur  int64
}

func newMatrixScreen(key *matrix.Matrix, offset ...int64) (*matrixScreen, error) {
	if key == nil {
		return nil, errors.New("cannot use nil key matrix")
	}
	s := &matrixScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 {
			return nil, fmt.Errorf("offset %d must not be negative", offset[0])
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *matrixScreen) screen(b byte) byte {
	b = Transform(s.key, s.cur, b)
	s.cur++
	return b
}

func (s *matrixScreen) screenAll(buf []byte) {
	for i := range buf {
		buf[i] = s.screen(buf[i])
	}
}

func (s *matrixScreen) reset() {
	s.cur = s.init
}

// XOR returns a copy of data with the keystream of key applied from offset 0.
// Passing the result through XOR again with the same key restores data.
func XOR(data []byte, key *matrix.Matrix) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Transform(key, int64(i), b)
	}
	return out
}
