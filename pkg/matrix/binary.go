package matrix

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	magicBytes uint16 = 0x4d58
)

var (
	magicHeader = []byte{0x4d, 0x58}

	_ encoding.BinaryMarshaler   = (*Matrix)(nil)
	_ encoding.BinaryUnmarshaler = (*Matrix)(nil)
)

type header struct {
	magic uint16
	size  byte
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.size),
	)
}

func cellMapper(cells []int32) bin.Mapper {
	mappers := make([]bin.Mapper, len(cells))
	for i := range cells {
		mappers[i] = bin.Int(&cells[i])
	}
	return bin.MapSequence(mappers...)
}

// MarshalBinary encodes the matrix in the binary key format.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	if m == nil || !ValidSize(m.size) {
		return nil, fmt.Errorf("%w: cannot marshal an uninitialized matrix", ErrInvalidData)
	}
	var (
		buf   bytes.Buffer
		h     = header{magic: magicBytes, size: byte(m.size)}
		cells = m.Cells()
	)
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	if err := cellMapper(cells).Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a matrix previously encoded with MarshalBinary.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	var h header
	r := bytes.NewReader(data)
	if err := h.mapper().Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: unable to read header: %v", ErrInvalidData, err)
	}
	if h.magic != magicBytes {
		return fmt.Errorf("%w: unrecognized magic bytes %#04x", ErrInvalidData, h.magic)
	}
	size := int(h.size)
	if !ValidSize(size) {
		return fmt.Errorf("%w: %d is outside of [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	cells := make([]int32, size*size)
	if err := cellMapper(cells).Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: unable to read cells: %v", ErrInvalidData, err)
	}
	m.size = size
	m.cells = cells
	return nil
}
