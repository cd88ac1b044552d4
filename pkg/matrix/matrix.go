package matrix

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinSize = 2
	MaxSize = 8
)

var (
	ErrInvalidSize = errors.New("invalid matrix size")
	ErrInvalidData = errors.New("invalid matrix data")
)

// Matrix is a read-only square grid of key values.
type Matrix struct {
	size  int
	cells []int32
}

// ValidSize reports whether size is within [MinSize, MaxSize].
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// New creates a Matrix of the given size from cells in row-major order.
// The cells are copied, so later changes to the slice don't affect the Matrix.
func New(size int, cells []int32) (*Matrix, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d is outside of [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("%w: expected %d cells for size %d, got %d", ErrInvalidData, size*size, size, len(cells))
	}
	m := &Matrix{
		size:  size,
		cells: make([]int32, len(cells)),
	}
	copy(m.cells, cells)
	return m, nil
}

// MustNew is like New, but panics if the matrix can't be created.
func MustNew(size int, cells ...int32) *Matrix {
	m, err := New(size, cells)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the dimension N of the matrix.
func (m *Matrix) Size() int {
	return m.size
}

// At returns the cell at the given row and column.
func (m *Matrix) At(row, col int) int32 {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for size %d", row, col, m.size))
	}
	return m.cells[row*m.size+col]
}

// Cells returns a copy of all cells in row-major order.
func (m *Matrix) Cells() []int32 {
	out := make([]int32, len(m.cells))
	copy(out, m.cells)
	return out
}

// Position returns the row and column used for the keystream byte at offset.
func (m *Matrix) Position(offset int64) (row, col int) {
	n := int64(m.size)
	return int((offset / n) % n), int(offset % n)
}

// KeyByte returns the keystream byte for the given zero-based stream offset.
// Only the low 8 bits of the cell are used.
func (m *Matrix) KeyByte(offset int64) byte {
	if offset < 0 {
		panic("negative keystream offset")
	}
	row, col := m.Position(offset)
	return byte(m.cells[row*m.size+col])
}

// Equal reports whether both matrices have the same size and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line, with each cell padded to 3 characters.
func (m *Matrix) String() string {
	var buf strings.Builder
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			_, _ = fmt.Fprintf(&buf, "%3d ", m.cells[row*m.size+col])
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
