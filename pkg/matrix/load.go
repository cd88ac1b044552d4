package matrix

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a matrix in the text key format.
// Tokens after the last expected cell are ignored.
func Load(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrInvalidData, what)
		}
		val, err := strconv.ParseInt(scanner.Text(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: unable to parse %s %q", ErrInvalidData, what, scanner.Text())
		}
		return val, nil
	}

	size, err := next("size")
	if err != nil {
		return nil, err
	}
	if !ValidSize(int(size)) {
		return nil, fmt.Errorf("%w: %d is outside of [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	cells := make([]int32, size*size)
	for i := range cells {
		val, err := next(fmt.Sprintf("cell (%d, %d)", int64(i)/size, int64(i)%size))
		if err != nil {
			return nil, err
		}
		cells[i] = int32(val)
	}
	return New(int(size), cells)
}

// LoadFile reads a key file in either the text or binary format.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	r := bufio.NewReader(f)
	head, err := r.Peek(len(magicHeader))
	if err == nil && bytes.Equal(head, magicHeader) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		m := new(Matrix)
		if err := m.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return Load(r)
}

// WriteText writes the matrix in the text key format, which can be read back with Load.
func (m *Matrix) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", m.size); err != nil {
		return err
	}
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			if col > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatInt(int64(m.cells[row*m.size+col]), 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile writes the matrix to path, in the binary format if binary is true, or the text format otherwise.
func (m *Matrix) SaveFile(path string, binary bool) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !binary {
		return m.WriteText(f)
	}
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
