package script

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// Verify reports whether the files at a and b have identical contents.
func Verify(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = fa.Close()
	}()
	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = fb.Close()
	}()

	var (
		ra   = bufio.NewReader(fa)
		rb   = bufio.NewReader(fb)
		bufA = make([]byte, 4096)
		bufB = make([]byte, 4096)
	)
	for {
		na, errA := io.ReadFull(ra, bufA)
		nb, errB := io.ReadFull(rb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		doneA, err := finished(errA)
		if err != nil {
			return false, err
		}
		doneB, err := finished(errB)
		if err != nil {
			return false, err
		}
		if doneA || doneB {
			return doneA == doneB, nil
		}
	}
}

func finished(err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true, nil
	default:
		return false, err
	}
}
