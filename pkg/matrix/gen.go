package matrix

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	DefaultDeriveIterations = 1 << 15
	deriveBlockSize         = 8
	deriveCpuCost           = 1
)

var (
	ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")
)

// Gen will generate a matrix of the given size with secure random cell values in [0, 255].
func Gen(size int) (*Matrix, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d is outside of [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	buf := make([]byte, size*size)
	n, err := rand.Read(buf)
	if n < len(buf) {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return fromBytes(size, buf)
}

// Derive will deterministically generate a matrix from a passphrase and salt using scrypt.
// The same passphrase, salt, and size will always produce the same matrix.
func Derive(pass, salt []byte, size int) (*Matrix, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d is outside of [%d, %d]", ErrInvalidSize, size, MinSize, MaxSize)
	}
	buf, err := scrypt.Key(pass, salt, DefaultDeriveIterations, deriveBlockSize, deriveCpuCost, size*size)
	if err != nil {
		return nil, err
	}
	return fromBytes(size, buf)
}

func fromBytes(size int, buf []byte) (*Matrix, error) {
	cells := make([]int32, len(buf))
	for i, b := range buf {
		cells[i] = int32(b)
	}
	return New(size, cells)
}
