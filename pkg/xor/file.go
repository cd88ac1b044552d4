package xor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/saylorsolutions/xormatrix/pkg/matrix"
)

const (
	copyBufferSize = 32 * 1024
)

var (
	ErrValidation = errors.New("invalid cipher arguments")
	ErrOpen       = errors.New("unable to open file")
	ErrRead       = errors.New("unable to read source")
	ErrWrite      = errors.New("unable to write destination")
)

var (
	validate = validator.New()

	openSource = func(name string) (io.ReadCloser, error) {
		return os.Open(name)
	}
	createDestination = func(name string) (io.WriteCloser, error) {
		return os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	}
	checkPaths = statPaths
)

// statPaths rejects a missing or directory source, or a destination that is the source itself.
// Either would otherwise leave destination truncated before the first byte is read.
func statPaths(source, destination string) error {
	srcInfo, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("%w: source %q: %w", ErrOpen, source, err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%w: source %q is a directory", ErrOpen, source)
	}
	dstInfo, err := os.Stat(destination)
	if err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: source %q and destination %q are the same file", ErrValidation, source, destination)
	}
	return nil
}

// Direction selects which side of the file pipeline holds the ciphertext.
type Direction int

const (
	// Encrypt reads a text source and writes raw ciphertext.
	Encrypt Direction = iota
	// Decrypt reads raw ciphertext and writes a text destination.
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "ENCRYPT"
	case Decrypt:
		return "DECRYPT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Modes returns the source and destination Mode used for d.
func (d Direction) Modes() (source Mode, destination Mode) {
	if d == Decrypt {
		return ModeRaw, ModeText
	}
	return ModeText, ModeRaw
}

type cipherArgs struct {
	Source      string         `validate:"required"`
	Destination string         `validate:"required"`
	Matrix      *matrix.Matrix `validate:"required"`
	Size        int            `validate:"min=2,max=8"`
	Direction   Direction      `validate:"min=0,max=1"`
}

func (a cipherArgs) validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if a.Matrix.Size() != a.Size {
		return fmt.Errorf("%w: size %d doesn't match the %d×%d key matrix", ErrValidation, a.Size, a.Matrix.Size(), a.Matrix.Size())
	}
	return nil
}

// EncryptFile encrypts source into destination with the keystream of key.
// size must match the dimension of key.
func EncryptFile(source, destination string, key *matrix.Matrix, size int) error {
	return RunCipher(source, destination, key, size, Encrypt)
}

// DecryptFile decrypts source into destination with the keystream of key.
// size must match the dimension of key.
func DecryptFile(source, destination string, key *matrix.Matrix, size int) error {
	return RunCipher(source, destination, key, size, Decrypt)
}

// RunCipher streams source through the cipher into destination, which is created or truncated.
// Arguments are validated before any file is opened, so a rejected call leaves destination untouched.
// Both files are closed on every return path.
// If writing fails part way, whatever was already written is left in destination.
func RunCipher(source, destination string, key *matrix.Matrix, size int, dir Direction) (err error) {
	args := cipherArgs{
		Source:      source,
		Destination: destination,
		Matrix:      key,
		Size:        size,
		Direction:   dir,
	}
	if err := args.validate(); err != nil {
		return err
	}
	if err := checkPaths(source, destination); err != nil {
		return err
	}
	srcMode, dstMode := dir.Modes()

	in, err := openSource(source)
	if err != nil {
		return fmt.Errorf("%w: source %q: %w", ErrOpen, source, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := createDestination(destination)
	if err != nil {
		return fmt.Errorf("%w: destination %q: %w", ErrOpen, destination, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %q: %w", ErrWrite, destination, cerr)
		}
	}()

	buffered := bufio.NewWriter(out)
	w, err := NewWriter(dstMode.writer(buffered), key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := stream(w, srcMode.reader(bufio.NewReader(in))); err != nil {
		return err
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// stream copies src to dst in order until src is exhausted.
func stream(dst io.Writer, src io.Reader) error {
	buf := make([]byte, copyBufferSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return fmt.Errorf("%w: %w", ErrWrite, err)
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("%w: %w", ErrRead, rerr)
		}
	}
}
