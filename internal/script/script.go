// Package script runs line-oriented cipher scripts of ENCRYPT, DECRYPT, and VERIFY commands, printing a transcript of each.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/xormatrix/pkg/matrix"
	"github.com/saylorsolutions/xormatrix/pkg/xor"
)

const (
	CmdEncrypt = "ENCRYPT"
	CmdDecrypt = "DECRYPT"
	CmdVerify  = "VERIFY"

	maxLineLength = 1024
)

var (
	ErrUsage          = errors.New("invalid command")
	ErrKeyLoad        = errors.New("could not load key file")
	ErrFilesDiffer    = errors.New("files do not match")
	ErrCommandFailure = errors.New("command failed")
)

// Runner executes script commands, writing a transcript of each one to its output.
type Runner struct {
	out     io.Writer
	loadKey func(path string) (*matrix.Matrix, error)
}

// RunnerOpt operates on a Runner in a standard and predictable way, and is used in NewRunner.
type RunnerOpt = func(r *Runner)

// WithOutput sets where the transcript is written. The default is os.Stdout.
func WithOutput(out io.Writer) RunnerOpt {
	return func(r *Runner) {
		r.out = out
	}
}

// WithKeyLoader overrides how key files are loaded. The default is matrix.LoadFile.
func WithKeyLoader(loader func(path string) (*matrix.Matrix, error)) RunnerOpt {
	return func(r *Runner) {
		r.loadKey = loader
	}
}

func NewRunner(opts ...RunnerOpt) *Runner {
	r := &Runner{
		out:     os.Stdout,
		loadKey: matrix.LoadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary counts the outcome of each command in a script.
type Summary struct {
	Passed int
	Failed int
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Exec runs a single command line.
// Lines that are too short fail with ErrUsage and print nothing.
// An unknown command with at least 3 arguments still has its key file loaded, so an unreadable key is reported first.
func (r *Runner) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty line", ErrUsage)
	}

	switch cmd := fields[0]; cmd {
	case CmdVerify:
		if len(fields) < 3 {
			return fmt.Errorf("%w: %s requires 2 files", ErrUsage, cmd)
		}
		return r.VerifyFiles(fields[1], fields[2])
	case CmdEncrypt, CmdDecrypt:
		if len(fields) < 4 {
			return fmt.Errorf("%w: %s requires an input, key, and output file", ErrUsage, cmd)
		}
		dir := xor.Encrypt
		if cmd == CmdDecrypt {
			dir = xor.Decrypt
		}
		return r.Cipher(dir, fields[1], fields[2], fields[3])
	default:
		if len(fields) >= 4 {
			if _, err := r.key(fields[2]); err != nil {
				return err
			}
		}
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (r *Runner) key(keyFile string) (*matrix.Matrix, error) {
	key, err := r.loadKey(keyFile)
	if err != nil {
		r.printf("LOAD_KEY:FAILURE - Could not load key file: %s\n", keyFile)
		return nil, fmt.Errorf("%w %s: %w", ErrKeyLoad, keyFile, err)
	}
	return key, nil
}

// VerifyFiles compares two files and prints the VERIFY transcript.
func (r *Runner) VerifyFiles(a, b string) error {
	r.printf("VERIFY_START\n")
	r.printf("VERIFY:Comparing %s and %s\n", a, b)
	defer r.printf("VERIFY_END\n")

	same, err := Verify(a, b)
	if err != nil || !same {
		r.printf("VERIFY:Files do not match - Decryption failed!\n")
		r.printf("VERIFY:FAILURE\n")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFilesDiffer, err)
		}
		return ErrFilesDiffer
	}
	r.printf("VERIFY:Files match - Decryption successful!\n")
	r.printf("VERIFY:SUCCESS\n")
	return nil
}

// Cipher loads keyFile and runs input through the cipher into output, printing the transcript for dir.
func (r *Runner) Cipher(dir xor.Direction, input, keyFile, output string) error {
	key, err := r.key(keyFile)
	if err != nil {
		return err
	}

	r.printf("%s_START\n", dir)
	r.printf("%s:Input=%s Key=%s Output=%s Size=%d\n", dir, input, keyFile, output, key.Size())
	defer r.printf("%s_END\n", dir)

	if err := xor.RunCipher(input, output, key, key.Size(), dir); err != nil {
		r.printf("%s:FAILURE\n", dir)
		return fmt.Errorf("%w: %s: %w", ErrCommandFailure, dir, err)
	}
	r.printf("%s:SUCCESS\n", dir)
	return nil
}

// Run executes every command in script, skipping blank lines and lines starting with '#'.
// A failing command doesn't stop the script.
func (r *Runner) Run(script io.Reader) (Summary, error) {
	var (
		summary Summary
		num     int
		scanner = bufio.NewScanner(script)
	)
	scanner.Buffer(make([]byte, maxLineLength), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		num++
		r.printf("--- Command %d: %s ---\n", num, line)
		if err := r.Exec(line); err != nil {
			summary.Failed++
		} else {
			summary.Passed++
		}
		r.printf("\n")
	}
	return summary, scanner.Err()
}

// RunFile opens the script at path and runs it with banners around the transcript.
func (r *Runner) RunFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("cannot open test file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	r.printf("========================================\n")
	r.printf("Running Test File: %s\n", path)
	r.printf("========================================\n\n")

	summary, err := r.Run(f)
	if err != nil {
		return summary, err
	}

	r.printf("========================================\n")
	r.printf("Test File Complete: %s\n", path)
	r.printf("========================================\n\n")
	return summary, nil
}
