package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/saylorsolutions/xormatrix/cmd/internal"
	"github.com/saylorsolutions/xormatrix/internal/script"
	"github.com/saylorsolutions/xormatrix/internal/view"
	"github.com/saylorsolutions/xormatrix/pkg/matrix"
	"github.com/saylorsolutions/xormatrix/pkg/xor"
)

var errHelp = errors.New("help requested")

// parseFlags parses args with flags for the subcommand name, and requires exactly nargs positional arguments.
func parseFlags(out io.Writer, name string, flags *flag.FlagSet, args []string, nargs int, argUsage string) error {
	var helpFlag bool
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.SetOutput(out)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(out, "\nUSAGE:  xormatrix %s %s\n\nFLAGS:\n%s\n", name, argUsage, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag {
		flags.Usage()
		return errHelp
	}
	if flags.NArg() != nargs {
		flags.Usage()
		return fmt.Errorf("%w: %s expects %d arguments, got %d", errUsage, name, nargs, flags.NArg())
	}
	return nil
}

func helpOk(err error) error {
	if errors.Is(err, errHelp) {
		return nil
	}
	return err
}

func cipherCmd(out io.Writer, name string, args []string) error {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := parseFlags(out, name, flags, args, 3, "IN KEY OUT"); err != nil {
		return helpOk(err)
	}
	dir := xor.Encrypt
	if name == "decrypt" {
		dir = xor.Decrypt
	}
	runner := script.NewRunner(script.WithOutput(out))
	return runner.Cipher(dir, flags.Arg(0), flags.Arg(1), flags.Arg(2))
}

func verifyCmd(out io.Writer, args []string) error {
	flags := flag.NewFlagSet("verify", flag.ContinueOnError)
	if err := parseFlags(out, "verify", flags, args, 2, "A B"); err != nil {
		return helpOk(err)
	}
	runner := script.NewRunner(script.WithOutput(out))
	return runner.VerifyFiles(flags.Arg(0), flags.Arg(1))
}

func runCmd(out io.Writer, args []string) error {
	var strictFlag bool
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	flags.BoolVarP(&strictFlag, "strict", "S", false, "Exit with an error if any command in the script fails.")
	if err := parseFlags(out, "run", flags, args, 1, "SCRIPT"); err != nil {
		return helpOk(err)
	}
	runner := script.NewRunner(script.WithOutput(out))
	summary, err := runner.RunFile(flags.Arg(0))
	if err != nil {
		return err
	}
	internal.Echo("%d commands passed, %d failed", summary.Passed, summary.Failed)
	if strictFlag && summary.Failed > 0 {
		return fmt.Errorf("%d commands failed", summary.Failed)
	}
	return nil
}

func genkeyCmd(out io.Writer, args []string) error {
	var (
		sizeFlag   int
		passFlag   string
		saltFlag   string
		binaryFlag bool
	)
	flags := flag.NewFlagSet("genkey", flag.ContinueOnError)
	flags.IntVarP(&sizeFlag, "size", "s", 4, fmt.Sprintf("Matrix size, between %d and %d.", matrix.MinSize, matrix.MaxSize))
	flags.StringVarP(&passFlag, "passphrase", "p", "", "Derive the matrix from a passphrase instead of secure random generation.")
	flags.StringVar(&saltFlag, "salt", "", "Hex encoded salt used with --passphrase.")
	flags.BoolVarP(&binaryFlag, "binary", "b", false, "Write the key in the binary format.")
	if err := parseFlags(out, "genkey", flags, args, 1, "OUT"); err != nil {
		return helpOk(err)
	}

	var (
		m   *matrix.Matrix
		err error
	)
	if len(passFlag) > 0 {
		var salt bytes.Buffer
		if _, err := io.Copy(&salt, hex.NewDecoder(strings.NewReader(saltFlag))); err != nil {
			return fmt.Errorf("failed to decode salt, must be a hex string with only the characters a-f, A-F, or 0-9")
		}
		m, err = matrix.Derive([]byte(passFlag), salt.Bytes(), sizeFlag)
	} else {
		if len(saltFlag) > 0 {
			return fmt.Errorf("%w: --salt requires --passphrase", errUsage)
		}
		m, err = matrix.Gen(sizeFlag)
	}
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	if err := m.SaveFile(flags.Arg(0), binaryFlag); err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}
	_, err = fmt.Fprintf(out, "Wrote %d×%d key to %s\n", m.Size(), m.Size(), flags.Arg(0))
	return err
}

func showCmd(out io.Writer, args []string) error {
	var interactiveFlag bool
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	flags.BoolVarP(&interactiveFlag, "interactive", "i", false, "Show the matrix in an interactive terminal view.")
	if err := parseFlags(out, "show", flags, args, 1, "KEY"); err != nil {
		return helpOk(err)
	}
	m, err := matrix.LoadFile(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("could not load key file %s: %w", flags.Arg(0), err)
	}
	if interactiveFlag {
		return view.Show(m, flags.Arg(0))
	}
	_, err = fmt.Fprintf(out, "%s:\n%s", flags.Arg(0), m)
	return err
}
