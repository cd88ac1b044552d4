package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/xormatrix/cmd/internal"
)

var version = "dev"

var (
	errUsage          = errors.New("usage error")
	errUnknownCommand = errors.New("unknown command")
)

const usageText = `
xormatrix encrypts and decrypts files with a repeating-key XOR cipher, using a keystream derived from a square key matrix.
The byte at offset i is XORed with the cell at row (i/N)%%N and column i%%N of the N×N matrix, where N is between 2 and 8.
Applying the same key a second time restores the original file, and output is always exactly as long as the input.

USAGE:  xormatrix COMMAND [FLAGS] ARGS...

COMMANDS:
    encrypt IN KEY OUT       Encrypt the text file IN into the binary file OUT.
    decrypt IN KEY OUT       Decrypt the binary file IN into the text file OUT.
    verify A B               Check that files A and B have identical contents.
    run SCRIPT               Run each ENCRYPT, DECRYPT, or VERIFY line in SCRIPT, skipping blank lines and # comments.
    genkey [FLAGS] OUT       Generate a key file. Use "xormatrix genkey -h" for flags.
    show [FLAGS] KEY         Print a key matrix. Use "xormatrix show -h" for flags.
    version                  Print the version.

KEY FILES:
    Text key files contain whitespace separated integers: the size N, followed by N*N cells in row-major order.
    Binary key files are written with "genkey -b", and are detected automatically.

SECURITY:
    This is not encryption in any meaningful sense, it's obfuscation.
A repeating XOR keystream is trivially recovered from a small amount of known plain text.
`

func usage(out io.Writer) {
	_, _ = fmt.Fprintf(out, usageText)
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}
	if err := run(os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			usage(os.Stderr)
		}
		internal.Fatal("%v", err)
	}
}

func run(out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "encrypt", "decrypt":
		return cipherCmd(out, cmd, args)
	case "verify":
		return verifyCmd(out, args)
	case "run":
		return runCmd(out, args)
	case "genkey":
		return genkeyCmd(out, args)
	case "show":
		return showCmd(out, args)
	case "version":
		_, err := fmt.Fprintln(out, version)
		return err
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, cmd)
	}
}
