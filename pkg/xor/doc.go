/*
Package xor provides a repeating-key XOR cipher with a keystream derived from a square key matrix.

Note that this is NOT secure encryption, since it is easily reversed with a little known plaintext.
This falls squarely under the obfuscation category, and it's NOT recommended for security critical use.

# How it works:

Each byte at zero-based stream offset i is XORed with the low byte of the matrix cell at row (i/N)%N and column i%N, where N is the matrix size.
The column advances with every byte, and the row advances every N bytes, so an N×N matrix produces a keystream that repeats every N*N bytes.
XOR is its own inverse, so applying the same matrix from the same offset a second time restores the original bytes.
The output is always exactly as long as the input. There is no header, length prefix, or padding.

Reader and Writer apply the cipher to any stream, and XOR applies it to an in-memory buffer.

# Files:

EncryptFile and DecryptFile stream a whole file through the cipher.
They share the same transform, and only differ in which side of the pipeline is raw binary data and which is text.
The encrypted side is always opened in ModeRaw, since ciphertext contains arbitrary byte values that must never be translated.
See Mode for what text handling means on the current platform.

Errors from the file functions wrap one of ErrValidation, ErrOpen, ErrRead, or ErrWrite, and can be checked with errors.Is.
*/
package xor
