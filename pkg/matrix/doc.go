/*
Package matrix provides the square key matrix used to derive an XOR keystream.

A Matrix is an N×N grid of integer values, where N is between MinSize and MaxSize inclusive.
Cells are stored in a single row-major buffer, and a Matrix is never modified once it's constructed.

# Keystream

The keystream byte at a zero-based stream offset i is the low byte of the cell at row (i/N)%N and column i%N.
The column advances with every byte, and the row advances every N bytes, both wrapping at N.
So a 2×2 matrix [[5,3],[9,1]] yields the keystream 5, 3, 9, 1, 5, 3, 9, 1, ...

# Key files:

Two key file formats are supported, and LoadFile will detect which one is in use.
  - Text: whitespace separated decimal integers. The first is the size N, followed by N*N cells in row-major order.
  - Binary: a 2 byte magic value, a single size byte, and N*N big-endian int32 cells. See Matrix.MarshalBinary.

# Generating keys:

Gen creates a matrix with secure random cells, and Derive creates one deterministically from a passphrase and salt using scrypt.
Neither makes the cipher secure, since repeating-key XOR is trivially broken with known plaintext.
*/
package matrix
