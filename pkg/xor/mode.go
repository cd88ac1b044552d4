package xor

import (
	"bufio"
	"io"
)

// Mode controls how a file stream is translated on its way in or out of the cipher.
type Mode int

const (
	// ModeText uses the platform's text file convention.
	// On Windows, CRLF line endings are read as LF and LF is written as CRLF.
	// Everywhere else this is identical to ModeRaw.
	ModeText Mode = iota
	// ModeRaw passes every byte through untranslated.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// TranslatesNewlines reports whether m changes line endings on this platform.
func (m Mode) TranslatesNewlines() bool {
	return m == ModeText && textNewline != "\n"
}

func (m Mode) reader(r *bufio.Reader) io.Reader {
	if !m.TranslatesNewlines() {
		return r
	}
	return &textReader{src: r}
}

func (m Mode) writer(w io.Writer) io.Writer {
	if !m.TranslatesNewlines() {
		return w
	}
	return &textWriter{target: w}
}

type textReader struct {
	src *bufio.Reader
}

func (r *textReader) Read(out []byte) (int, error) {
	var n int
	for n < len(out) {
		b, err := r.src.ReadByte()
		if err != nil {
			return n, err
		}
		if b == '\r' {
			next, err := r.src.Peek(1)
			if err == nil && next[0] == '\n' {
				_, _ = r.src.ReadByte()
				b = '\n'
			}
		}
		out[n] = b
		n++
		if r.src.Buffered() == 0 {
			break
		}
	}
	return n, nil
}

type textWriter struct {
	target io.Writer
	buf    []byte
}

func (w *textWriter) Write(in []byte) (int, error) {
	w.buf = w.buf[:0]
	for _, b := range in {
		if b == '\n' {
			w.buf = append(w.buf, textNewline...)
			continue
		}
		w.buf = append(w.buf, b)
	}
	if _, err := w.target.Write(w.buf); err != nil {
		return 0, err
	}
	return len(in), nil
}
