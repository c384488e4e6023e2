package flatfile

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineBytes bounds one line of input. Bytes past the bound are read and
// dropped, so an overlong record comes back cut short instead of failing the
// whole read.
const MaxLineBytes = 4096

// LineReader splits input into lines like bufio.Scanner but never fails on
// line length.
type LineReader struct {
	r    *bufio.Reader
	max  int
	line []byte
	err  error
	done bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r), max: MaxLineBytes}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error; Err tells the two apart.
func (lr *LineReader) Scan() bool {
	if lr.done {
		return false
	}
	lr.line = lr.line[:0]
	started := false
	for {
		chunk, more, err := lr.r.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.err = err
			}
			lr.done = true
			return started && lr.err == nil
		}
		started = true
		if room := lr.max - len(lr.line); room > 0 {
			lr.line = append(lr.line, chunk[:min(room, len(chunk))]...)
		}
		if !more {
			return true
		}
	}
}

// Text is the current line without its line ending, at most MaxLineBytes
// long.
func (lr *LineReader) Text() string { return string(lr.line) }

// Err is the first non-EOF read error.
func (lr *LineReader) Err() error { return lr.err }
