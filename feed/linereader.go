package feed

import (
	"bufio"
	"io"
)

// lineReader yields only whole newline-terminated lines, buffering any
// trailing partial line until its terminator arrives. Parsing a CSV
// trace that another process is still appending to would otherwise
// choke on half-written records.
type lineReader struct {
	r       *bufio.Reader
	partial []byte
}

var _ io.Reader = (*lineReader)(nil)

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// Read accumulates bytes into the pending buffer until a terminator
// arrives, then drains the buffer. Without a terminator it reports EOF
// so the caller retries once the file grows.
func (l *lineReader) Read(b []byte) (int, error) {
	data, err := l.r.ReadBytes('\n')
	l.partial = append(l.partial, data...)
	if err != nil {
		return 0, io.EOF
	}
	n := copy(b, l.partial)
	l.partial = l.partial[:copy(l.partial, l.partial[n:])]
	return n, nil
}
