package linerev

import (
	"bufio"
	"io"
)

// Sink is the single output of a run. All sources write to the same sink, in
// order.
type Sink struct {
	bw      *bufio.Writer
	written int64
}

// NewSink buffers writes to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{bw: bufio.NewWriter(w)}
}

// Write writes all of p or returns an error.
func (s *Sink) Write(p []byte) error {
	n, err := s.bw.Write(p)
	s.written += int64(n)
	return err
}

// Flush pushes buffered bytes to the underlying writer.
func (s *Sink) Flush() error {
	return s.bw.Flush()
}

// Written returns the number of bytes accepted so far.
func (s *Sink) Written() int64 {
	return s.written
}
