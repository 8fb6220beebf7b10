package linerev

import (
	"io"
	"os"
)

// Kind tells where the text of a source comes from.
type Kind int

const (
	// Pipe is the standard input of the process.
	Pipe Kind = iota
	// File is a file opened for reading.
	File
)

func (k Kind) String() string {
	switch k {
	case Pipe:
		return "pipe"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Source is one origin of text for one dispatch. Sources are consumed once.
type Source struct {
	Kind Kind
	Name string
	R    io.Reader
	c    io.Closer
}

// PipeSource wraps a standard input stream. Closing it does not close r.
func PipeSource(r io.Reader) Source {
	return Source{Kind: Pipe, Name: "-", R: r}
}

// Open opens an existing file strictly for reading; it never creates,
// truncates or appends. Failures are returned as *OpenError.
func Open(path string) (Source, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return Source{}, newOpenError(path, err)
	}
	return Source{Kind: File, Name: path, R: f, c: f}, nil
}

// Close releases the underlying file handle, if any.
func (s Source) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}
