package linerev

import (
	"io"
	"log"
)

// Stat describes a single dispatch.
type Stat struct {
	Name string
	Kind Kind
	In   int64 // bytes read
	Out  int64 // bytes written
}

// Dispatcher reads a source completely, transforms it and writes the result
// to a sink.
type Dispatcher struct {
	F       TransformerFunc
	Verbose bool
}

// New is a preferred way to create a new dispatcher.
var New = NewDispatcher

// NewDispatcher creates a dispatcher, that reverses lines.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{F: Reverse}
}

// Feed runs read, transform and write for one source and closes it. Only the
// pipe gets a trailing newline appended, file contents are written as they
// come out of the transformer. All returned errors are of type *IoError.
func (d *Dispatcher) Feed(src Source, sink *Sink) (Stat, error) {
	stat := Stat{Name: src.Name, Kind: src.Kind}
	b, err := io.ReadAll(src.R)
	if cerr := src.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return stat, &IoError{Op: "read", Name: src.Name, Err: err}
	}
	stat.In = int64(len(b))
	f := d.F
	if f == nil {
		f = Reverse
	}
	result, err := f(b)
	if err != nil {
		return stat, &IoError{Op: "transform", Name: src.Name, Err: err}
	}
	if src.Kind == Pipe {
		result = append(result, Terminator)
	}
	stat.Out = int64(len(result))
	if err := sink.Write(result); err != nil {
		return stat, &IoError{Op: "write", Name: src.Name, Err: err}
	}
	if err := sink.Flush(); err != nil {
		return stat, &IoError{Op: "write", Name: src.Name, Err: err}
	}
	if d.Verbose {
		log.Printf("linerev: %s: %d bytes in, %d bytes out", stat.Name, stat.In, stat.Out)
	}
	return stat, nil
}
