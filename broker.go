package linerev

import (
	"io"
	"os"
)

// Streams are the process wide streams, bound once at start.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Std returns the streams of the current process.
func Std() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Broker hands out the resources a dispatch needs. The sink is acquired once
// in NewBroker and every call to Sink returns that same value; it is released
// once with Release.
type Broker struct {
	streams Streams
	sink    *Sink
}

// NewBroker creates a broker over the given streams.
func NewBroker(s Streams) *Broker {
	return &Broker{streams: s, sink: NewSink(s.Stdout)}
}

// Sink returns the shared output.
func (b *Broker) Sink() *Sink {
	return b.sink
}

// Input returns standard input as a source.
func (b *Broker) Input() Source {
	return PipeSource(b.streams.Stdin)
}

// Errors returns the error reporting stream. It is not buffered.
func (b *Broker) Errors() io.Writer {
	return b.streams.Stderr
}

// Release flushes the sink.
func (b *Broker) Release() error {
	return b.sink.Flush()
}
