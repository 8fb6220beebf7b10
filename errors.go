package linerev

import (
	"errors"
	"fmt"
	"syscall"
)

// OpenError records a failure to open a path. It is recoverable: the run
// reports it and moves on to the next path.
type OpenError struct {
	Path string
	Code int // platform error code, used as exit status
	Err  error
}

// Error returns the default text of the underlying platform error.
func (e *OpenError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// newOpenError extracts the errno from err, or uses 1 if there is none.
func newOpenError(path string, err error) *OpenError {
	code := 1
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		code = int(errno)
	}
	return &OpenError{Path: path, Code: code, Err: err}
}

// IoError is a failure to read an opened source, to decode it or to write to
// the sink. It aborts the whole run.
type IoError struct {
	Op   string // read, transform or write
	Name string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *IoError) Unwrap() error {
	return e.Err
}
