package linerev

import (
	"errors"
	"fmt"
	"log"
)

// Runner processes a list of paths, or standard input, if there are none.
type Runner struct {
	Broker     *Broker
	Dispatcher *Dispatcher
	Report     *Report // optional, filled during Run
}

// NewRunner sets up a runner over the given streams, reversing lines.
func NewRunner(s Streams) *Runner {
	return &Runner{
		Broker:     NewBroker(s),
		Dispatcher: NewDispatcher(),
	}
}

// Run processes all paths in order. Paths that cannot be opened are reported
// on the error stream and skipped; status is the code of the last such failure,
// or zero. A non-nil error is fatal, the output may be incomplete.
func (r *Runner) Run(paths []string) (status int, err error) {
	sink := r.Broker.Sink()
	if len(paths) == 0 {
		stat, err := r.Dispatcher.Feed(r.Broker.Input(), sink)
		if err != nil {
			return 1, err
		}
		r.Report.ok(stat)
		return r.finish(0)
	}
	for _, path := range paths {
		src, err := Open(path)
		if err != nil {
			var oerr *OpenError
			if !errors.As(err, &oerr) {
				return 1, err
			}
			status = oerr.Code
			r.Report.failed(oerr)
			if _, werr := fmt.Fprintf(r.Broker.Errors(), "%s\n", oerr); werr != nil && r.Dispatcher.Verbose {
				log.Printf("linerev: cannot report error: %v", werr)
			}
			continue
		}
		stat, err := r.Dispatcher.Feed(src, sink)
		if err != nil {
			return 1, err
		}
		r.Report.ok(stat)
	}
	return r.finish(status)
}

func (r *Runner) finish(status int) (int, error) {
	r.Report.exit(status)
	if err := r.Broker.Release(); err != nil {
		return 1, &IoError{Op: "write", Name: "-", Err: err}
	}
	return status, nil
}
