// Reverses the characters of every line, keeps the order of lines.
//
//     $ printf 'abc\ndef\n' | linerev
//     cba
//     fed
//
//     $ linerev missing.txt notes.txt
//     open missing.txt: no such file or directory
//     ...
//
// Exit status is the error code of the last file that could not be opened.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/miku/linerev"
)

// usageError signals bad command line flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func main() {
	status, err := run(linerev.Std(), os.Args[1:])
	if err != nil {
		if _, ok := err.(*usageError); ok {
			os.Exit(2)
		}
		log.Fatal(err)
	}
	os.Exit(status)
}

// run parses args and processes every path. It returns the exit status for
// the process, or a fatal error.
func run(streams linerev.Streams, args []string) (int, error) {
	fs := flag.NewFlagSet("linerev", flag.ContinueOnError)
	fs.SetOutput(streams.Stderr)
	var (
		verbose     = fs.Bool("v", false, "log a line per processed source")
		reportFile  = fs.String("report", "", "write a JSON summary of the run to this file")
		showVersion = fs.Bool("version", false, "show version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: linerev [options] [PATH...]\n\n")
		fmt.Fprintf(fs.Output(), "Reverses each line of stdin or the given files.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 2, &usageError{err: err}
	}
	if *showVersion {
		fmt.Fprintln(streams.Stdout, linerev.Version)
		return 0, nil
	}
	runner := linerev.NewRunner(streams)
	runner.Dispatcher.Verbose = *verbose
	if *reportFile != "" {
		runner.Report = linerev.NewReport()
	}
	status, err := runner.Run(fs.Args())
	if err != nil {
		return status, err
	}
	if runner.Report != nil {
		if err := writeReport(*reportFile, runner.Report); err != nil {
			return 1, err
		}
	}
	return status, nil
}

func writeReport(filename string, r io.WriterTo) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
