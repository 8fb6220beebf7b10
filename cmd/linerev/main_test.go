package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/miku/linerev"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func testStreams(stdin string) (linerev.Streams, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return linerev.Streams{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()
	streams, stdout, stderr := testStreams("abc\ndef\n")

	status, err := run(streams, nil)

	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, "cba\nfed\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_MissingThenExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	existing := filepath.Join(dir, "xy")
	require.NoError(t, os.WriteFile(existing, []byte("xy\n"), 0644))
	missing := filepath.Join(dir, "missing")
	streams, stdout, stderr := testStreams("")

	status, err := run(streams, []string{missing, existing})

	require.NoError(t, err)
	require.Equal(t, int(syscall.ENOENT), status)
	require.Equal(t, "yx", stdout.String())
	require.Equal(t, "open "+missing+": no such file or directory\n", stderr.String())
}

func TestRun_DoubleDashEndsFlags(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "-v")
	require.NoError(t, os.WriteFile(path, []byte("ab\n"), 0644))
	streams, stdout, _ := testStreams("")

	status, err := run(streams, []string{"--", path})

	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, "ba", stdout.String())
}

func TestRun_Report(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	reportFile := filepath.Join(dir, "report.json")
	missing := filepath.Join(dir, "missing")
	streams, stdout, _ := testStreams("")

	status, err := run(streams, []string{"-report", reportFile, missing})

	require.NoError(t, err)
	require.Equal(t, int(syscall.ENOENT), status)
	require.Empty(t, stdout.String())

	b, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	var report linerev.Report
	require.NoError(t, json.Unmarshal(b, &report))
	require.Equal(t, status, report.ExitStatus)
	require.Len(t, report.Sources, 1)
	require.Equal(t, "failed", report.Sources[0].Status)
}

func TestRun_Version(t *testing.T) {
	t.Parallel()
	streams, stdout, _ := testStreams("")

	status, err := run(streams, []string{"-version"})

	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, linerev.Version+"\n", stdout.String())
}

func TestRun_BadFlag(t *testing.T) {
	t.Parallel()
	streams, stdout, stderr := testStreams("")

	status, err := run(streams, []string{"-nope"})

	require.Error(t, err)
	require.IsType(t, &usageError{}, err)
	require.Equal(t, 2, status)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "Usage: linerev")
}

func TestRun_InvalidText(t *testing.T) {
	t.Parallel()
	streams, _, _ := testStreams("\xff\n")

	_, err := run(streams, nil)

	var ioErr *linerev.IoError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, linerev.ErrInvalidText)
}
