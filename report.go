package linerev

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// SourceReport is the outcome for a single source.
type SourceReport struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	BytesIn  int64  `json:"bytes_in"`
	BytesOut int64  `json:"bytes_out"`
	Code     int    `json:"code,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report summarizes a run. A nil *Report ignores all updates.
type Report struct {
	Version    string         `json:"version"`
	Sources    []SourceReport `json:"sources"`
	ExitStatus int            `json:"exit_status"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Version: Version, Sources: []SourceReport{}}
}

func (r *Report) ok(s Stat) {
	if r == nil {
		return
	}
	r.Sources = append(r.Sources, SourceReport{
		Name:     s.Name,
		Kind:     s.Kind.String(),
		Status:   "ok",
		BytesIn:  s.In,
		BytesOut: s.Out,
	})
}

func (r *Report) failed(e *OpenError) {
	if r == nil {
		return
	}
	r.Sources = append(r.Sources, SourceReport{
		Name:   e.Path,
		Kind:   File.String(),
		Status: "failed",
		Code:   e.Code,
		Error:  e.Error(),
	})
}

func (r *Report) exit(status int) {
	if r == nil {
		return
	}
	r.ExitStatus = status
}

// WriteTo writes the report as indented JSON.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return 0, err
	}
	b = append(b, '\n')
	n, err := w.Write(b)
	return int64(n), err
}
