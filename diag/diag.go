/*
Package diag collects the non-fatal diagnostics the conversion pipeline
emits. Components record conditions instead of printing them, so callers
and tests can assert on what happened while the same information reaches
the log.
*/
package diag

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Diagnostic codes recorded by the pipeline.
const (
	CodeLevelClipped   = "level-clipped"
	CodeImageClipped   = "image-clipped"
	CodeTileOffMap     = "tile-off-map"
	CodeTileOffSheet   = "tile-off-sheet"
	CodeTagsTruncated  = "tags-truncated"
	CodeColorCoerced   = "color-coerced"
	CodePaletteReduced = "palette-reduced"
)

// Diagnostic is one non-fatal condition met during a run.
type Diagnostic struct {
	Code    string
	Message string
}

// Recorder accumulates diagnostics and mirrors them to a logger.
// Construct one per run.
type Recorder struct {
	logger hclog.Logger
	diags  []Diagnostic
}

// NewRecorder returns a Recorder logging through logger. A nil logger
// records silently.
func NewRecorder(logger hclog.Logger) *Recorder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Recorder{logger: logger}
}

// Warnf records a diagnostic under code.
func (r *Recorder) Warnf(code, format string, args ...interface{}) {
	d := Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)}
	r.diags = append(r.diags, d)
	r.logger.Warn(d.Message, "code", code)
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diags...)
}

// Has reports whether any diagnostic was recorded under code.
func (r *Recorder) Has(code string) bool {
	for _, d := range r.diags {
		if d.Code == code {
			return true
		}
	}
	return false
}
