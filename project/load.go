package project

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/fault"
	"github.com/picocart/picocart/palette"
)

// Load reads and decodes a project file.
func Load(path string) (*Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &fault.ResourceLoad{Path: path, Err: err}
	}
	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, &fault.ResourceLoad{Path: path, Err: err}
	}
	if len(p.Levels) == 0 {
		return nil, &fault.ResourceLoad{Path: path, Err: errors.New("project has no levels")}
	}
	return &p, nil
}

// TransparentIndex reads the optional custom field naming the palette
// index treated as transparent. Absent means 0; anything outside the
// palette is coerced to 0 with a diagnostic.
func (p *Project) TransparentIndex(rec *diag.Recorder) int {
	raw, ok := p.Values["transparent"]
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v >= palette.Size {
		rec.Warnf(diag.CodeColorCoerced, "transparent index %q outside the palette, using 0", raw)
		return 0
	}
	return v
}
