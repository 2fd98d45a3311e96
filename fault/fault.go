/*
Package fault defines the fatal error taxonomy shared by the conversion
pipeline. Every fault aborts the run; non-fatal conditions travel through
the diag package instead.
*/
package fault

import "fmt"

// Configuration reports contradictory or invalid geometry or policy input.
type Configuration struct {
	Reason string
}

func (e *Configuration) Error() string {
	return "configuration: " + e.Reason
}

// Configurationf builds a Configuration from a format string.
func Configurationf(format string, args ...interface{}) *Configuration {
	return &Configuration{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedTransform reports a flipped or rotated tile placement, which
// has no representation in the cartridge map.
type UnsupportedTransform struct {
	Layer string
	X, Y  int
}

func (e *UnsupportedTransform) Error() string {
	return fmt.Sprintf("layer %q: flipped or rotated tile at (%d,%d) cannot be represented", e.Layer, e.X, e.Y)
}

// OverlapConflict reports graphics and map data both claiming the shared
// storage region under the error policy.
type OverlapConflict struct {
	GfxRows int // graphics rows past the shared boundary
	MapRows int // map rows past the shared boundary
}

func (e *OverlapConflict) Error() string {
	return fmt.Sprintf("shared region claimed by %d graphics row(s) and %d map row(s); pick the map or sprite overlap policy", e.GfxRows, e.MapRows)
}

// ResourceLoad reports a missing or corrupt project file or image.
type ResourceLoad struct {
	Path string
	Err  error
}

func (e *ResourceLoad) Error() string {
	return "load " + e.Path + ": " + e.Err.Error()
}

func (e *ResourceLoad) Unwrap() error {
	return e.Err
}
