package constellation

import "image/color"

// Canvas is the drawing surface a Field renders into.
// Alpha is passed separately from the color so backends can apply it the way
// their raster model expects.
type Canvas interface {
	Clear()
	FillCircle(x, y, radius float64, c color.RGBA, alpha float64)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64)
}

// Presenter is implemented by canvases that need an explicit flush after a
// frame has been drawn (e.g. a terminal screen).
type Presenter interface {
	Present()
}

// DrawOp identifies a recorded canvas call.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpCircle
	OpLine
)

// DrawCall is one recorded canvas call.
type DrawCall struct {
	Op     DrawOp
	X1, Y1 float64
	X2, Y2 float64 // Line end; zero for circles
	Size   float64 // Radius for circles, stroke width for lines
	Color  color.RGBA
	Alpha  float64
}

// Recorder is a Canvas that keeps every call made since the last Reset.
type Recorder struct {
	Calls []DrawCall
}

// Clear records a clear.
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear})
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(x, y, radius float64, c color.RGBA, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpCircle, X1: x, Y1: y, Size: radius, Color: c, Alpha: alpha})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Size: width, Color: c, Alpha: alpha})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
