package curveaxis

import "time"

// DefaultMinZoom is the smallest window an [Axis] can be zoomed to.
const DefaultMinZoom = 0.001

// Axis owns the zoom window of one renderer. The window is expressed as
// positions on the whole axis: Start=0, End=1 shows everything.
type Axis struct {
	// MinZoom is the smallest allowed End−Start.
	MinZoom float64

	start    float64
	end      float64
	inversed bool
	renderer AxisRenderer
	onZoom   []func(start, end float64)
}

// NewAxis returns an axis showing its whole range and binds r to it.
func NewAxis(r AxisRenderer) *Axis {
	a := &Axis{
		MinZoom:  DefaultMinZoom,
		start:    0,
		end:      1,
		renderer: r,
	}
	r.setAxis(a)
	return a
}

func (a *Axis) Renderer() AxisRenderer { return a.renderer }
func (a *Axis) Start() float64         { return a.start }
func (a *Axis) End() float64           { return a.end }
func (a *Axis) Inversed() bool         { return a.inversed }

// SetInversed flips the direction in which the axis runs.
func (a *Axis) SetInversed(inversed bool) {
	if a.inversed == inversed {
		return
	}
	a.inversed = inversed
	a.notify()
}

// OnZoom registers fn to be called after every change of the window.
func (a *Axis) OnZoom(fn func(start, end float64)) {
	a.onZoom = append(a.onZoom, fn)
}

// Zoom sets the window to [start, end], clamped to [0, 1] and to a span of at
// least MinZoom. There is no animation driver, so the window is applied
// immediately whatever the duration; a duration of 0 requests exactly that.
func (a *Axis) Zoom(start, end float64, duration time.Duration) {
	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, 1)
	if minZoom := min(max(a.MinZoom, 0), 1); end-start < minZoom {
		mid := (start + end) / 2
		start = mid - minZoom/2
		end = mid + minZoom/2
		if start < 0 {
			start, end = 0, minZoom
		} else if end > 1 {
			start, end = 1-minZoom, 1
		}
	}
	if start == a.start && end == a.end {
		return
	}
	Logger().Debug("axis zoom", "start", start, "end", end, "duration", duration)
	a.start = start
	a.end = end
	a.notify()
}

func (a *Axis) notify() {
	for _, fn := range a.onZoom {
		fn(a.start, a.end)
	}
}
