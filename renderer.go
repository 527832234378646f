package curveaxis

// AxisRenderer converts between axis positions and renderer space and lays
// out the visual elements of an axis.
//
// Positions come in two flavors. Axis positions run from 0 to 1 over the
// whole axis. Global positions run from 0 to 1 over the visible window of
// the axis; they are what gets mapped onto the screen. Methods taking a
// doNotFix argument treat their positions as global when it is true and as
// axis positions otherwise.
//
// The update methods take a range [position, endPosition). Passing the same
// value twice updates an element at a single position. They set the
// element's geometry and then hide it if the position falls outside the
// element's MinPosition and MaxPosition.
type AxisRenderer interface {
	// AxisLength returns the length of the axis in pixels.
	AxisLength() float64
	// PositionToPoint maps a position on this axis, and a position on the
	// other axis of the chart, to a point.
	PositionToPoint(position, other float64, doNotFix bool) Point
	// PointToPosition maps a point back to global positions. X is the
	// position on this axis, Y the one on the other axis.
	PointToPosition(pt Point) Point

	UpdateLabel(label *Label, position, endPosition float64, count int)
	UpdateGrid(grid *Grid, position, endPosition float64)
	UpdateTick(tick *Tick, position, endPosition float64, count int)
	UpdateFill(fill *Fill, position, endPosition float64)
	UpdateBullet(bullet *Bullet, position, endPosition float64)

	PositionTooltip(tooltip *Tooltip, position float64)
	UpdateTooltipBounds(tooltip *Tooltip)

	// Pan projects a pointer movement onto the axis, as a fraction of its
	// visible window.
	Pan(from, to Point) float64

	ToAxisPosition(position float64) float64
	ToGlobalPosition(position float64) float64
	ToggleVisibility(el Hider, position, minPosition, maxPosition float64)

	// Axis returns the axis the renderer is bound to, or nil.
	Axis() *Axis
	setAxis(a *Axis)
}

// visibilityEpsilon keeps elements sitting exactly on a window boundary from
// flickering.
const visibilityEpsilon = 0.0001

// rendererBase implements the window bookkeeping shared by all renderers.
type rendererBase struct {
	axis *Axis
}

func (r *rendererBase) Axis() *Axis      { return r.axis }
func (r *rendererBase) setAxis(a *Axis) { r.axis = a }

func (r *rendererBase) window() (start, end float64, inversed bool) {
	if r.axis == nil {
		return 0, 1, false
	}
	return r.axis.start, r.axis.end, r.axis.inversed
}

// ToAxisPosition converts a global position to an axis position.
func (r *rendererBase) ToAxisPosition(position float64) float64 {
	start, end, inversed := r.window()
	if inversed {
		return end - position*(end-start)
	}
	return start + position*(end-start)
}

// ToGlobalPosition converts an axis position to a global position.
func (r *rendererBase) ToGlobalPosition(position float64) float64 {
	start, end, inversed := r.window()
	if end == start {
		return 0
	}
	if inversed {
		return (end - position) / (end - start)
	}
	return (position - start) / (end - start)
}

// ToggleVisibility hides el if the axis position lies outside the part of
// the window delimited by minPosition and maxPosition.
func (r *rendererBase) ToggleVisibility(el Hider, position, minPosition, maxPosition float64) {
	start, end, _ := r.window()
	lo := start + (end-start)*(minPosition-visibilityEpsilon)
	hi := start + (end-start)*(maxPosition+visibilityEpsilon)
	el.SetHidden(position < lo || position > hi)
}

// Thumb turns pointer drags on an axis into symmetric zooms of its window.
// Points are in renderer space.
type Thumb struct {
	PanSensitivity float64

	r         AxisRenderer
	down      Point
	dragging  bool
	downStart float64
	downEnd   float64
}

func NewThumb(r AxisRenderer) *Thumb {
	return &Thumb{PanSensitivity: 1, r: r}
}

// Down starts a drag, replacing any drag in progress.
func (th *Thumb) Down(pt Point) {
	a := th.r.Axis()
	if a == nil {
		return
	}
	th.down = pt
	th.dragging = true
	th.downStart = a.Start()
	th.downEnd = a.End()
}

func (th *Thumb) Move(pt Point) {
	a := th.r.Axis()
	if !th.dragging || a == nil {
		return
	}
	extra := th.r.Pan(pt, th.down) * min(1, th.downEnd-th.downStart) / 2 * th.PanSensitivity
	a.Zoom(th.downStart-extra, th.downEnd+extra, 0)
}

func (th *Thumb) Up() {
	th.dragging = false
}

func (th *Thumb) Dragging() bool { return th.dragging }
