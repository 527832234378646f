package curveaxis

// XRenderer renders a horizontal axis along the bottom edge of a plot area
// whose origin is its top left corner.
type XRenderer struct {
	rendererBase
	plot Size
}

var _ AxisRenderer = (*XRenderer)(nil)

func NewXRenderer(plot Size) *XRenderer {
	return &XRenderer{plot: plot}
}

func (r *XRenderer) SetPlotSize(sz Size) { r.plot = sz }
func (r *XRenderer) AxisLength() float64 { return r.plot.Width }

// PositionToPoint maps position to x and other, a fraction of the plot
// height measured from the bottom, to y.
func (r *XRenderer) PositionToPoint(position, other float64, doNotFix bool) Point {
	if !doNotFix {
		position = r.ToGlobalPosition(position)
	}
	return Pt(position*r.plot.Width, (1-other)*r.plot.Height)
}

func (r *XRenderer) PointToPosition(pt Point) Point {
	var out Point
	if r.plot.Width != 0 {
		out.X = pt.X / r.plot.Width
	}
	if r.plot.Height != 0 {
		out.Y = 1 - pt.Y/r.plot.Height
	}
	return out
}

func (r *XRenderer) x(position float64) float64 {
	return r.ToGlobalPosition(position) * r.plot.Width
}

func (r *XRenderer) UpdateGrid(g *Grid, position, endPosition float64) {
	position = locate(position, endPosition, g.Location)
	x := r.x(position)
	g.Path = Line{Pt(x, 0), Pt(x, r.plot.Height)}.Path()
	r.ToggleVisibility(g, position, g.MinPosition, g.MaxPosition)
}

func (r *XRenderer) UpdateTick(t *Tick, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, t.Location, t.MultiLocation))
	x := r.x(position)
	h := r.plot.Height
	length := t.Length
	if t.Inside {
		length = -length
	}
	t.Path = Line{Pt(x, h), Pt(x, h+length)}.Path()
	r.ToggleVisibility(t, position, t.MinPosition, t.MaxPosition)
}

func (r *XRenderer) UpdateLabel(l *Label, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, l.Location, l.MultiLocation))
	offset := l.Offset
	if l.Inside {
		offset = -offset
	}
	l.place(Pt(r.x(position), r.plot.Height+offset))
	l.Rotation = 0
	r.ToggleVisibility(l, position, l.MinPosition, l.MaxPosition)
}

func (r *XRenderer) UpdateFill(f *Fill, position, endPosition float64) {
	x0 := r.x(position)
	x1 := r.x(endPosition)
	f.Path = NewRectFromPoints(Pt(x0, 0), Pt(x1, r.plot.Height)).Path()
	r.ToggleVisibility(f, position, f.MinPosition, f.MaxPosition)
}

func (r *XRenderer) UpdateBullet(b *Bullet, position, endPosition float64) {
	position = locate(position, endPosition, b.Location)
	b.place(Pt(r.x(position), r.plot.Height))
	r.ToggleVisibility(b, position, b.MinPosition, b.MaxPosition)
}

func (r *XRenderer) PositionTooltip(t *Tooltip, position float64) {
	g := r.ToGlobalPosition(position)
	t.PointTo = Pt(g*r.plot.Width, r.plot.Height)
	t.Hidden = g < 0 || g > 1
}

func (r *XRenderer) UpdateTooltipBounds(t *Tooltip) {
	t.Bounds = Rect{X0: 0, Y0: r.plot.Height, X1: r.plot.Width, Y1: r.plot.Height}
}

func (r *XRenderer) Pan(from, to Point) float64 {
	if r.plot.Width == 0 {
		return 0
	}
	return (to.X - from.X) / r.plot.Width
}

// YRenderer renders a vertical axis along the left edge of a plot area
// whose origin is its top left corner. Positions grow upwards.
type YRenderer struct {
	rendererBase
	plot Size
}

var _ AxisRenderer = (*YRenderer)(nil)

func NewYRenderer(plot Size) *YRenderer {
	return &YRenderer{plot: plot}
}

func (r *YRenderer) SetPlotSize(sz Size) { r.plot = sz }
func (r *YRenderer) AxisLength() float64 { return r.plot.Height }

// PositionToPoint maps position to y and other, a fraction of the plot
// width, to x.
func (r *YRenderer) PositionToPoint(position, other float64, doNotFix bool) Point {
	if !doNotFix {
		position = r.ToGlobalPosition(position)
	}
	return Pt(other*r.plot.Width, (1-position)*r.plot.Height)
}

func (r *YRenderer) PointToPosition(pt Point) Point {
	var out Point
	if r.plot.Height != 0 {
		out.X = 1 - pt.Y/r.plot.Height
	}
	if r.plot.Width != 0 {
		out.Y = pt.X / r.plot.Width
	}
	return out
}

func (r *YRenderer) y(position float64) float64 {
	return (1 - r.ToGlobalPosition(position)) * r.plot.Height
}

func (r *YRenderer) UpdateGrid(g *Grid, position, endPosition float64) {
	position = locate(position, endPosition, g.Location)
	y := r.y(position)
	g.Path = Line{Pt(0, y), Pt(r.plot.Width, y)}.Path()
	r.ToggleVisibility(g, position, g.MinPosition, g.MaxPosition)
}

func (r *YRenderer) UpdateTick(t *Tick, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, t.Location, t.MultiLocation))
	y := r.y(position)
	length := t.Length
	if t.Inside {
		length = -length
	}
	t.Path = Line{Pt(0, y), Pt(-length, y)}.Path()
	r.ToggleVisibility(t, position, t.MinPosition, t.MaxPosition)
}

func (r *YRenderer) UpdateLabel(l *Label, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, l.Location, l.MultiLocation))
	offset := l.Offset
	if l.Inside {
		offset = -offset
	}
	l.place(Pt(-offset, r.y(position)))
	l.Rotation = 0
	r.ToggleVisibility(l, position, l.MinPosition, l.MaxPosition)
}

func (r *YRenderer) UpdateFill(f *Fill, position, endPosition float64) {
	y0 := r.y(position)
	y1 := r.y(endPosition)
	f.Path = NewRectFromPoints(Pt(0, y0), Pt(r.plot.Width, y1)).Path()
	r.ToggleVisibility(f, position, f.MinPosition, f.MaxPosition)
}

func (r *YRenderer) UpdateBullet(b *Bullet, position, endPosition float64) {
	position = locate(position, endPosition, b.Location)
	b.place(Pt(0, r.y(position)))
	r.ToggleVisibility(b, position, b.MinPosition, b.MaxPosition)
}

func (r *YRenderer) PositionTooltip(t *Tooltip, position float64) {
	g := r.ToGlobalPosition(position)
	t.PointTo = Pt(0, (1-g)*r.plot.Height)
	t.Hidden = g < 0 || g > 1
}

func (r *YRenderer) UpdateTooltipBounds(t *Tooltip) {
	t.Bounds = Rect{X0: 0, Y0: 0, X1: 0, Y1: r.plot.Height}
}

func (r *YRenderer) Pan(from, to Point) float64 {
	if r.plot.Height == 0 {
		return 0
	}
	return (from.Y - to.Y) / r.plot.Height
}
