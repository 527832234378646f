package curveaxis

// CurveYRenderer renders the axis perpendicular to a [CurveXRenderer]. A Y
// position is an offset across the X renderer's path: every query is
// answered by the X renderer, offsetting along the path's normal.
//
// The X renderer must have been laid out before any query is meaningful.
type CurveYRenderer struct {
	rendererBase

	// Length is the extent of the axis across the path, in the X renderer's
	// raw units.
	Length float64
	// AxisLocation is the Y position the X path runs through.
	AxisLocation float64
	// AxisPosition is the global X position at which the axis line is drawn.
	AxisPosition float64

	x     *CurveXRenderer
	path  BezPath
	owner *CurveChart
}

var _ AxisRenderer = (*CurveYRenderer)(nil)

// NewCurveYRenderer returns an additional Y renderer for x. The renderer
// returned by [NewCurveRenderers] remains the one whose Length widens x's
// layout.
func NewCurveYRenderer(x *CurveXRenderer) *CurveYRenderer {
	return &CurveYRenderer{x: x}
}

// XRenderer returns the X renderer this renderer is bound to.
func (r *CurveYRenderer) XRenderer() *CurveXRenderer { return r.x }

// AxisLength returns the length of the axis in pixels.
func (r *CurveYRenderer) AxisLength() float64 { return r.Length * r.x.scale }

// Path returns the axis line drawn by the last UpdateLayout.
func (r *CurveYRenderer) Path() BezPath { return r.path }

// UpdateLayout redraws the axis line across the ribbon at AxisPosition and,
// unless the owning chart is itself laying out, updates the chart's masks.
func (r *CurveYRenderer) UpdateLayout() {
	r.path = nil
	if len(r.x.points) >= 2 {
		r.path = Line{
			r.x.pointAt(r.AxisPosition, 0, true, r),
			r.x.pointAt(r.AxisPosition, 1, true, r),
		}.Path()
	}
	if r.owner != nil && !r.owner.layingOut {
		r.owner.updateMasks()
	}
}

// PositionToPoint maps a Y position and an X position to a point.
func (r *CurveYRenderer) PositionToPoint(position, positionX float64, doNotFix bool) Point {
	return r.x.pointAt(positionX, position, doNotFix, r)
}

// PointToPosition returns global positions with this renderer's position in
// X and the X renderer's in Y.
func (r *CurveYRenderer) PointToPosition(pt Point) Point {
	p := r.x.positionFor(pt, r)
	return Point{X: p.Y, Y: p.X}
}

// GetPoints is [CurveXRenderer.GetPoints] with this renderer's settings.
func (r *CurveYRenderer) GetPoints(x0, y0, x1, y1 float64) []Point {
	return r.x.pointsFor(x0, y0, x1, y1, r)
}

// UpdateGrid draws a line that follows the whole path at a fixed Y
// position.
func (r *CurveYRenderer) UpdateGrid(g *Grid, position, endPosition float64) {
	position = locate(position, endPosition, g.Location)
	gp := r.ToGlobalPosition(position)
	g.Path = Polyline(dedupe(r.GetPoints(0, gp, 1, gp), minSampleSpacing), false)
	r.ToggleVisibility(g, position, g.MinPosition, g.MaxPosition)
}

// dedupe drops points closer than spacing to the previously kept one.
func dedupe(pts []Point, spacing float64) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := []Point{pts[0]}
	for _, pt := range pts[1:] {
		if out[len(out)-1].Distance(pt) >= spacing {
			out = append(out, pt)
		}
	}
	return out
}

// tangent returns the unit vector along the path at the axis line.
func (r *CurveYRenderer) tangent() Vec2 {
	if len(r.x.points) < 2 {
		return Vec(1, 0)
	}
	_, angle := r.x.at(r.AxisPosition)
	return VecFromAngle((angle - 90) * radians)
}

func (r *CurveYRenderer) UpdateTick(t *Tick, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, t.Location, t.MultiLocation))
	p := r.x.pointAt(r.AxisPosition, r.ToGlobalPosition(position), true, r)
	length := t.Length
	if t.Inside {
		length = -length
	}
	t.Path = nil
	if len(r.x.points) >= 2 {
		t.Path = Line{p, p.Translate(r.tangent().Mul(-length))}.Path()
	}
	r.ToggleVisibility(t, position, t.MinPosition, t.MaxPosition)
}

func (r *CurveYRenderer) UpdateLabel(l *Label, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, l.Location, l.MultiLocation))
	p := r.x.pointAt(r.AxisPosition, r.ToGlobalPosition(position), true, r)
	offset := l.Offset
	if l.Inside {
		offset = -offset
	}
	if offset != 0 && len(r.x.points) >= 2 {
		p = p.Translate(r.tangent().Mul(-offset))
	}
	l.place(p)
	l.Rotation = 0
	if l.FollowPath && len(r.x.points) >= 2 {
		_, angle := r.x.at(r.AxisPosition)
		l.Rotation = angle - 90
	}
	r.ToggleVisibility(l, position, l.MinPosition, l.MaxPosition)
}

// UpdateFill outlines the band between two Y positions along the whole path.
func (r *CurveYRenderer) UpdateFill(f *Fill, position, endPosition float64) {
	g0 := clamp01(r.ToGlobalPosition(position))
	g1 := clamp01(r.ToGlobalPosition(endPosition))
	f.Path = Polyline(r.GetPoints(0, g0, 1, g1), true)
	r.ToggleVisibility(f, position, f.MinPosition, f.MaxPosition)
}

func (r *CurveYRenderer) UpdateBullet(b *Bullet, position, endPosition float64) {
	position = locate(position, endPosition, b.Location)
	b.place(r.x.pointAt(r.AxisPosition, r.ToGlobalPosition(position), true, r))
	r.ToggleVisibility(b, position, b.MinPosition, b.MaxPosition)
}

func (r *CurveYRenderer) PositionTooltip(t *Tooltip, position float64) {
	gp := r.ToGlobalPosition(position)
	t.PointTo = r.x.pointAt(r.AxisPosition, gp, true, r)
	t.Hidden = gp < 0 || gp > 1
}

func (r *CurveYRenderer) UpdateTooltipBounds(t *Tooltip) {
	t.Bounds = r.x.bounds()
}

// Pan returns the change in Y position between two points.
func (r *CurveYRenderer) Pan(from, to Point) float64 {
	return r.PointToPosition(to).X - r.PointToPosition(from).X
}
