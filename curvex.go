package curveaxis

import (
	"math"
	"slices"
)

// minSampleSpacing is the smallest distance, in pixels, between two
// consecutive points of the resampled path.
const minSampleSpacing = 0.5

// sample is a point of the resampled path together with its global position.
type sample struct {
	pt  Point
	pos float64
}

// CurveXRenderer renders an axis that follows an arbitrary polyline.
//
// The polyline is given in raw units by SetPoints. UpdateLayout fits it,
// widened by the perpendicular excursion of the paired [CurveYRenderer],
// into the plot area, and all queries afterwards work in renderer space: the
// fitted path centered on the origin. Queries only see the state of the last
// UpdateLayout.
//
// Inputs that do not describe a path (fewer than two points, zero length)
// are not errors. Queries then return zero points, zero angles and index 0.
type CurveXRenderer struct {
	rendererBase

	y *CurveYRenderer

	input     []Point
	autoScale bool
	plot      Size

	// Layout state, rebuilt wholesale by UpdateLayout.
	points    []Point
	distances []float64
	positions []float64
	samples   []sample
	length    float64
	scale     float64
	center    Point
	transform Affine
	measured  Size
	path      BezPath
	version   int
}

var _ AxisRenderer = (*CurveXRenderer)(nil)

// NewCurveRenderers returns a curve X renderer and the Y renderer paired
// with it. Neither can be used without the other.
func NewCurveRenderers() (*CurveXRenderer, *CurveYRenderer) {
	x := &CurveXRenderer{
		autoScale: true,
		scale:     1,
		transform: Identity,
	}
	y := &CurveYRenderer{x: x}
	x.y = y
	return x, y
}

// SetPoints replaces the control points. The slice is copied. The change
// takes effect on the next UpdateLayout.
func (r *CurveXRenderer) SetPoints(pts []Point) {
	r.input = slices.Clone(pts)
}

// SetAutoScale controls whether UpdateLayout scales the path to fit the
// plot area. Shapes that lay out their points in pixels turn it off.
func (r *CurveXRenderer) SetAutoScale(auto bool) { r.autoScale = auto }

func (r *CurveXRenderer) SetPlotSize(sz Size) { r.plot = sz }

// YRenderer returns the paired Y renderer.
func (r *CurveXRenderer) YRenderer() *CurveYRenderer { return r.y }

// UpdateLayout recomputes the path's cumulative distances and positions,
// its scale and center, the axis line and the resampled path used for
// inverse mapping.
func (r *CurveXRenderer) UpdateLayout() {
	pts := slices.Clone(r.input)
	n := len(pts)

	distances := make([]float64, n)
	positions := make([]float64, n)
	length := 0.0
	for i := 1; i < n; i++ {
		length += pts[i].Distance(pts[i-1])
		distances[i] = length
	}
	if length > 0 {
		for i := range pts {
			positions[i] = distances[i] / length
		}
	}

	excursion := r.y.Length
	box := BoundingBox(pts).Inflate(excursion, excursion)
	scale := 1.0
	if r.autoScale {
		scale = fitScale(box.Size(), r.plot)
	}
	center := box.Center()

	r.points = pts
	r.distances = distances
	r.positions = positions
	r.length = length
	r.scale = scale
	r.center = center
	r.transform = Translate(Vec2(center).Negate()).ThenScale(scale, scale)
	r.measured = Sz(box.Width()*scale, box.Height()*scale)

	r.path = nil
	if n > 0 {
		px := make([]Point, n)
		for i, pt := range pts {
			px[i] = pt.Transform(r.transform)
		}
		r.path = Polyline(px, false)
	}

	r.resample()
	r.version++

	if n < 2 || !(length > 0) {
		Logger().Debug("degenerate curve axis layout", "points", n, "length", length)
	}
}

// fitScale returns the uniform scale that fits box into plot.
func fitScale(box, plot Size) float64 {
	switch {
	case box.Width > 0 && box.Height > 0:
		return min(plot.Width/box.Width, plot.Height/box.Height)
	case box.Width > 0:
		return plot.Width / box.Width
	case box.Height > 0:
		return plot.Height / box.Height
	default:
		return 1
	}
}

// resample walks every segment in pixel steps. Samples closer than
// minSampleSpacing to their predecessor are dropped, except for the path's
// end point, which replaces its predecessor instead.
func (r *CurveXRenderer) resample() {
	r.samples = nil
	n := len(r.points)
	if n < 2 || !(r.length > 0) {
		return
	}
	var samples []sample
	push := func(pt Point, pos float64) {
		if len(samples) > 0 && samples[len(samples)-1].pt.Distance(pt) < minSampleSpacing {
			return
		}
		samples = append(samples, sample{pt, pos})
	}
	for i := 1; i < n; i++ {
		p0, p1 := r.points[i-1], r.points[i]
		seg := r.distances[i] - r.distances[i-1]
		pixels := seg * r.scale
		if math.IsInf(pixels, 0) || math.IsNaN(pixels) {
			continue
		}
		for j := 0.0; j < pixels; j++ {
			t := j / pixels
			push(p0.Lerp(p1, t).Transform(r.transform), (r.distances[i-1]+seg*t)/r.length)
		}
	}
	end := sample{r.points[n-1].Transform(r.transform), 1}
	if k := len(samples) - 1; k > 0 && samples[k].pt.Distance(end.pt) < minSampleSpacing {
		samples[k] = end
	} else {
		samples = append(samples, end)
	}
	r.samples = samples
}

// Points returns the control points of the last layout, in raw units.
func (r *CurveXRenderer) Points() []Point { return r.points }

// PointDistances returns, for every control point, the path length from the
// first control point, in raw units.
func (r *CurveXRenderer) PointDistances() []float64 { return r.distances }

// PointPositions returns every control point's distance as a fraction of the
// path length.
func (r *CurveXRenderer) PointPositions() []float64 { return r.positions }

// Samples returns the resampled path in renderer space.
func (r *CurveXRenderer) Samples() []Point {
	out := make([]Point, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.pt
	}
	return out
}

// RawLength returns the path length in raw units.
func (r *CurveXRenderer) RawLength() float64 { return r.length }

func (r *CurveXRenderer) Scale() float64 { return r.scale }

// Center returns the center of the raw bounding box, which maps to the
// origin of renderer space.
func (r *CurveXRenderer) Center() Point { return r.center }

// Transform returns the mapping from raw units to renderer space.
func (r *CurveXRenderer) Transform() Affine { return r.transform }

// MeasuredSize returns the size of the fitted bounding box.
func (r *CurveXRenderer) MeasuredSize() Size { return r.measured }

// Path returns the axis line.
func (r *CurveXRenderer) Path() BezPath { return r.path }

// LayoutVersion is incremented by every UpdateLayout. Dependents compare it
// to find out whether they must lay out again.
func (r *CurveXRenderer) LayoutVersion() int { return r.version }

// AxisLength returns the length of the fitted path in pixels.
func (r *CurveXRenderer) AxisLength() float64 { return r.length * r.scale }

// segmentAngle returns the direction of the segment ending at control point
// i, in degrees.
func (r *CurveXRenderer) segmentAngle(i int) float64 {
	return Angle(r.points[i-1], r.points[i])
}

// at returns the point at global position on the path, in raw units, and the
// normal angle there in degrees. Positions outside [0, 1] are clamped to the
// end points. The path must have at least two points.
func (r *CurveXRenderer) at(position float64) (Point, float64) {
	n := len(r.points)
	if position <= 0 || !(r.length > 0) {
		return r.points[0], r.segmentAngle(1) + 90
	}
	if position >= 1 {
		return r.points[n-1], r.segmentAngle(n-1) + 90
	}
	target := position * r.length
	for i := 1; i < n; i++ {
		if r.distances[i] >= target {
			d0 := r.distances[i-1]
			t := (target - d0) / (r.distances[i] - d0)
			return r.points[i-1].Lerp(r.points[i], t), r.segmentAngle(i) + 90
		}
	}
	return r.points[n-1], r.segmentAngle(n-1) + 90
}

// PositionToAngle returns the angle, in degrees, of the path's normal at
// the axis position. Labels and ticks use it to orient themselves.
func (r *CurveXRenderer) PositionToAngle(position float64) float64 {
	if len(r.points) < 2 {
		return 0
	}
	_, angle := r.at(r.ToGlobalPosition(position))
	return angle
}

// PositionToIndex returns the index of the control point at or before the
// axis position.
func (r *CurveXRenderer) PositionToIndex(position float64) int {
	n := len(r.points)
	if n == 0 || !(r.length > 0) {
		return 0
	}
	position = r.ToGlobalPosition(position)
	if position <= 0 {
		return 0
	}
	if position >= 1 {
		return n - 1
	}
	target := position * r.length
	for i := 1; i < n; i++ {
		if r.distances[i] > target {
			return i - 1
		}
	}
	return n - 1
}

// IndexToPosition returns the axis position of a control point. The index
// is clamped to the valid range.
func (r *CurveXRenderer) IndexToPosition(index int) float64 {
	n := len(r.positions)
	if n == 0 {
		return 0
	}
	index = min(max(index, 0), n-1)
	return r.ToAxisPosition(r.positions[index])
}

// PositionToPoint maps an X position and a Y position of the paired Y
// renderer to a point.
func (r *CurveXRenderer) PositionToPoint(position, positionY float64, doNotFix bool) Point {
	return r.pointAt(position, positionY, doNotFix, r.y)
}

func (r *CurveXRenderer) pointAt(position, positionY float64, doNotFix bool, yr *CurveYRenderer) Point {
	if len(r.points) < 2 {
		return Point{}
	}
	if !doNotFix {
		position = r.ToGlobalPosition(position)
		positionY = yr.ToGlobalPosition(positionY)
	}
	base, angle := r.at(position)
	pt := base.Transform(r.transform)
	offset := (positionY - yr.AxisLocation) * -yr.Length * r.scale
	if offset == 0 {
		return pt
	}
	return pt.Translate(VecFromAngle(angle * radians).Mul(offset))
}

// normal returns the unit normal at a global position, pointing away from
// the plot ribbon on the side of Y position 0.
func (r *CurveXRenderer) normal(position float64) Vec2 {
	if len(r.points) < 2 {
		return Vec(0, 1)
	}
	_, angle := r.at(position)
	return VecFromAngle(angle * radians)
}

// PointToPosition maps a point to global positions: X along the path and Y
// across it, in the paired Y renderer's terms.
//
// It searches the resampled path for the nearest sample, so its resolution
// is limited by the sample spacing. Near sharp corners the local tangent
// derived from the neighboring samples is unreliable and so is Y.
func (r *CurveXRenderer) PointToPosition(pt Point) Point {
	return r.positionFor(pt, r.y)
}

func (r *CurveXRenderer) positionFor(pt Point, yr *CurveYRenderer) Point {
	n := len(r.samples)
	if n == 0 {
		return Point{}
	}
	best := 0
	bestDist := math.Inf(1)
	for i, s := range r.samples {
		if d := s.pt.DistanceSquared(pt); d < bestDist {
			best = i
			bestDist = d
		}
	}
	nearest := r.samples[best].pt
	prev := r.samples[max(best-1, 0)].pt
	next := r.samples[min(best+1, n-1)].pt

	y := yr.AxisLocation
	if span := yr.Length * r.scale; span != 0 {
		d := pt.Sub(nearest)
		if dist := d.Hypot(); dist > 0 {
			tangent := 0.0
			if prev != next {
				tangent = next.Sub(prev).Angle()
			}
			y -= dist * math.Sin(d.Angle()-tangent) / span
		}
	}
	return Point{X: r.samples[best].pos, Y: y}
}

// GetPoints returns the outline of the region spanning global X positions
// [x0, x1] and global Y positions [y0, y1]. Control points inside the X
// range become vertices, so the outline follows the path. If y0 == y1 the
// result is an open polyline, otherwise a closed ribbon whose last point
// repeats its first.
func (r *CurveXRenderer) GetPoints(x0, y0, x1, y1 float64) []Point {
	return r.pointsFor(x0, y0, x1, y1, r.y)
}

func (r *CurveXRenderer) pointsFor(x0, y0, x1, y1 float64, yr *CurveYRenderer) []Point {
	n := len(r.points)
	if n < 2 {
		return nil
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	out := []Point{r.pointAt(x0, y0, true, yr)}
	for i := range n {
		if pos := r.positions[i]; pos > x0 && pos < x1 {
			out = append(out, r.pointAt(pos, y0, true, yr))
		}
	}
	out = append(out, r.pointAt(x1, y0, true, yr))
	if y0 != y1 {
		out = append(out, r.pointAt(x1, y1, true, yr))
		for i := n - 1; i >= 0; i-- {
			if pos := r.positions[i]; pos > x0 && pos < x1 {
				out = append(out, r.pointAt(pos, y1, true, yr))
			}
		}
		out = append(out, r.pointAt(x0, y1, true, yr))
		out = append(out, out[0])
	}
	return out
}

// UpdateGrid draws a line across the plot ribbon.
func (r *CurveXRenderer) UpdateGrid(g *Grid, position, endPosition float64) {
	position = locate(position, endPosition, g.Location)
	gp := r.ToGlobalPosition(position)
	g.Path = nil
	if len(r.points) >= 2 {
		g.Path = Line{r.pointAt(gp, 0, true, r.y), r.pointAt(gp, 1, true, r.y)}.Path()
	}
	r.ToggleVisibility(g, position, g.MinPosition, g.MaxPosition)
}

// UpdateTick draws a tick perpendicular to the path, on the outer side of
// the ribbon unless the tick is inside.
func (r *CurveXRenderer) UpdateTick(t *Tick, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, t.Location, t.MultiLocation))
	gp := r.ToGlobalPosition(position)
	p := r.pointAt(gp, 0, true, r.y)
	length := t.Length
	if t.Inside {
		length = -length
	}
	t.Path = nil
	if len(r.points) >= 2 {
		t.Path = Line{p, p.Translate(r.outward(gp).Mul(length))}.Path()
	}
	r.ToggleVisibility(t, position, t.MinPosition, t.MaxPosition)
}

// outward returns the unit vector pointing away from the ribbon at the
// edge of Y position 0.
func (r *CurveXRenderer) outward(gp float64) Vec2 {
	n := r.normal(gp)
	if r.y.Length < 0 {
		return n.Negate()
	}
	return n
}

func (r *CurveXRenderer) UpdateLabel(l *Label, position, endPosition float64, count int) {
	position = locate(position, endPosition, multiLocation(count, l.Location, l.MultiLocation))
	gp := r.ToGlobalPosition(position)
	offset := l.Offset
	if l.Inside {
		offset = -offset
	}
	p := r.pointAt(gp, 0, true, r.y)
	if offset != 0 && len(r.points) >= 2 {
		p = p.Translate(r.outward(gp).Mul(offset))
	}
	l.place(p)
	l.Rotation = 0
	if l.FollowPath && len(r.points) >= 2 {
		_, angle := r.at(gp)
		l.Rotation = angle - 90
	}
	r.ToggleVisibility(l, position, l.MinPosition, l.MaxPosition)
}

// UpdateFill outlines the part of the ribbon between the two positions.
func (r *CurveXRenderer) UpdateFill(f *Fill, position, endPosition float64) {
	g0 := clamp01(r.ToGlobalPosition(position))
	g1 := clamp01(r.ToGlobalPosition(endPosition))
	f.Path = Polyline(r.GetPoints(g0, 0, g1, 1), true)
	r.ToggleVisibility(f, position, f.MinPosition, f.MaxPosition)
}

func (r *CurveXRenderer) UpdateBullet(b *Bullet, position, endPosition float64) {
	position = locate(position, endPosition, b.Location)
	b.place(r.pointAt(r.ToGlobalPosition(position), 0, true, r.y))
	r.ToggleVisibility(b, position, b.MinPosition, b.MaxPosition)
}

func (r *CurveXRenderer) PositionTooltip(t *Tooltip, position float64) {
	gp := r.ToGlobalPosition(position)
	t.PointTo = r.pointAt(gp, 0, true, r.y)
	t.Hidden = gp < 0 || gp > 1
}

// UpdateTooltipBounds bounds tooltips to the fitted bounding box.
func (r *CurveXRenderer) UpdateTooltipBounds(t *Tooltip) {
	t.Bounds = r.bounds()
}

func (r *CurveXRenderer) bounds() Rect {
	return NewRectFromOrigin(Pt(-r.measured.Width/2, -r.measured.Height/2), r.measured)
}

// Pan returns the change in X position between two points.
func (r *CurveXRenderer) Pan(from, to Point) float64 {
	return r.PointToPosition(to).X - r.PointToPosition(from).X
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
