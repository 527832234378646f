package curveaxis

import "slices"

// ValueScale maps data values linearly to axis positions.
type ValueScale struct {
	Min, Max float64
}

// Position returns the axis position of v. A scale without extent maps every
// value to 0.
func (s ValueScale) Position(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return (v - s.Min) / (s.Max - s.Min)
}

// Value is the inverse of Position.
func (s ValueScale) Value(position float64) float64 {
	return s.Min + position*(s.Max-s.Min)
}

type DataItem struct {
	X, Y float64
}

// CurveLineSeries draws its items as a line that bends with the chart's
// path.
type CurveLineSeries struct {
	XScale ValueScale
	YScale ValueScale
	Items  []DataItem
	Path   BezPath

	x *CurveXRenderer
	y *CurveYRenderer
}

// NewCurveLineSeries returns a line series plotted against the chart's
// primary axes.
func NewCurveLineSeries(c *CurveChart) *CurveLineSeries {
	return &CurveLineSeries{
		XScale: ValueScale{0, 1},
		YScale: ValueScale{0, 1},
		x:      c.x,
		y:      c.y,
	}
}

// Update rebuilds Path. Between two consecutive items every control point
// of the path becomes a vertex, its Y interpolated linearly in X.
func (s *CurveLineSeries) Update() {
	s.Path = nil
	if len(s.Items) == 0 || len(s.x.points) < 2 {
		return
	}
	global := func(it DataItem) (float64, float64) {
		return s.x.ToGlobalPosition(s.XScale.Position(it.X)),
			s.y.ToGlobalPosition(s.YScale.Position(it.Y))
	}
	positions := s.x.PointPositions()
	gx0, gy0 := global(s.Items[0])
	pts := []Point{s.x.pointAt(gx0, gy0, true, s.y)}
	for _, it := range s.Items[1:] {
		gx1, gy1 := global(it)
		var between []float64
		lo, hi := min(gx0, gx1), max(gx0, gx1)
		for _, pos := range positions {
			if pos > lo && pos < hi {
				between = append(between, pos)
			}
		}
		if gx1 < gx0 {
			slices.Reverse(between)
		}
		for _, pos := range between {
			gy := gy0 + (gy1-gy0)*(pos-gx0)/(gx1-gx0)
			pts = append(pts, s.x.pointAt(pos, gy, true, s.y))
		}
		pts = append(pts, s.x.pointAt(gx1, gy1, true, s.y))
		gx0, gy0 = gx1, gy1
	}
	s.Path = Polyline(pts, false)
}

// Column is a bar spanning [X0, X1) along the path and [Y0, Y1] across it,
// in data values.
type Column struct {
	X0, X1 float64
	Y0, Y1 float64
	Path   BezPath
	Hidden bool
}

// CurveColumnSeries draws columns that bend with the chart's path.
type CurveColumnSeries struct {
	XScale  ValueScale
	YScale  ValueScale
	Columns []Column
	// Width is the fraction of its cell a column occupies.
	Width float64

	x *CurveXRenderer
	y *CurveYRenderer
}

func NewCurveColumnSeries(c *CurveChart) *CurveColumnSeries {
	return &CurveColumnSeries{
		XScale: ValueScale{0, 1},
		YScale: ValueScale{0, 1},
		Width:  0.8,
		x:      c.x,
		y:      c.y,
	}
}

// Update rebuilds every column's outline. Columns entirely outside the
// visible window are hidden; the others are clipped to it.
func (s *CurveColumnSeries) Update() {
	for i := range s.Columns {
		col := &s.Columns[i]
		col.Path = nil
		p0 := s.XScale.Position(col.X0)
		p1 := s.XScale.Position(col.X1)
		mid, half := (p0+p1)/2, (p1-p0)*s.Width/2
		g0 := s.x.ToGlobalPosition(mid - half)
		g1 := s.x.ToGlobalPosition(mid + half)
		if g0 > g1 {
			g0, g1 = g1, g0
		}
		col.Hidden = g1 < 0 || g0 > 1
		if col.Hidden {
			continue
		}
		y0 := clamp01(s.y.ToGlobalPosition(s.YScale.Position(col.Y0)))
		y1 := clamp01(s.y.ToGlobalPosition(s.YScale.Position(col.Y1)))
		col.Path = Polyline(s.x.pointsFor(clamp01(g0), y0, clamp01(g1), y1, s.y), true)
	}
}
