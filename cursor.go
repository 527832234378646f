package curveaxis

// CurveCursor follows the pointer over a curve chart. It reports the axis
// positions under the pointer and draws one line across the ribbon and one
// along it.
type CurveCursor struct {
	// X and Y are the axis positions under the pointer.
	X, Y float64
	// LineX crosses the ribbon at X, LineY follows the path at Y.
	LineX  BezPath
	LineY  BezPath
	Hidden bool

	x *CurveXRenderer
	y *CurveYRenderer
}

func NewCurveCursor(c *CurveChart) *CurveCursor {
	return &CurveCursor{x: c.x, y: c.y, Hidden: true}
}

// Move moves the cursor to pt, in renderer space. The cursor hides itself
// when pt lies outside the ribbon.
func (c *CurveCursor) Move(pt Point) {
	if len(c.x.Samples()) == 0 {
		c.Hide()
		return
	}
	p := c.x.PointToPosition(pt)
	c.X = c.x.ToAxisPosition(p.X)
	c.Y = c.y.ToAxisPosition(p.Y)
	c.LineX = Line{
		c.x.pointAt(p.X, 0, true, c.y),
		c.x.pointAt(p.X, 1, true, c.y),
	}.Path()
	c.LineY = Polyline(dedupe(c.y.GetPoints(0, p.Y, 1, p.Y), minSampleSpacing), false)
	c.Hidden = p.Y < 0 || p.Y > 1
}

func (c *CurveCursor) Hide() {
	c.Hidden = true
	c.LineX = nil
	c.LineY = nil
}
