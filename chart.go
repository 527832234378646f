package curveaxis

// CurveChart lays out a pair of curve renderers in a plot area and keeps a
// mask that follows the plot ribbon. Content drawn by series and grids is
// clipped to the mask.
//
// Used directly, the chart follows whatever points are given to SetPoints.
// [SerpentineChart] and [SpiralChart] generate the points themselves.
type CurveChart struct {
	plot Size

	x     *CurveXRenderer
	y     *CurveYRenderer
	xAxis *Axis
	yAxis *Axis
	// Y axes after the first one.
	extra []*Axis

	mask BezPath

	// generate recomputes the control points; nil for arbitrary curves.
	generate  func()
	layingOut bool
}

// NewCurveChart returns a chart for a plot area of the given size.
func NewCurveChart(plot Size) *CurveChart {
	x, y := NewCurveRenderers()
	c := &CurveChart{
		plot:  plot,
		x:     x,
		y:     y,
		xAxis: NewAxis(x),
		yAxis: NewAxis(y),
	}
	y.owner = c
	c.watch(c.xAxis)
	c.watch(c.yAxis)
	return c
}

func (c *CurveChart) watch(a *Axis) {
	a.OnZoom(func(start, end float64) {
		if !c.layingOut {
			c.updateMasks()
		}
	})
}

func (c *CurveChart) PlotSize() Size             { return c.plot }
func (c *CurveChart) SetPlotSize(sz Size)        { c.plot = sz }
func (c *CurveChart) XRenderer() *CurveXRenderer { return c.x }
func (c *CurveChart) YRenderer() *CurveYRenderer { return c.y }
func (c *CurveChart) XAxis() *Axis               { return c.xAxis }
func (c *CurveChart) YAxis() *Axis               { return c.yAxis }
func (c *CurveChart) Mask() BezPath              { return c.mask }
func (c *CurveChart) SetPoints(pts []Point)      { c.x.SetPoints(pts) }

// YAxes returns all Y axes, the primary one first.
func (c *CurveChart) YAxes() []*Axis {
	return append([]*Axis{c.yAxis}, c.extra...)
}

// AddYAxis adds a Y axis sharing the chart's X renderer.
func (c *CurveChart) AddYAxis() *Axis {
	r := NewCurveYRenderer(c.x)
	r.owner = c
	a := NewAxis(r)
	c.watch(a)
	c.extra = append(c.extra, a)
	return a
}

// Layout regenerates the control points, lays out the X renderer, then every
// Y renderer, and rebuilds the mask. It must run whenever the plot size or
// any shape setting changes.
func (c *CurveChart) Layout() {
	c.layingOut = true
	defer func() { c.layingOut = false }()
	if c.generate != nil {
		c.generate()
	}
	c.updateMasks()
}

func (c *CurveChart) updateMasks() {
	c.x.SetPlotSize(c.plot)
	c.x.UpdateLayout()
	layingOut := c.layingOut
	c.layingOut = true
	for _, a := range c.YAxes() {
		a.Renderer().(*CurveYRenderer).UpdateLayout()
	}
	c.layingOut = layingOut
	c.mask = Polyline(c.x.GetPoints(0, 0, 1, 1), true)
}
