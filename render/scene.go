// Package render draws curve charts. [ChartScene] collects the geometry the
// axis renderers compute into a [Scene], which [Raster] turns into an image
// and [WriteSVG] into an SVG document.
package render

import (
	"errors"
	"strconv"

	"honnef.co/go/curveaxis"
)

// ErrEmptyScene is returned when a scene has no drawable area.
var ErrEmptyScene = errors.New("render: empty scene")

// Layer is one path of a scene. Colors are hex strings such as "#3366cc";
// an empty color disables filling or stroking.
type Layer struct {
	Name   string
	Path   curveaxis.BezPath
	Fill   string
	Stroke string
	Width  float64
	// Clipped layers are only drawn inside the scene's mask.
	Clipped bool
}

// Text is a label anchored at its center.
type Text struct {
	Pos      curveaxis.Point
	Text     string
	Color    string
	Rotation float64
}

// Scene is a resolution independent drawing. Layer and text coordinates are
// in renderer space; Offset translates them into the image.
type Scene struct {
	Size       curveaxis.Size
	Offset     curveaxis.Vec2
	Background string
	Mask       curveaxis.BezPath
	Layers     []Layer
	Texts      []Text
}

// SceneOptions control what ChartScene draws and in which colors.
type SceneOptions struct {
	// Margin is added around the plot area on every side.
	Margin float64

	Background  string
	AxisColor   string
	GridColor   string
	FillColor   string
	SeriesColor string
	TextColor   string
	LineWidth   float64

	// XDivisions and YDivisions are the number of grid cells along each
	// axis. Zero disables the grid of that axis.
	XDivisions int
	YDivisions int
	TickLength float64
	Labels     bool
	// XScale and YScale turn axis positions into label values.
	XScale curveaxis.ValueScale
	YScale curveaxis.ValueScale

	// Cursor, if not nil and visible, is drawn on top.
	Cursor *curveaxis.CurveCursor
}

func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Margin:      20,
		Background:  "#ffffff",
		AxisColor:   "#333333",
		GridColor:   "#d0d0d0",
		FillColor:   "#f2f2f2",
		SeriesColor: "#3366cc",
		TextColor:   "#333333",
		LineWidth:   1,
		XDivisions:  10,
		YDivisions:  2,
		TickLength:  4,
		Labels:      true,
		XScale:      curveaxis.ValueScale{Min: 0, Max: 1},
		YScale:      curveaxis.ValueScale{Min: 0, Max: 1},
	}
}

// Series is anything ChartScene can draw on the plot ribbon.
type Series interface {
	Update()
	Layers() []Layer
}

// LineSeries strokes a [curveaxis.CurveLineSeries].
type LineSeries struct {
	*curveaxis.CurveLineSeries
	Color string
	Width float64
}

func (s LineSeries) Layers() []Layer {
	if len(s.Path) == 0 {
		return nil
	}
	return []Layer{{Name: "line", Path: s.Path, Stroke: s.Color, Width: s.Width, Clipped: true}}
}

// ColumnSeries fills the visible columns of a [curveaxis.CurveColumnSeries].
type ColumnSeries struct {
	*curveaxis.CurveColumnSeries
	Color string
}

func (s ColumnSeries) Layers() []Layer {
	var out []Layer
	for _, col := range s.Columns {
		if col.Hidden || len(col.Path) == 0 {
			continue
		}
		out = append(out, Layer{Name: "column", Path: col.Path, Fill: s.Color, Clipped: true})
	}
	return out
}

// ChartScene lays out the grid, the axes and the given series of a chart
// that has been laid out. Grid lines, fills and series are clipped to the
// chart's mask. Elements the renderers hide are left out.
func ChartScene(c *curveaxis.CurveChart, opts SceneOptions, series ...Series) *Scene {
	plot := c.PlotSize()
	s := &Scene{
		Size:       curveaxis.Sz(plot.Width+2*opts.Margin, plot.Height+2*opts.Margin),
		Background: opts.Background,
		Mask:       c.Mask(),
	}
	s.Offset = curveaxis.Vec2(s.Size.Center())

	x := c.XRenderer()
	ys := make([]*curveaxis.CurveYRenderer, 0, len(c.YAxes()))
	for _, a := range c.YAxes() {
		ys = append(ys, a.Renderer().(*curveaxis.CurveYRenderer))
	}

	add := func(name string, el *curveaxis.Element, fill, stroke string) {
		if el.Hidden || len(el.Path) == 0 {
			return
		}
		s.Layers = append(s.Layers, Layer{
			Name:    name,
			Path:    el.Path,
			Fill:    fill,
			Stroke:  stroke,
			Width:   opts.LineWidth,
			Clipped: true,
		})
	}

	if n := opts.XDivisions; n > 0 {
		for i := 0; i < n; i += 2 {
			f := curveaxis.NewFill()
			x.UpdateFill(f, float64(i)/float64(n), float64(i+1)/float64(n))
			add("x-fill", &f.Element, opts.FillColor, "")
		}
		for i := 0; i <= n; i++ {
			g := curveaxis.NewGrid()
			x.UpdateGrid(g, float64(i)/float64(n), float64(i)/float64(n))
			add("x-grid", &g.Element, "", opts.GridColor)
		}
	}
	if n := opts.YDivisions; n > 0 {
		for _, y := range ys {
			for i := 0; i <= n; i++ {
				g := curveaxis.NewGrid()
				y.UpdateGrid(g, float64(i)/float64(n), float64(i)/float64(n))
				add("y-grid", &g.Element, "", opts.GridColor)
			}
		}
	}

	for _, sr := range series {
		sr.Update()
		for _, l := range sr.Layers() {
			switch {
			case l.Stroke != "" || l.Fill != "":
			case l.Path.IsClosed():
				l.Fill = opts.SeriesColor
			default:
				l.Stroke = opts.SeriesColor
			}
			if l.Width == 0 {
				l.Width = opts.LineWidth
			}
			s.Layers = append(s.Layers, l)
		}
	}

	axisLine := func(name string, p curveaxis.BezPath) {
		if len(p) > 0 {
			s.Layers = append(s.Layers, Layer{Name: name, Path: p, Stroke: opts.AxisColor, Width: opts.LineWidth})
		}
	}
	axisLine("x-axis", x.Path())
	for _, y := range ys {
		axisLine("y-axis", y.Path())
	}

	tick := func(name string, t *curveaxis.Tick) {
		if !t.Hidden && len(t.Path) > 0 {
			s.Layers = append(s.Layers, Layer{Name: name, Path: t.Path, Stroke: opts.AxisColor, Width: opts.LineWidth})
		}
	}
	label := func(l *curveaxis.Label) {
		if !l.Hidden && l.Text != "" {
			s.Texts = append(s.Texts, Text{Pos: l.Point(), Text: l.Text, Color: opts.TextColor, Rotation: l.Rotation})
		}
	}
	offset := opts.TickLength + 8
	if n := opts.XDivisions; n > 0 {
		for i := 0; i <= n; i++ {
			pos := float64(i) / float64(n)
			if opts.TickLength > 0 {
				t := curveaxis.NewTick(opts.TickLength)
				x.UpdateTick(t, pos, pos, 1)
				tick("x-tick", t)
			}
			if opts.Labels {
				l := curveaxis.NewLabel(formatValue(opts.XScale.Value(pos)))
				l.Offset = offset
				x.UpdateLabel(l, pos, pos, 1)
				label(l)
			}
		}
	}
	if n := opts.YDivisions; n > 0 {
		for _, y := range ys {
			for i := 0; i <= n; i++ {
				pos := float64(i) / float64(n)
				if opts.TickLength > 0 {
					t := curveaxis.NewTick(opts.TickLength)
					y.UpdateTick(t, pos, pos, 1)
					tick("y-tick", t)
				}
				if opts.Labels {
					l := curveaxis.NewLabel(formatValue(opts.YScale.Value(pos)))
					l.Offset = offset
					y.UpdateLabel(l, pos, pos, 1)
					label(l)
				}
			}
		}
	}

	if cur := opts.Cursor; cur != nil && !cur.Hidden {
		for _, p := range []curveaxis.BezPath{cur.LineX, cur.LineY} {
			if len(p) > 0 {
				s.Layers = append(s.Layers, Layer{Name: "cursor", Path: p, Stroke: opts.AxisColor, Width: opts.LineWidth})
			}
		}
	}

	curveaxis.Logger().Debug("chart scene", "layers", len(s.Layers), "texts", len(s.Texts), "size", s.Size)
	return s
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
