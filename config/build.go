package config

import (
	"honnef.co/go/curveaxis"
	"honnef.co/go/curveaxis/render"
)

// Chart is a laid out chart together with what is needed to draw it.
type Chart struct {
	*curveaxis.CurveChart
	Series  []render.Series
	Options render.SceneOptions
}

// Build validates f, creates the chart it describes, lays it out and applies
// the axis windows.
func (f *File) Build() (*Chart, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	plot := curveaxis.Sz(f.Width, f.Height)

	var c *curveaxis.CurveChart
	switch f.Kind {
	case KindSerpentine:
		s := curveaxis.NewSerpentineChart(plot)
		s.LevelCount = f.Serpentine.LevelCount
		s.Orientation = f.Serpentine.Orientation
		s.StartLocation = f.Serpentine.StartLocation
		s.EndLocation = f.Serpentine.EndLocation
		s.YAxisRadius = f.Serpentine.YAxisRadius
		c = s.CurveChart
	case KindSpiral:
		s := curveaxis.NewSpiralChart(plot)
		s.LevelCount = f.Spiral.LevelCount
		s.InnerRadius = f.Spiral.InnerRadius
		s.StartAngle = f.Spiral.StartAngle
		s.EndAngle = f.Spiral.EndAngle
		s.YAxisRadius = f.Spiral.YAxisRadius
		c = s.CurveChart
	case KindCurve:
		c = curveaxis.NewCurveChart(plot)
		pts := make([]curveaxis.Point, len(f.Curve.Points))
		for i, p := range f.Curve.Points {
			pts[i] = curveaxis.Pt(p[0], p[1])
		}
		c.SetPoints(pts)
		c.YRenderer().Length = f.Curve.YLength
	}
	c.Layout()

	c.XAxis().SetInversed(f.Axes.X.Inversed)
	c.YAxis().SetInversed(f.Axes.Y.Inversed)
	c.XAxis().Zoom(f.Axes.X.Start, f.Axes.X.End, 0)
	c.YAxis().Zoom(f.Axes.Y.Start, f.Axes.Y.End, 0)

	xs := curveaxis.ValueScale{Min: f.Axes.X.Min, Max: f.Axes.X.Max}
	ys := curveaxis.ValueScale{Min: f.Axes.Y.Min, Max: f.Axes.Y.Max}

	out := &Chart{CurveChart: c}
	for _, s := range f.Series {
		switch s.Type {
		case "line":
			ls := curveaxis.NewCurveLineSeries(c)
			ls.XScale, ls.YScale = xs, ys
			for _, v := range s.Values {
				ls.Items = append(ls.Items, curveaxis.DataItem{X: v[0], Y: v[1]})
			}
			out.Series = append(out.Series, render.LineSeries{CurveLineSeries: ls, Color: s.Color, Width: s.Width})
		case "column":
			cs := curveaxis.NewCurveColumnSeries(c)
			cs.XScale, cs.YScale = xs, ys
			if s.Width > 0 {
				cs.Width = s.Width
			}
			for _, v := range s.Values {
				cs.Columns = append(cs.Columns, curveaxis.Column{X0: v[0], X1: v[1], Y0: v[2], Y1: v[3]})
			}
			out.Series = append(out.Series, render.ColumnSeries{CurveColumnSeries: cs, Color: s.Color})
		}
	}

	opts := render.DefaultSceneOptions()
	opts.Margin = f.Margin
	opts.Background = f.Colors.Background
	opts.AxisColor = f.Colors.Axis
	opts.GridColor = f.Colors.Grid
	opts.FillColor = f.Colors.Fill
	opts.SeriesColor = f.Colors.Series
	opts.TextColor = f.Colors.Text
	opts.XDivisions = f.Axes.X.Divisions
	opts.YDivisions = f.Axes.Y.Divisions
	opts.TickLength = f.Axes.TickLength
	opts.Labels = f.Axes.Labels
	opts.XScale, opts.YScale = xs, ys
	out.Options = opts

	curveaxis.Logger().Debug("built chart", "kind", f.Kind, "plot", plot, "series", len(out.Series))
	return out, nil
}

// Scene lays out the chart's scene.
func (c *Chart) Scene() *render.Scene {
	return render.ChartScene(c.CurveChart, c.Options, c.Series...)
}
