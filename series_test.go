package curveaxis

import "testing"

func TestValueScale(t *testing.T) {
	s := ValueScale{10, 20}
	if got := s.Position(15); got != 0.5 {
		t.Errorf("Position(15) = %g", got)
	}
	if got := s.Value(0.25); got != 12.5 {
		t.Errorf("Value(0.25) = %g", got)
	}
	if got := (ValueScale{3, 3}).Position(7); got != 0 {
		t.Errorf("empty scale Position(7) = %g", got)
	}
}

func newFlatLChart() *CurveChart {
	c := NewCurveChart(Sz(200, 200))
	c.XRenderer().SetAutoScale(false)
	c.YRenderer().Length = 20
	c.SetPoints(lShape())
	c.Layout()
	return c
}

func TestCurveLineSeries(t *testing.T) {
	c := newFlatLChart()
	x := c.XRenderer()
	s := NewCurveLineSeries(c)

	s.Items = []DataItem{{0.2, 0}, {0.8, 1}}
	s.Update()
	// The corner of the L becomes a vertex halfway across the ribbon.
	want := Polyline([]Point{
		x.PositionToPoint(0.2, 0, true),
		x.PositionToPoint(0.5, 0.5, true),
		x.PositionToPoint(0.8, 1, true),
	}, false)
	diff(t, want, s.Path, approx)

	s.Items = []DataItem{{0.8, 1}, {0.2, 0}}
	s.Update()
	want = Polyline([]Point{
		x.PositionToPoint(0.8, 1, true),
		x.PositionToPoint(0.5, 0.5, true),
		x.PositionToPoint(0.2, 0, true),
	}, false)
	diff(t, want, s.Path, approx)

	s.Items = nil
	s.Update()
	if s.Path != nil {
		t.Errorf("got path %v for no items", s.Path)
	}
}

func TestCurveLineSeriesScaled(t *testing.T) {
	c := newFlatLChart()
	x := c.XRenderer()
	s := NewCurveLineSeries(c)
	s.XScale = ValueScale{0, 100}
	s.YScale = ValueScale{-1, 1}
	s.Items = []DataItem{{10, 0}, {40, 0}}
	s.Update()

	want := Polyline([]Point{
		x.PositionToPoint(0.1, 0.5, true),
		x.PositionToPoint(0.4, 0.5, true),
	}, false)
	diff(t, want, s.Path, approx)
}

func TestCurveColumnSeries(t *testing.T) {
	c := newFlatLChart()
	x := c.XRenderer()
	s := NewCurveColumnSeries(c)
	s.Width = 0.5
	s.Columns = []Column{
		{X0: 0.4, X1: 0.6, Y0: 0, Y1: 1},
		{X0: 2, X1: 3, Y0: 0, Y1: 1},
	}
	s.Update()

	col := s.Columns[0]
	if col.Hidden {
		t.Fatal("visible column is hidden")
	}
	diff(t, Polyline(x.GetPoints(0.45, 0, 0.55, 1), true), col.Path, approx)
	if len(col.Path.Points()) != 7 {
		t.Errorf("got %d outline points, want 7", len(col.Path.Points()))
	}

	if !s.Columns[1].Hidden || s.Columns[1].Path != nil {
		t.Error("column outside the window is drawn")
	}
}
