package curveaxis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func lShape() []Point {
	return []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100)}
}

// newCurve lays out pts without scaling. The Y axis extends excursion raw
// units across the path.
func newCurve(pts []Point, excursion float64) (*CurveXRenderer, *CurveYRenderer) {
	x, y := NewCurveRenderers()
	x.SetAutoScale(false)
	x.SetPlotSize(Sz(200, 200))
	y.Length = excursion
	x.SetPoints(pts)
	x.UpdateLayout()
	return x, y
}

func TestCurveLShape(t *testing.T) {
	x, _ := newCurve(lShape(), 0)

	if got := x.AxisLength(); got != 200 {
		t.Errorf("AxisLength = %g, want 200", got)
	}
	diff(t, []float64{0, 100, 200}, x.PointDistances())
	diff(t, []float64{0, 0.5, 1}, x.PointPositions())
	diff(t, Pt(50, 50), x.Center())

	diff(t, Pt(50, 0).Transform(x.Transform()), x.PositionToPoint(0.25, 0, false), approx)
	diff(t, Pt(100, 50).Transform(x.Transform()), x.PositionToPoint(0.75, 0, false), approx)

	if got := x.PositionToAngle(0.25); math.Abs(got-90) > 1e-9 {
		t.Errorf("PositionToAngle(0.25) = %g, want 90", got)
	}
	if got := x.PositionToAngle(0.75); math.Abs(got-180) > 1e-9 {
		t.Errorf("PositionToAngle(0.75) = %g, want 180", got)
	}

	diff(t, Polyline([]Point{Pt(-50, -50), Pt(50, -50), Pt(50, 50)}, false), x.Path())
	diff(t, Sz(100, 100), x.MeasuredSize())
}

func TestCurveEndpoints(t *testing.T) {
	x, _ := newCurve(lShape(), 10)

	diff(t, Pt(-50, -50), x.PositionToPoint(0, 0, false), approx)
	diff(t, Pt(50, 50), x.PositionToPoint(1, 0, false), approx)
	// Outside the path, positions clamp to the end points.
	diff(t, Pt(-50, -50), x.PositionToPoint(-0.5, 0, false), approx)
	diff(t, Pt(50, 50), x.PositionToPoint(1.5, 0, false), approx)

	if got := x.PointToPosition(x.PositionToPoint(0, 0, false)).X; got != 0 {
		t.Errorf("start maps back to %g", got)
	}
	if got := x.PointToPosition(x.PositionToPoint(1, 0, false)).X; got != 1 {
		t.Errorf("end maps back to %g", got)
	}
}

func TestCurveRoundTrip(t *testing.T) {
	x, _ := newCurve(lShape(), 20)

	for _, px := range []float64{0.1, 0.3, 0.7, 0.9} {
		for _, py := range []float64{0, 0.25} {
			pt := x.PositionToPoint(px, py, false)
			diff(t, Pt(px, py), x.PointToPosition(pt), approx)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	x, _ := newCurve([]Point{Pt(0, 0), Pt(30, 40), Pt(80, 40), Pt(60, 0)}, 5)

	prev := -1.0
	for i := 0; i <= 100; i++ {
		p := x.PointToPosition(x.PositionToPoint(float64(i)/100, 0, false)).X
		if p < prev {
			t.Fatalf("position %g maps back to %g, below %g", float64(i)/100, p, prev)
		}
		prev = p
	}
}

func TestCurveScaleInvariance(t *testing.T) {
	layout := func(k float64) *CurveXRenderer {
		x, _ := NewCurveRenderers()
		x.SetPlotSize(Sz(200, 200))
		var pts []Point
		for _, pt := range lShape() {
			pts = append(pts, Pt(pt.X*k, pt.Y*k))
		}
		x.SetPoints(pts)
		x.UpdateLayout()
		return x
	}
	a, b := layout(1), layout(3)

	diff(t, a.PointPositions(), b.PointPositions(), approx)
	diff(t, a.AxisLength(), b.AxisLength(), approx)
	for _, p := range []float64{0, 0.2, 0.5, 0.8, 1} {
		diff(t, a.PositionToPoint(p, 0, false), b.PositionToPoint(p, 0, false), approx)
	}
}

func TestCurveIndex(t *testing.T) {
	x, _ := newCurve(lShape(), 0)

	tests := []struct {
		position float64
		index    int
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0},
		{0.5, 1},
		{0.75, 1},
		{1, 2},
		{2, 2},
	}
	for _, tt := range tests {
		if got := x.PositionToIndex(tt.position); got != tt.index {
			t.Errorf("PositionToIndex(%g) = %d, want %d", tt.position, got, tt.index)
		}
	}
	for index, want := range map[int]float64{-3: 0, 0: 0, 1: 0.5, 2: 1, 9: 1} {
		if got := x.IndexToPosition(index); got != want {
			t.Errorf("IndexToPosition(%d) = %g, want %g", index, got, want)
		}
	}
}

func TestCurveZoom(t *testing.T) {
	x, _ := newCurve(lShape(), 0)
	NewAxis(x).Zoom(0.5, 1, 0)

	// The window [0.5, 1] is spread over the whole path.
	diff(t, Pt(-50, -50), x.PositionToPoint(0.5, 0, false), approx)
	diff(t, Pt(50, -50), x.PositionToPoint(0.75, 0, false), approx)
	if got := x.IndexToPosition(1); got != 0.75 {
		t.Errorf("IndexToPosition(1) = %g, want 0.75", got)
	}
}

func TestCurveGetPoints(t *testing.T) {
	x, _ := newCurve(lShape(), 20)

	ribbon := x.GetPoints(0, 0, 1, 1)
	if len(ribbon) != 7 {
		t.Fatalf("got %d ribbon points, want 7", len(ribbon))
	}
	diff(t, ribbon[0], ribbon[len(ribbon)-1])
	diff(t, x.PositionToPoint(0.5, 0, true), ribbon[1], approx)
	diff(t, x.PositionToPoint(0.5, 1, true), ribbon[4], approx)

	line := x.GetPoints(0, 0.5, 1, 0.5)
	diff(t, []Point{
		x.PositionToPoint(0, 0.5, true),
		x.PositionToPoint(0.5, 0.5, true),
		x.PositionToPoint(1, 0.5, true),
	}, line, approx)

	// Swapped bounds describe the same region.
	diff(t, ribbon, x.GetPoints(1, 1, 0, 0), approx)
}

func TestCurveElements(t *testing.T) {
	x, _ := newCurve(lShape(), 20)

	g := NewGrid()
	x.UpdateGrid(g, 0.25, 0.25)
	diff(t, Line{Pt(0, -50), Pt(0, -70)}.Path(), g.Path, approx)

	tick := NewTick(5)
	x.UpdateTick(tick, 0.25, 0.25, 1)
	diff(t, Line{Pt(0, -50), Pt(0, -45)}.Path(), tick.Path, approx)

	l := NewLabel("x")
	l.FollowPath = true
	x.UpdateLabel(l, 0.75, 0.75, 1)
	diff(t, Pt(50, 0), l.Point(), approx)
	if math.Abs(l.Rotation-90) > 1e-9 {
		t.Errorf("label rotation = %g, want 90", l.Rotation)
	}

	f := NewFill()
	x.UpdateFill(f, 0, 1)
	diff(t, Polyline(x.GetPoints(0, 0, 1, 1), true), f.Path, approx)

	tip := &Tooltip{}
	x.PositionTooltip(tip, 0.25)
	x.UpdateTooltipBounds(tip)
	if tip.Hidden {
		t.Error("tooltip on the path is hidden")
	}
	diff(t, Rect{X0: -70, Y0: -70, X1: 70, Y1: 70}, tip.Bounds, approx)
}

func TestCurveDegenerate(t *testing.T) {
	inputs := map[string][]Point{
		"empty":      nil,
		"single":     {Pt(3, 4)},
		"coincident": {Pt(5, 5), Pt(5, 5)},
	}
	for name, pts := range inputs {
		t.Run(name, func(t *testing.T) {
			x, y := NewCurveRenderers()
			NewAxis(x)
			NewAxis(y)
			x.SetPlotSize(Sz(100, 100))
			y.Length = 10
			x.SetPoints(pts)
			x.UpdateLayout()
			y.UpdateLayout()

			if len(pts) < 2 {
				diff(t, Point{}, x.PositionToPoint(0.5, 0.5, false))
				diff(t, Point{}, y.PositionToPoint(0.5, 0.5, false))
				if x.GetPoints(0, 0, 1, 1) != nil {
					t.Error("GetPoints returned points")
				}
			}
			if got := x.PositionToAngle(0.5); len(pts) < 2 && got != 0 {
				t.Errorf("PositionToAngle = %g, want 0", got)
			}
			if got := x.PositionToIndex(0.5); got != 0 {
				t.Errorf("PositionToIndex = %d, want 0", got)
			}
			diff(t, Point{}, x.PointToPosition(Pt(1, 1)))
			_ = x.AxisLength()
			_ = x.IndexToPosition(3)

			x.UpdateGrid(NewGrid(), 0, 1)
			x.UpdateTick(NewTick(3), 0, 1, 1)
			x.UpdateLabel(NewLabel("a"), 0, 1, 1)
			x.UpdateFill(NewFill(), 0, 1)
			x.UpdateBullet(NewBullet(), 0, 1)
			x.PositionTooltip(&Tooltip{}, 0.5)
			y.UpdateGrid(NewGrid(), 0, 1)
			y.UpdateTick(NewTick(3), 0, 1, 1)
			y.UpdateLabel(NewLabel("a"), 0, 1, 1)
			y.UpdateFill(NewFill(), 0, 1)
			y.UpdateBullet(NewBullet(), 0, 1)
			_ = x.Pan(Pt(0, 0), Pt(1, 1))
			_ = y.Pan(Pt(0, 0), Pt(1, 1))
		})
	}
}

func TestCurveResampleSpacing(t *testing.T) {
	x, _ := NewCurveRenderers()
	x.SetPlotSize(Sz(400, 400))
	x.SetPoints([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 0.001), Pt(10, 10)})
	x.UpdateLayout()

	samples := x.Samples()
	if len(samples) < 2 {
		t.Fatalf("got %d samples", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if d := samples[i].Distance(samples[i-1]); d < minSampleSpacing {
			t.Errorf("samples %d and %d are %g apart", i-1, i, d)
		}
	}
	diff(t, Pt(10, 10).Transform(x.Transform()), samples[len(samples)-1])
}

func TestCurveLayoutVersion(t *testing.T) {
	x, _ := newCurve(lShape(), 0)
	v := x.LayoutVersion()
	x.UpdateLayout()
	if x.LayoutVersion() != v+1 {
		t.Errorf("got version %d, want %d", x.LayoutVersion(), v+1)
	}
}
