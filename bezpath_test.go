package curveaxis

import (
	"strings"
	"testing"
)

func TestPolyline(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	p := Polyline(pts, true)
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 10)),
		ClosePath(),
	}
	diff(t, want, p)
	diff(t, pts, p.Points())
	if !p.IsClosed() {
		t.Error("closed polyline reports open")
	}
	if Polyline(nil, true) != nil {
		t.Error("expected nil path for no points")
	}
	if Polyline(pts, false).IsClosed() {
		t.Error("open polyline reports closed")
	}
}

func TestPathSVG(t *testing.T) {
	p := Polyline([]Point{Pt(0, 0), Pt(1.5, 2), Pt(1.0/3.0, 4)}, true)
	got := p.SVG(SVGOptions{MaxPrecision: 2})
	want := "M0,0 L1.5,2 L0.33,4 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	sb := &strings.Builder{}
	if err := (BezPath{MoveTo(Pt(1, 2))}).WriteSVG(sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "M1,2" {
		t.Errorf("got %q", sb.String())
	}
}

func TestPathControlBox(t *testing.T) {
	p := Polyline([]Point{Pt(-1, 5), Pt(3, -2), Pt(0, 0)}, false)
	diff(t, Rect{-1, -2, 3, 5}, p.ControlBox())
	diff(t, Rect{}, BezPath{}.ControlBox())
}

func TestPathTransform(t *testing.T) {
	p := Polyline([]Point{Pt(1, 1), Pt(2, 2)}, true)
	got := p.Transform(Scale(2, 3))
	diff(t, BezPath{MoveTo(Pt(2, 3)), LineTo(Pt(4, 6)), ClosePath()}, got)
}
