package curveaxis

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
	diff(t, Pt(1, 2).Swap(), Pt(2, 1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		p0, p1 Point
		want   float64
	}{
		{Pt(0, 0), Pt(100, 0), 0},
		{Pt(100, 0), Pt(100, 100), 90},
		{Pt(0, 0), Pt(-1, 0), 180},
		{Pt(0, 0), Pt(0, -5), -90},
		{Pt(3, 3), Pt(3, 3), 0},
	}
	for _, tt := range tests {
		if got := Angle(tt.p0, tt.p1); got != tt.want {
			t.Errorf("Angle(%v, %v) = %v, want %v", tt.p0, tt.p1, got, tt.want)
		}
	}
}
