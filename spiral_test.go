package curveaxis

import "testing"

func TestSpiralPoints(t *testing.T) {
	diff(t, []Point{Pt(10, 10), Pt(10, 20)}, SpiralPoints(Pt(10, 10), 0, 10, 0, 90, 4), approx)

	pts := SpiralPoints(Point{}, 1, 3, 0, 720, 8)
	if len(pts) != 17 {
		t.Fatalf("got %d points, want 17", len(pts))
	}
	diff(t, Pt(1, 0), pts[0], approx)
	diff(t, Pt(2, 0), pts[8], approx)
	diff(t, Pt(3, 0), pts[16], approx)

	// Degenerate sweeps still produce a segment.
	if got := len(SpiralPoints(Point{}, 1, 2, 30, 30, 0)); got != 2 {
		t.Errorf("got %d points, want 2", got)
	}
}

func TestSpiralChart(t *testing.T) {
	s := NewSpiralChart(Sz(200, 300))
	s.Layout()

	pts := s.XRenderer().Points()
	if len(pts) != 61 {
		t.Fatalf("got %d points, want 61", len(pts))
	}
	diff(t, Pt(12.5, 0), pts[0], approx)
	diff(t, Pt(87.5, 0), pts[len(pts)-1], approx)
	if got := s.YRenderer().Length; got != 20 {
		t.Errorf("Y length = %g, want 20", got)
	}

	prev := 0.0
	for i, pt := range pts {
		r := Vec2(pt).Hypot()
		if r <= prev {
			t.Fatalf("radius does not grow at point %d", i)
		}
		prev = r
	}
}

func TestSpiralDegenerate(t *testing.T) {
	s := NewSpiralChart(Sz(200, 200))
	s.InnerRadius = 1
	s.Layout()
	if n := len(s.XRenderer().Points()); n != 0 {
		t.Errorf("got %d points", n)
	}

	s.InnerRadius = 0
	s.LevelCount = 0
	s.Layout()
	if n := len(s.XRenderer().Points()); n != 0 {
		t.Errorf("got %d points", n)
	}
}
