package curveaxis

import (
	"math"
	"testing"
)

func TestWindowConversions(t *testing.T) {
	x := NewXRenderer(Sz(100, 10))
	a := NewAxis(x)
	a.Zoom(0.25, 0.75, 0)

	tests := []struct {
		inversed bool
		axis     float64
		global   float64
	}{
		{false, 0.25, 0},
		{false, 0.5, 0.5},
		{false, 0.75, 1},
		{false, 1, 1.5},
		{true, 0.75, 0},
		{true, 0.25, 1},
		{true, 0.5, 0.5},
	}
	for _, tt := range tests {
		a.SetInversed(tt.inversed)
		if got := x.ToGlobalPosition(tt.axis); math.Abs(got-tt.global) > 1e-12 {
			t.Errorf("inversed=%t: ToGlobalPosition(%g) = %g, want %g", tt.inversed, tt.axis, got, tt.global)
		}
		if got := x.ToAxisPosition(tt.global); math.Abs(got-tt.axis) > 1e-12 {
			t.Errorf("inversed=%t: ToAxisPosition(%g) = %g, want %g", tt.inversed, tt.global, got, tt.axis)
		}
	}
}

func TestUnboundRendererIsIdentity(t *testing.T) {
	x := NewXRenderer(Sz(100, 10))
	for _, p := range []float64{-1, 0, 0.3, 1, 2} {
		if got := x.ToGlobalPosition(p); got != p {
			t.Errorf("ToGlobalPosition(%g) = %g", p, got)
		}
		if got := x.ToAxisPosition(p); got != p {
			t.Errorf("ToAxisPosition(%g) = %g", p, got)
		}
	}
}

func TestToggleVisibility(t *testing.T) {
	x := NewXRenderer(Sz(100, 10))
	NewAxis(x).Zoom(0.2, 0.6, 0)

	tests := []struct {
		position float64
		hidden   bool
	}{
		{0.2, false},
		{0.19999, false},
		{0.19, true},
		{0.4, false},
		{0.6, false},
		{0.60001, false},
		{0.61, true},
	}
	for _, tt := range tests {
		g := NewGrid()
		x.ToggleVisibility(g, tt.position, g.MinPosition, g.MaxPosition)
		if g.Hidden != tt.hidden {
			t.Errorf("position %g: hidden = %t, want %t", tt.position, g.Hidden, tt.hidden)
		}
	}

	// A narrower band inside the window.
	g := NewGrid()
	g.MinPosition, g.MaxPosition = 0.5, 1
	x.ToggleVisibility(g, 0.3, g.MinPosition, g.MaxPosition)
	if !g.Hidden {
		t.Error("position 0.3 should be hidden in the upper half of the window")
	}
	x.ToggleVisibility(g, 0.5, g.MinPosition, g.MaxPosition)
	if g.Hidden {
		t.Error("position 0.5 should be visible in the upper half of the window")
	}
}

func TestThumb(t *testing.T) {
	x := NewXRenderer(Sz(100, 10))
	a := NewAxis(x)
	th := NewThumb(x)

	th.Move(Pt(90, 0))
	if a.Start() != 0 || a.End() != 1 {
		t.Fatalf("move without drag changed the window to [%g, %g]", a.Start(), a.End())
	}

	th.Down(Pt(50, 0))
	if !th.Dragging() {
		t.Fatal("expected dragging after Down")
	}
	th.Move(Pt(60, 0))
	if math.Abs(a.Start()-0.05) > 1e-12 || math.Abs(a.End()-0.95) > 1e-12 {
		t.Errorf("got window [%g, %g], want [0.05, 0.95]", a.Start(), a.End())
	}
	// Moves are relative to the window at Down.
	th.Move(Pt(40, 0))
	if a.Start() != 0 || a.End() != 1 {
		t.Errorf("got window [%g, %g], want [0, 1]", a.Start(), a.End())
	}

	th.Up()
	if th.Dragging() {
		t.Error("still dragging after Up")
	}
	th.Move(Pt(70, 0))
	if a.Start() != 0 || a.End() != 1 {
		t.Errorf("move after Up changed the window to [%g, %g]", a.Start(), a.End())
	}
}
