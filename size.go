package curveaxis

import "fmt"

// Size is the extent of a plot area or of a measured shape.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// Center returns the center of a rectangle of this size placed at the origin.
func (sz Size) Center() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}

// IsEmpty reports whether the size has no positive area.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}
