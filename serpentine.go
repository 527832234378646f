package curveaxis

import "fmt"

// Orientation selects how a serpentine chart winds.
type Orientation int

const (
	// Vertical stacks horizontal runs from top to bottom.
	Vertical Orientation = iota
	// Horizontal stacks vertical runs from left to right.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "invalid"
	}
}

// arcSegments is the number of segments approximating each U-turn.
const arcSegments = 50

// SerpentineChart winds its X axis back and forth in LevelCount straight
// runs joined by semicircular U-turns.
type SerpentineChart struct {
	*CurveChart

	LevelCount  int
	Orientation Orientation
	// StartLocation and EndLocation trim the first and the last run, as
	// fractions of a run.
	StartLocation float64
	EndLocation   float64
	// YAxisRadius is the length of the Y axis as a fraction of the U-turn
	// radius.
	YAxisRadius float64

	radius float64
}

func NewSerpentineChart(plot Size) *SerpentineChart {
	s := &SerpentineChart{
		CurveChart:  NewCurveChart(plot),
		LevelCount:  3,
		EndLocation: 1,
		YAxisRadius: 0.8,
	}
	s.y.AxisLocation = 0.5
	s.x.SetAutoScale(false)
	s.generate = s.updatePoints
	return s
}

// Radius returns the U-turn radius computed by the last layout.
func (s *SerpentineChart) Radius() float64 { return s.radius }

func (s *SerpentineChart) updatePoints() {
	w, h := s.plot.Width, s.plot.Height
	if s.Orientation == Horizontal {
		w, h = h, w
	}
	pts, radius := serpentinePoints(w, h, s.LevelCount, s.StartLocation, s.EndLocation)
	if s.Orientation == Horizontal {
		for i := range pts {
			pts[i] = pts[i].Swap()
		}
	}
	s.radius = radius
	s.y.Length = 0
	if radius > 0 {
		s.y.Length = radius * s.YAxisRadius
	}
	s.x.SetPoints(pts)
}

// serpentinePoints lays out levels horizontal runs in a w×h area centered on
// the origin, the first one at the top running left to right.
func serpentinePoints(w, h float64, levels int, startLocation, endLocation float64) ([]Point, float64) {
	if levels < 1 {
		Logger().Debug("serpentine without levels", "levels", levels)
		return nil, 0
	}
	radius := min(h/float64(levels+1)/2, w/2)
	if !(radius > 0) {
		Logger().Debug("serpentine radius is not positive", "radius", radius, "width", w, "height", h)
		return nil, radius
	}

	left := -w/2 + radius
	right := w/2 - radius
	top := -float64(levels-1) * radius
	pts := make([]Point, 0, levels*2+(levels-1)*(arcSegments-1))
	for i := range levels {
		y := top + float64(i)*2*radius
		from, to := left, right
		if i%2 == 1 {
			from, to = right, left
		}
		start, end := from, to
		if i == 0 {
			start = from + (to-from)*startLocation
		}
		if i == levels-1 {
			end = from + (to-from)*endLocation
		}
		pts = append(pts, Pt(start, y), Pt(end, y))

		if i == levels-1 {
			break
		}
		// U-turn around (to, y+radius), bulging outwards.
		center := Pt(to, y+radius)
		first, step := -90.0, 180.0/arcSegments
		if i%2 == 1 {
			first, step = 270, -step
		}
		for k := 1; k < arcSegments; k++ {
			a := (first + float64(k)*step) * radians
			pts = append(pts, center.Translate(VecFromAngle(a).Mul(radius)))
		}
	}
	return pts, radius
}

// MarshalText implements [encoding.TextMarshaler].
func (o Orientation) MarshalText() ([]byte, error) {
	if o != Vertical && o != Horizontal {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Orientation) UnmarshalText(b []byte) error {
	switch string(b) {
	case "vertical":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("unknown orientation %q", b)
	}
	return nil
}
