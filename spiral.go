package curveaxis

import "math"

// SpiralPoints approximates an Archimedean spiral around center. The radius
// grows linearly from innerRadius at startAngle to radius at endAngle. Angles
// are in degrees. The sweep is divided so that every full turn gets
// pointsPerTurn segments.
func SpiralPoints(center Point, innerRadius, radius, startAngle, endAngle float64, pointsPerTurn int) []Point {
	sweep := endAngle - startAngle
	if pointsPerTurn < 1 {
		pointsPerTurn = 1
	}
	n := int(math.Ceil(math.Abs(sweep) / 360 * float64(pointsPerTurn)))
	n = max(n, 1)
	pts := make([]Point, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		a := (startAngle + sweep*t) * radians
		r := innerRadius + (radius-innerRadius)*t
		pts[i] = center.Translate(VecFromAngle(a).Mul(r))
	}
	return pts
}

// SpiralChart winds its X axis in a spiral of LevelCount turns, from the
// inside out.
type SpiralChart struct {
	*CurveChart

	LevelCount int
	// InnerRadius is the radius at which the spiral starts, as a fraction of
	// the plot radius.
	InnerRadius float64
	// StartAngle and EndAngle, in degrees, bound the first and the last turn.
	StartAngle float64
	EndAngle   float64
	// YAxisRadius is the length of the Y axis as a fraction of the distance
	// between two turns.
	YAxisRadius float64
}

func NewSpiralChart(plot Size) *SpiralChart {
	s := &SpiralChart{
		CurveChart:  NewCurveChart(plot),
		LevelCount:  3,
		EndAngle:    360,
		YAxisRadius: 0.8,
	}
	s.y.AxisLocation = 0.5
	s.x.SetAutoScale(false)
	s.generate = s.updatePoints
	return s
}

func (s *SpiralChart) updatePoints() {
	if s.LevelCount < 1 {
		Logger().Debug("spiral without levels", "levels", s.LevelCount)
		s.y.Length = 0
		s.x.SetPoints(nil)
		return
	}
	radius := s.plot.MinSide() / 2
	inner := radius * s.InnerRadius
	step := (radius - inner) / float64(s.LevelCount+1)
	if !(step > 0) {
		Logger().Debug("spiral radius is not positive", "radius", radius, "inner", inner)
		s.y.Length = 0
		s.x.SetPoints(nil)
		return
	}
	r0 := inner + step/2
	sweep := s.EndAngle - s.StartAngle + 360*float64(s.LevelCount-1)
	s.y.Length = step * s.YAxisRadius
	s.x.SetPoints(SpiralPoints(Point{}, r0, r0+step*sweep/360, s.StartAngle, s.StartAngle+sweep, 20))
}
