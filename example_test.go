package curveaxis_test

import (
	"fmt"

	"honnef.co/go/curveaxis"
)

func ExampleCurveXRenderer() {
	x, y := curveaxis.NewCurveRenderers()
	x.SetAutoScale(false)
	y.Length = 20
	x.SetPoints([]curveaxis.Point{
		curveaxis.Pt(0, 0),
		curveaxis.Pt(100, 0),
		curveaxis.Pt(100, 100),
	})
	x.UpdateLayout()

	fmt.Println(x.AxisLength())
	fmt.Println(x.PointPositions())
	fmt.Println(x.PositionToAngle(0.75))
	pt := x.PositionToPoint(0.3, 0, false)
	fmt.Printf("%.3g\n", x.PointToPosition(pt).X)
	// Output:
	// 200
	// [0 0.5 1]
	// 180
	// 0.3
}

func ExampleSerpentineChart() {
	c := curveaxis.NewSerpentineChart(curveaxis.Sz(300, 200))
	c.LevelCount = 3
	c.Layout()

	pts := c.XRenderer().Points()
	fmt.Println(c.Radius(), len(pts), pts[0], pts[len(pts)-1])
	// Output:
	// 25 104 (-125, -50) (125, 50)
}
