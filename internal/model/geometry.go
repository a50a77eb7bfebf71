package model

import "math"

// Points approximates the arc with n+1 evenly spaced points from StartDeg to
// EndDeg.
func (a Arc) Points(n int) Polyline {
	if n < 1 {
		n = 1
	}
	start := a.StartDeg * math.Pi / 180
	end := a.EndDeg * math.Pi / 180

	pts := make(Polyline, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		angle := start + t*(end-start)
		pts[i] = Point2D{
			X: a.Center.X + a.Radius*math.Cos(angle),
			Y: a.Center.Y + a.Radius*math.Sin(angle),
		}
	}
	return pts
}

// ArrowHead returns the two barb ends of an arrow pointing at tip and coming
// from tail. size is the barb length; the barbs open 30° from the shaft.
func ArrowHead(tip, tail Point2D, size float64) (left, right Point2D) {
	dx := tail.X - tip.X
	dy := tail.Y - tip.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return tip, tip
	}
	ux, uy := dx/length, dy/length

	const spread = math.Pi / 6
	cos, sin := math.Cos(spread), math.Sin(spread)
	left = Point2D{
		X: tip.X + size*(ux*cos-uy*sin),
		Y: tip.Y + size*(ux*sin+uy*cos),
	}
	right = Point2D{
		X: tip.X + size*(ux*cos+uy*sin),
		Y: tip.Y + size*(-ux*sin+uy*cos),
	}
	return left, right
}
