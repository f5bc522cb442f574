package unistroke

import "math"

// Point is a single sample of a stroke.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the point at ratio t along the segment p→q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
	}
}

// Rotate rotates p by angle radians about pivot.
func (p Point) Rotate(angle float64, pivot Point) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: dx*cos - dy*sin + pivot.X,
		Y: dx*sin + dy*cos + pivot.Y,
	}
}

func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}
