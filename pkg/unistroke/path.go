package unistroke

import "math"

// Path is an ordered sequence of points in the order they were drawn.
type Path []Point

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func PathLength(points Path) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += points[i-1].Distance(points[i])
	}
	return d
}

func Centroid(points Path) Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}
}

func BoundingBox(points Path) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}
