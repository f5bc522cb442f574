package unistroke_test

import (
	"math"

	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
)

// line returns n colinear points one unit apart along +x.
func line(n int) unistroke.Path {
	points := make(unistroke.Path, n)
	for i := range points {
		points[i] = unistroke.Pt(float64(i), 0)
	}
	return points
}

// noisyLine is line(n) with the interior points nudged alternately up and
// down by amp.
func noisyLine(n int, amp float64) unistroke.Path {
	points := line(n)
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			points[i].Y = amp
		} else {
			points[i].Y = -amp
		}
	}
	return points
}

func vertical(n int) unistroke.Path {
	points := make(unistroke.Path, n)
	for i := range points {
		points[i] = unistroke.Pt(0, float64(i))
	}
	return points
}

func noisyVertical(n int, amp float64) unistroke.Path {
	points := vertical(n)
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			points[i].X = amp
		} else {
			points[i].X = -amp
		}
	}
	return points
}

func circle(n int, r float64) unistroke.Path {
	points := make(unistroke.Path, n)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		points[i] = unistroke.Pt(100+r*math.Cos(t), 100+r*math.Sin(t))
	}
	return points
}

// caret is an upside-down V drawn left to right.
func caret() unistroke.Path {
	var points unistroke.Path
	for i := 0; i <= 20; i++ {
		points = append(points, unistroke.Pt(float64(i), float64(i)*1.5))
	}
	for i := 1; i <= 20; i++ {
		points = append(points, unistroke.Pt(20+float64(i), 30-float64(i)*1.5))
	}
	return points
}

// zigzag is a three-segment Z shape.
func zigzag() unistroke.Path {
	var points unistroke.Path
	for i := 0; i <= 20; i++ {
		points = append(points, unistroke.Pt(float64(i), 0))
	}
	for i := 1; i <= 20; i++ {
		points = append(points, unistroke.Pt(20-float64(i), float64(i)))
	}
	for i := 1; i <= 20; i++ {
		points = append(points, unistroke.Pt(float64(i), 20))
	}
	return points
}

func transform(points unistroke.Path, angle, scale float64, offset unistroke.Point) unistroke.Path {
	out := make(unistroke.Path, len(points))
	for i, p := range points {
		out[i] = p.Rotate(angle, unistroke.Point{}).Scale(scale, scale).Add(offset)
	}
	return out
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
