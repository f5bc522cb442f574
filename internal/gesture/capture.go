package gesture

import (
	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
)

const (
	// LiveMinDistance is the spacing used for pointer input: samples closer
	// than this to the previous kept sample are jitter.
	LiveMinDistance = 2.0
	MaxPoints       = 2048
)

// Capture accumulates the points of a stroke as they arrive.
type Capture struct {
	minDistance float64
	points      unistroke.Path
}

// NewCapture returns a Capture that drops points within minDistance of the
// last kept point. Exact repeats are always dropped.
func NewCapture(minDistance float64) *Capture {
	return &Capture{minDistance: minDistance}
}

// AddPoint records (x, y) and reports whether it was kept. Only the most
// recent MaxPoints points are retained.
func (c *Capture) AddPoint(x, y float64) bool {
	newPoint := unistroke.Pt(x, y)

	if len(c.points) > 0 {
		lastPoint := c.points[len(c.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		if dx*dx+dy*dy <= c.minDistance*c.minDistance || (dx == 0 && dy == 0) {
			return false
		}
	}

	c.points = append(c.points, newPoint)
	if len(c.points) > MaxPoints {
		c.points = c.points[len(c.points)-MaxPoints:]
	}
	return true
}

func (c *Capture) Len() int {
	return len(c.points)
}

// Points returns a copy of the captured stroke.
func (c *Capture) Points() unistroke.Path {
	return c.points.Clone()
}

func (c *Capture) Reset() {
	c.points = nil
}

// Filter replays points through a fresh Capture.
func Filter(points []unistroke.Point, minDistance float64) unistroke.Path {
	c := NewCapture(minDistance)
	for _, p := range points {
		c.AddPoint(p.X, p.Y)
	}
	return c.points
}
