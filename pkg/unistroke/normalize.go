// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package unistroke

import (
	"fmt"
	"math"
)

const (
	DefaultSampleCount   = 64
	DefaultSquareSize    = 250.
	DefaultOneDThreshold = 0.3

	// MaxSampleCount is the largest n Resample accepts.
	MaxSampleCount = 4096
)

// Orientation selects how much of a stroke's rotation normalization removes.
type Orientation int

const (
	// RotationInvariant rotates every path so its indicative angle is zero.
	RotationInvariant Orientation = iota
	// OrientationSensitive restores the indicative angle after scaling, so
	// only the best-angle search window absorbs rotation.
	OrientationSensitive
)

func (o Orientation) String() string {
	switch o {
	case RotationInvariant:
		return "invariant"
	case OrientationSensitive:
		return "sensitive"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "invariant", "":
		return RotationInvariant, nil
	case "sensitive":
		return OrientationSensitive, nil
	}
	return 0, fmt.Errorf("unistroke: unknown orientation %q", s)
}

// Normalizer turns raw strokes into comparable paths of exactly N points,
// centered on Origin and scaled to a Size×Size box.
type Normalizer struct {
	N             int
	Size          float64
	Origin        Point
	OneDThreshold float64
	Orientation   Orientation
}

func DefaultNormalizer() Normalizer {
	return Normalizer{
		N:             DefaultSampleCount,
		Size:          DefaultSquareSize,
		OneDThreshold: DefaultOneDThreshold,
	}
}

// Normalize runs the resample, rotate, scale and translate steps. The input
// is never modified.
func (n Normalizer) Normalize(raw Path) (Path, error) {
	// Step 1
	points, err := Resample(raw, n.N)
	if err != nil {
		return nil, err
	}
	// Step 2
	angle := IndicativeAngle(points)
	points = RotateBy(points, -angle)
	// Step 3
	points, err = ScaleTo(points, n.Size, n.OneDThreshold)
	if err != nil {
		return nil, err
	}
	if n.Orientation == OrientationSensitive {
		points = RotateBy(points, angle)
	}
	return TranslateTo(points, n.Origin), nil
}

// Resample returns n points spaced evenly along the path. The first and last
// samples are the first and last input points.
func Resample(points Path, n int) (Path, error) {
	if n < 2 || n > MaxSampleCount {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d point(s)", ErrInvalidPath, len(points))
	}
	length := PathLength(points)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: path length is %v", ErrInvalidPath, length)
	}

	I := length / float64(n-1)
	D := 0.0
	newPoints := make(Path, 0, n)
	newPoints = append(newPoints, points[0])
	prev := points[0]
	// The last sample is always the final input point, so interior emission
	// stops at n-1 regardless of rounding in the accumulated distance.
	for i := 1; i < len(points) && len(newPoints) < n-1; {
		d := prev.Distance(points[i])
		if D+d >= I {
			q := prev.Lerp(points[i], (I-D)/d)
			newPoints = append(newPoints, q)
			prev = q
			D = 0
			continue
		}
		D += d
		prev = points[i]
		i++
	}
	last := points[len(points)-1]
	for len(newPoints) < n {
		newPoints = append(newPoints, last)
	}
	return newPoints, nil
}

// IndicativeAngle is the angle from the first point to the centroid.
func IndicativeAngle(points Path) float64 {
	c := Centroid(points)
	return math.Atan2(c.Y-points[0].Y, c.X-points[0].X)
}

// RotateBy rotates every point by angle radians about the centroid.
func RotateBy(points Path, angle float64) Path {
	c := Centroid(points)
	out := make(Path, len(points))
	for i, p := range points {
		out[i] = p.Rotate(angle, c)
	}
	return out
}

// ScaleTo scales the path so its bounding box becomes size×size. Paths whose
// short side is at most oneDThreshold times the long side are treated as
// lines and scaled uniformly so the long side becomes size.
func ScaleTo(points Path, size, oneDThreshold float64) (Path, error) {
	B := BoundingBox(points)
	w, h := B.Width(), B.Height()
	if !finite(w) || !finite(h) || (w == 0 && h == 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrDegeneratePath, w, h)
	}

	sx, sy := size/w, size/h
	short, long := math.Min(w, h), math.Max(w, h)
	if short == 0 || short <= oneDThreshold*long {
		sx = size / long
		sy = sx
	}

	out := make(Path, len(points))
	for i, p := range points {
		out[i] = p.Scale(sx, sy)
	}
	return out, nil
}

// TranslateTo moves the path so its centroid lands on k.
func TranslateTo(points Path, k Point) Path {
	c := Centroid(points)
	out := make(Path, len(points))
	for i, p := range points {
		out[i] = p.Add(k).Sub(c)
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
