package unistroke

import (
	"fmt"
	"math"
)

const (
	DefaultAngleRange     = 45 * math.Pi / 180
	DefaultAnglePrecision = 2 * math.Pi / 180
)

// phi is the golden ratio conjugate.
var phi = 0.5 * (-1 + math.Sqrt(5))

// BestAngleDistance is DistanceAtBestAngle over ±45° with a 2° tolerance.
func BestAngleDistance(points, template Path) (float64, error) {
	return DistanceAtBestAngle(points, template, -DefaultAngleRange, DefaultAngleRange, DefaultAnglePrecision)
}

// DistanceAtBestAngle searches [a, b] for the rotation of points that
// minimizes PathDistance to template, stopping once the bracket is no wider
// than delta. The search assumes the distance is unimodal over the bracket.
// A delta that is not positive fails with ErrInvalidPrecision.
func DistanceAtBestAngle(points, template Path, a, b, delta float64) (float64, error) {
	if len(points) != len(template) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(points), len(template))
	}
	if !(delta > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidPrecision, delta)
	}

	x1 := phi*a + (1-phi)*b
	f1, err := DistanceAtAngle(points, template, x1)
	if err != nil {
		return 0, err
	}
	x2 := (1-phi)*a + phi*b
	f2, err := DistanceAtAngle(points, template, x2)
	if err != nil {
		return 0, err
	}
	for math.Abs(b-a) > delta {
		if f1 < f2 {
			b = x2
			x2 = x1
			f2 = f1
			x1 = phi*a + (1-phi)*b
			f1, err = DistanceAtAngle(points, template, x1)
		} else {
			a = x1
			x1 = x2
			f1 = f2
			x2 = (1-phi)*a + phi*b
			f2, err = DistanceAtAngle(points, template, x2)
		}
		if err != nil {
			return 0, err
		}
	}
	return math.Min(f1, f2), nil
}

func DistanceAtAngle(points, template Path, angle float64) (float64, error) {
	return PathDistance(RotateBy(points, angle), template)
}

// PathDistance is the mean distance between points at the same index. Only
// A is ever rotated by the search, so callers should not assume symmetry of
// the best-angle distance.
func PathDistance(A, B Path) (float64, error) {
	if len(A) != len(B) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(A), len(B))
	}
	if len(A) == 0 {
		return 0, nil
	}
	d := 0.0
	for i := range A {
		d += A[i].Distance(B[i])
	}
	return d / float64(len(A)), nil
}
