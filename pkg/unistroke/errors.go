package unistroke

import "errors"

var (
	// ErrInvalidPath is returned for a stroke with fewer than two points or no length.
	ErrInvalidPath = errors.New("unistroke: path needs at least two distinct points")

	// ErrDegeneratePath is returned by ScaleTo when both sides of the bounding
	// box are zero or the box is not finite. One-dimensional boxes are scaled
	// uniformly instead. Through Normalize, Resample already rejects paths of
	// zero length, so in practice it only surfaces for non-finite coordinates.
	ErrDegeneratePath = errors.New("unistroke: path has a degenerate bounding box")

	// ErrLengthMismatch is returned when two compared paths differ in point count.
	ErrLengthMismatch = errors.New("unistroke: paths have different point counts")

	// ErrNoTemplates is returned by Classify and Rank on an empty recognizer.
	ErrNoTemplates = errors.New("unistroke: no templates")

	ErrInvalidSampleCount = errors.New("unistroke: sample count must be between 2 and 4096")
	ErrInvalidPrecision   = errors.New("unistroke: angle precision must be positive")
	ErrEmptyName          = errors.New("unistroke: template name must not be empty")
)
