// Package unistroke implements the $1 unistroke gesture recognizer.
//
// A stroke is normalized in four steps before it is compared with anything:
//
//   - Resample to a fixed number of evenly spaced points.
//   - Rotate about the centroid so the indicative angle (first point to
//     centroid) is zero.
//   - Scale the bounding box to a square. Strokes that are close to a line
//     are scaled uniformly instead.
//   - Translate the centroid to the origin.
//
// Templates go through the same pipeline when added. Classification searches
// for the rotation of the stroke that minimizes the mean point-wise distance
// to each template using golden-section search, and converts the smallest
// distance to a score in (-∞, 1], where 1 is a perfect match.
//
// A Recognizer guards its templates with a single lock, so AddTemplate and
// Classify may be called from different goroutines.
package unistroke
