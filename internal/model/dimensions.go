package model

import "math"

// ClassifyDimensions converts three raw bounding-box extents from the
// scene's native linear unit into whole millimeters and orders them so
// that the smallest becomes the panel thickness and the largest its
// length. scale is the native-unit-to-mm factor (see scene.UnitScale).
//
// Rounding is half-away-from-zero. Zero or negative extents are accepted
// as-is; physical validity is the caller's concern.
func ClassifyDimensions(width, height, depth, scale float64) Dimensions {
	a := roundMM(width * scale)
	b := roundMM(height * scale)
	c := roundMM(depth * scale)

	// Sort the three values ascending without pulling in sort for a
	// fixed-size triple.
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return Dimensions{Thickness: a, Width: b, Length: c}
}

// roundMM rounds a millimeter value to the nearest integer, halves away
// from zero.
func roundMM(v float64) int {
	return int(math.Round(v))
}
