package geom

import "math"

// RectAround returns the rectangle of the given size positioned so
// that the fractional anchor maps exactly onto grab. The anchor is in
// [0, 1]² relative to the rectangle: an anchor of (0.5, 0.5) centers
// the rectangle on grab. The corner is floored, never rounded, so that
// a box derived from the same anchor and grab is stable across frames.
func RectAround(size Point[float64], grab Point[float64], anchor Point[float64]) Rect[float64] {
	min := Pt(
		grab.X-math.Floor(anchor.X*size.X),
		grab.Y-math.Floor(anchor.Y*size.Y),
	)
	return Rect[float64]{Min: min, Max: min.Add(size)}
}

// RelativeAnchor returns where grab falls within r as a fraction of
// r's size, the inverse of RectAround. r must have positive width and
// height; callers guarantee this before grabbing a window.
func RelativeAnchor(r Rect[float64], grab Point[float64]) Point[float64] {
	return Pt(
		(grab.X-r.Min.X)/r.Dx(),
		(grab.Y-r.Min.Y)/r.Dy(),
	)
}
