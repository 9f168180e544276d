package geom

import "image"

type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X, Y}.
func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{p.X * k, p.Y * k}
}

func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{p.X / k, p.Y / k}
}

func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Dist2 returns the squared distance between p and q. Distance
// thresholds compare against this to avoid the square root.
func (p Point[T]) Dist2(q Point[T]) T {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
