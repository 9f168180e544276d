// Package geom provides the geometric vocabulary shared by the drag
// engine: generic points and rectangles in the global output-layout
// coordinate space, plus the anchor math that keeps a grabbed window
// pinned under the pointer while it is scaled.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}
