// Package drag implements the interactive window-drag engine of a
// compositor: picking a window up with pointer or touch, presenting it
// as a floating scaled overlay on every output it crosses, feeding a
// deformable "wobbly" model along the way, and handing it back with
// correct geometry when dropped.
//
// A plugin using this package is expected to grab input on its output
// and forward events to the single Session shared by all outputs, and
// to connect to the Session's FocusOutput, SnapOff, and Done signals.
// Everything here runs on the compositor's event loop; nothing is safe
// for concurrent use.
package drag

// TransformerName is the name under which a drag session installs its
// scaling transformer on the grabbed view's transformer stack.
const TransformerName = "move-drag-transformer"

// Transformer z-order groups. A transformer with a higher z-order is
// applied on top of lower ones.
const (
	ZOrder2D = 1
	ZOrder3D = 2

	// ZOrderHighLevel is where whole-output layers such as blur and
	// decoration sit. The drag transformer renders directly below it.
	ZOrderHighLevel = 100
)
