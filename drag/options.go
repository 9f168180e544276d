package drag

import (
	"errors"

	"github.com/diamondburned/wayfire/geom"
)

var (
	// ErrDragActive is returned by StartDrag while another drag is in
	// progress. Per-output plugins must treat the session as
	// authoritative and never queue a second drag behind it.
	ErrDragActive = errors.New("drag: a drag is already active")

	// ErrDegenerateView is returned by StartDrag for a view without
	// positive extent, for which no relative anchor exists.
	ErrDegenerateView = errors.New("drag: view has no extent")
)

// Options configures a single drag. The session snapshots it at
// StartDrag; later changes have no effect on a running drag.
type Options struct {
	// InitialScale is the scale factor the view animates towards when
	// picked up. 1 is natural size, 2 is half size. 0 means 1.
	InitialScale float64

	// EnableSnapOff holds the view in place when the drag starts until
	// the input travels SnapOffThreshold pixels from the grab origin.
	// Used for tiled and fullscreen views, which should resist being
	// torn from their slot.
	EnableSnapOff bool

	// SnapOffThreshold is the snap-off distance in layout pixels.
	SnapOffThreshold float64
}

func (o Options) withDefaults() Options {
	if o.InitialScale == 0 {
		o.InitialScale = 1
	}
	return o
}

// FocusOutputEvent is emitted whenever the output under the grab
// point changes, including when the drag first hits an output.
type FocusOutputEvent struct {
	// Previous is the output that was focused up to now. It is nil at
	// the first motion of a drag.
	Previous Output
	// Focus is the newly focused output. It may be nil if the grab
	// point is over a gap in the layout.
	Focus Output
}

// SnapOffEvent is emitted once per drag, when a held view travels past
// the snap-off threshold and comes free.
type SnapOffEvent struct {
	// Focus is the output focused at the moment of snap-off.
	Focus Output
}

// DoneEvent is emitted after a drag ends, whether by input release or
// because the dragged view unmapped. It carries everything a placement
// policy needs to settle the view.
type DoneEvent struct {
	// FocusedOutput is the output where the view was dropped.
	FocusedOutput Output

	// View is the dragged view itself.
	View View

	// RelativeGrab is where within the view the grab was, as a
	// fraction of its size.
	RelativeGrab geom.Point[float64]

	// GrabPosition is the input position at drop time, in layout
	// coordinates.
	GrabPosition geom.Point[float64]
}
