package drag

import (
	"github.com/charmbracelet/log"
	"github.com/diamondburned/wayfire/anim"
	"github.com/diamondburned/wayfire/geom"
)

// A Transform presents the dragged view as a floating, optionally
// scaled overlay anchored on the grab point, independent of the view's
// real placement. It is installed on the view's transformer stack for
// exactly the duration of a drag.
type Transform struct {
	// Scale is the animated scale factor. 1 is natural size; a factor
	// of 2 halves the view's width and height.
	Scale *anim.Animation

	// RelativeGrab is where within the view the grab occurred, in
	// [0, 1]². It never changes during a drag.
	RelativeGrab geom.Point[float64]

	// GrabPosition is the current absolute position of the grab point
	// in layout coordinates, updated on every motion event.
	GrabPosition geom.Point[float64]

	log *log.Logger
}

// NewTransform returns a transform at natural scale.
func NewTransform(logger *log.Logger) *Transform {
	if logger == nil {
		logger = log.Default()
	}
	return &Transform{
		Scale: anim.New(1),
		log:   logger,
	}
}

func (tr *Transform) ZOrder() int {
	return ZOrderHighLevel - 1
}

// BoundingBox returns the box the scaled view occupies: the natural
// size divided by the sampled scale factor, anchored so that
// RelativeGrab maps exactly onto GrabPosition.
func (tr *Transform) BoundingBox(view geom.Rect[float64]) geom.Rect[float64] {
	size := view.Size().Div(tr.Scale.Value())
	return geom.RectAround(size, tr.GrabPosition, tr.RelativeGrab)
}

// scaleAroundGrab scales p by factor around the grab point within
// view, the shared formula behind both point mappings.
func (tr *Transform) scaleAroundGrab(view geom.Rect[float64], p geom.Point[float64], factor float64) geom.Point[float64] {
	g := geom.Pt(
		view.Min.X+view.Dx()*tr.RelativeGrab.X,
		view.Min.Y+view.Dy()*tr.RelativeGrab.Y,
	)
	return p.Sub(g).Mul(factor).Add(g)
}

// TransformPoint maps p from the view's natural space into the
// displayed space. The view is hidden and rendered only as an overlay
// during a drag, so nothing should ask for this; answer anyway rather
// than break a live interaction.
func (tr *Transform) TransformPoint(view geom.Rect[float64], p geom.Point[float64]) geom.Point[float64] {
	tr.log.Warn("unexpected point transform for dragged overlay view")
	return tr.scaleAroundGrab(view, p, 1/tr.Scale.Value())
}

// UntransformPoint maps p from the displayed space back into the
// view's natural space. See TransformPoint.
func (tr *Transform) UntransformPoint(view geom.Rect[float64], p geom.Point[float64]) geom.Point[float64] {
	tr.log.Warn("unexpected point untransform for dragged overlay view")
	return tr.scaleAroundGrab(view, p, tr.Scale.Value())
}

// Render blits the whole view texture into the transform's bounding
// box once per damaged rectangle, clipped to it. The transform is
// treated as fully transparent-capable; no opaque-region optimization.
func (tr *Transform) Render(tex Texture, view geom.Rect[float64], damage []geom.Rect[int], target RenderTarget) {
	bbox := tr.BoundingBox(view)
	for _, clip := range damage {
		target.RenderTexture(tex, bbox, clip)
	}
}
