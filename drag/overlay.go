package drag

import (
	"github.com/charmbracelet/log"
	"github.com/diamondburned/wayfire/geom"
)

// An outputOverlay makes a dragged view visible and correctly damaged
// on one output while the view's normal render path is suppressed.
// One exists per known output for exactly the duration of a drag.
type outputOverlay struct {
	output Output
	view   View
	tr     *Transform
	log    *log.Logger

	// lastBox is the previous frame's bounding box in output-local
	// coordinates. It is kept so the next frame can damage the old
	// region even if the view resized in between.
	lastBox geom.Rect[int]

	preFrame     Listener
	overlayFrame Listener
}

func newOutputOverlay(out Output, view View, tr *Transform, logger *log.Logger) *outputOverlay {
	o := outputOverlay{
		output: out,
		view:   view,
		tr:     tr,
		log:    logger,
	}
	o.preFrame = out.Render().OnPreFrame(o.applyDamage)
	o.overlayFrame = out.Render().OnOverlayFrame(o.renderOverlay)
	return &o
}

// applyDamage runs once per frame before compositing. Recomputing the
// bounding box here is also what drives the scale animation forward
// on every output, even while the pointer is stationary.
func (o *outputOverlay) applyDamage() {
	bbox := geom.RConv[int](o.tr.BoundingBox(o.view.Geometry()))
	bbox = bbox.Sub(o.output.LayoutGeometry().Min)

	o.log.Debug("damaging drag overlay",
		"output", o.output.Name(), "box", bbox, "last", o.lastBox)

	o.output.Render().Damage(bbox)
	o.output.Render().Damage(o.lastBox)
	o.lastBox = bbox
}

// renderOverlay runs during the overlay compositing pass. It always
// renders the full view, trading efficiency for simplicity.
func (o *outputOverlay) renderOverlay(target RenderTarget) {
	damage := []geom.Rect[int]{
		o.lastBox.Add(o.output.LayoutGeometry().Min),
	}
	o.tr.Render(o.view.Texture(), o.view.Geometry(), damage, target)
}

// destroy unregisters both frame hooks. Restoring the view's normal
// render path is the owning session's job.
func (o *outputOverlay) destroy() {
	o.preFrame.Destroy()
	o.overlayFrame.Destroy()
}
