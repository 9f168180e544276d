package drag

import (
	"slices"

	"deedles.dev/xiter"
	"github.com/charmbracelet/log"
	"github.com/diamondburned/wayfire/geom"
)

// A Session is the shared state of window dragging across all outputs
// of one compositor. Exactly one Session exists per compositor
// runtime; the per-output plugins that own input grabs all drive the
// same instance, and at most one drag is active at a time.
//
// All methods must be called from the compositor event loop.
type Session struct {
	// FocusOutput fires when the output under the grab point changes.
	FocusOutput Signal[FocusOutputEvent]
	// SnapOff fires once per drag when a held view comes free.
	SnapOff Signal[SnapOffEvent]
	// Done fires after a drag ends, by release or forced unmap.
	Done Signal[DoneEvent]

	layout OutputLayout
	seat   Seat
	model  Model
	log    *log.Logger

	view     View
	tr       *Transform
	current  Output
	overlays []*outputOverlay
	unmap    Listener

	grabOrigin geom.Point[float64]
	held       bool
	opts       Options
}

// SessionParams carries the collaborator services a Session needs.
type SessionParams struct {
	// Layout resolves positions to outputs. Required.
	Layout OutputLayout
	// Seat receives focus and cursor changes. Required.
	Seat Seat
	// Model is the deformable model fed during drags. Nil means
	// NopModel.
	Model Model
	// Log is the session's logger. Nil means log.Default().
	Log *log.Logger
}

// NewSession returns an idle session.
func NewSession(p SessionParams) *Session {
	if p.Model == nil {
		p.Model = NopModel{}
	}
	if p.Log == nil {
		p.Log = log.Default()
	}
	return &Session{
		layout: p.Layout,
		seat:   p.Seat,
		model:  p.Model,
		log:    p.Log,
	}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.view != nil
}

// View returns the view being dragged, or nil while idle.
func (s *Session) View() View {
	return s.view
}

// CurrentOutput returns the output under the grab point. It is nil
// while idle and before the first motion of a drag.
func (s *Session) CurrentOutput() Output {
	return s.current
}

// StartDrag begins dragging view, grabbed at the layout position grab
// which corresponds to the fractional anchor within the view.
//
// It fails with ErrDragActive if a drag is already in progress and
// with ErrDegenerateView if the view has no extent; in both cases the
// session is left untouched.
func (s *Session) StartDrag(view View, grab, anchor geom.Point[float64], opts Options) error {
	if s.view != nil {
		return ErrDragActive
	}
	g := view.Geometry()
	if g.Empty() {
		return ErrDegenerateView
	}

	s.view = view
	s.opts = opts.withDefaults()

	tr := NewTransform(s.log)
	tr.RelativeGrab = anchor
	tr.GrabPosition = grab
	if s.opts.InitialScale != 1 {
		tr.Scale.Animate(s.opts.InitialScale)
	}
	s.tr = tr
	view.AddTransformer(TransformerName, tr)

	// The view is hidden and rendered as an overlay instead.
	view.SetVisible(false)
	view.Damage()

	// Sync the model to the transformed box first so that starting the
	// scale animation is not itself animated as a deformation.
	s.model.SetGeometry(view, tr.BoundingBox(g))
	s.model.Start(view, geom.Pt(
		g.Min.X+anchor.X*g.Dx(),
		g.Min.Y+anchor.Y*g.Dy(),
	))

	s.overlays = slices.Collect(xiter.Map(s.layout.Outputs(),
		func(out Output) *outputOverlay {
			return newOutputOverlay(out, view, tr, s.log)
		}))

	s.seat.SetCursor("grabbing")
	s.unmap = view.OnUnmap(s.handleViewUnmapped)

	if s.opts.EnableSnapOff {
		view.SetMoving(true)
		s.grabOrigin = grab
		s.held = true
	}

	s.log.Debug("drag started", "grab", grab, "anchor", anchor, "held", s.held)
	return nil
}

// StartDragAt is StartDrag with the anchor computed from where grab
// falls within the view's current rectangle.
func (s *Session) StartDragAt(view View, grab geom.Point[float64], opts Options) error {
	g := view.Geometry()
	if g.Empty() {
		return ErrDegenerateView
	}
	return s.StartDrag(view, grab, geom.RelativeAnchor(g, grab), opts)
}

// HandleMotion processes an input motion to the given layout position.
// A drag must be active.
func (s *Session) HandleMotion(to geom.Point[float64]) {
	if s.view == nil {
		panic("drag: motion without an active drag")
	}

	if s.held {
		threshold := s.opts.SnapOffThreshold
		if to.Dist2(s.grabOrigin) >= threshold*threshold {
			s.held = false
			s.view.SetMoving(false)
			s.SnapOff.Emit(SnapOffEvent{Focus: s.current})
		}
	}

	// The model always tracks the raw input, even while the view
	// itself is held in place; the mesh stretching towards the pointer
	// is what gives snap-off its resistance feel.
	s.model.Move(s.view, to)
	if !s.held {
		s.tr.GrabPosition = to
	}

	s.updateCurrentOutput(to)
}

// HandleInputReleased ends the active drag: tears down the per-output
// overlays, restores the view's own render path, winds down the
// deformable model, and emits Done. Calling it with no drag active is
// a programming error.
func (s *Session) HandleInputReleased() {
	if s.view == nil {
		panic("drag: release without an active drag")
	}

	ev := DoneEvent{
		FocusedOutput: s.current,
		View:          s.view,
		RelativeGrab:  s.tr.RelativeGrab,
		GrabPosition:  s.tr.GrabPosition,
	}

	// Overlays go first, with one final damage pass each, so the area
	// the overlay occupied is repainted after the drag.
	for _, o := range s.overlays {
		o.applyDamage()
		o.destroy()
	}
	s.overlays = nil

	s.view.SetVisible(true)
	s.view.RemoveTransformer(TransformerName)

	// End the model, snap its rest geometry to the final transformed
	// box so any residual scale settles smoothly, and express the
	// result in the drop output's local space for consumers.
	s.model.End(s.view)
	s.model.SetGeometry(s.view, s.tr.BoundingBox(s.view.Geometry()))
	var origin geom.Point[float64]
	if s.current != nil {
		origin = geom.PConv[float64](s.current.LayoutGeometry().Min)
	}
	s.model.Translate(s.view, geom.Point[float64]{}.Sub(origin))

	if s.held {
		s.view.SetMoving(false)
	}

	s.view = nil
	s.tr = nil
	s.current = nil
	s.held = false

	// Unsubscribing before emitting means a view unmapping from a Done
	// handler cannot re-enter the release path.
	s.unmap.Destroy()
	s.unmap = nil

	s.Done.Emit(ev)
}

// SetScale re-animates the transform's scale factor towards target.
// Collaborators use it when adopting an in-flight drag, for example to
// bring the view back to natural size. A drag must be active.
func (s *Session) SetScale(target float64) {
	if s.view == nil {
		panic("drag: set scale without an active drag")
	}
	s.tr.Scale.Animate(target)
}

// handleViewUnmapped forces the release sequence when the dragged view
// disappears mid-drag. The same teardown runs as for a normal release,
// so no transform, overlay, or model state can leak.
func (s *Session) handleViewUnmapped() {
	s.log.Debug("dragged view unmapped, forcing release")
	s.HandleInputReleased()
}

func (s *Session) updateCurrentOutput(grab geom.Point[float64]) {
	out := s.layout.OutputAt(grab)
	if out == s.current {
		return
	}

	prev := s.current
	s.current = out
	if out != nil {
		s.seat.FocusOutput(out)
	}
	s.FocusOutput.Emit(FocusOutputEvent{Previous: prev, Focus: out})
}
