package drag

import (
	"iter"

	"deedles.dev/wlr"
	"github.com/diamondburned/wayfire/geom"
)

// A Listener is a connected callback that stops firing when destroyed.
// Hook registrations return one so that acquisition and release always
// pair up.
type Listener interface {
	Destroy()
}

// A View is a single toplevel window being dragged. The session holds
// a View only for the duration of a drag and reacts to the view
// disappearing via OnUnmap; it never manages the view's lifetime.
type View interface {
	// Geometry returns the view's untransformed rectangle in global
	// layout coordinates.
	Geometry() geom.Rect[float64]
	// Move places the view's top-left corner at the given layout
	// coordinates.
	Move(to geom.Point[float64])
	// Texture returns the view's current contents.
	Texture() Texture

	// SetVisible toggles the view's normal render path. A hidden view
	// is only drawn through overlay hooks.
	SetVisible(bool)
	// Damage marks the view's whole area as needing repaint.
	Damage()

	// AddTransformer installs a transformer under the given name.
	// RemoveTransformer undoes it. The view owns the transformer
	// between the two calls.
	AddTransformer(name string, t Transformer)
	RemoveTransformer(name string)

	// SetMoving exempts the view from normal tiling animations while
	// true. Used to hold a snapped view still until it snaps off.
	SetMoving(bool)

	// OnUnmap registers f to run when the view is unmapped.
	OnUnmap(f func()) Listener

	Output() Output
	SetOutput(Output)

	TiledEdges() wlr.Edges
	Fullscreen() bool
	// RequestTile asks the view to tile against the given edges on the
	// given workspace. EdgeNone releases the tiled state.
	RequestTile(edges wlr.Edges, workspace geom.Point[int])
	// RequestFullscreen asks the view to be fullscreen on the given
	// workspace.
	RequestFullscreen(fs bool, workspace geom.Point[int])
}

// An Output is one physical display with its own render pipeline and
// its own origin within the shared layout space.
type Output interface {
	Name() string
	// LayoutGeometry returns the output's rectangle in global layout
	// coordinates.
	LayoutGeometry() geom.Rect[int]
	// Workspace returns the workspace cell the output currently shows.
	Workspace() geom.Point[int]
	Render() RenderPipeline
}

// An OutputLayout is the arrangement of all known outputs.
type OutputLayout interface {
	Outputs() iter.Seq[Output]
	// OutputAt returns the output whose rectangle contains p, or nil.
	OutputAt(p geom.Point[float64]) Output
}

// A RenderPipeline is one output's frame machinery. Damage coordinates
// are local to the output.
type RenderPipeline interface {
	Damage(r geom.Rect[int])
	// OnPreFrame registers a hook that runs once per frame before
	// compositing, while damage can still be submitted.
	OnPreFrame(f func()) Listener
	// OnOverlayFrame registers a hook that runs during the overlay
	// compositing pass with the frame's target framebuffer.
	OnOverlayFrame(f func(RenderTarget)) Listener
}

// A RenderTarget is a framebuffer being composited into.
type RenderTarget interface {
	// Geometry returns the layout-space rectangle the framebuffer
	// covers.
	Geometry() geom.Rect[int]
	// RenderTexture draws t scaled into dst, clipped to clip. Both
	// rectangles are in layout coordinates.
	RenderTexture(t Texture, dst geom.Rect[float64], clip geom.Rect[int])
}

// A Texture is a view's rendered contents.
type Texture interface {
	Size() geom.Point[int]
}

// A Transformer changes how a view is rendered while installed on its
// transformer stack.
type Transformer interface {
	ZOrder() int
	// BoundingBox returns the layout-space box the transformed view
	// occupies, given its untransformed rectangle.
	BoundingBox(view geom.Rect[float64]) geom.Rect[float64]
	// TransformPoint maps a point from the view's natural space into
	// the displayed space. UntransformPoint is its inverse.
	TransformPoint(view geom.Rect[float64], p geom.Point[float64]) geom.Point[float64]
	UntransformPoint(view geom.Rect[float64], p geom.Point[float64]) geom.Point[float64]
	// Render draws the view texture into target for each damaged
	// rectangle.
	Render(tex Texture, view geom.Rect[float64], damage []geom.Rect[int], target RenderTarget)
}

// A Seat is the subset of the compositor's input state the session
// drives directly.
type Seat interface {
	// FocusOutput moves input focus to the given output.
	FocusOutput(Output)
	// SetCursor sets the pointer cursor image by name.
	SetCursor(name string)
}

// A Model is the deformable-mesh simulation that makes dragged windows
// wobble. It is keyed by view; every operation addresses the mesh of
// one view. The session only starts, feeds, and stops it.
type Model interface {
	// Start begins simulating v, grabbed at the given layout position.
	Start(v View, grab geom.Point[float64])
	// Move tracks the raw input position.
	Move(v View, to geom.Point[float64])
	// End releases the grab. The mesh winds down on its own afterward.
	End(v View)
	// Translate shifts the whole mesh, including any grab point.
	Translate(v View, delta geom.Point[float64])
	// SetGeometry snaps the mesh's rest geometry to g without adding
	// energy, so discontinuous geometry changes are not animated.
	SetGeometry(v View, g geom.Rect[float64])
}

// NopModel is a Model that does nothing. It stands in when wobbly
// windows are disabled.
type NopModel struct{}

func (NopModel) Start(View, geom.Point[float64])      {}
func (NopModel) Move(View, geom.Point[float64])       {}
func (NopModel) End(View)                             {}
func (NopModel) Translate(View, geom.Point[float64])  {}
func (NopModel) SetGeometry(View, geom.Rect[float64]) {}
