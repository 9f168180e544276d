package drag_test

import (
	"fmt"
	"iter"

	"deedles.dev/wlr"
	"github.com/diamondburned/wayfire/drag"
	"github.com/diamondburned/wayfire/geom"
	"golang.org/x/exp/slices"
)

type fakeListener struct {
	destroy   func()
	destroyed bool
}

func (l *fakeListener) Destroy() {
	if !l.destroyed {
		l.destroyed = true
		l.destroy()
	}
}

type fakeTexture struct {
	size geom.Point[int]
}

func (t fakeTexture) Size() geom.Point[int] { return t.size }

type overlayHook struct {
	f func(drag.RenderTarget)
}

type fakePipeline struct {
	damage  []geom.Rect[int]
	pre     []*func()
	overlay []*overlayHook
	target  drag.RenderTarget
}

func (p *fakePipeline) Damage(r geom.Rect[int]) {
	p.damage = append(p.damage, r)
}

func (p *fakePipeline) OnPreFrame(f func()) drag.Listener {
	h := &f
	p.pre = append(p.pre, h)
	return &fakeListener{destroy: func() {
		i := slices.Index(p.pre, h)
		p.pre = slices.Delete(p.pre, i, i+1)
	}}
}

func (p *fakePipeline) OnOverlayFrame(f func(drag.RenderTarget)) drag.Listener {
	h := &overlayHook{f: f}
	p.overlay = append(p.overlay, h)
	return &fakeListener{destroy: func() {
		i := slices.Index(p.overlay, h)
		p.overlay = slices.Delete(p.overlay, i, i+1)
	}}
}

// frame runs one output frame: all pre-frame hooks, then all overlay
// hooks against the pipeline's target.
func (p *fakePipeline) frame() {
	for _, h := range slices.Clone(p.pre) {
		(*h)()
	}
	for _, h := range slices.Clone(p.overlay) {
		h.f(p.target)
	}
}

func (p *fakePipeline) hookCount() int {
	return len(p.pre) + len(p.overlay)
}

type renderCall struct {
	tex  drag.Texture
	dst  geom.Rect[float64]
	clip geom.Rect[int]
}

type recordTarget struct {
	geometry geom.Rect[int]
	renders  []renderCall
}

func (t *recordTarget) Geometry() geom.Rect[int] { return t.geometry }

func (t *recordTarget) RenderTexture(tex drag.Texture, dst geom.Rect[float64], clip geom.Rect[int]) {
	t.renders = append(t.renders, renderCall{tex: tex, dst: dst, clip: clip})
}

type fakeOutput struct {
	name     string
	geometry geom.Rect[int]
	ws       geom.Point[int]
	pipe     *fakePipeline
}

func newFakeOutput(name string, geometry geom.Rect[int]) *fakeOutput {
	return &fakeOutput{
		name:     name,
		geometry: geometry,
		pipe:     &fakePipeline{},
	}
}

func (o *fakeOutput) Name() string                   { return o.name }
func (o *fakeOutput) LayoutGeometry() geom.Rect[int] { return o.geometry }
func (o *fakeOutput) Workspace() geom.Point[int]     { return o.ws }
func (o *fakeOutput) Render() drag.RenderPipeline    { return o.pipe }

type fakeLayout struct {
	outputs []*fakeOutput
}

func (l *fakeLayout) Outputs() iter.Seq[drag.Output] {
	return func(yield func(drag.Output) bool) {
		for _, out := range l.outputs {
			if !yield(out) {
				return
			}
		}
	}
}

func (l *fakeLayout) OutputAt(p geom.Point[float64]) drag.Output {
	for _, out := range l.outputs {
		if p.In(geom.RConv[float64](out.geometry)) {
			return out
		}
	}
	return nil
}

type fakeSeat struct {
	focused []drag.Output
	cursors []string
}

func (s *fakeSeat) FocusOutput(out drag.Output) { s.focused = append(s.focused, out) }
func (s *fakeSeat) SetCursor(name string)       { s.cursors = append(s.cursors, name) }

type tileRequest struct {
	edges wlr.Edges
	ws    geom.Point[int]
}

type fullscreenRequest struct {
	fs bool
	ws geom.Point[int]
}

type fakeView struct {
	geometry geom.Rect[float64]
	texture  drag.Texture

	visible      bool
	moving       bool
	damageCount  int
	transformers map[string]drag.Transformer

	unmap         func()
	unmapListener *fakeListener

	output     drag.Output
	tiled      wlr.Edges
	fullscreen bool

	tileRequests       []tileRequest
	fullscreenRequests []fullscreenRequest
}

func newFakeView(geometry geom.Rect[float64]) *fakeView {
	return &fakeView{
		geometry:     geometry,
		texture:      fakeTexture{size: geom.PConv[int](geometry.Size())},
		visible:      true,
		transformers: make(map[string]drag.Transformer),
	}
}

func (v *fakeView) Geometry() geom.Rect[float64] { return v.geometry }
func (v *fakeView) Texture() drag.Texture        { return v.texture }
func (v *fakeView) SetVisible(visible bool)      { v.visible = visible }
func (v *fakeView) Damage()                      { v.damageCount++ }
func (v *fakeView) SetMoving(moving bool)        { v.moving = moving }

func (v *fakeView) Move(to geom.Point[float64]) {
	v.geometry = geom.Rect[float64]{Min: to, Max: to.Add(v.geometry.Size())}
}

func (v *fakeView) AddTransformer(name string, t drag.Transformer) {
	if _, ok := v.transformers[name]; ok {
		panic(fmt.Sprintf("transformer %q added twice", name))
	}
	v.transformers[name] = t
}

func (v *fakeView) RemoveTransformer(name string) {
	if _, ok := v.transformers[name]; !ok {
		panic(fmt.Sprintf("transformer %q not installed", name))
	}
	delete(v.transformers, name)
}

func (v *fakeView) OnUnmap(f func()) drag.Listener {
	v.unmap = f
	v.unmapListener = &fakeListener{destroy: func() { v.unmap = nil }}
	return v.unmapListener
}

// triggerUnmap simulates the view disappearing.
func (v *fakeView) triggerUnmap() {
	if v.unmap != nil {
		v.unmap()
	}
}

func (v *fakeView) Output() drag.Output       { return v.output }
func (v *fakeView) SetOutput(out drag.Output) { v.output = out }
func (v *fakeView) TiledEdges() wlr.Edges     { return v.tiled }
func (v *fakeView) Fullscreen() bool          { return v.fullscreen }

func (v *fakeView) RequestTile(edges wlr.Edges, ws geom.Point[int]) {
	v.tileRequests = append(v.tileRequests, tileRequest{edges: edges, ws: ws})
	v.tiled = edges
}

func (v *fakeView) RequestFullscreen(fs bool, ws geom.Point[int]) {
	v.fullscreenRequests = append(v.fullscreenRequests, fullscreenRequest{fs: fs, ws: ws})
	v.fullscreen = fs
}

// recordModel records deformable-model calls in order.
type recordModel struct {
	calls []string
	moves []geom.Point[float64]
	geos  []geom.Rect[float64]

	// onMove, if set, runs on every Move call. Tests use it to check
	// ordering against signal emissions.
	onMove func()
}

func (m *recordModel) Start(v drag.View, grab geom.Point[float64]) {
	m.calls = append(m.calls, "start")
	m.moves = append(m.moves, grab)
}

func (m *recordModel) Move(v drag.View, to geom.Point[float64]) {
	m.calls = append(m.calls, "move")
	m.moves = append(m.moves, to)
	if m.onMove != nil {
		m.onMove()
	}
}

func (m *recordModel) End(v drag.View) {
	m.calls = append(m.calls, "end")
}

func (m *recordModel) Translate(v drag.View, delta geom.Point[float64]) {
	m.calls = append(m.calls, fmt.Sprintf("translate(%v,%v)", delta.X, delta.Y))
}

func (m *recordModel) SetGeometry(v drag.View, g geom.Rect[float64]) {
	m.calls = append(m.calls, "setgeometry")
	m.geos = append(m.geos, g)
}

// newTestSession wires a session against the given outputs and returns
// it with its collaborators.
func newTestSession(outputs ...*fakeOutput) (*drag.Session, *fakeLayout, *fakeSeat, *recordModel) {
	layout := &fakeLayout{outputs: outputs}
	seat := &fakeSeat{}
	model := &recordModel{}
	s := drag.NewSession(drag.SessionParams{
		Layout: layout,
		Seat:   seat,
		Model:  model,
	})
	return s, layout, seat, model
}
