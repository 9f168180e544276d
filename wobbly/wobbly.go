// Package wobbly implements a deformable-mesh model for dragged
// windows: a grid of spring-coupled control points with the grab point
// pinned to the pointer, so the window stretches towards the input and
// oscillates back when released.
//
// A Simulator implements drag.Model. The drag session starts, feeds,
// and ends meshes; the compositor advances them by calling Step once
// per frame. Like the rest of the engine it runs entirely on the event
// loop and holds no locks.
package wobbly

import (
	"math"

	"github.com/diamondburned/wayfire/drag"
	"github.com/diamondburned/wayfire/geom"
)

const (
	// DefaultGridSize is the number of control points per mesh axis.
	DefaultGridSize = 4

	// DefaultSpringK is the stiffness pulling each control point
	// towards its rest position, per second².
	DefaultSpringK = 120

	// DefaultFriction is the velocity damping factor, per second.
	DefaultFriction = 8
)

// restThreshold is the squared displacement-plus-velocity magnitude
// below which an ungrabbed mesh counts as settled.
const restThreshold = 0.05

// A Simulator owns one mesh per view being simulated. Views are map
// keys, so the concrete View implementations must be comparable;
// pointer implementations always are.
type Simulator struct {
	// GridSize, SpringK, and Friction configure newly started meshes.
	// Zero values mean the package defaults.
	GridSize int
	SpringK  float64
	Friction float64

	meshes map[drag.View]*Mesh
}

// NewSimulator returns a simulator with default parameters and no
// active meshes.
func NewSimulator() *Simulator {
	return &Simulator{
		meshes: make(map[drag.View]*Mesh),
	}
}

func (sim *Simulator) gridSize() int {
	if sim.GridSize > 1 {
		return sim.GridSize
	}
	return DefaultGridSize
}

// Start begins simulating v, grabbed at the given layout position. A
// view that is already simulated is re-grabbed in place, keeping any
// residual motion.
func (sim *Simulator) Start(v drag.View, grab geom.Point[float64]) {
	m := sim.meshes[v]
	if m == nil {
		m = newMesh(v.Geometry(), sim.gridSize(), sim.SpringK, sim.Friction)
		sim.meshes[v] = m
	}
	m.grabAt(grab)
}

// Move tracks the raw input position for v's grab point.
func (sim *Simulator) Move(v drag.View, to geom.Point[float64]) {
	if m := sim.meshes[v]; m != nil {
		m.moveGrab(to)
	}
}

// End releases v's grab. The mesh keeps simulating until it settles,
// at which point Step drops it.
func (sim *Simulator) End(v drag.View) {
	if m := sim.meshes[v]; m != nil {
		m.release()
	}
}

// Translate shifts v's whole mesh, including its grab target.
func (sim *Simulator) Translate(v drag.View, delta geom.Point[float64]) {
	if m := sim.meshes[v]; m != nil {
		m.translate(delta)
	}
}

// SetGeometry snaps v's rest geometry to g. Control points keep their
// current offsets from their rest positions, so no energy is added and
// the change is not itself animated.
func (sim *Simulator) SetGeometry(v drag.View, g geom.Rect[float64]) {
	if m := sim.meshes[v]; m != nil {
		m.setGeometry(g)
	}
}

// Mesh returns v's mesh, or nil if v is not simulated.
func (sim *Simulator) Mesh(v drag.View) *Mesh {
	return sim.meshes[v]
}

// Step advances every mesh by dt seconds and drops meshes that have
// settled. It is called once per frame by the compositor.
func (sim *Simulator) Step(dt float64) {
	for v, m := range sim.meshes {
		m.step(dt)
		if m.settled() {
			delete(sim.meshes, v)
		}
	}
}

// A Mesh is the spring grid of one view.
type Mesh struct {
	size     int
	springK  float64
	friction float64

	base geom.Rect[float64] // rest geometry

	// offset shifts all rest positions so the grabbed point's rest
	// position coincides with the grab target. It survives release so
	// the mesh settles where it was dropped.
	offset geom.Point[float64]

	pos    []geom.Point[float64]
	vel    []geom.Point[float64]
	grab   int // pinned point index, -1 when released
	locked bool
}

func newMesh(base geom.Rect[float64], size int, springK, friction float64) *Mesh {
	if springK == 0 {
		springK = DefaultSpringK
	}
	if friction == 0 {
		friction = DefaultFriction
	}

	m := Mesh{
		size:     size,
		springK:  springK,
		friction: friction,
		base:     base,
		pos:      make([]geom.Point[float64], size*size),
		vel:      make([]geom.Point[float64], size*size),
		grab:     -1,
	}
	for i := range m.pos {
		m.pos[i] = m.restPos(i)
	}
	return &m
}

// restPos returns the current rest position of control point i.
func (m *Mesh) restPos(i int) geom.Point[float64] {
	n := float64(m.size - 1)
	x, y := float64(i%m.size), float64(i/m.size)
	return geom.Pt(
		m.base.Min.X+m.base.Dx()*x/n,
		m.base.Min.Y+m.base.Dy()*y/n,
	).Add(m.offset)
}

func (m *Mesh) grabAt(grab geom.Point[float64]) {
	best, bestDist := 0, math.Inf(1)
	for i := range m.pos {
		if d := m.restPos(i).Dist2(grab); d < bestDist {
			best, bestDist = i, d
		}
	}
	m.grab = best
	m.moveGrab(grab)
}

func (m *Mesh) moveGrab(to geom.Point[float64]) {
	if m.grab < 0 {
		return
	}
	// Re-anchor the rest grid so the pinned point's rest position is
	// exactly the grab target; every other point springs after it.
	m.offset = geom.Point[float64]{}
	m.offset = to.Sub(m.restPos(m.grab))
	m.pos[m.grab] = to
	m.vel[m.grab] = geom.Point[float64]{}
}

func (m *Mesh) release() {
	m.grab = -1
}

func (m *Mesh) translate(delta geom.Point[float64]) {
	m.offset = m.offset.Add(delta)
	for i := range m.pos {
		m.pos[i] = m.pos[i].Add(delta)
	}
}

func (m *Mesh) setGeometry(g geom.Rect[float64]) {
	old := make([]geom.Point[float64], len(m.pos))
	for i := range old {
		old[i] = m.restPos(i)
	}

	m.base = g
	if m.grab >= 0 {
		// Keep the pinned point's rest position where the grab is.
		target := m.pos[m.grab]
		m.offset = geom.Point[float64]{}
		m.offset = target.Sub(m.restPos(m.grab))
	}

	for i := range m.pos {
		m.pos[i] = m.restPos(i).Add(m.pos[i].Sub(old[i]))
	}
}

// Lock snaps the mesh's corner points to their rest positions and
// pins them there, so a tiled window's outline stays rigid while its
// interior wobbles. Unlock releases them.
func (m *Mesh) Lock() {
	m.locked = true
	for _, i := range m.corners() {
		m.pos[i] = m.restPos(i)
		m.vel[i] = geom.Point[float64]{}
	}
}

func (m *Mesh) Unlock() {
	m.locked = false
}

// Locked reports whether the corner points are pinned.
func (m *Mesh) Locked() bool {
	return m.locked
}

func (m *Mesh) corners() [4]int {
	n := m.size
	return [4]int{0, n - 1, n * (n - 1), n*n - 1}
}

func (m *Mesh) pinned(i int) bool {
	if i == m.grab {
		return true
	}
	if !m.locked {
		return false
	}
	for _, c := range m.corners() {
		if i == c {
			return true
		}
	}
	return false
}

func (m *Mesh) step(dt float64) {
	for i := range m.pos {
		if m.pinned(i) {
			continue
		}
		accel := m.restPos(i).Sub(m.pos[i]).Mul(m.springK).
			Sub(m.vel[i].Mul(m.friction))
		m.vel[i] = m.vel[i].Add(accel.Mul(dt))
		m.pos[i] = m.pos[i].Add(m.vel[i].Mul(dt))
	}
}

func (m *Mesh) settled() bool {
	if m.grab >= 0 {
		return false
	}
	var worst float64
	for i := range m.pos {
		if m.pinned(i) {
			continue
		}
		worst = math.Max(worst, m.restPos(i).Dist2(m.pos[i])+m.vel[i].Dist2(geom.Point[float64]{}))
	}
	return worst < restThreshold
}

// Grabbed reports whether the mesh currently has a pinned grab point.
func (m *Mesh) Grabbed() bool {
	return m.grab >= 0
}

// Points returns the current positions of all control points in
// row-major order. The slice aliases the mesh's state; callers must
// not modify it.
func (m *Mesh) Points() []geom.Point[float64] {
	return m.pos
}

// BoundingBox returns the box containing every control point, the
// region a deformed render of the view must cover.
func (m *Mesh) BoundingBox() geom.Rect[float64] {
	bbox := geom.Rect[float64]{Min: m.pos[0], Max: m.pos[0]}
	for _, p := range m.pos[1:] {
		bbox.Min.X = math.Min(bbox.Min.X, p.X)
		bbox.Min.Y = math.Min(bbox.Min.Y, p.Y)
		bbox.Max.X = math.Max(bbox.Max.X, p.X)
		bbox.Max.Y = math.Max(bbox.Max.Y, p.Y)
	}
	return bbox
}
