// Package anim implements small restartable interpolations for
// animated scalars. An Animation is a value-over-time function that is
// sampled whenever its current value is needed, typically once per
// output frame, rather than being driven by a timer.
package anim

import (
	"math"
	"time"
)

// DefaultDuration is the transition length used when an Animation is
// created without an explicit one.
const DefaultDuration = 300 * time.Millisecond

// An Animation eases a float64 from a start value to an end value over
// a fixed duration. Restarting the animation mid-flight begins a new
// transition from the currently sampled value, so the output never
// jumps unless Set is called.
//
// The zero value is usable and reports a constant 0.
type Animation struct {
	// Duration is the length of a single transition. If it is 0,
	// DefaultDuration is used.
	Duration time.Duration

	// Now reports the current time. It exists so that tests can
	// control sampling; if it is nil, time.Now is used.
	Now func() time.Time

	from, to float64
	started  time.Time
}

// New returns an animation holding steady at v.
func New(v float64) *Animation {
	a := Animation{}
	a.Set(v)
	return &a
}

func (a *Animation) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Animation) duration() time.Duration {
	if a.Duration > 0 {
		return a.Duration
	}
	return DefaultDuration
}

// Set jumps the animation to v with no transition.
func (a *Animation) Set(v float64) {
	a.from = v
	a.to = v
	a.started = time.Time{}
}

// Animate starts a transition from the current sampled value to v.
func (a *Animation) Animate(v float64) {
	a.AnimateFrom(a.Value(), v)
}

// AnimateFrom starts a transition from from to to, regardless of the
// current value.
func (a *Animation) AnimateFrom(from, to float64) {
	a.from = from
	a.to = to
	a.started = a.now()
}

// Value samples the animation at the current time.
func (a *Animation) Value() float64 {
	t := a.progress()
	return a.from + (a.to-a.from)*ease(t)
}

// Target returns the value that the animation is heading towards.
func (a *Animation) Target() float64 {
	return a.to
}

// Running reports whether the animation is still in transition. A
// running animation needs to keep being sampled, which for the drag
// overlay means the output must keep being damaged.
func (a *Animation) Running() bool {
	return a.progress() < 1
}

func (a *Animation) progress() float64 {
	if a.started.IsZero() {
		return 1
	}
	elapsed := a.now().Sub(a.started)
	if elapsed >= a.duration() {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(a.duration())
}

// ease is a circular ease-out: fast to start, settling smoothly.
func ease(t float64) float64 {
	return math.Sqrt(1 - (t-1)*(t-1))
}
