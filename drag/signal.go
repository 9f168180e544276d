package drag

import "golang.org/x/exp/slices"

// A Signal is a typed notification source. Consumers connect callbacks
// and destroy the returned listener when they are done; emission calls
// every connected callback synchronously, in connection order.
type Signal[T any] struct {
	listeners []*SignalListener[T]
}

// Connect registers f to run on every emission.
func (s *Signal[T]) Connect(f func(T)) *SignalListener[T] {
	l := &SignalListener[T]{signal: s, f: f}
	s.listeners = append(s.listeners, l)
	return l
}

// Emit calls every connected callback with ev. Listeners connected
// during emission only fire from the next emission; a listener
// destroyed during emission stops firing immediately.
func (s *Signal[T]) Emit(ev T) {
	for _, l := range slices.Clone(s.listeners) {
		if l.signal != nil {
			l.f(ev)
		}
	}
}

// A SignalListener is a single connection to a Signal.
type SignalListener[T any] struct {
	signal *Signal[T]
	f      func(T)
}

// Destroy disconnects the listener. Destroying an already destroyed
// listener is a no-op.
func (l *SignalListener[T]) Destroy() {
	if l.signal == nil {
		return
	}
	i := slices.Index(l.signal.listeners, l)
	if i >= 0 {
		l.signal.listeners = slices.Delete(l.signal.listeners, i, i+1)
	}
	l.signal = nil
}
