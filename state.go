package tui

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/tuicss/internal/debug"
)

// batchContext defers binding callbacks while App.Batch is running.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // latest callback per binding id
	pendingOrder []uint64          // binding ids in first-triggered order
}

// nextBindingID makes binding ids unique across all State instances.
var nextBindingID atomic.Uint64

// State is a value shared between parts of an app. Setting it notifies its
// bindings and schedules a render.
//
// Get is safe from any goroutine. Set must be called on the event loop; use
// App.Post from other goroutines.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	app      *App
}

type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind removes a binding.
type Unbind func()

// NewState creates a state owned by app.
func NewState[T any](app *App, initial T) *State[T] {
	if app == nil {
		panic("tui: nil app in NewState")
	}
	return &State[T]{value: initial, app: app}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v, marks the app dirty and runs the bindings, or queues them
// when inside App.Batch.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	fire := append([]*binding[T](nil), active...)
	s.mu.Unlock()

	s.app.MarkDirty()

	batch := &s.app.batch
	batch.mu.Lock()
	if batch.depth > 0 {
		for _, b := range fire {
			fn := b.fn
			if _, seen := batch.pending[b.id]; !seen {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(v) }
		}
		batch.mu.Unlock()
		debug.Log("State.Set: deferred %d bindings", len(fire))
		return
	}
	batch.mu.Unlock()

	for _, b := range fire {
		b.fn(v)
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to run on every Set, in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: nextBindingID.Add(1), fn: fn, active: true}
	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch runs fn and defers binding callbacks until it returns. A binding
// triggered several times runs once with the last value. Nested batches
// flush when the outermost one ends, also when fn panics.
func (a *App) Batch(fn func()) {
	batch := &a.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 {
			for _, id := range batch.pendingOrder {
				callbacks = append(callbacks, batch.pending[id])
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
