package tui

import (
	"sync"
	"time"

	"github.com/grindlemire/tuicss/internal/debug"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	stopCh chan struct{}
	once   sync.Once
}

func newTimer() *Timer {
	return &Timer{stopCh: make(chan struct{})}
}

// Stop cancels the timer. Callbacks already queued are dropped.
func (t *Timer) Stop() {
	t.once.Do(func() { close(t.stopCh) })
}

func (t *Timer) stopped() bool {
	select {
	case <-t.stopCh:
		return true
	default:
		return false
	}
}

// SetTimer runs fn once on the event loop after d. When owner is not nil the
// call is dropped if owner has left the tree by then.
func (a *App) SetTimer(owner *Node, d time.Duration, fn func()) *Timer {
	return a.schedule(owner, d, false, fn)
}

// SetInterval runs fn on the event loop every d until stopped, the app
// stops, or owner leaves the tree.
func (a *App) SetInterval(owner *Node, d time.Duration, fn func()) *Timer {
	return a.schedule(owner, d, true, fn)
}

// SetTimer runs fn once after d unless the node has been removed.
func (n *Node) SetTimer(d time.Duration, fn func()) (*Timer, error) {
	if n.tree == nil || n.tree.app == nil {
		return nil, ErrNotMounted
	}
	return n.tree.app.SetTimer(n, d, fn), nil
}

// SetInterval runs fn every d while the node stays mounted.
func (n *Node) SetInterval(d time.Duration, fn func()) (*Timer, error) {
	if n.tree == nil || n.tree.app == nil {
		return nil, ErrNotMounted
	}
	return n.tree.app.SetInterval(n, d, fn), nil
}

func (a *App) schedule(owner *Node, d time.Duration, repeat bool, fn func()) *Timer {
	t := newTimer()
	fire := func() {
		if t.stopped() {
			return
		}
		if owner != nil && !a.owns(owner) {
			debug.Log("timer: owner %s removed, dropping", owner.id)
			t.Stop()
			return
		}
		if !repeat {
			t.Stop()
		}
		fn()
	}

	go func() {
		var c <-chan time.Time
		if repeat {
			ticker := time.NewTicker(d)
			defer ticker.Stop()
			c = ticker.C
		} else {
			timer := time.NewTimer(d)
			defer timer.Stop()
			c = timer.C
		}
		for {
			select {
			case <-a.stopCh:
				return
			case <-t.stopCh:
				return
			case <-c:
				select {
				case a.eventQueue <- fire:
				case <-a.stopCh:
					return
				case <-t.stopCh:
					return
				}
				if !repeat {
					return
				}
			}
		}
	}()
	return t
}

// owns reports whether n is still mounted in the app's tree.
func (a *App) owns(n *Node) bool {
	return a.tree.nodes[n.id] == n
}

// Watch calls fn on the event loop for every value received on ch until ch
// closes or the app stops. When owner is not nil values arriving after it
// left the tree are dropped.
func Watch[T any](a *App, owner *Node, ch <-chan T, fn func(T)) {
	go func() {
		for {
			select {
			case <-a.stopCh:
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				deliver := func() {
					if owner != nil && !a.owns(owner) {
						return
					}
					fn(v)
				}
				select {
				case a.eventQueue <- deliver:
				case <-a.stopCh:
					return
				}
			}
		}
	}()
}
