package tui

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Animatable is a value that can be interpolated towards another value of
// the same type. factor runs from 0 (the receiver) to 1 (dest).
type Animatable interface {
	Blend(dest Animatable, factor float64) Animatable
}

// Scalar is an animatable float.
type Scalar float64

// Blend implements Animatable.
func (s Scalar) Blend(dest Animatable, factor float64) Animatable {
	d, ok := dest.(Scalar)
	if !ok {
		return s
	}
	return s + Scalar(factor)*(d-s)
}

// OffsetValue is an animatable Point, rounded to whole cells.
type OffsetValue Point

// Blend implements Animatable.
func (o OffsetValue) Blend(dest Animatable, factor float64) Animatable {
	d, ok := dest.(OffsetValue)
	if !ok {
		return o
	}
	lerp := func(a, b int) int {
		return a + int(math.Round(factor*float64(b-a)))
	}
	return OffsetValue{X: lerp(o.X, d.X), Y: lerp(o.Y, d.Y)}
}

type animation struct {
	from, to Animatable
	current  Animatable
	start    time.Time
	duration time.Duration
	easing   EasingFunc
}

// Animator drives keyed animations. It is not safe for concurrent use; the
// App only touches it from the event loop.
type Animator struct {
	anims map[string]*animation
	now   func() time.Time
}

// NewAnimator returns an animator reading time from now, or time.Now if nil.
func NewAnimator(now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{anims: make(map[string]*animation), now: now}
}

// Animate starts moving key from from to to. An animation already running
// for key is retargeted from its current value. A non-positive duration
// cancels any animation so the target applies at once.
func (a *Animator) Animate(key string, from, to Animatable, duration time.Duration, easing string, delay time.Duration) {
	if prev, ok := a.anims[key]; ok {
		from = prev.current
	}
	if duration <= 0 || from == nil {
		delete(a.anims, key)
		return
	}
	a.anims[key] = &animation{
		from:     from,
		to:       to,
		current:  from,
		start:    a.now().Add(delay),
		duration: duration,
		easing:   Easing(easing),
	}
}

// Value returns the current value of a running animation.
func (a *Animator) Value(key string) (Animatable, bool) {
	anim, ok := a.anims[key]
	if !ok {
		return nil, false
	}
	return anim.current, true
}

// Target returns the value a running animation is heading to.
func (a *Animator) Target(key string) (Animatable, bool) {
	anim, ok := a.anims[key]
	if !ok {
		return nil, false
	}
	return anim.to, true
}

// Tick advances every animation to now and drops the finished ones. It
// reports whether any animation was running.
func (a *Animator) Tick(now time.Time) bool {
	if len(a.anims) == 0 {
		return false
	}
	for key, anim := range a.anims {
		if now.Before(anim.start) {
			continue
		}
		t := float64(now.Sub(anim.start)) / float64(anim.duration)
		if t >= 1 {
			delete(a.anims, key)
			continue
		}
		anim.current = anim.from.Blend(anim.to, anim.easing(t))
	}
	return true
}

// Active reports whether any animation is running.
func (a *Animator) Active() bool {
	return len(a.anims) > 0
}

// Keys returns the keys of the running animations, sorted.
func (a *Animator) Keys() []string {
	keys := make([]string, 0, len(a.anims))
	for key := range a.anims {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Cancel stops the animation for key.
func (a *Animator) Cancel(key string) {
	delete(a.anims, key)
}

// CancelOwner stops every animation keyed "owner/<property>". Owners may
// contain '/' themselves; only the last segment names the property.
func (a *Animator) CancelOwner(owner string) {
	for key := range a.anims {
		if keyOwner(key) == owner {
			delete(a.anims, key)
		}
	}
}

// animationKey names the animation of property prop on owner.
func animationKey(owner, prop string) string {
	return owner + "/" + prop
}

func keyOwner(key string) string {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return ""
	}
	return key[:i]
}
