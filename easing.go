package tui

import "math"

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float64) float64

// DefaultEasing is used when a transition names none.
const DefaultEasing = "in_out_cubic"

var easings = map[string]EasingFunc{
	"none":   func(float64) float64 { return 1 },
	"linear": func(t float64) float64 { return t },
	"in_sine": func(t float64) float64 {
		return 1 - math.Cos(t*math.Pi/2)
	},
	"out_sine": func(t float64) float64 {
		return math.Sin(t * math.Pi / 2)
	},
	"in_out_sine": func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	},
	"in_quad":  func(t float64) float64 { return t * t },
	"out_quad": func(t float64) float64 { return 1 - (1-t)*(1-t) },
	"in_out_quad": func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	},
	"in_cubic":  func(t float64) float64 { return t * t * t },
	"out_cubic": func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	"in_out_cubic": func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	},
	"out_bounce": outBounce,
}

func outBounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Easing returns the named easing function, falling back to DefaultEasing.
func Easing(name string) EasingFunc {
	if f, ok := easings[name]; ok {
		return f
	}
	return easings[DefaultEasing]
}
