package charts

import (
	"math"
)

// Bounds returns the smallest domain containing every finite value. Without
// any such value, the zero domain is returned.
func Bounds(values []float64) Domain {
	return BoundsOr(values, Domain{})
}

func BoundsOr(values []float64, fallback Domain) Domain {
	var (
		dom   Domain
		found bool
	)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found {
			dom.Min, dom.Max = v, v
			found = true
			continue
		}
		dom.Min = math.Min(dom.Min, v)
		dom.Max = math.Max(dom.Max, v)
	}
	if !found {
		return fallback
	}
	return dom
}

// Nice widens the domain so that ticks evenly spaced values fall on a multiple
// of a 1, 2 or 5 power of ten step. Min is rounded down to the step and Max is
// placed ticks-1 steps above it.
func (d Domain) Nice(ticks int) Domain {
	if ticks < 2 || d.Extend() <= 0 {
		return d
	}
	step := niceStep(d.Extend() / float64(ticks-1))
	for {
		var (
			lo = math.Floor(d.Min/step) * step
			hi = lo + step*float64(ticks-1)
		)
		if hi >= d.Max-step*1e-9 {
			return Domain{Min: lo, Max: hi}
		}
		step = niceStep(step * 1.01)
	}
}

func niceStep(raw float64) float64 {
	var (
		exp  = math.Floor(math.Log10(raw))
		pow  = math.Pow(10, exp)
		frac = raw / pow
		nice float64
	)
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}
