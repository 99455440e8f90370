package charts

import (
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	data := []struct {
		Name   string
		Values []float64
		Want   Domain
	}{
		{
			Name: "empty",
			Want: Domain{},
		},
		{
			Name:   "single",
			Values: []float64{4},
			Want:   NumberDomain(4, 4),
		},
		{
			Name:   "mixed",
			Values: []float64{4, -2, 10, 3},
			Want:   NumberDomain(-2, 10),
		},
		{
			Name:   "not-finite",
			Values: []float64{math.NaN(), 1, math.Inf(1), 5, math.Inf(-1)},
			Want:   NumberDomain(1, 5),
		},
		{
			Name:   "only-nan",
			Values: []float64{math.NaN()},
			Want:   Domain{},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got := Bounds(d.Values)
			if math.IsNaN(got.Min) || math.IsNaN(got.Max) {
				t.Fatalf("NaN in bounds: %+v", got)
			}
			if got != d.Want {
				t.Errorf("bounds mismatched! want %+v, got %+v", d.Want, got)
			}
		})
	}
}

func TestBoundsOr(t *testing.T) {
	fallback := NumberDomain(0, 1)
	if got := BoundsOr(nil, fallback); got != fallback {
		t.Errorf("fallback expected! got %+v", got)
	}
}

func TestDomainNice(t *testing.T) {
	data := []struct {
		Name   string
		Domain Domain
		Ticks  int
		Want   Domain
	}{
		{
			Name:   "round-up",
			Domain: NumberDomain(0, 47),
			Ticks:  6,
			Want:   NumberDomain(0, 50),
		},
		{
			Name:   "round-both",
			Domain: NumberDomain(3, 97),
			Ticks:  11,
			Want:   NumberDomain(0, 100),
		},
		{
			Name:   "round-step",
			Domain: NumberDomain(3, 47),
			Ticks:  5,
			Want:   NumberDomain(0, 80),
		},
		{
			Name:   "negative",
			Domain: NumberDomain(-12, 18),
			Ticks:  4,
			Want:   NumberDomain(-20, 40),
		},
		{
			Name:   "degenerate",
			Domain: NumberDomain(5, 5),
			Ticks:  5,
			Want:   NumberDomain(5, 5),
		},
		{
			Name:   "few-ticks",
			Domain: NumberDomain(0, 47),
			Ticks:  1,
			Want:   NumberDomain(0, 47),
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got := d.Domain.Nice(d.Ticks)
			if math.Abs(got.Min-d.Want.Min) > 1e-9 || math.Abs(got.Max-d.Want.Max) > 1e-9 {
				t.Errorf("nice domain mismatched! want %+v, got %+v", d.Want, got)
			}
			if d.Ticks < 2 || d.Domain.Degenerate() {
				return
			}
			step := got.Extend() / float64(d.Ticks-1)
			for _, v := range got.Values(d.Ticks) {
				if r := math.Abs(v/step - math.Round(v/step)); r > 1e-9 {
					t.Errorf("tick %f not on a multiple of %f", v, step)
				}
			}
		})
	}
}
