package charts

import (
	"math"
	"testing"
)

func TestNumberScaler(t *testing.T) {
	data := []struct {
		Name    string
		Domain  Domain
		Range   Range
		Options []ScaleOption
		Input   float64
		Want    float64
	}{
		{
			Name:   "min",
			Domain: NumberDomain(0, 100),
			Range:  NewRange(0, 200),
			Input:  0,
			Want:   0,
		},
		{
			Name:   "max",
			Domain: NumberDomain(0, 100),
			Range:  NewRange(0, 200),
			Input:  100,
			Want:   200,
		},
		{
			Name:   "middle",
			Domain: NumberDomain(0, 100),
			Range:  NewRange(0, 200),
			Input:  50,
			Want:   100,
		},
		{
			Name:    "inverted-min",
			Domain:  NumberDomain(0, 100),
			Range:   NewRange(10, 110),
			Options: []ScaleOption{Inverted()},
			Input:   0,
			Want:    110,
		},
		{
			Name:    "inverted-max",
			Domain:  NumberDomain(0, 100),
			Range:   NewRange(10, 110),
			Options: []ScaleOption{Inverted()},
			Input:   100,
			Want:    10,
		},
		{
			Name:   "degenerate",
			Domain: NumberDomain(5, 5),
			Range:  NewRange(10, 20),
			Input:  5,
			Want:   10,
		},
		{
			Name:    "degenerate-inverted",
			Domain:  NumberDomain(5, 5),
			Range:   NewRange(10, 20),
			Options: []ScaleOption{Inverted()},
			Input:   5,
			Want:    10,
		},
		{
			Name:    "cbrt",
			Domain:  NumberDomain(0, 1000),
			Range:   NewRange(0, 100),
			Options: []ScaleOption{WithKind(Cbrt)},
			Input:   125,
			Want:    50,
		},
		{
			Name:    "cbrt-max",
			Domain:  NumberDomain(0, 1000),
			Range:   NewRange(0, 100),
			Options: []ScaleOption{WithKind(Cbrt)},
			Input:   1000,
			Want:    100,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			sc := NumberScaler(d.Domain, d.Range, d.Options...)
			got := sc.Scale(d.Input)
			if math.IsNaN(got) {
				t.Fatalf("NaN returned for %f", d.Input)
			}
			if math.Abs(got-d.Want) > 1e-9 {
				t.Errorf("scale mismatched! want %f, got %f", d.Want, got)
			}
		})
	}
}

func TestMakeScale(t *testing.T) {
	scale := MakeScale(NumberDomain(0, 10), NewRange(0, 100), true, Linear)
	if got := scale(0); got != 100 {
		t.Errorf("inverted scale should map min to end! got %f", got)
	}
	if got := scale(10); got != 0 {
		t.Errorf("inverted scale should map max to start! got %f", got)
	}
}

func TestParseScaleKind(t *testing.T) {
	data := []struct {
		Input string
		Want  ScaleKind
		Fail  bool
	}{
		{Input: "", Want: Linear},
		{Input: "linear", Want: Linear},
		{Input: "cbrt", Want: Cbrt},
		{Input: "log", Fail: true},
	}
	for _, d := range data {
		got, err := ParseScaleKind(d.Input)
		if d.Fail {
			if err == nil {
				t.Errorf("%s: expected error", d.Input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if got != d.Want {
			t.Errorf("%s: kind mismatched! want %s, got %s", d.Input, d.Want, got)
		}
	}
}

func TestDomainValues(t *testing.T) {
	data := []struct {
		Name   string
		Domain Domain
		Count  int
		Want   []float64
	}{
		{
			Name:   "six-ticks",
			Domain: NumberDomain(0, 50),
			Count:  6,
			Want:   []float64{0, 10, 20, 30, 40, 50},
		},
		{
			Name:   "single",
			Domain: NumberDomain(0, 50),
			Count:  1,
			Want:   []float64{0},
		},
		{
			Name:   "degenerate",
			Domain: NumberDomain(3, 3),
			Count:  5,
			Want:   []float64{3},
		},
		{
			Name:   "zero",
			Domain: NumberDomain(0, 50),
			Count:  0,
		},
		{
			Name:   "negative",
			Domain: NumberDomain(0, 50),
			Count:  -2,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got := d.Domain.Values(d.Count)
			if len(got) != len(d.Want) {
				t.Fatalf("length mismatched! want %d, got %d", len(d.Want), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-d.Want[i]) > 1e-9 {
					t.Errorf("value mismatched at %d! want %f, got %f", i, d.Want[i], got[i])
				}
			}
		})
	}
}

func TestDomainFromZero(t *testing.T) {
	if got := NumberDomain(10, 20).FromZero(); got.Min != 0 || got.Max != 20 {
		t.Errorf("positive domain should start at 0! got %+v", got)
	}
	if got := NumberDomain(-20, -10).FromZero(); got.Min != -20 || got.Max != 0 {
		t.Errorf("negative domain should end at 0! got %+v", got)
	}
}
