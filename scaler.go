package charts

import (
	"fmt"
	"math"
	"strings"
)

type ScaleKind int

const (
	Linear ScaleKind = iota
	Cbrt
)

func ParseScaleKind(str string) (ScaleKind, error) {
	switch strings.ToLower(str) {
	case "", "linear":
		return Linear, nil
	case "cbrt":
		return Cbrt, nil
	default:
		return Linear, fmt.Errorf("%s: unknown scale kind", str)
	}
}

func (k ScaleKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Cbrt:
		return "cbrt"
	default:
		return "unknown"
	}
}

func (k ScaleKind) transform(v float64) float64 {
	if k == Cbrt {
		return math.Cbrt(v)
	}
	return v
}

type Domain struct {
	Min float64
	Max float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		Min: f,
		Max: t,
	}
}

func (d Domain) Extend() float64 {
	return d.Max - d.Min
}

func (d Domain) Degenerate() bool {
	return d.Max == d.Min
}

func (d Domain) Merge(other Domain) Domain {
	x := d
	if other.Min < x.Min {
		x.Min = other.Min
	}
	if other.Max > x.Max {
		x.Max = other.Max
	}
	return x
}

// FromZero extends the domain so that it includes 0.
func (d Domain) FromZero() Domain {
	return d.Merge(Domain{})
}

// Values returns count evenly spaced values from Min to Max, both included.
func (d Domain) Values(count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 || d.Degenerate() {
		return []float64{d.Min}
	}
	var (
		all  = make([]float64, count)
		step = d.Extend() / float64(count-1)
	)
	for i := 0; i < count-1; i++ {
		all[i] = d.Min + float64(i)*step
	}
	all[count-1] = d.Max
	return all
}

type Range struct {
	Start float64
	End   float64
}

func NewRange(f, t float64) Range {
	return Range{
		Start: f,
		End:   t,
	}
}

func (r Range) Len() float64 {
	return r.End - r.Start
}

func (r Range) Max() float64 {
	return math.Max(r.Start, r.End)
}

func (r Range) Min() float64 {
	return math.Min(r.Start, r.End)
}

type Scaler interface {
	Scale(float64) float64
	Values(int) []float64
	Domain() Domain
	Kind() ScaleKind
	Max() float64
	Min() float64
}

type ScaleOption func(*numberScaler)

// Inverted maps the domain minimum onto the end of the range. It is the
// usual setting for a y axis whose origin is at the top of the screen.
func Inverted() ScaleOption {
	return func(n *numberScaler) {
		n.inverted = true
	}
}

func WithKind(kind ScaleKind) ScaleOption {
	return func(n *numberScaler) {
		n.kind = kind
	}
}

type numberScaler struct {
	Range
	dom      Domain
	kind     ScaleKind
	inverted bool
}

func NumberScaler(dom Domain, rg Range, options ...ScaleOption) Scaler {
	n := numberScaler{
		Range: rg,
		dom:   dom,
	}
	for _, o := range options {
		o(&n)
	}
	return n
}

// MakeScale returns the scaling function of a NumberScaler.
func MakeScale(dom Domain, rg Range, inverted bool, kind ScaleKind) func(float64) float64 {
	options := []ScaleOption{WithKind(kind)}
	if inverted {
		options = append(options, Inverted())
	}
	return NumberScaler(dom, rg, options...).Scale
}

func (n numberScaler) Scale(v float64) float64 {
	var (
		fst = n.kind.transform(n.dom.Min)
		lst = n.kind.transform(n.dom.Max)
	)
	if fst == lst {
		return n.Start
	}
	start, end := n.Start, n.End
	if n.inverted {
		start, end = end, start
	}
	ratio := (n.kind.transform(v) - fst) / (lst - fst)
	return start + ratio*(end-start)
}

func (n numberScaler) Values(count int) []float64 {
	return n.dom.Values(count)
}

func (n numberScaler) Domain() Domain {
	return n.dom
}

func (n numberScaler) Kind() ScaleKind {
	return n.kind
}
