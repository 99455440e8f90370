package charts

import (
	"fmt"
)

type Selectors[T any, K comparable] interface {
	Key(T) K
	X(T) float64
	Y(T) Value
}

type SelectFuncs[T any, K comparable] struct {
	KeyFunc func(T) K
	XFunc   func(T) float64
	YFunc   func(T) Value
}

func (s SelectFuncs[T, K]) Key(v T) K {
	if s.KeyFunc == nil {
		panic(missingSelector("key"))
	}
	return s.KeyFunc(v)
}

func (s SelectFuncs[T, K]) X(v T) float64 {
	if s.XFunc == nil {
		panic(missingSelector("x"))
	}
	return s.XFunc(v)
}

func (s SelectFuncs[T, K]) Y(v T) Value {
	if s.YFunc == nil {
		panic(missingSelector("y"))
	}
	return s.YFunc(v)
}

func missingSelector(which string) string {
	return fmt.Sprintf("charts: %s selector not set", which)
}

type Point[K comparable, T any] struct {
	Key  K
	X    float64
	Y    Value
	Data T
}

func (p Point[K, T]) Pos() Pos {
	return Pos{
		X: p.X,
		Y: p.Y,
	}
}

// BuildPoints maps every datum into screen space, in input order. The x value
// is always scaled while a missing y stays missing.
func BuildPoints[T any, K comparable](data []T, sel Selectors[T, K], x, y Scaler) []Point[K, T] {
	points := make([]Point[K, T], 0, len(data))
	for _, d := range data {
		pt := Point[K, T]{
			Key:  sel.Key(d),
			X:    x.Scale(sel.X(d)),
			Data: d,
		}
		if v, ok := sel.Y(d).Get(); ok {
			pt.Y = Float(y.Scale(v))
		}
		points = append(points, pt)
	}
	return points
}

func PositionsOf[K comparable, T any](points []Point[K, T]) []Pos {
	list := make([]Pos, len(points))
	for i := range points {
		list[i] = points[i].Pos()
	}
	return list
}
