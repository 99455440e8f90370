package draw

import (
	"fmt"
)

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func ParseLineStyle(str string) (LineStyle, error) {
	switch str {
	case "", "straight":
		return StyleStraight, nil
	case "dotted":
		return StyleDotted, nil
	case "dashed":
		return StyleDashed, nil
	default:
		return StyleStraight, fmt.Errorf("%s: unknown line style", str)
	}
}

type Style struct {
	Color   string
	Width   float64
	Line    LineStyle
	Point   string
	Fill    bool
	Opacity float64
}

func DefaultStyle() Style {
	return Style{
		Width:   1.5,
		Opacity: 1,
	}
}

// Merge fills the zero fields of s with the values of g.
func (s Style) Merge(g Style) Style {
	if s.Color == "" {
		s.Color = g.Color
	}
	if s.Width == 0 {
		s.Width = g.Width
	}
	if s.Point == "" {
		s.Point = g.Point
	}
	if s.Opacity == 0 {
		s.Opacity = g.Opacity
	}
	if s.Line == StyleStraight {
		s.Line = g.Line
	}
	s.Fill = s.Fill || g.Fill
	return s
}
