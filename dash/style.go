package dash

import (
	"fmt"
	"strconv"
	"strings"

	charts "github.com/midbel/opscharts"
	"github.com/midbel/opscharts/draw"
)

type Style struct {
	Color   string  `yaml:"color"`
	Width   float64 `yaml:"width"`
	Line    string  `yaml:"line"`
	Point   string  `yaml:"point"`
	Fill    bool    `yaml:"fill"`
	Opacity float64 `yaml:"opacity"`
	Palette string  `yaml:"palette"`
}

func GlobalStyle() Style {
	g := draw.DefaultStyle()
	return Style{
		Width:   g.Width,
		Opacity: g.Opacity,
	}
}

func (s Style) merge(g Style) Style {
	if s.Color == "" {
		s.Color = g.Color
	}
	if s.Width == 0 {
		s.Width = g.Width
	}
	if s.Line == "" {
		s.Line = g.Line
	}
	if s.Point == "" {
		s.Point = g.Point
	}
	if s.Opacity == 0 {
		s.Opacity = g.Opacity
	}
	if s.Palette == "" {
		s.Palette = g.Palette
	}
	s.Fill = s.Fill || g.Fill
	return s
}

func (s Style) style() (draw.Style, error) {
	line, err := draw.ParseLineStyle(s.Line)
	if err != nil {
		return draw.Style{}, err
	}
	if !draw.IsMarker(s.Point) {
		return draw.Style{}, fmt.Errorf("%s: unknown point shape", s.Point)
	}
	g := draw.Style{
		Color:   s.Color,
		Width:   s.Width,
		Line:    line,
		Point:   s.Point,
		Fill:    s.Fill,
		Opacity: s.Opacity,
	}
	return g.Merge(draw.DefaultStyle()), nil
}

func (s Style) palette() draw.Palette {
	return draw.PaletteByName(s.Palette)
}

type Axis struct {
	Ticks  int      `yaml:"ticks"`
	Scale  string   `yaml:"scale"`
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Zero   bool     `yaml:"zero"`
	Nice   bool     `yaml:"nice"`
	Format string   `yaml:"format"`
}

// domain overrides the bounds of dom with the ones set explicitly.
func (a Axis) domain(dom charts.Domain) charts.Domain {
	if a.Min != nil {
		dom.Min = *a.Min
	}
	if a.Max != nil {
		dom.Max = *a.Max
	}
	return dom
}

func (a Axis) formatter(locale string) charts.Formatter {
	switch a.Format {
	case "":
		return nil
	case "compact":
		return charts.FormatCompact
	case "number":
		return charts.NumberFormatter(locale)
	case "month":
		return charts.MonthFormatter(locale)
	case "integer":
		return func(f float64) string {
			return strconv.Itoa(int(f))
		}
	default:
		if !strings.Contains(a.Format, "%") {
			return func(float64) string {
				return a.Format
			}
		}
		return func(f float64) string {
			return fmt.Sprintf(a.Format, f)
		}
	}
}
