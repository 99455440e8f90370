package views

import (
	"strconv"

	charts "github.com/midbel/opscharts"
)

const (
	DefaultWidth  = 640.0
	DefaultHeight = 360.0
	DefaultLocale = "en"
)

var DefaultPadding = charts.Padding{
	Top:    20,
	Right:  20,
	Bottom: 40,
	Left:   60,
}

type Options struct {
	charts.Size
	charts.Padding

	Locale string
	Kind   charts.ScaleKind
	YTicks int
}

func DefaultOptions() Options {
	return Options{
		Size: charts.Size{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Padding: DefaultPadding,
		Locale:  DefaultLocale,
	}
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultLocale
	}
	return o.Locale
}

func formatInt(f float64) string {
	return strconv.Itoa(int(f))
}
