package webchart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	core "github.com/midbel/opscharts"
)

// Empty is the value understood by echarts as a missing point. Lines are
// broken on it.
const Empty = "-"

type Serie struct {
	Name   string
	Color  string
	Values []core.Value
}

type Line struct {
	Title  string
	Width  string
	Height string
	Labels []string
	Series []Serie
}

// FromTicks uses the labels of the ticks of an axis as categories.
func FromTicks(ticks []core.Tick) []string {
	list := make([]string, len(ticks))
	for i := range ticks {
		list[i] = ticks[i].Label
	}
	return list
}

func (c Line) Build() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     c.Width,
			Height:    c.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)
	line.SetXAxis(c.Labels)
	for _, s := range c.Series {
		var options []charts.SeriesOpts
		if s.Color != "" {
			options = append(options, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}
		line.AddSeries(s.Name, lineData(s.Values), options...)
	}
	return line
}

func (c Line) Render(w io.Writer) error {
	return c.Build().Render(w)
}

func lineData(values []core.Value) []opts.LineData {
	list := make([]opts.LineData, len(values))
	for i, v := range values {
		if f, ok := v.Get(); ok {
			list[i] = opts.LineData{Value: f}
		} else {
			list[i] = opts.LineData{Value: Empty}
		}
	}
	return list
}

func ValuesOf[K comparable, T any](points []core.Point[K, T], get func(T) core.Value) []core.Value {
	list := make([]core.Value, len(points))
	for i := range points {
		list[i] = get(points[i].Data)
	}
	return list
}
