package views

import (
	"strconv"

	charts "github.com/midbel/opscharts"
)

type SeriesKind int

const (
	KindOverlay SeriesKind = iota
	KindPrediction
	KindAverage
	KindMinimum
	KindMaximum
)

func (k SeriesKind) String() string {
	switch k {
	case KindOverlay:
		return "overlay"
	case KindPrediction:
		return "prediction"
	case KindAverage:
		return "average"
	case KindMinimum:
		return "minimum"
	case KindMaximum:
		return "maximum"
	default:
		return "unknown"
	}
}

type Month struct {
	Index int
	Value charts.Value
}

var monthSelectors = charts.SelectFuncs[Month, int]{
	KeyFunc: func(m Month) int { return m.Index },
	XFunc:   func(m Month) float64 { return float64(m.Index) },
	YFunc:   func(m Month) charts.Value { return m.Value },
}

type Series struct {
	Name   string
	Year   int
	Kind   SeriesKind
	Points []charts.Point[int, Month]
	Paths  []string
}

func (s Series) Segments() [][]charts.Coord {
	return charts.Segments(charts.PositionsOf(s.Points))
}

// Hazard is the seasonal view of a risk: one line per past year, the line of
// the prediction year and the monthly average, minimum and maximum of the
// past years.
type Hazard struct {
	charts.Layout

	XAxis []charts.Tick
	YAxis []charts.Tick

	PredictionYear int
	Overlays       []Series
	Prediction     Series
	Average        Series
	Minimum        Series
	Maximum        Series
}

func (h Hazard) Series() []Series {
	var list []Series
	list = append(list, h.Overlays...)
	for _, s := range []Series{h.Minimum, h.Maximum, h.Average, h.Prediction} {
		if len(s.Points) > 0 {
			list = append(list, s)
		}
	}
	return list
}

func SeasonalHazard(records []charts.Record, opts Options) Hazard {
	var (
		year, history, current = charts.SplitPrediction(records)
		past                   = charts.AggregateByMonth(history)
		now                    = charts.AggregateByMonth(current)
		groups                 = charts.GroupByYear(history)
		years                  = charts.HistoricalYears(charts.AggregateByYear(records))
		layout                 = hazardLayout(opts, past, now)
	)
	h := Hazard{
		Layout:         layout,
		PredictionYear: year,
	}
	if layout.Empty() {
		return h
	}
	h.XAxis = layout.XAxis()
	h.YAxis = layout.YAxis()
	if len(current) == 0 {
		return h
	}
	for _, y := range years {
		ms := charts.AggregateByMonth(groups[y])
		s := makeSeries(strconv.Itoa(y), KindOverlay, layout, averages(ms))
		s.Year = y
		h.Overlays = append(h.Overlays, s)
	}
	h.Prediction = makeSeries(strconv.Itoa(year), KindPrediction, layout, averages(now))
	h.Prediction.Year = year
	if len(history) > 0 {
		h.Average = makeSeries("average", KindAverage, layout, averages(past))
		h.Minimum = makeSeries("minimum", KindMinimum, layout, minimums(past))
		h.Maximum = makeSeries("maximum", KindMaximum, layout, maximums(past))
	}
	return h
}

func hazardLayout(opts Options, past, now charts.Buckets) charts.Layout {
	var values []float64
	for _, b := range []charts.Buckets{past, now} {
		for _, x := range b {
			values = append(values, x.Min, x.Max)
		}
	}
	layout := charts.Layout{
		Size:    opts.Size,
		Padding: opts.Padding,
		XDomain: charts.NumberDomain(0, 11),
		YDomain: charts.Bounds(values).FromZero(),
		YKind:   opts.Kind,
		XTicks:  12,
		YTicks:  opts.YTicks,
		XFormat: charts.MonthFormatter(opts.locale()),
		YFormat: charts.FormatCompact,
	}
	if layout.YTicks == 0 {
		layout.YTicks = charts.DefaultTicks
	}
	if layout.YKind == charts.Linear {
		layout.YDomain = layout.YDomain.Nice(layout.YTicks)
	}
	return layout
}

func makeSeries(name string, kind SeriesKind, layout charts.Layout, months []Month) Series {
	points := charts.BuildPoints[Month, int](months, monthSelectors, layout.XScaler(), layout.YScaler())
	return Series{
		Name:   name,
		Kind:   kind,
		Points: points,
		Paths:  charts.BuildDiscretePaths(charts.PositionsOf(points)),
	}
}

func averages(b charts.Buckets) []Month {
	return monthsOf(b, func(x charts.Bucket) float64 { return x.Average })
}

func minimums(b charts.Buckets) []Month {
	return monthsOf(b, func(x charts.Bucket) float64 { return x.Min })
}

func maximums(b charts.Buckets) []Month {
	return monthsOf(b, func(x charts.Bucket) float64 { return x.Max })
}

func monthsOf(b charts.Buckets, get func(charts.Bucket) float64) []Month {
	list := make([]Month, 12)
	for i := range list {
		list[i] = Month{
			Index: i,
			Value: charts.Missing,
		}
		if x, ok := b[i]; ok {
			list[i].Value = charts.Float(get(x))
		}
	}
	return list
}
