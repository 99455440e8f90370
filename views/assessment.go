package views

import (
	"fmt"
	"math"
	"sort"

	charts "github.com/midbel/opscharts"
)

const (
	MinRating = 0
	MaxRating = 5
)

type Rating struct {
	Cycle int
	Value charts.Value
}

type cycleRating struct {
	Rating
	index int
}

var ratingSelectors = charts.SelectFuncs[cycleRating, int]{
	KeyFunc: func(r cycleRating) int { return r.Cycle },
	XFunc:   func(r cycleRating) float64 { return float64(r.index) },
	YFunc:   func(r cycleRating) charts.Value { return r.Value },
}

// AssessmentCycles places the ratings of successive assessment cycles at even
// intervals, ordered by cycle number.
func AssessmentCycles(records []Rating, opts Options) charts.Frame[int, Rating] {
	sorted := make([]Rating, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cycle < sorted[j].Cycle
	})

	list := make([]cycleRating, len(sorted))
	for i := range sorted {
		list[i] = cycleRating{
			Rating: sorted[i],
			index:  i,
		}
	}
	var (
		xdom = charts.NumberDomain(0, math.Max(0, float64(len(list)-1)))
		ydom = charts.NumberDomain(MinRating, MaxRating)
		cfg  = charts.Config[cycleRating, int]{
			Selectors: ratingSelectors,
			Padding:   opts.Padding,
			XDomain:   &xdom,
			YDomain:   &ydom,
			XTicks:    len(list),
			YTicks:    MaxRating - MinRating + 1,
			XFormat:   cycleLabel(sorted),
			YFormat:   formatInt,
		}
	)
	if len(list) == 0 {
		cfg.XTicks = -1
	}
	frame := charts.Compute(list, cfg, opts.Size)
	return unwrapRatings(frame)
}

func cycleLabel(list []Rating) charts.Formatter {
	return func(f float64) string {
		i := int(math.Round(f))
		if i < 0 || i >= len(list) {
			return ""
		}
		return fmt.Sprintf("Cycle %d", list[i].Cycle)
	}
}

func unwrapRatings(frame charts.Frame[int, cycleRating]) charts.Frame[int, Rating] {
	res := charts.Frame[int, Rating]{
		Layout: frame.Layout,
		XAxis:  frame.XAxis,
		YAxis:  frame.YAxis,
		Paths:  frame.Paths,
	}
	for _, p := range frame.Points {
		pt := charts.Point[int, Rating]{
			Key:  p.Key,
			X:    p.X,
			Y:    p.Y,
			Data: p.Data.Rating,
		}
		res.Points = append(res.Points, pt)
	}
	return res
}
