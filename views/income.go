package views

import (
	charts "github.com/midbel/opscharts"
)

type Income struct {
	Year  int
	Value charts.Value
}

var incomeSelectors = charts.SelectFuncs[Income, int]{
	KeyFunc: func(i Income) int { return i.Year },
	XFunc:   func(i Income) float64 { return float64(i.Year) },
	YFunc:   func(i Income) charts.Value { return i.Value },
}

// YearlyIncome draws one point per year between the first and the last year
// with a known income. Years without income are kept as missing points so
// that the line is broken there while the axis still shows them.
func YearlyIncome(records []Income, opts Options) charts.Frame[int, Income] {
	var (
		years = yearRange(records)
		cfg   = charts.Config[Income, int]{
			Selectors: incomeSelectors,
			Padding:   opts.Padding,
			YTicks:    opts.YTicks,
			YKind:     opts.Kind,
			XFormat:   formatInt,
			YFormat:   charts.FormatCompact,
			YFromZero: true,
			NiceY:     true,
		}
	)
	if len(years) == 0 {
		cfg.XTicks = -1
		return charts.Compute([]Income(nil), cfg, opts.Size)
	}
	dom := charts.NumberDomain(float64(years[0]), float64(years[len(years)-1]))
	cfg.XDomain = &dom
	cfg.XTicks = len(years)
	return charts.Compute(fillYears(records, years), cfg, opts.Size)
}

func yearRange(records []Income) []int {
	var (
		fst, lst int
		found    bool
	)
	for _, r := range records {
		if !r.Value.Defined() {
			continue
		}
		if !found || r.Year < fst {
			fst = r.Year
		}
		if !found || r.Year > lst {
			lst = r.Year
		}
		found = true
	}
	if !found {
		return nil
	}
	var list []int
	for y := fst; y <= lst; y++ {
		list = append(list, y)
	}
	return list
}

// fillYears sums the income of each year. A year without any known value
// stays missing.
func fillYears(records []Income, years []int) []Income {
	sums := make(map[int]float64)
	for _, r := range records {
		v, ok := r.Value.Get()
		if !ok {
			continue
		}
		sums[r.Year] += v
	}
	list := make([]Income, 0, len(years))
	for _, y := range years {
		in := Income{
			Year:  y,
			Value: charts.Missing,
		}
		if v, ok := sums[y]; ok {
			in.Value = charts.Float(v)
		}
		list = append(list, in)
	}
	return list
}
