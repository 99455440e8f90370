package charts

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var compactUnits = []struct {
	limit  float64
	suffix string
}{
	{limit: 1, suffix: ""},
	{limit: 1e3, suffix: "k"},
	{limit: 1e6, suffix: "M"},
	{limit: 1e9, suffix: "B"},
}

// FormatCompact prints large magnitudes with a unit suffix and at most one
// decimal: 1250 gives 1.3k, 3400000 gives 3.4M. A value that rounds to 1000
// of a unit moves to the next one, 999960 gives 1M.
func FormatCompact(f float64) string {
	var (
		abs = math.Abs(f)
		i   int
	)
	for i < len(compactUnits)-1 && abs >= compactUnits[i+1].limit {
		i++
	}
	if i < len(compactUnits)-1 && math.Abs(roundDecimal(f/compactUnits[i].limit)) >= 1000 {
		i++
	}
	u := compactUnits[i]
	return trimDecimal(f/u.limit) + u.suffix
}

func roundDecimal(f float64) float64 {
	return math.Round(f*10) / 10
}

func trimDecimal(f float64) string {
	str := strconv.FormatFloat(roundDecimal(f), 'f', 1, 64)
	str = strings.TrimSuffix(str, ".0")
	if str == "-0" {
		str = "0"
	}
	return str
}

// FormatNumber groups the digits of f according to locale conventions.
func FormatNumber(f float64, locale string) string {
	p := message.NewPrinter(localeTag(locale))
	return p.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

func NumberFormatter(locale string) Formatter {
	return func(f float64) string {
		return FormatNumber(f, locale)
	}
}
