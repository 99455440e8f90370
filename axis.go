package charts

import (
	"strconv"
)

type Formatter func(float64) string

func DefaultFormat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type Tick struct {
	Position float64
	Value    float64
	Label    string
}

// Ticks returns count evenly spaced ticks over the domain of the scaler. An
// empty list is returned when count is not positive.
func Ticks(sc Scaler, count int, format Formatter) []Tick {
	if format == nil {
		format = DefaultFormat
	}
	var list []Tick
	for _, v := range sc.Values(count) {
		t := Tick{
			Position: sc.Scale(v),
			Value:    v,
			Label:    format(v),
		}
		list = append(list, t)
	}
	return list
}
