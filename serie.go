package charts

import (
	"math"
	"sort"
	"strings"
	"time"
)

type Record struct {
	Date  string
	Value Value
}

type Bucket struct {
	Average float64
	Min     float64
	Max     float64
	Count   int

	sum float64
}

func (b Bucket) add(v float64) Bucket {
	if b.Count == 0 {
		b.Min, b.Max = v, v
	} else {
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	b.sum += v
	b.Count++
	b.Average = b.sum / float64(b.Count)
	return b
}

// Buckets holds aggregated values by key (month index or year). A key is
// present only if at least one record contributed to it.
type Buckets map[int]Bucket

func (b Buckets) Keys() []int {
	keys := make([]int, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (b Buckets) Average(key int) Value {
	x, ok := b[key]
	if !ok {
		return Missing
	}
	return Float(x.Average)
}

type BucketFunc func(time.Time) int

func ByMonth(t time.Time) int {
	return int(t.Month()) - 1
}

func ByYear(t time.Time) int {
	return t.Year()
}

func AggregateBy(records []Record, by BucketFunc) Buckets {
	all := make(Buckets)
	for _, r := range records {
		when, v, ok := r.resolve()
		if !ok {
			continue
		}
		k := by(when)
		all[k] = all[k].add(v)
	}
	return all
}

func AggregateByMonth(records []Record) Buckets {
	return AggregateBy(records, ByMonth)
}

func AggregateByYear(records []Record) Buckets {
	return AggregateBy(records, ByYear)
}

// GroupByYear keeps only valid records and groups them by calendar year.
func GroupByYear(records []Record) map[int][]Record {
	groups := make(map[int][]Record)
	for _, r := range records {
		when, _, ok := r.resolve()
		if !ok {
			continue
		}
		groups[when.Year()] = append(groups[when.Year()], r)
	}
	return groups
}

// PredictionYear is the most recent year of the buckets.
func PredictionYear(b Buckets) (int, bool) {
	keys := b.Keys()
	if len(keys) == 0 {
		return 0, false
	}
	return keys[len(keys)-1], true
}

func HistoricalYears(b Buckets) []int {
	keys := b.Keys()
	if len(keys) == 0 {
		return nil
	}
	return keys[:len(keys)-1]
}

// SplitPrediction separates the records of the prediction year from the
// records of all the other years. Invalid records are dropped.
func SplitPrediction(records []Record) (int, []Record, []Record) {
	year, ok := PredictionYear(AggregateByYear(records))
	if !ok {
		return 0, nil, nil
	}
	var history, current []Record
	for _, r := range records {
		when, _, ok := r.resolve()
		if !ok {
			continue
		}
		if when.Year() == year {
			current = append(current, r)
		} else {
			history = append(history, r)
		}
	}
	return year, history, current
}

func (r Record) resolve() (time.Time, float64, bool) {
	v, ok := r.Value.Get()
	if !ok {
		return time.Time{}, 0, false
	}
	when, ok := ParseDate(r.Date)
	if !ok {
		return time.Time{}, 0, false
	}
	return when, v, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01",
}

func ParseDate(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, str)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
