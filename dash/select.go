package dash

import (
	"errors"
	"strings"

	charts "github.com/midbel/opscharts"
)

var ErrIndex = errors.New("invalid index")

// Selector extracts a value from a row. A cell that is empty, absent or not
// a number gives a missing value; the row is never rejected.
type Selector interface {
	Select([]string) charts.Value
}

type single struct {
	index int
}

func SelectSingle(i int) Selector {
	return single{
		index: i,
	}
}

func (s single) Select(row []string) charts.Value {
	return cellValue(row, s.index)
}

type summer struct {
	index []int
}

// SelectSum adds the values of several columns. The result is missing only
// when all the columns are.
func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) Select(row []string) charts.Value {
	var (
		sum   float64
		found bool
	)
	for _, i := range s.index {
		v, ok := cellValue(row, i).Get()
		if !ok {
			continue
		}
		sum += v
		found = true
	}
	if !found {
		return charts.Missing
	}
	return charts.Float(sum)
}

func (t Table) Selector(names Names) (Selector, error) {
	var list []int
	for _, n := range names {
		i, err := t.Index(n)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	switch len(list) {
	case 0:
		return nil, ErrColumn
	case 1:
		return SelectSingle(list[0]), nil
	default:
		return SelectSum(list), nil
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellValue(row []string, i int) charts.Value {
	return charts.ParseValue(cell(row, i))
}
