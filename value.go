package charts

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is a number that may be missing. A missing value is never the same
// thing as zero.
type Value struct {
	num     float64
	defined bool
}

var Missing Value

// Float returns a defined value for finite numbers and Missing otherwise.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing
	}
	return Value{
		num:     f,
		defined: true,
	}
}

func FromPtr(f *float64) Value {
	if f == nil {
		return Missing
	}
	return Float(*f)
}

func ParseValue(str string) Value {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return Missing
	}
	return Float(f)
}

func (v Value) Get() (float64, bool) {
	return v.num, v.defined
}

func (v Value) Defined() bool {
	return v.defined
}

func (v Value) Or(f float64) float64 {
	if !v.defined {
		return f
	}
	return v.num
}

func (v Value) String() string {
	if !v.defined {
		return "-"
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*v = Missing
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Float(f)
	return nil
}
