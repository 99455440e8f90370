package dash

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const isoDate = "2006-01-02"

// makeDateNormalizer returns a function rewriting dates written with the
// given strftime-like format as ISO dates. Dates that can not be parsed
// are returned unchanged.
func makeDateNormalizer(format string) (func(string) string, error) {
	if format == "" {
		format = TimeFormat
	}
	layout, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(str string) string {
		t, err := time.Parse(layout, strings.TrimSpace(str))
		if err != nil {
			return str
		}
		return t.Format(isoDate)
	}, nil
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06",
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'd': "02",
	'e': "_2",
	'j': "002",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-07:00",
	'Z': "Z07:00",
	'%': "%",
}

func parseFormat(str string) (string, error) {
	var (
		r = strings.NewReader(str)
		w strings.Builder
	)
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in format string")
		}
		if x != percent {
			w.WriteRune(x)
			continue
		}
		x, _, err := r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("%s: format ends with %%", str)
		}
		spec, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %%%c", x)
		}
		w.WriteString(spec)
	}
	return w.String(), nil
}
