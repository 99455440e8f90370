package dash

import (
	"errors"
	"fmt"

	charts "github.com/midbel/opscharts"
	"github.com/midbel/opscharts/views"
)

var (
	DefaultWidth    = views.DefaultWidth
	DefaultHeight   = views.DefaultHeight
	DefaultOutput   = "."
	DefaultDelim    = ","
	DefaultParallel = 4
	TimeFormat      = "%Y-%m-%d"
)

const (
	KindIncome     = "income"
	KindHazard     = "hazard"
	KindAssessment = "assessment"
	KindLine       = "line"
)

const (
	FormatSVG  = "svg"
	FormatHTML = "html"
)

var (
	ErrKind   = errors.New("unknown chart kind")
	ErrFormat = errors.New("unknown output format")
	ErrColumn = errors.New("column not set")
)

type ChartError struct {
	Chart string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %s: %v", e.Chart, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (p Padding) padding() charts.Padding {
	return charts.Padding(p)
}

type Legend struct {
	Title    string   `yaml:"title"`
	Position []string `yaml:"position"`
}

type Columns struct {
	X     string `yaml:"x"`
	Year  string `yaml:"year"`
	Date  string `yaml:"date"`
	Cycle string `yaml:"cycle"`
	Value Names  `yaml:"value"`
}

type Chart struct {
	Name       string  `yaml:"name"`
	Title      string  `yaml:"title"`
	Kind       string  `yaml:"kind"`
	Source     string  `yaml:"source"`
	Sheet      string  `yaml:"sheet"`
	Delimiter  string  `yaml:"delimiter"`
	TimeFormat string  `yaml:"timefmt"`
	Format     string  `yaml:"format"`
	Columns    Columns `yaml:"columns"`
	X          Axis    `yaml:"x"`
	Y          Axis    `yaml:"y"`
	Style      Style   `yaml:"style"`
	Legend     Legend  `yaml:"legend"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

type Dashboard struct {
	Title    string  `yaml:"title"`
	Output   string  `yaml:"output"`
	Locale   string  `yaml:"locale"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Parallel int     `yaml:"parallel"`
	Padding  Padding `yaml:"padding"`
	Style    Style   `yaml:"style"`
	Charts   []Chart `yaml:"charts"`
}

func Default() Dashboard {
	return Dashboard{
		Output:   DefaultOutput,
		Locale:   views.DefaultLocale,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Parallel: DefaultParallel,
		Padding:  Padding(views.DefaultPadding),
		Style:    GlobalStyle(),
	}
}

func (d Dashboard) Validate() error {
	seen := make(map[string]struct{})
	for _, c := range d.Charts {
		if c.Name == "" {
			return fmt.Errorf("chart without name")
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%s: chart defined more than once", c.Name)
		}
		seen[c.Name] = struct{}{}
		if err := c.validate(); err != nil {
			return &ChartError{Chart: c.Name, Err: err}
		}
	}
	if d.Parallel <= 0 {
		return fmt.Errorf("parallel should be greater than 0 (got %d)", d.Parallel)
	}
	return nil
}

func (c Chart) validate() error {
	if c.Source == "" {
		return fmt.Errorf("source not set")
	}
	switch c.Kind {
	case KindIncome:
		if c.Columns.Year == "" && c.Columns.Date == "" {
			return fmt.Errorf("year: %w", ErrColumn)
		}
	case KindHazard:
		if c.Columns.Date == "" {
			return fmt.Errorf("date: %w", ErrColumn)
		}
	case KindAssessment:
		if c.Columns.Cycle == "" {
			return fmt.Errorf("cycle: %w", ErrColumn)
		}
	case KindLine:
		if c.Columns.X == "" {
			return fmt.Errorf("x: %w", ErrColumn)
		}
	default:
		return fmt.Errorf("%s: %w", c.Kind, ErrKind)
	}
	if len(c.Columns.Value) == 0 {
		return fmt.Errorf("value: %w", ErrColumn)
	}
	switch c.Format {
	case "", FormatSVG, FormatHTML:
	default:
		return fmt.Errorf("%s: %w", c.Format, ErrFormat)
	}
	if _, err := charts.ParseScaleKind(c.X.Scale); err != nil {
		return err
	}
	if _, err := charts.ParseScaleKind(c.Y.Scale); err != nil {
		return err
	}
	if _, err := c.Style.style(); err != nil {
		return err
	}
	if c.TimeFormat != "" {
		if _, err := parseFormat(c.TimeFormat); err != nil {
			return err
		}
	}
	return nil
}

func (c Chart) format() string {
	if c.Format == "" {
		return FormatSVG
	}
	return c.Format
}

func (d Dashboard) options(c Chart) views.Options {
	opts := views.Options{
		Size: charts.Size{
			Width:  d.Width,
			Height: d.Height,
		},
		Padding: d.Padding.padding(),
		Locale:  d.Locale,
		YTicks:  c.Y.Ticks,
	}
	if c.Width > 0 {
		opts.Width = c.Width
	}
	if c.Height > 0 {
		opts.Height = c.Height
	}
	opts.Kind, _ = charts.ParseScaleKind(c.Y.Scale)
	return opts
}
