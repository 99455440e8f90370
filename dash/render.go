package dash

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	charts "github.com/midbel/opscharts"
	"github.com/midbel/opscharts/draw"
	"github.com/midbel/opscharts/views"
	"github.com/midbel/opscharts/webchart"
)

// Render draws all the charts of the dashboard in its output directory. At
// most Parallel charts are processed at the same time. The first failure
// cancels the charts not yet started.
func Render(ctx context.Context, d Dashboard, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(d.Output, 0o755); err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(max(d.Parallel, 1))
	for _, c := range d.Charts {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := d.renderChart(ctx, c, logger); err != nil {
				return &ChartError{Chart: c.Name, Err: err}
			}
			return nil
		})
	}
	return grp.Wait()
}

// RenderChart loads the source of a single chart and writes it to w.
func RenderChart(ctx context.Context, d Dashboard, c Chart, w io.Writer) (Plot, error) {
	p, err := d.Plot(ctx, c)
	if err != nil {
		return p, err
	}
	return p, p.write(w, c.format())
}

// Plot loads the source of the chart and computes its geometry.
func (d Dashboard) Plot(ctx context.Context, c Chart) (Plot, error) {
	tab, err := LoadTable(ctx, c)
	if err != nil {
		return Plot{}, err
	}
	return d.plot(c, tab)
}

func (d Dashboard) renderChart(ctx context.Context, c Chart, logger *slog.Logger) error {
	logger.Debug("loading data source", "chart", c.Name, "source", c.Source)
	p, err := d.Plot(ctx, c)
	if err != nil {
		return err
	}
	file := filepath.Join(d.Output, c.Name+"."+c.format())
	err = createFile(file, func(w io.Writer) error {
		return p.write(w, c.format())
	})
	if err != nil {
		return err
	}

	var (
		points   = p.Points()
		segments = p.Segments()
	)
	if segments == 0 {
		logger.Warn("chart without geometry", "chart", c.Name, "kind", c.Kind)
	}
	logger.Info("chart rendered", "chart", c.Name, "kind", c.Kind, "points", points, "segments", segments, "file", file)
	return nil
}

// createFile writes file with write. The file is removed when write or close
// fails so that no partial chart stays in the output directory.
func createFile(file string, write func(io.Writer) error) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	err = write(w)
	if e := w.Close(); err == nil {
		err = e
	}
	if err != nil {
		os.Remove(file)
	}
	return err
}

// Plot is the geometry of a chart ready to be written as SVG or HTML.
type Plot struct {
	Title  string
	Layout charts.Layout
	Labels []string
	Series []PlotSerie

	// x values labelled one by one instead of through the axis ticks
	xs []float64

	Legend  Legend
	Palette draw.Palette
}

type PlotSerie struct {
	Name     string
	Style    draw.Style
	Segments [][]charts.Coord
	Values   []charts.Value
	Renderer draw.Renderer
}

func (p Plot) Points() int {
	var n int
	for _, s := range p.Series {
		for _, seg := range s.Segments {
			n += len(seg)
		}
	}
	return n
}

func (p Plot) Segments() int {
	var n int
	for _, s := range p.Series {
		n += len(s.Segments)
	}
	return n
}

func (p Plot) write(w io.Writer, format string) error {
	switch format {
	case FormatSVG:
		return p.writeSVG(w)
	case FormatHTML:
		return p.writeHTML(w)
	default:
		return fmt.Errorf("%s: %w", format, ErrFormat)
	}
}

func (p Plot) writeSVG(w io.Writer) error {
	ch := draw.NewChart(p.Title, p.Layout)
	ch.Palette = p.Palette
	ch.Legend.Title = p.Legend.Title
	ch.Legend.Orient = draw.ParseOrientation(p.Legend.Position)

	list := make([]draw.Serie, 0, len(p.Series))
	for _, s := range p.Series {
		ser := draw.Serie{
			Title:    s.Name,
			Style:    s.Style,
			Segments: s.Segments,
			Renderer: s.Renderer,
		}
		list = append(list, ser)
	}
	return ch.Render(w, list...)
}

func (p Plot) writeHTML(w io.Writer) error {
	line := webchart.Line{
		Title:  p.Title,
		Width:  fmt.Sprintf("%dpx", int(p.Layout.Width)),
		Height: fmt.Sprintf("%dpx", int(p.Layout.Height)),
		Labels: p.Labels,
	}
	for i, s := range p.Series {
		ser := webchart.Serie{
			Name:   s.Name,
			Color:  s.Style.Color,
			Values: s.Values,
		}
		if ser.Color == "" {
			ser.Color = p.palette().At(i)
		}
		line.Series = append(line.Series, ser)
	}
	return line.Render(w)
}

func (p Plot) palette() draw.Palette {
	if len(p.Palette) == 0 {
		return draw.Category10
	}
	return p.Palette
}

func (d Dashboard) plot(c Chart, tab Table) (Plot, error) {
	var (
		style = c.Style.merge(d.Style)
		base  Plot
	)
	st, err := style.style()
	if err != nil {
		return base, err
	}
	base.Title = c.Title
	base.Legend = c.Legend
	base.Palette = style.palette()

	var p Plot
	switch c.Kind {
	case KindIncome:
		p, err = d.incomePlot(c, tab, st)
	case KindHazard:
		p, err = d.hazardPlot(c, tab, st)
	case KindAssessment:
		p, err = d.assessmentPlot(c, tab, st)
	case KindLine:
		p, err = d.linePlot(c, tab, st)
	default:
		err = fmt.Errorf("%s: %w", c.Kind, ErrKind)
	}
	if err != nil {
		return base, err
	}
	p.Title = base.Title
	p.Legend = base.Legend
	p.Palette = base.Palette
	if f := c.X.formatter(d.Locale); f != nil {
		p.Layout.XFormat = f
		p.Labels = p.labels()
	}
	if f := c.Y.formatter(d.Locale); f != nil {
		p.Layout.YFormat = f
	}
	return p, nil
}

func (p Plot) labels() []string {
	if p.xs == nil {
		return webchart.FromTicks(p.Layout.XAxis())
	}
	list := make([]string, len(p.xs))
	for i, x := range p.xs {
		list[i] = p.Layout.XFormat(x)
	}
	return list
}

func (d Dashboard) incomePlot(c Chart, tab Table, style draw.Style) (Plot, error) {
	records, err := incomeRecords(c, tab)
	if err != nil {
		return Plot{}, err
	}
	frame := views.YearlyIncome(records, d.options(c))
	serie := PlotSerie{
		Name:     c.Title,
		Style:    style,
		Segments: frame.Segments(),
		Values: webchart.ValuesOf(frame.Points, func(i views.Income) charts.Value {
			return i.Value
		}),
	}
	p := Plot{
		Layout: frame.Layout,
		Labels: webchart.FromTicks(frame.XAxis),
		Series: []PlotSerie{serie},
	}
	return p, nil
}

func incomeRecords(c Chart, tab Table) ([]views.Income, error) {
	value, err := tab.Selector(c.Columns.Value)
	if err != nil {
		return nil, err
	}
	year, err := yearColumn(c, tab)
	if err != nil {
		return nil, err
	}
	var list []views.Income
	for _, row := range tab.Rows {
		y, ok := year(row)
		if !ok {
			continue
		}
		in := views.Income{
			Year:  y,
			Value: value.Select(row),
		}
		list = append(list, in)
	}
	return list, nil
}

func yearColumn(c Chart, tab Table) (func([]string) (int, bool), error) {
	if c.Columns.Year != "" {
		ix, err := tab.Index(c.Columns.Year)
		if err != nil {
			return nil, err
		}
		return func(row []string) (int, bool) {
			return intCell(row, ix)
		}, nil
	}
	date, err := dateColumn(c, tab)
	if err != nil {
		return nil, err
	}
	return func(row []string) (int, bool) {
		t, ok := charts.ParseDate(date(row))
		if !ok {
			return 0, false
		}
		return t.Year(), true
	}, nil
}

func dateColumn(c Chart, tab Table) (func([]string) string, error) {
	ix, err := tab.Index(c.Columns.Date)
	if err != nil {
		return nil, err
	}
	normalize, err := makeDateNormalizer(c.TimeFormat)
	if err != nil {
		return nil, err
	}
	return func(row []string) string {
		return normalize(cell(row, ix))
	}, nil
}

func (d Dashboard) hazardPlot(c Chart, tab Table, style draw.Style) (Plot, error) {
	value, err := tab.Selector(c.Columns.Value)
	if err != nil {
		return Plot{}, err
	}
	date, err := dateColumn(c, tab)
	if err != nil {
		return Plot{}, err
	}
	var records []charts.Record
	for _, row := range tab.Rows {
		r := charts.Record{
			Date:  date(row),
			Value: value.Select(row),
		}
		records = append(records, r)
	}
	h := views.SeasonalHazard(records, d.options(c))
	p := Plot{
		Layout: h.Layout,
		Labels: webchart.FromTicks(h.XAxis),
	}
	for _, s := range h.Series() {
		ps := PlotSerie{
			Name:     s.Name,
			Style:    hazardStyle(s.Kind, style),
			Segments: s.Segments(),
			Values:   webchart.ValuesOf(s.Points, monthValue),
		}
		if s.Kind == views.KindMinimum && len(h.Maximum.Points) > 0 {
			ps.Renderer = draw.BandRenderer{
				Upper: draw.Serie{
					Segments: h.Maximum.Segments(),
				},
			}
		}
		p.Series = append(p.Series, ps)
	}
	return p, nil
}

func monthValue(m views.Month) charts.Value {
	return m.Value
}

func hazardStyle(kind views.SeriesKind, base draw.Style) draw.Style {
	st := base
	switch kind {
	case views.KindOverlay:
		st.Color = "#bbbbbb"
		st.Width = 1
		st.Opacity = 0.6
		st.Point = ""
	case views.KindAverage:
		st.Color = "#555555"
		st.Line = draw.StyleDashed
		st.Point = ""
	case views.KindMinimum, views.KindMaximum:
		st.Color = "#999999"
		st.Width = 1
		st.Line = draw.StyleDotted
		st.Point = ""
	case views.KindPrediction:
		st.Width = math.Max(st.Width, 2)
	default:
	}
	return st
}

func (d Dashboard) assessmentPlot(c Chart, tab Table, style draw.Style) (Plot, error) {
	value, err := tab.Selector(c.Columns.Value)
	if err != nil {
		return Plot{}, err
	}
	ix, err := tab.Index(c.Columns.Cycle)
	if err != nil {
		return Plot{}, err
	}
	var list []views.Rating
	for _, row := range tab.Rows {
		cycle, ok := intCell(row, ix)
		if !ok {
			continue
		}
		r := views.Rating{
			Cycle: cycle,
			Value: value.Select(row),
		}
		list = append(list, r)
	}
	frame := views.AssessmentCycles(list, d.options(c))
	serie := PlotSerie{
		Name:     c.Title,
		Style:    style,
		Segments: frame.Segments(),
		Values: webchart.ValuesOf(frame.Points, func(r views.Rating) charts.Value {
			return r.Value
		}),
	}
	if serie.Style.Point == "" {
		serie.Style.Point = "circle"
	}
	p := Plot{
		Layout: frame.Layout,
		Labels: webchart.FromTicks(frame.XAxis),
		Series: []PlotSerie{serie},
	}
	return p, nil
}

type linePoint struct {
	Index int
	X     float64
	Y     charts.Value
}

var lineSelectors = charts.SelectFuncs[linePoint, int]{
	KeyFunc: func(p linePoint) int { return p.Index },
	XFunc:   func(p linePoint) float64 { return p.X },
	YFunc:   func(p linePoint) charts.Value { return p.Y },
}

// linePlot draws one serie per value column. All the series share the same
// domains.
func (d Dashboard) linePlot(c Chart, tab Table, style draw.Style) (Plot, error) {
	ix, err := tab.Index(c.Columns.X)
	if err != nil {
		return Plot{}, err
	}
	var (
		opts = d.options(c)
		data = make([][]linePoint, 0, len(c.Columns.Value))
		cfg  = lineConfig(c, opts)
	)
	for _, name := range c.Columns.Value {
		sel, err := tab.Selector(Names{name})
		if err != nil {
			return Plot{}, err
		}
		var list []linePoint
		for i, row := range tab.Rows {
			x, ok := cellValue(row, ix).Get()
			if !ok {
				continue
			}
			pt := linePoint{
				Index: i,
				X:     x,
				Y:     sel.Select(row),
			}
			list = append(list, pt)
		}
		data = append(data, list)
	}
	layout := lineLayout(c, cfg, data, opts.Size)

	var p Plot
	p.Layout = layout
	for i, list := range data {
		frame := charts.ComputeWithLayout(list, cfg.Selectors, layout)
		ps := PlotSerie{
			Name:     c.Columns.Value[i],
			Style:    style,
			Segments: frame.Segments(),
			Values: webchart.ValuesOf(frame.Points, func(pt linePoint) charts.Value {
				return pt.Y
			}),
		}
		if len(c.Columns.Value) > 1 {
			ps.Style.Color = ""
		}
		p.Series = append(p.Series, ps)
		if i == 0 {
			p.xs = make([]float64, 0, len(list))
			for _, pt := range list {
				p.xs = append(p.xs, pt.X)
			}
			p.Labels = p.labels()
		}
	}
	return p, nil
}

func lineConfig(c Chart, opts views.Options) charts.Config[linePoint, int] {
	xkind, _ := charts.ParseScaleKind(c.X.Scale)
	return charts.Config[linePoint, int]{
		Selectors: lineSelectors,
		Padding:   opts.Padding,
		XTicks:    c.X.Ticks,
		YTicks:    c.Y.Ticks,
		XKind:     xkind,
		YKind:     opts.Kind,
		XFormat:   charts.DefaultFormat,
		YFormat:   charts.FormatCompact,
		YFromZero: c.Y.Zero,
		NiceY:     c.Y.Nice,
	}
}

func lineLayout(c Chart, cfg charts.Config[linePoint, int], data [][]linePoint, size charts.Size) charts.Layout {
	var (
		layout = cfg.Layout(nil, size)
		xfound bool
		yfound bool
	)
	for _, list := range data {
		if len(list) == 0 {
			continue
		}
		other := cfg.Layout(list, size)
		if !xfound {
			layout.XDomain = other.XDomain
			xfound = true
		} else {
			layout.XDomain = layout.XDomain.Merge(other.XDomain)
		}
		// a column without any value has no bounds of its own
		if !hasValue(list) {
			continue
		}
		if !yfound {
			layout.YDomain = other.YDomain
			yfound = true
		} else {
			layout.YDomain = layout.YDomain.Merge(other.YDomain)
		}
	}
	layout.XDomain = c.X.domain(layout.XDomain)
	layout.YDomain = c.Y.domain(layout.YDomain)
	if c.X.Zero {
		layout.XDomain = layout.XDomain.FromZero()
	}
	if c.X.Nice {
		layout.XDomain = layout.XDomain.Nice(layout.XTicks)
	}
	return layout
}

func hasValue(list []linePoint) bool {
	for _, pt := range list {
		if pt.Y.Defined() {
			return true
		}
	}
	return false
}

func intCell(row []string, i int) (int, bool) {
	v, ok := cellValue(row, i).Get()
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}
