package charts

const DefaultTicks = 5

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Size struct {
	Width  float64
	Height float64
}

// Layout describes the drawing area of a chart for one container size and
// the domains shown along its axes.
type Layout struct {
	Size
	Padding

	XDomain Domain
	YDomain Domain
	XKind   ScaleKind
	YKind   ScaleKind
	XTicks  int
	YTicks  int
	XFormat Formatter
	YFormat Formatter
}

func (l Layout) DrawingWidth() float64 {
	return l.Width - l.Padding.Horizontal()
}

func (l Layout) DrawingHeight() float64 {
	return l.Height - l.Padding.Vertical()
}

func (l Layout) Empty() bool {
	return l.DrawingWidth() <= 0 || l.DrawingHeight() <= 0
}

func (l Layout) XScaler() Scaler {
	rg := NewRange(l.Left, l.Width-l.Right)
	return NumberScaler(l.XDomain, rg, WithKind(l.XKind))
}

func (l Layout) YScaler() Scaler {
	rg := NewRange(l.Top, l.Height-l.Bottom)
	return NumberScaler(l.YDomain, rg, WithKind(l.YKind), Inverted())
}

func (l Layout) XAxis() []Tick {
	return Ticks(l.XScaler(), l.XTicks, l.XFormat)
}

func (l Layout) YAxis() []Tick {
	return Ticks(l.YScaler(), l.YTicks, l.YFormat)
}

type Config[T any, K comparable] struct {
	Selectors[T, K]
	Padding

	XDomain   *Domain
	YDomain   *Domain
	XTicks    int
	YTicks    int
	XFormat   Formatter
	YFormat   Formatter
	XKind     ScaleKind
	YKind     ScaleKind
	YFromZero bool
	NiceY     bool
}

// Layout resolves the domains of the config from the data when they are not
// given explicitly.
func (c Config[T, K]) Layout(data []T, size Size) Layout {
	layout := Layout{
		Size:    size,
		Padding: c.Padding,
		XKind:   c.XKind,
		YKind:   c.YKind,
		XTicks:  tickCount(c.XTicks),
		YTicks:  tickCount(c.YTicks),
		XFormat: c.XFormat,
		YFormat: c.YFormat,
	}
	if c.XDomain != nil {
		layout.XDomain = *c.XDomain
	} else {
		xs := make([]float64, 0, len(data))
		for _, d := range data {
			xs = append(xs, c.X(d))
		}
		layout.XDomain = Bounds(xs)
	}
	if c.YDomain != nil {
		layout.YDomain = *c.YDomain
	} else {
		ys := make([]float64, 0, len(data))
		for _, d := range data {
			if v, ok := c.Y(d).Get(); ok {
				ys = append(ys, v)
			}
		}
		layout.YDomain = Bounds(ys)
		if c.YFromZero {
			layout.YDomain = layout.YDomain.FromZero()
		}
		if c.NiceY {
			layout.YDomain = layout.YDomain.Nice(layout.YTicks)
		}
	}
	return layout
}

func tickCount(n int) int {
	if n == 0 {
		return DefaultTicks
	}
	if n < 0 {
		return 0
	}
	return n
}

type Frame[K comparable, T any] struct {
	Layout

	Points []Point[K, T]
	XAxis  []Tick
	YAxis  []Tick
	Paths  []string
}

func (f Frame[K, T]) Segments() [][]Coord {
	return Segments(PositionsOf(f.Points))
}

// Compute returns the full geometry of a single series chart.
func Compute[T any, K comparable](data []T, cfg Config[T, K], size Size) Frame[K, T] {
	return ComputeWithLayout(data, cfg.Selectors, cfg.Layout(data, size))
}

func ComputeWithLayout[T any, K comparable](data []T, sel Selectors[T, K], layout Layout) Frame[K, T] {
	frame := Frame[K, T]{
		Layout: layout,
	}
	if layout.Empty() {
		return frame
	}
	frame.Points = BuildPoints(data, sel, layout.XScaler(), layout.YScaler())
	frame.XAxis = layout.XAxis()
	frame.YAxis = layout.YAxis()
	frame.Paths = BuildDiscretePaths(PositionsOf(frame.Points))
	return frame
}
