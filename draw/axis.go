package draw

import (
	"math"

	"github.com/midbel/svg"

	charts "github.com/midbel/opscharts"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws ticks whose positions are already expressed in the coordinates
// of the chart.
type Axis struct {
	Label string
	Orientation
	Ticks          []charts.Tick
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
	WithBands      bool
}

func DefaultAxis(orient Orientation, ticks []charts.Tick) Axis {
	return Axis{
		Orientation:    orient,
		Ticks:          ticks,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: true,
	}
}

// Render draws the axis along rg, offset by left and top. size is the extent
// of the grid lines drawn across the drawing area.
func (a Axis) Render(rg charts.Range, size, left, top float64) svg.Element {
	var (
		g    = svg.NewGroup(svg.WithTranslate(left, top))
		d    = domainLine(a.Orientation, rg)
		font = svg.NewFont(FontSize)
	)
	g.Class = append(g.Class, "axis")
	g.Append(d.AsElement())
	for i, t := range a.Ticks {
		grp := svg.NewGroup(svg.WithTranslate(t.Position, 0))
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = t.Position
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, FontSize*0.5, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks && t.Label != "" {
			text := tickText(a.Orientation, t.Label, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks {
			sk := d.Stroke
			sk.Opacity = 0.1
			tick := lineTick(a.Orientation, -size, sk)
			grp.Append(tick.AsElement())
		}
		if a.WithBands && i%2 == 0 && i < len(a.Ticks)-1 {
			next := a.Ticks[i+1].Position - t.Position
			rec := tickBand(a.Orientation, size, next)
			grp.Append(rec.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, rg charts.Range) svg.Line {
	var (
		pos1 = svg.NewPos(rg.Start, 0)
		pos2 = svg.NewPos(rg.End, 0)
	)
	if orient.Vertical() {
		pos1.X, pos1.Y = pos1.Y, pos1.X
		pos2.X, pos2.Y = pos2.Y, pos2.X
	}
	d := svg.NewLine(pos1, pos2)
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func tickBand(orient Orientation, size, length float64) svg.Rect {
	var (
		rec   svg.Rect
		shift = math.Min(0, length)
	)
	length = math.Abs(length)
	switch {
	case orient.Vertical() && !orient.Reverse():
		rec.Pos = svg.NewPos(0, shift)
		rec.Dim = svg.NewDim(size, length)
	case orient.Vertical():
		rec.Pos = svg.NewPos(-size, shift)
		rec.Dim = svg.NewDim(size, length)
	case orient.Reverse():
		rec.Pos = svg.NewPos(shift, 0)
		rec.Dim = svg.NewDim(length, size)
	default:
		rec.Pos = svg.NewPos(shift, -size)
		rec.Dim = svg.NewDim(length, size)
	}
	rec.Fill = svg.NewFill("currentColor")
	rec.Fill.Opacity = 0.05
	return rec
}

func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -size, 0
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = size, 0
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -size
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, FontSize * 0.8
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
