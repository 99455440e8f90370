package draw

import (
	"bufio"
	"io"

	"github.com/midbel/svg"

	charts "github.com/midbel/opscharts"
)

type Chart struct {
	Title string
	charts.Layout

	Left    *Axis
	Bottom  *Axis
	Palette Palette

	Legend struct {
		Title  string
		Orient Orientation
	}
}

// NewChart creates a chart with a left and a bottom axis computed from the
// layout.
func NewChart(title string, layout charts.Layout) Chart {
	var (
		left   = DefaultAxis(OrientLeft, layout.YAxis())
		bottom = DefaultAxis(OrientBottom, layout.XAxis())
	)
	bottom.WithOuterTicks = false
	return Chart{
		Title:  title,
		Layout: layout,
		Left:   &left,
		Bottom: &bottom,
	}
}

func (c Chart) Render(w io.Writer, series ...Serie) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	if c.Title != "" {
		el.Append(c.drawTitle())
	}
	if !c.Empty() {
		el.Append(c.drawAxis())
	}
	area := svg.NewGroup(svg.WithID("area"))
	for i, s := range series {
		if s.Empty() {
			continue
		}
		if s.Style.Color == "" {
			s.Style.Color = c.palette().At(i)
		}
		area.Append(s.Render())
	}
	el.Append(area.AsElement())
	if lg := c.drawLegend(series); lg != nil {
		el.Append(lg)
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) palette() Palette {
	if len(c.Palette) == 0 {
		return Category10
	}
	return c.Palette
}

func (c Chart) drawTitle() svg.Element {
	txt := svg.NewText(c.Title)
	txt.Font = svg.NewFont(FontSize * 1.2)
	txt.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	return txt.AsElement()
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		var (
			rg = charts.NewRange(c.Padding.Top, c.Height-c.Padding.Bottom)
			el = c.Left.Render(rg, c.DrawingWidth(), c.Padding.Left, 0)
		)
		g.Append(el)
	}
	if c.Bottom != nil {
		var (
			rg = charts.NewRange(c.Padding.Left, c.Width-c.Padding.Right)
			el = c.Bottom.Render(rg, c.DrawingHeight(), 0, c.Height-c.Padding.Bottom)
		)
		g.Append(el)
	}
	return g.AsElement()
}

func (c Chart) drawLegend(series []Serie) svg.Element {
	if c.Legend.Orient == 0 || len(series) == 0 {
		return nil
	}
	var (
		offset = FontSize * 1.4
		height = float64(len(series)) * offset
		width  float64
		grp    svg.Group
		shift  float64
	)
	if c.Legend.Title != "" {
		height += offset
		shift = offset
		tx := svg.NewText(c.Legend.Title)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"
		grp.Append(tx.AsElement())
	}
	for i, s := range series {
		if n := float64(len(s.Title)); n > width {
			width = n
		}
		color := s.Style.Color
		if color == "" {
			color = c.palette().At(i)
		}
		var g svg.Group
		g.Transform = svg.Translate(0, shift+float64(i)*offset)
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(color, 2)

		tx := svg.NewText(s.Title)
		tx.Pos = svg.NewPos(30, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
	}
	width = width*FontSize*0.6 + 30

	var left, top float64
	switch c.Legend.Orient {
	case OrientRight:
		left = c.Width - c.Padding.Right - width
		top = (c.Height - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Right - width
		top = c.Height - c.Padding.Bottom - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - height) / 2
	case OrientLeft | OrientTop:
		left = c.Padding.Left
		top = c.Padding.Top
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		left = c.Width - c.Padding.Right - width
		top = c.Padding.Top
	default:
		return nil
	}
	grp.Transform = svg.Translate(left, top)
	return grp.AsElement()
}

// ParseOrientation combines position names (top, right, bottom, left) into
// an orientation.
func ParseOrientation(names []string) Orientation {
	var o Orientation
	for _, n := range names {
		switch n {
		case "top":
			o |= OrientTop
		case "bottom":
			o |= OrientBottom
		case "right":
			o |= OrientRight
		case "left":
			o |= OrientLeft
		default:
		}
	}
	return o
}
