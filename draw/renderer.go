package draw

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"

	charts "github.com/midbel/opscharts"
)

const currentColour = "currentColor"

type Serie struct {
	Title    string
	Style    Style
	Segments [][]charts.Coord

	Renderer Renderer
}

func FromPositions(title string, points []charts.Pos) Serie {
	return Serie{
		Title:    title,
		Style:    DefaultStyle(),
		Segments: charts.Segments(points),
	}
}

func FromFrame[K comparable, T any](title string, frame charts.Frame[K, T]) Serie {
	return FromPositions(title, charts.PositionsOf(frame.Points))
}

func (s Serie) Render() svg.Element {
	rdr := s.Renderer
	if rdr == nil {
		rdr = LinearRenderer{}
	}
	return rdr.Render(s)
}

func (s Serie) Empty() bool {
	return len(s.Segments) == 0
}

func (s Serie) color() string {
	if s.Style.Color == "" {
		return currentColour
	}
	return s.Style.Color
}

type Renderer interface {
	Render(Serie) svg.Element
}

// LinearRenderer draws one path per segment of the serie so that no line
// is drawn across missing values.
type LinearRenderer struct{}

func (r LinearRenderer) Render(serie Serie) svg.Element {
	var (
		grp   = getBaseGroup(serie.color(), "line")
		point = PointByName(serie.Style.Point)
	)
	grp.Id = serie.Title
	for _, seg := range serie.Segments {
		pat := getBasePath(serie.Style, serie.color())
		for i, c := range seg {
			pos := svg.NewPos(c.X, c.Y)
			if i == 0 {
				pat.AbsMoveTo(pos)
			} else {
				pat.AbsLineTo(pos)
			}
		}
		grp.Append(pat.AsElement())
		if point == nil && len(seg) == 1 {
			c := slices.Fst(seg)
			grp.Append(GetCircle(svg.NewPos(c.X, c.Y), serie.color()))
		}
		if point != nil {
			for _, c := range seg {
				grp.Append(point(svg.NewPos(c.X, c.Y), serie.color()))
			}
		}
	}
	return grp.AsElement()
}

// StepAfterRenderer keeps each value until the next point of the segment.
type StepAfterRenderer struct{}

func (r StepAfterRenderer) Render(serie Serie) svg.Element {
	grp := getBaseGroup(serie.color(), "line", "line-step-after")
	grp.Id = serie.Title
	for _, seg := range serie.Segments {
		var (
			pat = getBasePath(serie.Style, serie.color())
			fst = slices.Fst(seg)
			ori = svg.NewPos(fst.X, fst.Y)
		)
		pat.AbsMoveTo(ori)
		for _, c := range slices.Rest(seg) {
			pos := svg.NewPos(c.X, c.Y)
			ori.X = pos.X
			pat.AbsLineTo(ori)
			pat.AbsLineTo(pos)
			ori = pos
		}
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

// BandRenderer fills the area between the segments of Upper and the ones of
// the serie it renders. Segments are paired by index.
type BandRenderer struct {
	Upper Serie
}

func (r BandRenderer) Render(serie Serie) svg.Element {
	grp := getBaseGroup(serie.color(), "band")
	grp.Id = serie.Title
	for i, lower := range serie.Segments {
		if i >= len(r.Upper.Segments) {
			break
		}
		var (
			upper = r.Upper.Segments[i]
			pat   svg.Path
		)
		pat.Rendering = "geometricPrecision"
		pat.Fill = svg.NewFill(serie.color())
		pat.Fill.Opacity = 0.2
		for j, c := range upper {
			pos := svg.NewPos(c.X, c.Y)
			if j == 0 {
				pat.AbsMoveTo(pos)
			} else {
				pat.AbsLineTo(pos)
			}
		}
		for j := len(lower) - 1; j >= 0; j-- {
			pat.AbsLineTo(svg.NewPos(lower[j].X, lower[j].Y))
		}
		pat.ClosePath()
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

func getBasePath(style Style, color string) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, style.Width)
	if style.Opacity > 0 {
		pat.Stroke.Opacity = style.Opacity
	}
	switch style.Line {
	case StyleDotted:
		pat.Stroke.DashArray(2)
	case StyleDashed:
		pat.Stroke.DashArray(6)
	default:
	}
	if style.Fill {
		pat.Fill = svg.NewFill(color)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
