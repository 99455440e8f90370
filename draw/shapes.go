package draw

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 4

// PointFunc draws a marker centered on pos.
type PointFunc func(svg.Pos, string) svg.Element

var markers = map[string]PointFunc{
	"circle":   GetCircle,
	"square":   GetSquare,
	"diamond":  GetDiamond,
	"triangle": GetTriangle,
}

// PointByName gives the marker registered under name. It returns nil for an
// unknown name or for none.
func PointByName(name string) PointFunc {
	return markers[name]
}

func IsMarker(name string) bool {
	_, ok := markers[name]
	return ok || name == "" || name == "none"
}

func GetCircle(pos svg.Pos, color string) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(color)
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, color string) svg.Element {
	return markerRect(pos, color, 0).AsElement()
}

func GetDiamond(pos svg.Pos, color string) svg.Element {
	return markerRect(pos, color, 45).AsElement()
}

func GetTriangle(pos svg.Pos, color string) svg.Element {
	var (
		half = DefaultSize / 2
		pat  svg.Path
	)
	pat.Fill = svg.NewFill(color)
	pat.AbsMoveTo(svg.NewPos(pos.X, pos.Y-half))
	pat.AbsLineTo(svg.NewPos(pos.X+half, pos.Y+half))
	pat.AbsLineTo(svg.NewPos(pos.X-half, pos.Y+half))
	pat.ClosePath()
	return pat.AsElement()
}

func markerRect(pos svg.Pos, color string, angle float64) svg.Rect {
	var (
		half = DefaultSize / 2
		el   svg.Rect
	)
	el.Pos = svg.NewPos(pos.X-half, pos.Y-half)
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(color)
	if angle != 0 {
		el.Transform.RA = angle
		el.Transform.RX = pos.X
		el.Transform.RY = pos.Y
	}
	return el
}
