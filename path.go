package charts

import (
	"math"
	"strconv"
	"strings"
)

type Coord struct {
	X float64
	Y float64
}

type Pos struct {
	X float64
	Y Value
}

const (
	cmdMove = 'M'
	cmdLine = 'L'
)

// BuildPath draws a continuous path through all the given points.
func BuildPath(points []Coord) string {
	var str strings.Builder
	for i, c := range points {
		cmd := cmdLine
		if i == 0 {
			cmd = cmdMove
		}
		str.WriteRune(cmd)
		str.WriteString(formatCoord(c.X))
		str.WriteRune(',')
		str.WriteString(formatCoord(c.Y))
	}
	return str.String()
}

// Segments splits points into runs of consecutive defined points. Each
// missing point closes the current run.
func Segments(points []Pos) [][]Coord {
	var (
		list [][]Coord
		curr []Coord
	)
	for _, p := range points {
		y, ok := p.Y.Get()
		if !ok {
			if len(curr) > 0 {
				list = append(list, curr)
			}
			curr = nil
			continue
		}
		curr = append(curr, Coord{X: p.X, Y: y})
	}
	if len(curr) > 0 {
		list = append(list, curr)
	}
	return list
}

func BuildDiscretePaths(points []Pos) []string {
	var list []string
	for _, s := range Segments(points) {
		list = append(list, BuildPath(s))
	}
	return list
}

func formatCoord(f float64) string {
	f = math.Round(f*100) / 100
	if f == 0 {
		// no negative zero
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
