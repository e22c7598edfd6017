// SPDX-License-Identifier: MIT

// Package render draws mazes and search results for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Icons for colored output.
const (
	IconWall  = "▒"
	IconFloor = " "
	IconPath  = "●"
	IconStart = "S"
	IconEnd   = "E"
)

// Icons for plain output; they match the maze.FromRows glyphs plus a path
// marker.
const (
	PlainWall  = "#"
	PlainFloor = "."
	PlainPath  = "*"
	PlainStart = "S"
	PlainEnd   = "E"
)

// Renderer turns mazes and results into printable strings.
// The zero value renders plain text.
type Renderer struct {
	colored bool

	colorWall  color.Style
	colorFloor color.Style
	colorPath  color.Style
	colorStart color.Style
	colorEnd   color.Style
	colorOK    color.Style
	colorFail  color.Style
	colorLabel color.Style
}

// New returns a Renderer. When colored is false the output contains no
// escape codes and uses the plain icons.
func New(colored bool) *Renderer {
	return &Renderer{
		colored:    colored,
		colorWall:  color.Style{color.FgGray},
		colorFloor: color.Style{color.FgDefault},
		colorPath:  color.Style{color.FgYellow, color.OpBold},
		colorStart: color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		colorEnd:   color.Style{color.FgRed, color.BgBlack, color.OpBold},
		colorOK:    color.Style{color.FgGreen, color.OpBold},
		colorFail:  color.Style{color.FgRed, color.OpBold},
		colorLabel: color.Style{color.FgBlue},
	}
}

// Colored reports whether r emits escape codes.
func (r *Renderer) Colored() bool { return r.colored }

// paint applies s when coloring is on.
func (r *Renderer) paint(s color.Style, text string) string {
	if !r.colored {
		return text
	}
	return s.Sprint(text)
}

// Maze draws m one row per line, overlaying path. Endpoints come from the
// maze or, when unset there, from the ends of path.
func (r *Renderer) Maze(m *maze.Maze, path []maze.Cell) string {
	onPath := mapset.New[maze.Cell]()
	for _, c := range path {
		onPath.Put(c)
	}
	start, hasStart := m.Start()
	end, hasEnd := m.End()
	if !hasStart && len(path) > 0 {
		start, hasStart = path[0], true
	}
	if !hasEnd && len(path) > 0 {
		end, hasEnd = path[len(path)-1], true
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			switch {
			case hasStart && c == start:
				b.WriteString(r.paint(r.colorStart, r.icon(IconStart, PlainStart)))
			case hasEnd && c == end:
				b.WriteString(r.paint(r.colorEnd, r.icon(IconEnd, PlainEnd)))
			case onPath.Has(c):
				b.WriteString(r.paint(r.colorPath, r.icon(IconPath, PlainPath)))
			case m.IsPassable(c):
				b.WriteString(r.paint(r.colorFloor, r.icon(IconFloor, PlainFloor)))
			default:
				b.WriteString(r.paint(r.colorWall, r.icon(IconWall, PlainWall)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) icon(colored, plain string) string {
	if r.colored {
		return colored
	}
	return plain
}

// Summary is a one-line description of res. noPath is the message shown
// when res.Found is false, letting callers localize it.
func (r *Renderer) Summary(res pathfind.Result, noPath string) string {
	if !res.Found {
		status := noPath
		if res.Exhausted {
			status += " (budget exhausted)"
		}
		return fmt.Sprintf("%s: %s, expanded %d",
			r.paint(r.colorLabel, res.Algorithm.String()), r.paint(r.colorFail, status), res.Expanded)
	}
	return fmt.Sprintf("%s: %s, expanded %d",
		r.paint(r.colorLabel, res.Algorithm.String()),
		r.paint(r.colorOK, fmt.Sprintf("length %d", res.Length())), res.Expanded)
}

// Compare renders a fixed-width table with one row per result.
func (r *Renderer) Compare(results []pathfind.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-6s %-9s %8s %8s\n", "ALGORITHM", "FOUND", "EXHAUSTED", "LENGTH", "EXPANDED")
	for _, res := range results {
		found := fmt.Sprintf("%-6t", res.Found)
		if res.Found {
			found = r.paint(r.colorOK, found)
		} else {
			found = r.paint(r.colorFail, found)
		}
		fmt.Fprintf(&b, "%-16s %s %-9t %8d %8d\n",
			res.Algorithm, found, res.Exhausted, res.Length(), res.Expanded)
	}
	return b.String()
}
