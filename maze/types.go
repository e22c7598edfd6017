// SPDX-License-Identifier: MIT

package maze

import "fmt"

// Cell is a grid coordinate: X is the column, Y the row, both 0-indexed.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset returns the cell displaced by (dx, dy).
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// IsAdjacent reports whether c and o differ by exactly one unit along
// exactly one axis.
func (c Cell) IsAdjacent(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// State is the binary state of a cell.
type State uint8

const (
	// Blocked cells are walls; the zero value so a fresh grid is all walls.
	Blocked State = iota
	// Passable cells can be walked through.
	Passable
)

// String returns "blocked" or "passable".
func (s State) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Passable:
		return "passable"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// neighborOffsets is the fixed enumeration order used by Neighbors:
// down, up, right, left. Order-sensitive searches depend on it.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
