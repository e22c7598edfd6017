// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"strings"
)

// Glyphs used by String and FromRows.
const (
	GlyphBlocked  = '#'
	GlyphPassable = '.'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
)

// Maze is a fixed-size grid of Blocked/Passable cells with optional
// start and end endpoints.
type Maze struct {
	width  int
	height int
	grid   []State // row-major: y*width + x

	start *Cell
	end   *Cell
}

// New returns a width×height maze with every cell Blocked and no endpoints.
// Returns ErrInvalidDimensions if either dimension is below 1.
// Complexity: O(W×H).
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Maze{
		width:  width,
		height: height,
		grid:   make([]State, width*height),
	}, nil
}

// FromRows parses a maze drawn with '#' (blocked), '.' (passable),
// 'S' (passable start) and 'E' (passable end). Row i becomes y = i.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownGlyph on bad input.
func FromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := Cell{X: x, Y: y}
			switch row[x] {
			case GlyphBlocked:
				// already blocked
			case GlyphPassable:
				m.grid[m.index(c)] = Passable
			case GlyphStart:
				m.grid[m.index(c)] = Passable
				m.start = &c
			case GlyphEnd:
				m.grid[m.index(c)] = Passable
				m.end = &c
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, row[x], c)
			}
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Size returns the total number of cells, width×height.
func (m *Maze) Size() int { return m.width * m.height }

// InBounds reports whether c lies within the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// IsInterior reports whether c lies strictly inside the border.
func (m *Maze) IsInterior(c Cell) bool {
	return c.X > 0 && c.X < m.width-1 && c.Y > 0 && c.Y < m.height-1
}

// IsBorder reports whether c is an in-bounds cell on the outer ring.
func (m *Maze) IsBorder(c Cell) bool {
	return m.InBounds(c) && !m.IsInterior(c)
}

// State returns the state of c; out-of-bounds cells report Blocked.
func (m *Maze) State(c Cell) State {
	if !m.InBounds(c) {
		return Blocked
	}
	return m.grid[m.index(c)]
}

// IsPassable reports whether c is in bounds and Passable.
func (m *Maze) IsPassable(c Cell) bool {
	return m.State(c) == Passable
}

// SetState overwrites the state of c. Blocking a cell that is currently an
// endpoint clears that endpoint. Intended for building mazes by hand;
// a maze must not be mutated while a search reads it.
func (m *Maze) SetState(c Cell, s State) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	m.grid[m.index(c)] = s
	if s == Blocked {
		if m.start != nil && *m.start == c {
			m.start = nil
		}
		if m.end != nil && *m.end == c {
			m.end = nil
		}
	}
	return nil
}

// PassableCount returns the number of Passable cells.
func (m *Maze) PassableCount() int {
	n := 0
	for _, s := range m.grid {
		if s == Passable {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds Passable cells adjacent to c, in the
// fixed order down, up, right, left.
func (m *Maze) Neighbors(c Cell) []Cell {
	return m.AppendNeighbors(make([]Cell, 0, 4), c)
}

// AppendNeighbors appends the Passable neighbours of c to dst in the same
// order as Neighbors and returns the extended slice.
func (m *Maze) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		n := c.Offset(d[0], d[1])
		if m.IsPassable(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// checkEndpoint validates a prospective endpoint.
func (m *Maze) checkEndpoint(c Cell) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !m.IsPassable(c) {
		return fmt.Errorf("%w: %v", ErrEndpointNotPassable, c)
	}
	return nil
}

// SetStart sets the start endpoint. c must be an in-bounds Passable cell.
func (m *Maze) SetStart(c Cell) error {
	if err := m.checkEndpoint(c); err != nil {
		return err
	}
	m.start = &c
	return nil
}

// SetEnd sets the end endpoint. c must be an in-bounds Passable cell.
func (m *Maze) SetEnd(c Cell) error {
	if err := m.checkEndpoint(c); err != nil {
		return err
	}
	m.end = &c
	return nil
}

// SetEndpoints sets both endpoints at once. Both must be Passable and
// distinct; on error neither endpoint changes.
func (m *Maze) SetEndpoints(start, end Cell) error {
	if err := m.checkEndpoint(start); err != nil {
		return err
	}
	if err := m.checkEndpoint(end); err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}
	m.start, m.end = &start, &end
	return nil
}

// ClearEndpoints forgets both endpoints, leaving the grid untouched.
func (m *Maze) ClearEndpoints() {
	m.start, m.end = nil, nil
}

// Start returns the start endpoint and whether it is set.
func (m *Maze) Start() (Cell, bool) {
	if m.start == nil {
		return Cell{}, false
	}
	return *m.start, true
}

// End returns the end endpoint and whether it is set.
func (m *Maze) End() (Cell, bool) {
	if m.end == nil {
		return Cell{}, false
	}
	return *m.end, true
}

// Rows renders the grid as FromRows-compatible strings.
func (m *Maze) Rows() []string {
	rows := make([]string, m.height)
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		b.Reset()
		for x := 0; x < m.width; x++ {
			b.WriteByte(m.glyph(Cell{X: x, Y: y}))
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid one row per line, see FromRows for glyphs.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n") + "\n"
}

func (m *Maze) glyph(c Cell) byte {
	switch {
	case m.start != nil && *m.start == c:
		return GlyphStart
	case m.end != nil && *m.end == c:
		return GlyphEnd
	case m.grid[m.index(c)] == Passable:
		return GlyphPassable
	default:
		return GlyphBlocked
	}
}

// index maps c to its row-major offset: y*width + x.
func (m *Maze) index(c Cell) int {
	return c.Y*m.width + c.X
}

// coordinate converts a row-major offset back to a Cell.
func (m *Maze) coordinate(i int) Cell {
	return Cell{X: i % m.width, Y: i / m.width}
}
