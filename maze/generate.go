// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math/rand"
)

// MinDimension is the smallest width or height Generate accepts: the carve
// origin (1,1) must sit strictly inside the border.
const MinDimension = 3

// carveOffsets are the two-step moves over the odd sub-lattice.
var carveOffsets = [4][2]int{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}

// extraOffsets are the single-step moves tried for extra openings.
var extraOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// carveFrame is one pending cell of the depth-first carve. dirs is the
// shuffled direction order and next the index of the next one to try.
type carveFrame struct {
	cell Cell
	dirs [4][2]int
	next int
}

// Generate builds a width×height maze by randomized depth-first carving
// from (1,1).
//
// Behavior:
//  1. Every cell starts Blocked.
//  2. Entering a cell marks it Passable and shuffles the four two-step
//     directions. Each direction whose target is strictly inside the border
//     and still Blocked gets its intermediate cell opened and is descended
//     into before the next direction is tried.
//  3. When all directions of a cell are exhausted, with the configured
//     probability one random single-step neighbour strictly inside the
//     border is opened if Blocked (this may add cycles).
//  4. All border cells are forced Blocked.
//
// The carve runs on an explicit stack, so large mazes do not grow the
// goroutine stack; visiting and RNG consumption order match the recursive
// formulation exactly, so a fixed seed gives a fixed maze.
//
// Returns ErrInvalidDimensions when width or height is below MinDimension.
// Complexity: O(W×H) time and memory.
func Generate(width, height int, opts ...GenerateOption) (*Maze, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimensions, width, height, MinDimension, MinDimension)
	}

	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.resolveRand()

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	m.carve(Cell{X: 1, Y: 1}, rng, cfg.extraProb)
	m.sealBorder()

	return m, nil
}

// carve performs the depth-first carve from origin.
func (m *Maze) carve(origin Cell, rng *rand.Rand, extraProb float64) {
	stack := []carveFrame{m.enter(origin, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			m.openExtra(top.cell, rng, extraProb)
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++
		target := top.cell.Offset(d[0], d[1])
		if !m.IsInterior(target) || m.State(target) != Blocked {
			continue
		}
		m.grid[m.index(top.cell.Offset(d[0]/2, d[1]/2))] = Passable
		stack = append(stack, m.enter(target, rng))
	}
}

// enter marks c Passable and prepares its frame with shuffled directions.
func (m *Maze) enter(c Cell, rng *rand.Rand) carveFrame {
	m.grid[m.index(c)] = Passable
	f := carveFrame{cell: c, dirs: carveOffsets}
	// Fisher–Yates from the back, as the classic in-place shuffle.
	for i := len(f.dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	}
	return f
}

// openExtra opens, with probability p, one random Blocked interior cell
// next to c.
func (m *Maze) openExtra(c Cell, rng *rand.Rand, p float64) {
	if rng.Float64() >= p {
		return
	}
	d := extraOffsets[rng.Intn(len(extraOffsets))]
	n := c.Offset(d[0], d[1])
	if m.IsInterior(n) && m.State(n) == Blocked {
		m.grid[m.index(n)] = Passable
	}
}

// sealBorder forces every border cell to Blocked.
func (m *Maze) sealBorder() {
	for x := 0; x < m.width; x++ {
		m.grid[m.index(Cell{X: x, Y: 0})] = Blocked
		m.grid[m.index(Cell{X: x, Y: m.height - 1})] = Blocked
	}
	for y := 0; y < m.height; y++ {
		m.grid[m.index(Cell{X: 0, Y: y})] = Blocked
		m.grid[m.index(Cell{X: m.width - 1, Y: y})] = Blocked
	}
}
