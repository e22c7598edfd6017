// SPDX-License-Identifier: MIT

// Package maze models a rectangular grid maze and generates random ones.
//
// What:
//
//   - Maze stores width×height cells in row-major order, each either
//     Blocked or Passable, plus optional start and end endpoints.
//   - Generate carves a randomized depth-first spanning tree over the odd
//     sub-lattice starting at (1,1), sprinkles optional extra openings that
//     may introduce cycles, and forces every border cell to Blocked.
//   - Components and FarthestFrom analyse passable-cell connectivity under
//     4-connectivity.
//
// Coordinates:
//
//	Cell{X, Y} is 0-indexed; X is the column and Y the row. Neighbors are
//	enumerated in the fixed order down, up, right, left.
//
// Lifecycle:
//
//	A generated grid is never mutated by this module after Generate returns,
//	so any number of goroutines may read it concurrently. Endpoints can be
//	set and cleared independently of the grid. Hand-built mazes (New +
//	SetState, or FromRows) bypass the generator invariants on purpose.
//
// Complexity:
//
//   - Generate:       O(W×H) time, O(W×H) memory (explicit carve stack).
//   - Components:     O(W×H) time and memory.
//   - FarthestFrom:   O(W×H) time and memory.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below the minimum.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph: FromRows input.
//   - ErrOutOfBounds: cell outside the grid.
//   - ErrEndpointNotPassable: endpoint on a blocked cell.
//   - ErrSameEndpoints: start and end are the same cell.
package maze
