// SPDX-License-Identifier: MIT

package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a width or height below the minimum
	// accepted by the constructor (1 for New, MinDimension for Generate).
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")

	// ErrEmptyGrid indicates FromRows received no rows or an empty first row.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")

	// ErrNonRectangular indicates FromRows rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrUnknownGlyph indicates FromRows met a character outside "#.SE".
	ErrUnknownGlyph = errors.New("maze: unknown glyph")

	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")

	// ErrEndpointNotPassable indicates an endpoint placed on a blocked cell.
	ErrEndpointNotPassable = errors.New("maze: endpoint is not passable")

	// ErrSameEndpoints indicates start and end refer to the same cell.
	ErrSameEndpoints = errors.New("maze: start and end must be distinct")
)
