package grid

import "errors"

// Sentinel errors for grid package operations.
var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a point outside [0,rows) x [0,cols).
	ErrOutOfBounds = errors.New("grid: point out of bounds")

	// ErrWall indicates a ground-mover destination that is a wall cell.
	ErrWall = errors.New("grid: destination cell is a wall")
)
