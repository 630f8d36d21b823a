package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrBadCell indicates a parsed character that is not a decimal digit.
	ErrBadCell = errors.New("gridgraph: cell is not a decimal digit")
)
