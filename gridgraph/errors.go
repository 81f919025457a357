package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned when the text holds no cells.
	ErrEmptyGrid = errors.New("gridgraph: grid has no cells")
	// ErrNonRectangular is returned when a row is shorter or longer than the first.
	ErrNonRectangular = errors.New("gridgraph: ragged rows")
)
