package cupgame

import "errors"

// MinCups is the smallest circle on which a move is well defined.
const MinCups = 5

// Sentinel errors for circle construction.
var (
	// ErrTooFewCups indicates a circle smaller than MinCups.
	ErrTooFewCups = errors.New("cupgame: too few cups")
	// ErrInvalidLabel indicates labels that are not a permutation of 1..n.
	ErrInvalidLabel = errors.New("cupgame: invalid cup label")
)

// Circle is a ring of cups labelled 1..Len.
type Circle struct {
	next    []int32 // next[label] is the label clockwise of label; next[0] unused
	current int32
}
