package rtg

import "errors"

const (
	// MaxFloors is the largest facility the packed layout key can describe.
	MaxFloors = 16
	// MaxPairs is the largest number of element pairs the packed key can hold.
	MaxPairs = 7
)

// Sentinel errors for facility parsing and search.
var (
	// ErrNoFloors indicates an input without any floor lines.
	ErrNoFloors = errors.New("rtg: facility has no floors")
	// ErrTooManyFloors indicates more than MaxFloors floors.
	ErrTooManyFloors = errors.New("rtg: too many floors")
	// ErrTooManyPairs indicates more than MaxPairs element pairs.
	ErrTooManyPairs = errors.New("rtg: too many element pairs")
	// ErrDuplicateItem indicates the same generator or microchip listed twice.
	ErrDuplicateItem = errors.New("rtg: duplicate item")
	// ErrInvalidFloor indicates an item placed outside [0, Floors).
	ErrInvalidFloor = errors.New("rtg: item floor out of range")
	// ErrUnpaired indicates an element with a generator but no microchip, or
	// the reverse.
	ErrUnpaired = errors.New("rtg: element is missing its generator or microchip")
	// ErrUnsolvable indicates that no sequence of safe moves reaches the goal.
	ErrUnsolvable = errors.New("rtg: no safe sequence of moves reaches the top floor")
)

// Pair records the floors (0 = bottom) of one element's generator and microchip.
type Pair struct {
	Generator int
	Microchip int
}

// Facility is a parsed facility layout. Elements and Pairs are parallel and
// sorted by element name.
type Facility struct {
	Floors   int
	Elements []string
	Pairs    []Pair
}
