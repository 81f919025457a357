package puzzle

import (
	"context"
	"errors"
)

// Sentinel errors for catalog lookups.
var (
	// ErrUnknownPuzzle indicates an identifier not in the catalog.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")
	// ErrUnknownPart indicates a part name the puzzle does not define.
	ErrUnknownPart = errors.New("puzzle: unknown part")
)

// SolveFunc computes one part's answer from the raw puzzle input.
type SolveFunc func(ctx context.Context, input string) (string, error)

// Part is one solvable question of a puzzle.
type Part struct {
	Name  string
	Solve SolveFunc
}

// Puzzle describes one catalog entry.
type Puzzle struct {
	ID    string
	Title string
	Year  int
	Day   int
	Parts []Part
}
