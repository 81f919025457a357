// Package puzzle is the catalog that binds each solver package to a puzzle
// identifier and its parts.
//
// Identifiers have the form YYYY-DD. Every part takes the raw puzzle input
// and returns the answer as a string, so callers can treat all puzzles
// uniformly.
package puzzle
