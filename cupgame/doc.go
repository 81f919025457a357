// Package cupgame simulates the crab's cup-shuffling game on a circle of
// labelled cups.
//
// A move picks up the three cups clockwise of the current cup, chooses a
// destination label one below the current label (wrapping from the lowest
// label to the highest, and skipping labels that were just picked up),
// places the three cups clockwise of the destination, and advances the
// current cup one step clockwise.
//
// The circle is a successor array indexed by label, so every move touches a
// constant number of cells no matter how many cups there are.
package cupgame
