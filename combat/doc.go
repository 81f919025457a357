// Package combat plays the two-player card game Combat and its recursive
// variant.
//
// Each round both players draw their top card and the round winner places
// its own card, then the loser's, at the bottom of its deck. A game ends when
// one deck is empty. Plain combat has no rule for a repeated position, so
// Play reports such a game as ErrEndlessGame instead of looping forever.
//
// In recursive combat a round may be decided by a sub-game played on copies
// of the next cards of each deck, and a game ends at once in player 1's
// favour if the same pair of decks is ever seen twice within it. Seen
// positions are stored as exact encodings of both decks, so two distinct
// positions can never be confused.
//
// Decks passed in are never modified.
package combat
