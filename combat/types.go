package combat

import (
	"errors"
	"fmt"
)

// Sentinel errors for deck parsing, validation and play.
var (
	// ErrPlayerCount indicates an input with other than two player blocks.
	ErrPlayerCount = errors.New("combat: input must describe exactly two players")
	// ErrMalformedDeck indicates a bad header or a card that is not a
	// positive integer.
	ErrMalformedDeck = errors.New("combat: malformed deck")
	// ErrDuplicateCard indicates the same card value in play twice.
	ErrDuplicateCard = errors.New("combat: duplicate card")
	// ErrEndlessGame indicates a plain game that returned to an earlier
	// position and so never ends.
	ErrEndlessGame = errors.New("combat: game repeats forever")
)

// Player identifies one side of a game.
type Player int

// The two players; Player1 wins repeated positions in recursive games.
const (
	Player1 Player = 1
	Player2 Player = 2
)

// String implements fmt.Stringer.
func (p Player) String() string { return fmt.Sprintf("player %d", int(p)) }

// Deck is a stack of cards, top card first.
type Deck []int

// Score sums each card times its position counted from the bottom, starting at 1.
func (d Deck) Score() int {
	s := 0
	for i, c := range d {
		s += c * (len(d) - i)
	}
	return s
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner Player
	// Deck is the winner's deck when the game ended.
	Deck Deck
	// Rounds counts the rounds of the top-level game only.
	Rounds int
}

// Options tunes a game.
type Options struct {
	// OnRound is called after every round of every game. Game 1 is the
	// top-level game; sub-games are numbered in the order they start.
	OnRound func(game, round, c1, c2 int, winner Player)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnRound.
func DefaultOptions() Options {
	return Options{OnRound: func(int, int, int, int, Player) {}}
}

// WithOnRound registers a per-round observer. A nil fn is ignored.
func WithOnRound(fn func(game, round, c1, c2 int, winner Player)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
