package combat

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads two blank-line separated blocks, each a "Player N:" header
// followed by one card per line, top card first.
func Parse(input string) (Deck, Deck, error) {
	blocks := strings.Split(strings.TrimSpace(strings.ReplaceAll(input, "\r", "")), "\n\n")
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("%w: found %d blocks", ErrPlayerCount, len(blocks))
	}
	decks := make([]Deck, 2)
	for i, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if want := fmt.Sprintf("Player %d:", i+1); strings.TrimSpace(lines[0]) != want {
			return nil, nil, fmt.Errorf("%w: header %q, want %q", ErrMalformedDeck, lines[0], want)
		}
		for _, l := range lines[1:] {
			c, err := strconv.Atoi(strings.TrimSpace(l))
			if err != nil || c <= 0 {
				return nil, nil, fmt.Errorf("%w: card %q for player %d", ErrMalformedDeck, l, i+1)
			}
			decks[i] = append(decks[i], c)
		}
	}
	if err := validate(decks[0], decks[1]); err != nil {
		return nil, nil, err
	}
	return decks[0], decks[1], nil
}

// validate rejects non-positive or repeated cards across both decks.
func validate(d1, d2 Deck) error {
	seen := make(map[int]bool, len(d1)+len(d2))
	for _, d := range []Deck{d1, d2} {
		for _, c := range d {
			if c <= 0 {
				return fmt.Errorf("%w: card %d", ErrMalformedDeck, c)
			}
			if seen[c] {
				return fmt.Errorf("%w: %d", ErrDuplicateCard, c)
			}
			seen[c] = true
		}
	}
	return nil
}

// Play runs a game of plain combat: the higher card always wins the round.
// Plain combat has no repeat rule, so a position seen before means the game
// cycles forever and Play returns ErrEndlessGame. It returns ctx.Err() if ctx
// is cancelled before the game ends.
func Play(ctx context.Context, d1, d2 Deck, opts ...Option) (Outcome, error) {
	if err := validate(d1, d2); err != nil {
		return Outcome{}, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	a, b := clone(d1), clone(d2)
	var enc positionKey
	seen := make(map[string]struct{})
	round := 0
	for len(a) > 0 && len(b) > 0 {
		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		default:
		}

		k := enc.key(a, b)
		if _, dup := seen[k]; dup {
			return Outcome{}, fmt.Errorf("%w: position after round %d repeats", ErrEndlessGame, round)
		}
		seen[k] = struct{}{}

		round++
		c1, c2 := a[0], b[0]
		a, b = a[1:], b[1:]
		if c1 > c2 {
			a = append(a, c1, c2)
			cfg.OnRound(1, round, c1, c2, Player1)
		} else {
			b = append(b, c2, c1)
			cfg.OnRound(1, round, c1, c2, Player2)
		}
	}
	if len(a) > 0 {
		return Outcome{Winner: Player1, Deck: a, Rounds: round}, nil
	}
	return Outcome{Winner: Player2, Deck: b, Rounds: round}, nil
}

// PlayRecursive runs a game of recursive combat. It returns ctx.Err() if ctx
// is cancelled before the game ends.
func PlayRecursive(ctx context.Context, d1, d2 Deck, opts ...Option) (Outcome, error) {
	if err := validate(d1, d2); err != nil {
		return Outcome{}, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &recursiveGame{ctx: ctx, opts: cfg}
	return g.play(clone(d1), clone(d2))
}

// recursiveGame carries state shared by a game and all its sub-games.
type recursiveGame struct {
	ctx   context.Context
	opts  Options
	games int
	enc   positionKey
}

// play runs one game to completion on decks it owns.
func (g *recursiveGame) play(a, b Deck) (Outcome, error) {
	g.games++
	game := g.games
	seen := make(map[string]struct{})
	round := 0

	for len(a) > 0 && len(b) > 0 {
		select {
		case <-g.ctx.Done():
			return Outcome{}, g.ctx.Err()
		default:
		}

		k := g.enc.key(a, b)
		if _, dup := seen[k]; dup {
			return Outcome{Winner: Player1, Deck: a, Rounds: round}, nil
		}
		seen[k] = struct{}{}

		round++
		c1, c2 := a[0], b[0]
		a, b = a[1:], b[1:]

		winner := Player2
		if len(a) >= c1 && len(b) >= c2 {
			sub, err := g.play(clone(a[:c1]), clone(b[:c2]))
			if err != nil {
				return Outcome{}, err
			}
			winner = sub.Winner
		} else if c1 > c2 {
			winner = Player1
		}

		if winner == Player1 {
			a = append(a, c1, c2)
		} else {
			b = append(b, c2, c1)
		}
		g.opts.OnRound(game, round, c1, c2, winner)
	}

	if len(a) > 0 {
		return Outcome{Winner: Player1, Deck: a, Rounds: round}, nil
	}
	return Outcome{Winner: Player2, Deck: b, Rounds: round}, nil
}

// positionKey encodes deck pairs into a reused buffer.
type positionKey struct {
	buf []byte
}

// key encodes both decks as uvarint(len(a)) followed by every card as a uvarint.
func (p *positionKey) key(a, b Deck) string {
	buf := binary.AppendUvarint(p.buf[:0], uint64(len(a)))
	for _, c := range a {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	for _, c := range b {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	p.buf = buf
	return string(buf)
}

func clone(d Deck) Deck {
	return append(make(Deck, 0, len(d)*2), d...)
}
