package combat_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/combat"
)

const exampleDecks = `Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
`

// TestParse reads both decks top card first.
func TestParse(t *testing.T) {
	d1, d2, err := combat.Parse(exampleDecks)
	require.NoError(t, err)
	if diff := cmp.Diff(combat.Deck{9, 2, 6, 3, 1}, d1); diff != "" {
		t.Errorf("player 1 deck mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(combat.Deck{5, 8, 4, 7, 10}, d2); diff != "" {
		t.Errorf("player 2 deck mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_Errors rejects inputs that are not two valid decks.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"OneBlock", "Player 1:\n1\n2", combat.ErrPlayerCount},
		{"ThreeBlocks", "Player 1:\n1\n\nPlayer 2:\n2\n\nPlayer 3:\n3", combat.ErrPlayerCount},
		{"SwappedHeaders", "Player 2:\n1\n\nPlayer 1:\n2", combat.ErrMalformedDeck},
		{"NotANumber", "Player 1:\nace\n\nPlayer 2:\n2", combat.ErrMalformedDeck},
		{"Zero", "Player 1:\n0\n\nPlayer 2:\n2", combat.ErrMalformedDeck},
		{"Duplicate", "Player 1:\n1\n2\n\nPlayer 2:\n2", combat.ErrDuplicateCard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := combat.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestPlay runs the plain game to completion.
func TestPlay(t *testing.T) {
	d1, d2, err := combat.Parse(exampleDecks)
	require.NoError(t, err)

	got, err := combat.Play(context.Background(), d1, d2)
	require.NoError(t, err)
	want := combat.Outcome{
		Winner: combat.Player2,
		Deck:   combat.Deck{3, 2, 10, 6, 8, 5, 9, 4, 7, 1},
		Rounds: 29,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 306, got.Deck.Score())
	assert.Equal(t, combat.Deck{9, 2, 6, 3, 1}, d1, "input must not change")
}

// TestPlayRecursive plays sub-games and reports every round.
func TestPlayRecursive(t *testing.T) {
	d1, d2, err := combat.Parse(exampleDecks)
	require.NoError(t, err)

	maxGame, topRounds := 0, 0
	got, err := combat.PlayRecursive(context.Background(), d1, d2,
		combat.WithOnRound(func(game, round, c1, c2 int, winner combat.Player) {
			if game > maxGame {
				maxGame = game
			}
			if game == 1 {
				topRounds = round
			}
		}))
	require.NoError(t, err)
	want := combat.Outcome{
		Winner: combat.Player2,
		Deck:   combat.Deck{7, 5, 6, 2, 4, 1, 10, 8, 9, 3},
		Rounds: 17,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 291, got.Deck.Score())
	assert.Equal(t, 5, maxGame)
	assert.Equal(t, 17, topRounds)
	assert.Equal(t, combat.Deck{5, 8, 4, 7, 10}, d2, "input must not change")
}

// TestPlayRecursive_Repeat ends a looping game in player 1's favour.
func TestPlayRecursive_Repeat(t *testing.T) {
	got, err := combat.PlayRecursive(context.Background(), combat.Deck{43, 19}, combat.Deck{2, 29, 14})
	require.NoError(t, err)
	assert.Equal(t, combat.Player1, got.Winner)
	assert.Equal(t, combat.Deck{43, 19}, got.Deck)
	assert.Equal(t, 6, got.Rounds)
}

// TestPlay_Endless reports a plain game that cycles instead of looping.
func TestPlay_Endless(t *testing.T) {
	rounds := 0
	_, err := combat.Play(context.Background(), combat.Deck{43, 19}, combat.Deck{2, 29, 14},
		combat.WithOnRound(func(_, round, _, _ int, _ combat.Player) { rounds = round }))
	assert.ErrorIs(t, err, combat.ErrEndlessGame)
	assert.Equal(t, 6, rounds)
}

// TestPlay_Cancelled stops on a done context.
func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := combat.Play(ctx, combat.Deck{9, 2, 6, 3, 1}, combat.Deck{5, 8, 4, 7, 10})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPlayRecursive_Cancelled stops on a done context.
func TestPlayRecursive_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := combat.PlayRecursive(ctx, combat.Deck{9, 2, 6, 3, 1}, combat.Deck{5, 8, 4, 7, 10})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPlay_Validation rejects decks that could not come from Parse.
func TestPlay_Validation(t *testing.T) {
	_, err := combat.Play(context.Background(), combat.Deck{1, 2}, combat.Deck{2})
	assert.ErrorIs(t, err, combat.ErrDuplicateCard)

	_, err = combat.PlayRecursive(context.Background(), combat.Deck{-1}, combat.Deck{2})
	assert.ErrorIs(t, err, combat.ErrMalformedDeck)
}

// TestPlay_EmptyDeck is won before any round is played.
func TestPlay_EmptyDeck(t *testing.T) {
	got, err := combat.Play(context.Background(), combat.Deck{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, combat.Player1, got.Winner)
	assert.Zero(t, got.Rounds)
}

// TestScore uses bottom-up positions.
func TestScore(t *testing.T) {
	assert.Equal(t, 0, combat.Deck{}.Score())
	assert.Equal(t, 3*2+1*1, combat.Deck{3, 1}.Score())
}
