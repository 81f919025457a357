package puzzle

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvpuzzle/combat"
	"github.com/katalvlaran/lvpuzzle/cupgame"
	"github.com/katalvlaran/lvpuzzle/keyvault"
	"github.com/katalvlaran/lvpuzzle/rtg"
	"github.com/katalvlaran/lvpuzzle/runlength"
)

// Catalog returns every puzzle, sorted by ID.
func Catalog() []Puzzle {
	out := []Puzzle{
		{ID: "2016-09", Title: "Explosives in Cyberspace", Year: 2016, Day: 9, Parts: []Part{
			{Name: "1", Solve: decompressedLen(runlength.Flat)},
			{Name: "2", Solve: decompressedLen(runlength.Recursive)},
		}},
		{ID: "2016-11", Title: "Radioisotope Thermoelectric Generators", Year: 2016, Day: 11, Parts: []Part{
			{Name: "1", Solve: facilitySteps()},
			{Name: "2", Solve: facilitySteps("elerium", "dilithium")},
		}},
		{ID: "2019-18", Title: "Many-Worlds Interpretation", Year: 2019, Day: 18, Parts: []Part{
			{Name: "1", Solve: vaultSteps(false)},
			{Name: "2", Solve: vaultSteps(true)},
		}},
		{ID: "2020-22", Title: "Crab Combat", Year: 2020, Day: 22, Parts: []Part{
			{Name: "1", Solve: combatScore(false)},
			{Name: "2", Solve: combatScore(true)},
		}},
		{ID: "2020-23", Title: "Crab Cups", Year: 2020, Day: 23, Parts: []Part{
			{Name: "1", Solve: cupLabels},
			{Name: "2", Solve: cupProduct},
		}},
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup finds a puzzle by ID.
func Lookup(id string) (Puzzle, error) {
	for _, p := range Catalog() {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, id)
}

// Part finds a part by name.
func (p Puzzle) Part(name string) (Part, error) {
	for _, pt := range p.Parts {
		if pt.Name == name {
			return pt, nil
		}
	}
	return Part{}, fmt.Errorf("%w: %s part %q", ErrUnknownPart, p.ID, name)
}

func decompressedLen(v runlength.Version) SolveFunc {
	return func(_ context.Context, input string) (string, error) {
		n, err := runlength.DecompressedLen(input, v)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
}

func facilitySteps(extra ...string) SolveFunc {
	return func(ctx context.Context, input string) (string, error) {
		f, err := rtg.Parse(input)
		if err != nil {
			return "", err
		}
		if len(extra) > 0 {
			if f, err = f.WithPairs(extra...); err != nil {
				return "", err
			}
		}
		n, err := f.MinSteps(ctx)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

// vaultSteps splits a single-entrance vault when split is set; vaults that
// already have several entrances are solved as given.
func vaultSteps(split bool) SolveFunc {
	return func(ctx context.Context, input string) (string, error) {
		v, err := keyvault.Parse(input)
		if err != nil {
			return "", err
		}
		if split && v.Robots() == 1 {
			if v, err = v.Split(); err != nil {
				return "", err
			}
		}
		n, err := v.ShortestCollection(ctx)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

func combatScore(recursive bool) SolveFunc {
	return func(ctx context.Context, input string) (string, error) {
		d1, d2, err := combat.Parse(input)
		if err != nil {
			return "", err
		}
		var out combat.Outcome
		if recursive {
			out, err = combat.PlayRecursive(ctx, d1, d2)
		} else {
			out, err = combat.Play(ctx, d1, d2)
		}
		if err != nil {
			return "", err
		}
		return strconv.Itoa(out.Deck.Score()), nil
	}
}

func cupLabels(_ context.Context, input string) (string, error) {
	labels, err := cupgame.ParseLabels(input)
	if err != nil {
		return "", err
	}
	c, err := cupgame.NewCircle(labels, 0)
	if err != nil {
		return "", err
	}
	c.Play(100)
	return c.LabelsAfter(1), nil
}

func cupProduct(_ context.Context, input string) (string, error) {
	labels, err := cupgame.ParseLabels(input)
	if err != nil {
		return "", err
	}
	c, err := cupgame.NewCircle(labels, 1_000_000)
	if err != nil {
		return "", err
	}
	c.Play(10_000_000)
	a := c.Next(1)
	b := c.Next(a)
	return strconv.FormatInt(int64(a)*int64(b), 10), nil
}
