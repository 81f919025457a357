package keyvault

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/lvpuzzle/bfs"
	"github.com/katalvlaran/lvpuzzle/dijkstra"
	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

// Parse reads a vault maze. Surrounding blank lines are ignored.
func Parse(input string) (*Vault, error) {
	gg, err := gridgraph.Parse(strings.TrimSpace(input), gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	return newVault(gg)
}

// newVault indexes entrances and keys and validates every cell.
func newVault(gg *gridgraph.GridGraph) (*Vault, error) {
	v := &Vault{grid: gg}
	for i := range v.keys {
		v.keys[i] = -1
	}
	for idx := 0; idx < gg.Len(); idx++ {
		c := gg.At(idx)
		switch {
		case c == '#' || c == '.' || isDoor(c):
		case c == '@':
			v.entrances = append(v.entrances, idx)
		case isKey(c):
			k := int(c - 'a')
			if v.keys[k] >= 0 {
				x, y := gg.Coordinate(idx)
				return nil, fmt.Errorf("%w: %q again at (%d,%d)", ErrDuplicateKey, c, x, y)
			}
			v.keys[k] = idx
			v.all |= 1 << k
		default:
			x, y := gg.Coordinate(idx)
			return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, c, x, y)
		}
	}
	if len(v.entrances) == 0 {
		return nil, ErrNoEntrance
	}
	if len(v.entrances) > MaxRobots {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRobots, len(v.entrances), MaxRobots)
	}
	return v, nil
}

// Robots returns the number of entrances.
func (v *Vault) Robots() int { return len(v.entrances) }

// Keys returns the key letters present, in alphabetical order.
func (v *Vault) Keys() string {
	var b strings.Builder
	for k := range v.keys {
		if v.keys[k] >= 0 {
			b.WriteByte(byte('a' + k))
		}
	}
	return b.String()
}

// String renders the maze.
func (v *Vault) String() string { return v.grid.String() }

// Split returns the four-robot variant of a single-entrance vault: the
// entrance and its orthogonal neighbours become walls and its diagonal
// neighbours become entrances. The 3x3 block around the entrance must be
// open floor apart from the entrance itself.
func (v *Vault) Split() (*Vault, error) {
	if len(v.entrances) != 1 {
		return nil, fmt.Errorf("%w: have %d entrances, want 1", ErrSplitEntrance, len(v.entrances))
	}
	gg := v.grid.Clone()
	ex, ey := gg.Coordinate(v.entrances[0])
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := ex+dx, ey+dy
			if !gg.InBounds(x, y) {
				return nil, fmt.Errorf("%w: entrance at (%d,%d) touches the border", ErrSplitEntrance, ex, ey)
			}
			idx := gg.Index(x, y)
			if (dx != 0 || dy != 0) && gg.At(idx) != '.' {
				return nil, fmt.Errorf("%w: %q at (%d,%d) next to the entrance", ErrSplitEntrance, gg.At(idx), x, y)
			}
			if dx == 0 || dy == 0 {
				gg.Set(idx, '#')
			} else {
				gg.Set(idx, '@')
			}
		}
	}
	return newVault(gg)
}

// ShortestCollection returns the fewest total steps for the robots to
// collect every key.
func (v *Vault) ShortestCollection(ctx context.Context) (int, error) {
	p, err := v.search(ctx, false)
	if err != nil {
		return 0, err
	}
	return p.Steps, nil
}

// Plan is like ShortestCollection but also reports the collection order.
func (v *Vault) Plan(ctx context.Context) (*Plan, error) {
	return v.search(ctx, true)
}

func (v *Vault) search(ctx context.Context, withOrder bool) (*Plan, error) {
	if err := v.checkReachable(); err != nil {
		return nil, err
	}

	start := state{}
	for i := range start.robots {
		start.robots[i] = -1
	}
	for i, e := range v.entrances {
		start.robots[i] = int32(e)
	}

	s := &searcher{ctx: ctx, vault: v, memo: make(map[scanKey][]hop)}
	opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if withOrder {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	res, err := dijkstra.Search(start, s.successors, func(st state) bool { return st.held == v.all }, opts...)
	if s.err != nil {
		return nil, s.err
	}
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, ErrNoPath
		}
		return nil, err
	}

	plan := &Plan{Steps: int(res.Cost)}
	if withOrder {
		var b strings.Builder
		for i := 1; i < len(res.Path); i++ {
			gained := res.Path[i].held &^ res.Path[i-1].held
			b.WriteByte(byte('a' + bits.TrailingZeros32(gained)))
		}
		plan.Order = b.String()
	}
	return plan, nil
}

// checkReachable fails fast when a key shares no open component with any
// entrance. Doors count as open here; door deadlocks surface as ErrNoPath.
func (v *Vault) checkReachable() error {
	labels, _ := v.grid.Labels(func(c byte) bool { return c != '#' })
	reach := make(map[int]bool, len(v.entrances))
	for _, e := range v.entrances {
		reach[labels[e]] = true
	}
	for k, idx := range v.keys {
		if idx >= 0 && !reach[labels[idx]] {
			x, y := v.grid.Coordinate(idx)
			return fmt.Errorf("%w: %q at (%d,%d)", ErrUnreachableKey, byte('a'+k), x, y)
		}
	}
	return nil
}

// searcher owns the reachability memo for one search. err holds the first
// failed scan; successors cannot return it directly.
type searcher struct {
	ctx   context.Context
	vault *Vault
	memo  map[scanKey][]hop
	nbrs  []int
	err   error
}

// successors moves each robot in turn to each key it can reach next.
func (s *searcher) successors(st state) []dijkstra.Arc[state] {
	var out []dijkstra.Arc[state]
	for r, cell := range st.robots {
		if cell < 0 {
			continue
		}
		for _, h := range s.reachable(int(cell), st.held) {
			next := st
			next.robots[r] = int32(h.cell)
			next.held |= 1 << h.key
			out = append(out, dijkstra.Arc[state]{To: next, Cost: int64(h.dist)})
		}
	}
	return out
}

// reachable lists the uncollected keys a robot at cell can walk to while
// holding held, without passing over another uncollected key. Doors open
// for held keys and for keys the vault does not contain.
func (s *searcher) reachable(cell int, held uint32) []hop {
	sk := scanKey{cell: int32(cell), held: held}
	if hs, ok := s.memo[sk]; ok {
		return hs
	}

	gg := s.vault.grid
	uncollected := func(idx int) (int, bool) {
		c := gg.At(idx)
		if !isKey(c) {
			return 0, false
		}
		k := int(c - 'a')
		return k, held&(1<<k) == 0
	}

	open := held | ^s.vault.all
	var hs []hop
	_, err := bfs.Search(cell,
		func(idx int) []int {
			s.nbrs = gg.Neighbors(s.nbrs[:0], idx)
			return s.nbrs
		},
		bfs.WithContext[int](s.ctx),
		bfs.WithFilterNeighbor(func(curr, next int) bool {
			if _, stop := uncollected(curr); stop && curr != cell {
				return false
			}
			c := gg.At(next)
			if c == '#' {
				return false
			}
			return !isDoor(c) || open&(1<<(c-'A')) != 0
		}),
		bfs.WithOnVisit(func(idx, depth int) error {
			if k, ok := uncollected(idx); ok && idx != cell {
				hs = append(hs, hop{cell: idx, key: k, dist: depth})
			}
			return nil
		}),
	)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return nil
	}
	s.memo[sk] = hs
	return hs
}

func isKey(c byte) bool  { return c >= 'a' && c <= 'z' }
func isDoor(c byte) bool { return c >= 'A' && c <= 'Z' }
