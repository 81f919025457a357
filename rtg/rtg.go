package rtg

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvpuzzle/bfs"
)

var itemRx = regexp.MustCompile(`([a-z]+)(-compatible microchip| generator)`)

// Parse reads one floor per non-blank line, bottom floor first.
// Items are "<element> generator" and "<element>-compatible microchip";
// any other text is ignored.
func Parse(input string) (*Facility, error) {
	var lines []string
	for _, l := range strings.Split(input, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoFloors
	}
	if len(lines) > MaxFloors {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFloors, len(lines), MaxFloors)
	}

	byElement := make(map[string]*Pair)
	for floor, l := range lines {
		for _, m := range itemRx.FindAllStringSubmatch(strings.ToLower(l), -1) {
			p, ok := byElement[m[1]]
			if !ok {
				p = &Pair{Generator: -1, Microchip: -1}
				byElement[m[1]] = p
			}
			slot := &p.Microchip
			if m[2] == " generator" {
				slot = &p.Generator
			}
			if *slot >= 0 {
				return nil, fmt.Errorf("%w: %s%s", ErrDuplicateItem, m[1], m[2])
			}
			*slot = floor
		}
	}

	f := &Facility{Floors: len(lines)}
	for el := range byElement {
		f.Elements = append(f.Elements, el)
	}
	sort.Strings(f.Elements)
	for _, el := range f.Elements {
		p := byElement[el]
		if p.Generator < 0 || p.Microchip < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnpaired, el)
		}
		f.Pairs = append(f.Pairs, *p)
	}
	if len(f.Pairs) > MaxPairs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPairs, len(f.Pairs), MaxPairs)
	}

	return f, nil
}

// WithPairs returns a copy of f with a generator and microchip of each named
// element added to the bottom floor. The copy stays sorted by element name.
func (f *Facility) WithPairs(elements ...string) (*Facility, error) {
	out := &Facility{
		Floors:   f.Floors,
		Elements: slices.Clone(f.Elements),
		Pairs:    slices.Clone(f.Pairs),
	}
	for _, el := range elements {
		if slices.Contains(out.Elements, el) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, el)
		}
		out.Elements = append(out.Elements, el)
		out.Pairs = append(out.Pairs, Pair{})
	}
	if len(out.Pairs) > MaxPairs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPairs, len(out.Pairs), MaxPairs)
	}
	sort.Sort(byElement{out})
	return out, nil
}

// byElement sorts a facility's Elements and Pairs together.
type byElement struct{ f *Facility }

func (b byElement) Len() int           { return len(b.f.Elements) }
func (b byElement) Less(i, j int) bool { return b.f.Elements[i] < b.f.Elements[j] }
func (b byElement) Swap(i, j int) {
	b.f.Elements[i], b.f.Elements[j] = b.f.Elements[j], b.f.Elements[i]
	b.f.Pairs[i], b.f.Pairs[j] = b.f.Pairs[j], b.f.Pairs[i]
}

// validate checks a facility that may not have come from Parse against the
// limits of the packed layout.
func (f *Facility) validate() error {
	if f.Floors < 1 {
		return ErrNoFloors
	}
	if f.Floors > MaxFloors {
		return fmt.Errorf("%w: %d > %d", ErrTooManyFloors, f.Floors, MaxFloors)
	}
	if len(f.Pairs) > MaxPairs {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPairs, len(f.Pairs), MaxPairs)
	}
	for i, p := range f.Pairs {
		if p.Generator < 0 || p.Generator >= f.Floors || p.Microchip < 0 || p.Microchip >= f.Floors {
			return fmt.Errorf("%w: pair %d at %+v with %d floors", ErrInvalidFloor, i, p, f.Floors)
		}
	}
	return nil
}

// MinSteps returns the fewest elevator moves that bring every item to the top
// floor. It returns ErrUnsolvable if the start is unsafe or no safe sequence
// exists, and the context error if ctx is cancelled mid-search. Facilities
// built by hand are checked against MaxFloors and MaxPairs first.
func (f *Facility) MinSteps(ctx context.Context) (int, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}
	start := layout{elevator: 0, n: len(f.Pairs), floors: f.Floors}
	for i, p := range f.Pairs {
		start.gen[i], start.chip[i] = p.Generator, p.Microchip
	}
	if !start.safe() {
		return 0, fmt.Errorf("%w: initial layout fries a microchip", ErrUnsolvable)
	}

	res, err := bfs.Search(start.key(), start.successors,
		bfs.WithContext[uint64](ctx),
		bfs.WithGoal(start.solved),
	)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, ErrUnsolvable
	}
	return res.Depth[res.Goal], nil
}

// layout is an unpacked facility state. floors and n are fixed for a search;
// the remaining fields vary per state.
type layout struct {
	floors    int
	n         int
	elevator  int
	gen, chip [MaxPairs]int
}

// key packs the layout as 4 bits of elevator floor followed by one byte per
// pair (generator floor high nibble, microchip floor low nibble), with pairs
// sorted so that element identity is erased.
func (l layout) key() uint64 {
	var ps [MaxPairs]uint8
	for i := 0; i < l.n; i++ {
		ps[i] = uint8(l.gen[i]<<4 | l.chip[i])
	}
	slices.Sort(ps[:l.n])
	k := uint64(l.elevator)
	for i := 0; i < l.n; i++ {
		k |= uint64(ps[i]) << (4 + 8*i)
	}
	return k
}

// unpack rebuilds a layout from a key using l's floors and n.
func (l layout) unpack(k uint64) layout {
	out := layout{floors: l.floors, n: l.n, elevator: int(k & 0xF)}
	for i := 0; i < l.n; i++ {
		b := uint8(k >> (4 + 8*i))
		out.gen[i], out.chip[i] = int(b>>4), int(b&0xF)
	}
	return out
}

// safe reports whether no microchip shares a floor with a foreign generator
// while its own generator is elsewhere.
func (l layout) safe() bool {
	var gens uint16
	for i := 0; i < l.n; i++ {
		gens |= 1 << l.gen[i]
	}
	for i := 0; i < l.n; i++ {
		if l.chip[i] != l.gen[i] && gens&(1<<l.chip[i]) != 0 {
			return false
		}
	}
	return true
}

// solved reports whether the packed layout has every item on the top floor.
func (l layout) solved(k uint64) bool {
	s := l.unpack(k)
	top := l.floors - 1
	for i := 0; i < s.n; i++ {
		if s.gen[i] != top || s.chip[i] != top {
			return false
		}
	}
	return true
}

// item addresses one generator (chip=false) or microchip of pair i.
type item struct {
	i    int
	chip bool
}

// successors expands a packed layout into every safe packed layout one
// elevator move away.
func (l layout) successors(k uint64) []uint64 {
	s := l.unpack(k)
	var here []item
	below := false
	for i := 0; i < s.n; i++ {
		if s.gen[i] == s.elevator {
			here = append(here, item{i, false})
		}
		if s.chip[i] == s.elevator {
			here = append(here, item{i, true})
		}
		if s.gen[i] < s.elevator || s.chip[i] < s.elevator {
			below = true
		}
	}

	var out []uint64
	for _, dir := range []int{1, -1} {
		to := s.elevator + dir
		if to < 0 || to >= s.floors || (dir < 0 && !below) {
			continue
		}
		for a := range here {
			if next, ok := s.move(to, here[a]); ok {
				out = append(out, next.key())
			}
			for b := a + 1; b < len(here); b++ {
				if next, ok := s.move(to, here[a], here[b]); ok {
					out = append(out, next.key())
				}
			}
		}
	}
	return out
}

// move carries items to floor to and reports whether the result is safe.
func (l layout) move(to int, items ...item) (layout, bool) {
	l.elevator = to
	for _, it := range items {
		if it.chip {
			l.chip[it.i] = to
		} else {
			l.gen[it.i] = to
		}
	}
	return l, l.safe()
}
