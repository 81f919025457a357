// Package gridgraph provides utilities to treat a 2D grid of ASCII cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Row-major cell indices for compact search state
//   - Identification of connected components of passable cells
//
// Which bytes are passable is decided by the caller, so the same grid serves
// maze walls, doors, and open floor alike.
package gridgraph

import (
	"fmt"
	"strings"
)

// Parse builds a GridGraph from newline-separated rows. Carriage returns and
// trailing blank lines are ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func Parse(text string, opts GridOptions) (*GridGraph, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}

	return NewGridGraph(rows, opts)
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It copies the input so later mutation of rows does not leak in.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(rows [][]byte, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	offsets := orthogonal
	if opts.Conn == Conn8 {
		offsets = allAround
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Conn:    opts.Conn,
		cells:   cells,
		offsets: offsets,
	}, nil
}

var (
	orthogonal = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	allAround  = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int {
	return len(gg.cells)
}

// Index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// At returns the cell byte at row-major index idx.
func (gg *GridGraph) At(idx int) byte {
	return gg.cells[idx]
}

// Set overwrites the cell at row-major index idx.
func (gg *GridGraph) Set(idx int, b byte) {
	gg.cells[idx] = b
}

// Find returns the indices of every cell equal to b, in row-major order.
func (gg *GridGraph) Find(b byte) []int {
	var out []int
	for i, c := range gg.cells {
		if c == b {
			out = append(out, i)
		}
	}
	return out
}

// Neighbors appends to dst the in-bounds neighbor indices of idx according
// to gg.Conn and returns the extended slice. Passing a reused dst[:0] keeps
// hot search loops allocation-free.
func (gg *GridGraph) Neighbors(dst []int, idx int) []int {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.offsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			dst = append(dst, gg.Index(nx, ny))
		}
	}
	return dst
}

// Clone returns a deep copy that can be mutated independently.
func (gg *GridGraph) Clone() *GridGraph {
	cp := *gg
	cp.cells = append([]byte(nil), gg.cells...)
	return &cp
}

// String renders the grid back to newline-separated rows.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow(len(gg.cells) + gg.Height)
	for y := 0; y < gg.Height; y++ {
		b.Write(gg.cells[y*gg.Width : (y+1)*gg.Width])
		b.WriteByte('\n')
	}
	return b.String()
}
