// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/lvpuzzle.
package gridgraph

// Connectivity says which cells count as adjacent.
type Connectivity int

const (
	// Conn4 links a cell to its N, E, S and W neighbours.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbours, clockwise from NE.
	Conn8
)

// GridOptions configures grid construction.
type GridOptions struct {
	Conn Connectivity
}

// DefaultGridOptions returns orthogonal (Conn4) adjacency.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is a rectangular byte grid addressed by row-major index
// (idx = y*Width + x). Cells may be rewritten with Set; the shape is fixed.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity

	cells   []byte
	offsets [][2]int // (dx, dy) per neighbour, in Neighbors order
}
