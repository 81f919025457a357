// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func open(b byte) bool { return b != '#' }

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (# = wall):
//
//	#..#
//	..##
//	##..
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := Parse("#..#\n..##\n##..", DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	comps := gg.ConnectedComponents(open)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 uses Conn8 to join cells touching at corners.
//
//	.###.
//	#.#.#
//	##.##
//	#.#.#
//	.###.
//
// With Conn8, all 9 open cells form a single region.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := ".###.\n#.#.#\n##.##\n#.#.#\n.###."
	gg, err := Parse(grid, GridOptions{Conn: Conn8})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	comps := gg.ConnectedComponents(open)
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}

	gg4, _ := Parse(grid, DefaultGridOptions())
	if n := len(gg4.ConnectedComponents(open)); n != 9 {
		t.Errorf("Conn4 components = %d; want 9", n)
	}
}

// TestConnectedComponents_AllWalls covers the edge cases:
//   - a grid of walls → zero components
//   - a single open cell → one component of size 1
func TestConnectedComponents_AllWalls(t *testing.T) {
	gg1, _ := Parse("##\n##", DefaultGridOptions())
	if comps := gg1.ConnectedComponents(open); len(comps) != 0 {
		t.Errorf("all walls: got %d components; want 0", len(comps))
	}

	gg2, _ := Parse("#.", DefaultGridOptions())
	comps := gg2.ConnectedComponents(open)
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("single cell: got %v; want [[1]]", comps)
	}
}

// TestLabels agrees with ConnectedComponents and marks walls -1.
func TestLabels(t *testing.T) {
	gg, _ := Parse("a#b\n.#.", DefaultGridOptions())
	labels, n := gg.Labels(open)
	if n != 2 {
		t.Fatalf("n = %d; want 2", n)
	}
	if want := []int{0, -1, 1, 0, -1, 1}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}
