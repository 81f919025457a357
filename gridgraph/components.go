package gridgraph

// ConnectedComponents finds all contiguous regions of cells for which
// passable returns true, according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order from its first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents(passable func(byte) bool) [][]int {
	var comps [][]int
	gg.flood(passable, func(label, idx int) {
		if label == len(comps) {
			comps = append(comps, nil)
		}
		comps[label] = append(comps[label], idx)
	})
	return comps
}

// Labels returns, for every cell, the index of its passable component, or -1
// for blocked cells, together with the number of components.
func (gg *GridGraph) Labels(passable func(byte) bool) ([]int, int) {
	return gg.flood(passable, func(int, int) {})
}

// flood labels every passable component with a BFS and reports each cell
// to visit as it is dequeued.
func (gg *GridGraph) flood(passable func(byte) bool, visit func(label, idx int)) ([]int, int) {
	total := len(gg.cells)
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	n := 0
	var nbrs []int

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !passable(gg.cells[i0]) {
			continue
		}
		queue := []int{i0}
		labels[i0] = n
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			visit(n, u)
			nbrs = gg.Neighbors(nbrs[:0], u)
			for _, v := range nbrs {
				if labels[v] >= 0 || !passable(gg.cells[v]) {
					continue
				}
				labels[v] = n
				queue = append(queue, v)
			}
		}
		n++
	}
	return labels, n
}
