// Package dijkstra provides a uniform-cost (Dijkstra) search over implicit,
// non-negatively weighted state graphs.
//
// What:
//
//   - Search(start, successors, goal, opts...) settles states in order of
//     increasing path cost and returns the first goal state settled together
//     with its cost.
//   - The state type is any comparable Go value: a packed struct of robot
//     positions plus a key bitmask, an int, a string.
//   - Path reconstruction is opt-in (WithReturnPath) so that large searches
//     pay only for the distance map.
//
// Why:
//
//   - Puzzle searches rarely have an explicit graph; they have a rule for
//     what can happen next. A successor function is the natural interface.
//   - Weighted arcs let a search jump between points of interest (key to key)
//     instead of stepping cell by cell.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V settled states and E generated arcs.
//   - Space: O(V + E) for the distance map and lazy heap entries.
//
// Example:
//
//	res, err := dijkstra.Search(start, next, isDone, dijkstra.WithContext(ctx))
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // goal unreachable
//	}
//	fmt.Println(res.Cost)
package dijkstra
