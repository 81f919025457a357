// Package bfs provides breadth-first search over an implicit graph of
// comparable states, returning unweighted shortest-path distances, parent
// links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a start state.
//   - The graph is never materialized: a neighbors function expands a state on demand,
//     so puzzle state spaces (grid cells, packed facility layouts) plug in directly.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Goal/Found: the first goal state reached, when WithGoal is used
//   - Hooks: OnVisit (may abort with an error), FilterNeighbor (prune transitions).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbors function returns them,
//	so the visit sequence is reproducible for a deterministic expansion.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth and Parent maps
//
// Usage
//
//	res, err := bfs.Search(start, expand,
//	    bfs.WithContext[state](ctx),
//	    bfs.WithGoal(func(s state) bool { return s.done() }),
//	)
//	if err != nil {
//	    // ErrNilNeighbors, ErrOptionViolation, ctx.Err(), or hook errors
//	}
//	if res.Found {
//	    fmt.Println(res.Depth[res.Goal])
//	}
//
// Errors
//
//   - ErrNilNeighbors     if the neighbors function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for unreached states.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
