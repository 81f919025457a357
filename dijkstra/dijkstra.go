// Package dijkstra implements Dijkstra's algorithm as a uniform-cost search
// over an implicit graph of comparable states.
//
// The graph is expanded on demand by a successor function, and the search stops
// as soon as a state satisfying the goal predicate is settled. This is the shape
// puzzle searches need: the state space (positions × collected keys, say) is far
// too large to enumerate but only a small part of it is ever touched.
//
// Notes on implementation choices:
//
//   - Negative arc costs are detected as they are generated and fail the search.
//   - We stop exploring once the minimum cost in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
)

// Search computes the cheapest path from start to any state for which goal
// returns true, expanding states with successors.
//
// Preconditions and validation (in order):
//  1. successors must be non-nil (ErrNilSuccessors).
//  2. goal must be non-nil (ErrNilGoal).
//  3. options must be valid (ErrOptionViolation).
//
// During the search a negative arc cost fails with ErrNegativeWeight and a
// cancelled context fails with ctx.Err(). If no goal is reachable, ErrNoPath.
func Search[S comparable](start S, successors func(S) []Arc[S], goal func(S) bool, opts ...Option) (*Result[S], error) {
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[S]{
		successors: successors,
		goal:       goal,
		options:    cfg,
		ctx:        cfg.Ctx,
		dist:       make(map[S]int64, 1024),
		settled:    make(map[S]struct{}, 1024),
		pq:         make(nodePQ[S], 0, 1024),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S, 1024)
	}

	r.init(start)
	target, ok, err := r.process()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPath
	}

	res := &Result[S]{
		Cost:    r.dist[target],
		Goal:    target,
		Settled: len(r.settled),
	}
	if cfg.ReturnPath {
		res.Path = r.path(start, target)
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner[S comparable] struct {
	successors func(S) []Arc[S]
	goal       func(S) bool
	options    Options
	ctx        context.Context
	dist       map[S]int64    // best known cost from start
	prev       map[S]S        // predecessor on the best path, nil unless ReturnPath
	settled    map[S]struct{} // states whose cost is final
	pq         nodePQ[S]      // min-heap of *nodeItem
}

// init seeds the heap with the start state at cost 0.
func (r *runner[S]) init(start S) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[S]{state: start, dist: 0})
}

// process is the main loop. It repeatedly settles the cheapest state and
// relaxes its arcs, returning the first settled goal state.
//
// Loop termination conditions:
//
//   - A goal state is settled.
//   - The heap becomes empty (reachable space exhausted).
//   - The minimum cost in the heap exceeds MaxDistance.
func (r *runner[S]) process() (S, bool, error) {
	var zero S
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return zero, false, r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem[S])
		u := item.state
		if _, done := r.settled[u]; done {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = struct{}{}

		if r.goal(u) {
			return u, true, nil
		}
		if err := r.relax(u); err != nil {
			return zero, false, err
		}
	}

	return zero, false, nil
}

// relax examines each arc out of u and records any strictly cheaper path.
// Assumes r.dist[u] is final.
func (r *runner[S]) relax(u S) error {
	du := r.dist[u]
	for _, a := range r.successors(u) {
		if a.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, a.To, a.Cost)
		}
		if _, done := r.settled[a.To]; done {
			continue
		}
		newDist := du + a.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates on ties.
		if old, seen := r.dist[a.To]; seen && newDist >= old {
			continue
		}
		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, &nodeItem[S]{state: a.To, dist: newDist})
	}

	return nil
}

// path walks predecessors back from target to start.
func (r *runner[S]) path(start, target S) []S {
	out := []S{target}
	for cur := target; cur != start; {
		cur = r.prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem represents a state and its tentative cost from the start.
type nodeItem[S comparable] struct {
	state S
	dist  int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
