// Package bfs provides breadth-first search over an implicit graph of
// comparable states, returning unweighted distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with optional hooks, depth limiting, neighbor filtering, and early goal exit.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	neighbors func(S) []S
	opts      Options[S]
	ctx       context.Context
	queue     []queueItem[S]
	head      int
	res       *Result[S]
}

// Search runs breadth-first search from start, expanding states with neighbors
// and applying any number of functional Options.
// Returns ErrNilNeighbors for a nil expansion function, ErrOptionViolation for
// bad options, the context error on cancellation, or any user-supplied hook error.
// The partial Result is returned alongside hook and cancellation errors.
func Search[S comparable](start S, neighbors func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		queue:     make([]queueItem[S], 0, 64),
		res: &Result[S]{
			Order:  make([]S, 0, 64),
			Depth:  make(map[S]int, 64),
			Parent: make(map[S]S, 64),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w.res, w.loop()
}

// enqueue records depth and parent of s and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent S) {
	w.res.Depth[s] = d
	w.res.Parent[s] = parent
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.Goal != nil && w.opts.Goal(item.state) {
			w.res.Goal = item.state
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors expands item, applies filtering and MaxDepth,
// and enqueues each unseen successor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.state) {
		if !w.opts.FilterNeighbor(item.state, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.state)
		}
	}
}
