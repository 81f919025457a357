// Package dijkstra defines core types and configuration options
// for uniform-cost search over implicit weighted state graphs.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = settled states, E = generated arcs
//	– Space: O(V + E)           distance map plus heap entries (lazy decrease-key).
//
// Options:
//
//	– Ctx:         cancellation, checked once per settled state.
//	– ReturnPath:  if true, keep predecessors and return the start→goal path.
//	– MaxDistance: optional cap on path cost; states beyond it are not explored.
//
// Errors (sentinel):
//
//	– ErrNilSuccessors   if the successor function is nil.
//	– ErrNilGoal         if the goal predicate is nil.
//	– ErrNegativeWeight  if a successor arc carries a negative cost.
//	– ErrOptionViolation if an option is invalid (e.g. MaxDistance < 0).
//	– ErrNoPath          if the reachable space (within MaxDistance) holds no goal.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNegativeWeight indicates that a successor arc had a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that no goal state is reachable.
	ErrNoPath = errors.New("dijkstra: no path to a goal state")
)

// Arc is a weighted transition to state To.
type Arc[S comparable] struct {
	To   S
	Cost int64
}

// Result is the outcome of a successful search.
//
// Cost    – total cost of the cheapest path from start to Goal.
// Goal    – the first goal state settled.
// Path    – start→Goal states, only when ReturnPath was requested.
// Settled – number of states whose distance was finalized.
type Result[S comparable] struct {
	Cost    int64
	Goal    S
	Path    []S
	Settled int
}

// Options configures the behavior of Search.
type Options struct {
	Ctx         context.Context // cancellation and deadlines
	ReturnPath  bool            // whether to reconstruct the path
	MaxDistance int64           // maximum path cost to explore

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables path reconstruction in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum cost threshold.
// States whose shortest cost would exceed this value are not explored.
// A negative value is recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with sensible defaults:
//   - Ctx:         context.Background()
//   - ReturnPath:  false
//   - MaxDistance: math.MaxInt64 (no cap)
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
