// Package runner solves batches of puzzle parts concurrently.
//
// Jobs run on an errgroup bounded by the configured parallelism. A failing
// job never stops the others; its error is recorded in its Result. Results
// are returned in job order regardless of completion order.
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpuzzle/internal/config"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// Job is one puzzle part paired with its input.
type Job struct {
	Puzzle puzzle.Puzzle
	Part   puzzle.Part
	Input  string
}

// Result is the outcome of one Job.
type Result struct {
	PuzzleID string
	Part     string
	Answer   string
	Elapsed  time.Duration
	Err      error
}

// Runner executes jobs with bounded parallelism.
type Runner struct {
	log         *zap.Logger
	parallelism int
}

// New returns a Runner. A nil logger discards output and parallelism below
// one is treated as one.
func New(logger *zap.Logger, parallelism int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Runner{log: logger, parallelism: parallelism}
}

// Run solves every job and returns one Result per job, in order. Jobs not
// yet started when ctx is cancelled record ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	r.log.Debug("starting batch", zap.Int("jobs", len(jobs)), zap.Int("parallelism", r.parallelism))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = r.solve(gctx, job)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// solve runs a single job and logs its outcome.
func (r *Runner) solve(ctx context.Context, job Job) Result {
	res := Result{PuzzleID: job.Puzzle.ID, Part: job.Part.Name}
	log := r.log.With(zap.String("puzzle", res.PuzzleID), zap.String("part", res.Part))

	if err := ctx.Err(); err != nil {
		res.Err = err
		log.Debug("skipped", zap.Error(err))
		return res
	}

	log.Debug("solving", zap.Int("input_bytes", len(job.Input)))
	start := time.Now()
	res.Answer, res.Err = job.Part.Solve(ctx, job.Input)
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		log.Warn("failed", zap.Duration("elapsed", res.Elapsed), zap.Error(res.Err))
		return res
	}
	log.Info("solved", zap.String("answer", res.Answer), zap.Duration("elapsed", res.Elapsed))
	return res
}

// LoadJobs builds a job for every configured input and every requested part.
// An empty parts list selects all parts of each puzzle.
func LoadJobs(cfg *config.Config, parts []string) ([]Job, error) {
	var jobs []Job
	for _, id := range cfg.PuzzleIDs() {
		p, err := puzzle.Lookup(id)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(cfg.Inputs[id])
		if err != nil {
			return nil, fmt.Errorf("runner: input for %s: %w", id, err)
		}

		selected := p.Parts
		if len(parts) > 0 {
			selected = selected[:0:0]
			for _, name := range parts {
				pt, err := p.Part(name)
				if err != nil {
					return nil, err
				}
				selected = append(selected, pt)
			}
		}
		for _, pt := range selected {
			jobs = append(jobs, Job{Puzzle: p, Part: pt, Input: string(b)})
		}
	}
	return jobs, nil
}
