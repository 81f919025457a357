package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/lvpuzzle/internal/runner"
)

// resultEntry is the JSON shape of one solved part.
type resultEntry struct {
	Puzzle    string  `json:"puzzle"`
	Part      string  `json:"part"`
	Answer    string  `json:"answer,omitempty"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Error     string  `json:"error,omitempty"`
}

// printResults writes results and returns an error if any of them failed.
func printResults(w io.Writer, results []runner.Result, asJSON bool) error {
	failed := 0
	entries := make([]resultEntry, 0, len(results))
	for _, r := range results {
		e := resultEntry{
			Puzzle:    r.PuzzleID,
			Part:      r.Part,
			Answer:    r.Answer,
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
			failed++
		}
		entries = append(entries, e)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return err
		}
	} else {
		for _, e := range entries {
			if e.Error != "" {
				fmt.Fprintf(w, "%s part %s: error: %s\n", e.Puzzle, e.Part, e.Error)
				continue
			}
			fmt.Fprintf(w, "%s part %s: %s\n", e.Puzzle, e.Part, e.Answer)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d parts failed", failed, len(results))
	}
	return nil
}
