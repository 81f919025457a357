package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpuzzle/internal/runner"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// solveFlags holds the flag values for the solve command.
type solveFlags struct {
	// part selects one part by name; empty solves every part.
	part string
	// input is a file path, or "-" for standard input.
	input string
}

// NewSolveCommand creates the "solve" command.
func NewSolveCommand(opts *globalOptions) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <puzzle-id>",
		Short: "Solve one puzzle input",
		Long: `Solve one puzzle input, read from a file or standard input.

Examples:
  lvpuzzle solve 2020-23 --input cups.txt
  lvpuzzle solve 2016-09 --part 2 < day9.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzle.Lookup(args[0])
			if err != nil {
				return err
			}
			parts := p.Parts
			if flags.part != "" {
				pt, err := p.Part(flags.part)
				if err != nil {
					return err
				}
				parts = []puzzle.Part{pt}
			}

			input, err := readInput(cmd.InOrStdin(), flags.input)
			if err != nil {
				return err
			}

			jobs := make([]runner.Job, 0, len(parts))
			for _, pt := range parts {
				jobs = append(jobs, runner.Job{Puzzle: p, Part: pt, Input: input})
			}
			results := runner.New(opts.logger, 1).Run(cmd.Context(), jobs)
			return printResults(cmd.OutOrStdout(), results, opts.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&flags.part, "part", "", "Part to solve (default: all parts)")
	cmd.Flags().StringVar(&flags.input, "input", "-", `Input file, or "-" for standard input`)

	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
