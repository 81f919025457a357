package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/internal/runner"
)

// NewRunCommand creates the "run" command.
func NewRunCommand(opts *globalOptions) *cobra.Command {
	var parts []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve every configured input concurrently",
		Long: `Solve every input listed in the configuration file, running up to
"parallelism" parts at once.

Examples:
  lvpuzzle run
  lvpuzzle run --config ci.yaml --part 1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			jobs, err := runner.LoadJobs(cfg, parts)
			if err != nil {
				return err
			}
			opts.logger.Debug("loaded configuration",
				zap.String("path", cfg.Path), zap.Int("jobs", len(jobs)))

			results := runner.New(opts.logger, cfg.Parallelism).Run(cmd.Context(), jobs)
			return printResults(cmd.OutOrStdout(), results, opts.jsonOutput)
		},
	}

	cmd.Flags().StringSliceVar(&parts, "part", nil, "Parts to solve (default: all parts)")

	return cmd
}
