// Package cli implements the cobra commands of the lvpuzzle binary.
//
// Each subcommand (list, solve, run) lives in its own file. This file
// defines the root command, the global flags, and logger setup.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpuzzle/internal/config"
)

// DefaultConfigPath is read by run when --config is not given.
const DefaultConfigPath = "lvpuzzle.yaml"

// Version is the binary version, set from main at build time.
var Version = "dev"

// globalOptions holds the persistent flags and the state derived from them.
type globalOptions struct {
	verbose    bool
	jsonOutput bool
	configPath string

	logger *zap.Logger
	// newLogger builds the logger for a level; replaced in tests.
	newLogger func(zapcore.Level) (*zap.Logger, error)
}

// NewRootCommand creates the root command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&globalOptions{newLogger: productionLogger})
}

func newRootCommand(opts *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvpuzzle",
		Short: "Solve puzzle inputs with the lvpuzzle solvers",
		Long: `lvpuzzle runs the puzzle solvers of this module against input files.

Use "list" to see the catalog, "solve" for a single input, and "run" to solve
every input named in a configuration file concurrently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		fmt.Sprintf("Configuration file (default %s for run)", DefaultConfigPath))

	rootCmd.AddCommand(NewListCommand(opts))
	rootCmd.AddCommand(NewSolveCommand(opts))
	rootCmd.AddCommand(NewRunCommand(opts))

	return rootCmd
}

// Execute runs rootCmd until completion or interrupt and exits with code 1
// on any error.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// setupLogger picks the level from --verbose, then the config file, then info.
func (o *globalOptions) setupLogger() error {
	level := zapcore.InfoLevel
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		level = cfg.LogLevel
	}
	if o.verbose {
		level = zapcore.DebugLevel
	}

	logger, err := o.newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger
	return nil
}

// loadConfig reads --config, or DefaultConfigPath when the flag is empty.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = DefaultConfigPath
	}
	return config.Load(path)
}

func productionLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
