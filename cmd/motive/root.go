// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/motive/config"
)

const (
	// DefaultLogLevel is the level of the stderr logger.
	DefaultLogLevel = "info"

	formatText = "text"
	formatCSV  = "csv"
)

var (
	configPath   string
	logLevel     string
	outputPath   string
	outputFormat string

	// logger is built by the root pre-run hook.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "motive",
	Short: "Motif extraction and MDL scoring for graphs",
	Long: `motive samples connected subgraphs of a graph, groups them into motifs
and scores every motif by the code length saved when its occurrences are
collapsed into symbol nodes.

Examples:
  motive run --graph edges.txt                   # score motifs of an undirected graph
  motive run --graph edges.txt --directed --format csv --out report.csv
  motive synthetic --config experiment.yaml      # planted-motif experiment`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&configPath, "config", "", "experiment YAML file (defaults apply when empty)")
	pflags.StringVar(&logLevel, "log-level", DefaultLogLevel, "log level: debug, info, warn or error")
	pflags.StringVarP(&outputPath, "out", "o", "", "report file (stdout when empty)")
	pflags.StringVar(&outputFormat, "format", formatText, "report format: text or csv")
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("--log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// loadConfig returns the file at --config, or the defaults with the
// environment applied.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	cfg := config.Default()
	if err := cfg.ApplyEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// openOutput returns the report writer and a close function that reports
// the file close error.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	switch outputFormat {
	case formatText, formatCSV:
	default:
		return nil, nil, fmt.Errorf("--format %q: want %s or %s", outputFormat, formatText, formatCSV)
	}
	if outputPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
