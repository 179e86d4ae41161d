package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"request-metrics/internal/engines"
	"request-metrics/internal/replays"
	"request-metrics/internal/shared/configs"
	"request-metrics/internal/shared/loggers"

	"github.com/spf13/cobra"
)

// defaultReplayOptions fold a typical dashboard fixture into a single window.
var defaultReplayOptions = engines.Options{
	BucketDuration: time.Hour,
	Retention:      24 * time.Hour,
	MaxClockSkew:   5 * time.Second,
	RecentCapacity: 10,
}

func newReplayCmd() *cobra.Command {
	var (
		fixturePath string
		configFile  string
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Ingests a YAML fixture by event time and prints the dashboard views as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), cmd.OutOrStdout(), fixturePath, configFile, logLevel)
		},
	}
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "testdata/sample_events.yaml", "Path to the YAML fixture")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Optional configuration file for bucket and retention settings")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Logger level for stderr output")
	return cmd
}

func runReplay(ctx context.Context, out io.Writer, fixturePath, configFile, logLevel string) error {
	logger, err := loggers.NewWithWriter(logLevel, os.Stderr)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	opts := defaultReplayOptions
	if configFile != "" {
		cfg, err := configs.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts = engines.OptionsFromConfig(cfg)
	}
	// Event time drives eviction during a replay, so no janitor.
	opts.EvictionInterval = 0

	fixture, err := replays.LoadFixture(fixturePath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := replays.Replay(ctx, opts, fixture, logger)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
