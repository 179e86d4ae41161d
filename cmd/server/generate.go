package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"request-metrics/internal/generators"
	"request-metrics/internal/replays"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	count        int
	start        string
	interval     time.Duration
	firstID      int64
	seed         int64
	distribution string
	name         string
	out          string
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Writes a YAML fixture of synthetic request events for replay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" || opts.out == "-" {
				return runGenerate(cmd.OutOrStdout(), opts, time.Now())
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", opts.out, err)
			}
			if err := runGenerate(f, opts, time.Now()); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1440, "Number of events")
	cmd.Flags().StringVar(&opts.start, "start", "", "RFC 3339 timestamp of the first event (default: count intervals before now)")
	cmd.Flags().DurationVar(&opts.interval, "interval", time.Minute, "Spacing between events")
	cmd.Flags().Int64Var(&opts.firstID, "first-id", 1, "Id of the first event")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&opts.distribution, "distribution", string(generators.DistributionGaussian), "Latency distribution: gaussian or uniform")
	cmd.Flags().StringVar(&opts.name, "name", "generated", "Fixture name")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "Output file, - for stdout")
	return cmd
}

func runGenerate(out io.Writer, opts generateOptions, now time.Time) error {
	var start time.Time
	if opts.start == "" {
		start = now.UTC().Truncate(opts.interval).Add(-time.Duration(opts.count) * opts.interval)
	} else {
		parsed, err := time.Parse(time.RFC3339Nano, opts.start)
		if err != nil {
			return fmt.Errorf("invalid start: %w", err)
		}
		start = parsed
	}

	generated, err := generators.Generate(generators.Options{
		Count:        opts.count,
		Start:        start,
		Interval:     opts.interval,
		FirstID:      opts.firstID,
		Seed:         opts.seed,
		Distribution: generators.Distribution(opts.distribution),
	})
	if err != nil {
		return err
	}
	return replays.EncodeFixture(out, &replays.Fixture{Name: opts.name, Events: generated})
}
