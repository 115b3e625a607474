package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/blobcheck"
	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/spf13/cobra"
)

var (
	benchStore    storeFlags
	benchMaxSize  string
	benchThrottle string
	benchCodecs   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep payload size exponentially and time writes per target",
	Long: `bench writes uniform payloads of doubling size through each competing
write path and reports per-write throughput.

At large sizes the sweep can exhaust memory; that is an accepted property of
the benchmark. Bound it with --max-size, or skip it — correctness testing
does not depend on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSize, err := humanize.ParseBytes(benchMaxSize)
		if err != nil {
			return fmt.Errorf("parse --max-size: %w", err)
		}

		base, err := benchStore.build(cmd.Context(), func() string {
			dir, err := os.MkdirTemp("", "blobcheck-bench-*")
			if err != nil {
				return os.TempDir()
			}
			return dir
		})
		if err != nil {
			return err
		}

		targets := []blobcheck.Target{{Name: benchStore.kind, Store: base}}

		if benchCodecs {
			zstd, err := wrapCodec(base, "zstd")
			if err != nil {
				return err
			}
			lz4, err := wrapCodec(base, "lz4")
			if err != nil {
				return err
			}
			targets = append(targets,
				blobcheck.Target{Name: benchStore.kind + "+zstd", Store: zstd},
				blobcheck.Target{Name: benchStore.kind + "+lz4", Store: lz4},
			)
		}

		if benchThrottle != "" {
			bps, err := humanize.ParseBytes(benchThrottle)
			if err != nil {
				return fmt.Errorf("parse --throttle: %w", err)
			}
			targets = append(targets, blobcheck.Target{
				Name:  benchStore.kind + "+throttled",
				Store: blobstore.NewThrottledStore(base, int(bps)),
			})
		}

		bench := blobcheck.NewBenchmark(targets,
			blobcheck.WithMaxSize(int64(maxSize)),
			blobcheck.WithBenchmarkLogger(newLogger()),
		)
		results, err := bench.Run(cmd.Context())
		if err != nil {
			return err
		}

		printResults(results)
		return nil
	},
}

func init() {
	benchStore.register(benchCmd)
	benchCmd.Flags().StringVar(&benchMaxSize, "max-size", "64MiB", "largest payload in the sweep")
	benchCmd.Flags().StringVar(&benchThrottle, "throttle", "", "add a bandwidth-capped competitor, e.g. 8MiB")
	benchCmd.Flags().BoolVar(&benchCodecs, "codecs", false, "add zstd and lz4 compressed competitors")
	rootCmd.AddCommand(benchCmd)
}

func printResults(results []blobcheck.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tSIZE\tELAPSED\tTHROUGHPUT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s/s\n",
			r.Target,
			humanize.IBytes(uint64(r.Bytes)),
			r.Elapsed.Round(10*time.Microsecond),
			humanize.IBytes(uint64(r.Throughput())),
		)
	}
	w.Flush()
}
