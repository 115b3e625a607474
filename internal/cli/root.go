package cli

import (
	"log/slog"

	"github.com/hupe1980/blobcheck"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "blobcheck",
		Short: "blobcheck - blob store write/read verification harness",
		Long: `blobcheck writes generated binary payloads through a blob store, reads
them back through an independent path, and asserts byte-exact equivalence.
It also benchmarks write throughput across an exponential payload-size sweep.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every verification, not just progress")
}

// Execute runs the root command. The error is returned to main, which owns
// the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *blobcheck.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return blobcheck.NewTextLogger(level)
}
