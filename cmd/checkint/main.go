// Command checkint evaluates checked integer operations from the command line
// or from a YAML batch file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	verbose bool
	dump    bool
	json    bool
	fatal   bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "checkint",
		Short: "Overflow-checked integer arithmetic",
		Long: `checkint evaluates integer operations at a fixed width and signedness,
reporting overflow, underflow, division by zero and domain errors instead
of silently wrapping.

Types: int8 int16 int32 int64 uint8 uint16 uint32 uint64`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.dump, "dump", false, "Dump full result structures")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print one JSON object per result")
	root.PersistentFlags().BoolVar(&opts.fatal, "fatal", false,
		"Raise contract violations (zero divisors, bad shifts, bad arguments) as panics")

	root.AddCommand(
		newEvalCmd(opts),
		newFactorCmd(opts),
		newCastCmd(opts),
		newBatchCmd(opts),
	)
	return root
}
