package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Job is one entry of a batch file:
//
//	- type: int32
//	  op: mul
//	  args: [46341, 46341]
type Job struct {
	Type string   `yaml:"type"`
	Op   string   `yaml:"op"`
	Args operands `yaml:"args"`
}

// operands keeps each YAML scalar's literal text, so 0x10 and -1 reach the
// integer parser exactly as written.
type operands []string

func (o *operands) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("checkint: line %d: args must be a sequence", value.Line)
	}
	out := make(operands, 0, len(value.Content))
	for _, n := range value.Content {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("checkint: line %d: args must be scalars", n.Line)
		}
		out = append(out, n.Value)
	}
	*o = out
	return nil
}

func (o operands) Strings() []string { return []string(o) }

// Result is the outcome of a Job. Err is set when the operation failed; Kind
// is its classification if it was an arithmetic failure.
type Result struct {
	Job   Job
	Value interface{}
	Kind  string
	Err   error
}

func newBatchCmd(opts *options) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Evaluate a YAML list of operations concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadJobs(args[0])
			if err != nil {
				return err
			}
			results, err := runBatch(cmd.Context(), opts.logger, list, jobs, opts.fatal)
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				printResult(cmd.OutOrStdout(), opts, res)
				if res.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("checkint: %d of %d jobs failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Maximum number of jobs evaluated at once")
	return cmd
}

func loadJobs(file string) ([]Job, error) {
	bts, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var list []Job
	if err := yaml.Unmarshal(bts, &list); err != nil {
		return nil, fmt.Errorf("checkint: %s: %w", file, err)
	}
	return list, nil
}

// runBatch evaluates every job with at most limit in flight. Arithmetic
// failures are recorded in the job's Result; a job naming an unknown type
// cancels the batch.
func runBatch(ctx context.Context, logger *zap.Logger, list []Job, limit int, fatal bool) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]Result, len(list))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, job := range list {
		i, job := i, job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ev, err := newEvaluator(job.Type, fatal)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = evaluate(logger, ev, job)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("batch complete", zap.Int("jobs", len(list)))
	return results, nil
}
