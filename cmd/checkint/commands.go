package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <type> <op> <operands...>",
		Short: "Evaluate a single checked operation",
		Long: `Evaluate a single checked operation.

Ops taking two operands of <type>:
  add sub mul quo rem floormul ceilmul ratiofloor ratioceil logfloor logceil
Ops taking one operand of <type>:
  neg
Ops taking an operand of <type> and an int count or exponent:
  shl shr pow`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(cmd.OutOrStdout(), opts, args[0], args[1], args[2:])
		},
	}
}

func newFactorCmd(opts *options) *cobra.Command {
	var ceil bool
	cmd := &cobra.Command{
		Use:   "factor <type> <x> <base> [<base2>]",
		Short: "Find the power (or product of two powers) closest to x",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := "factorfloor"
			if ceil {
				op = "factorceil"
			}
			return runOne(cmd.OutOrStdout(), opts, args[0], op, args[1:])
		},
	}
	cmd.Flags().BoolVar(&ceil, "ceil", false, "Search for the smallest power >= x instead of the largest <= x")
	return cmd
}

func newCastCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cast <from> <to> <value>",
		Short: "Convert a value between integer types",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(cmd.OutOrStdout(), opts, args[0], "cast", args[1:])
		},
	}
}

func runOne(w io.Writer, opts *options, typ, op string, args []string) error {
	ev, err := newEvaluator(typ, opts.fatal)
	if err != nil {
		return err
	}
	res := evaluate(opts.logger, ev, Job{Type: typ, Op: op, Args: operands(args)})
	printResult(w, opts, res)
	if res.Err != nil {
		return res.Err
	}
	return nil
}

// evaluate runs a single job against ev, which must be for job.Type.
func evaluate(logger *zap.Logger, ev evaluator, job Job) Result {
	args := job.Args.Strings()
	logger.Debug("evaluating",
		zap.String("type", job.Type),
		zap.String("op", job.Op),
		zap.Strings("args", args))

	out, err := ev.Eval(job.Op, args)
	res := Result{Job: job}
	if err != nil {
		res.Err = err
		res.Kind = kindOf(err)
		if _, ok := err.(*fatalError); ok {
			logger.Error("contract violation", zap.String("type", job.Type), zap.Error(err))
		} else {
			logger.Debug("failed", zap.String("kind", res.Kind), zap.Error(err))
		}
		return res
	}
	res.Value = out
	return res
}

var jsontool = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
}.Froze()

// record is the --json form of a Result, one object per line.
type record struct {
	Type  string   `json:"type"`
	Op    string   `json:"op"`
	Args  []string `json:"args"`
	Value string   `json:"value,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Error string   `json:"error,omitempty"`
}

func printResult(w io.Writer, opts *options, res Result) {
	if opts.json {
		rec := record{Type: res.Job.Type, Op: res.Job.Op, Args: res.Job.Args.Strings(), Kind: res.Kind}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		} else {
			rec.Value = fmt.Sprint(res.Value)
		}
		bts, err := jsontool.Marshal(rec)
		if err != nil {
			// record only holds strings
			panic(err)
		}
		fmt.Fprintf(w, "%s\n", bts)
		return
	}

	call := fmt.Sprintf("%s %s(%s)", res.Job.Type, res.Job.Op, strings.Join(res.Job.Args.Strings(), ", "))
	switch {
	case res.Err != nil && res.Kind != "":
		fmt.Fprintf(w, "%s: %s\n", call, res.Kind)
	case res.Err != nil:
		fmt.Fprintf(w, "%s: error\n", call)
	default:
		fmt.Fprintf(w, "%s = %v\n", call, res.Value)
	}
	if opts.dump {
		fmt.Fprint(w, spew.Sdump(res))
	}
}
