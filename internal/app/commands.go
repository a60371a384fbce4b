package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/fixcalc/internal/cli"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/logging"
	"github.com/agbru/fixcalc/internal/metrics"
	"github.com/agbru/fixcalc/internal/orchestration"
	"github.com/agbru/fixcalc/internal/sysmon"
	"github.com/agbru/fixcalc/internal/tui"
)

func (a *Application) runEval(out io.Writer) int {
	if len(a.Config.Args) == 0 {
		return a.handleError(apperrors.NewConfigError("eval needs an expression, e.g. eval 1f + 2"), out)
	}
	res, err := a.Engine.Eval(a.Config.Args...)
	if err != nil {
		return a.handleError(err, out)
	}
	if a.Config.Verbose {
		fmt.Fprintln(out, cli.FormatResult(res))
		return apperrors.ExitSuccess
	}
	cli.DisplayResult(res, a.Config.Quiet, out)
	return apperrors.ExitSuccess
}

func (a *Application) runInverse(out io.Writer) int {
	if len(a.Config.Args) != 1 {
		return a.handleError(apperrors.NewConfigError("inverse takes exactly one operand"), out)
	}
	inv, err := a.Engine.Inverse(a.Config.Args[0])
	if err != nil {
		return a.handleError(err, out)
	}
	fmt.Fprintln(out, inv)
	return apperrors.ExitSuccess
}

func (a *Application) runRandom(out io.Writer) int {
	count := 1
	if len(a.Config.Args) > 0 {
		n, err := strconv.Atoi(a.Config.Args[0])
		if err != nil || n <= 0 {
			return a.handleError(apperrors.ValidationError{Field: "count", Message: fmt.Sprintf("must be a positive integer, got %q", a.Config.Args[0])}, out)
		}
		count = n
	}
	for range count {
		fmt.Fprintln(out, a.Engine.Random(a.Source))
	}
	return apperrors.ExitSuccess
}

func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	checks := a.Engine.Checks()
	desc := a.Engine.Describe()
	opts := orchestration.Options{
		Iterations: a.Config.Iterations,
		Workers:    a.Config.Workers,
		Seed:       a.Config.Seed,
	}

	if a.Config.TUI {
		return tui.Run(ctx, checks, desc, opts, Version)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, desc, len(checks), out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	var recorder *metrics.Recorder
	if a.Config.Metrics {
		recorder = metrics.NewRecorder(fmt.Sprintf("%dx%d", desc.WordBits, desc.Words))
		opts.Observer = recorder
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	if a.Config.Verbose {
		// Primes the CPU counters so the final sample covers the run.
		sysmon.Sample()
	}
	start := time.Now()
	a.Logger.Debug("bench started", logging.Int("checks", len(checks)), logging.Int("iterations", a.Config.Iterations), logging.Uint64("seed", a.Config.Seed))

	results := orchestration.ExecuteChecks(ctx, checks, opts, progressReporter, progressOut)

	after := mc.Snapshot()
	a.Logger.Debug("bench finished", logging.Float64("seconds", time.Since(start).Seconds()))

	code := orchestration.AnalyzeCheckResults(results, cli.CLIResultPresenter{Verbose: a.Config.Verbose}, out)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(after.Delta(before), out)
		cli.DisplaySystemLoad(sysmon.Sample(), out)
	}
	if recorder != nil {
		recorder.ObserveMemory(after)
		fmt.Fprintln(out)
		if err := recorder.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return code
}
