package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fixcalc/internal/calc"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/scalar"
)

const tracerName = "github.com/agbru/fixcalc/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per check so slow
// displays rarely block a check.
const ProgressBufferMultiplier = 5

// progressSteps is the number of progress updates a check sends.
const progressSteps = 20

// Options configures ExecuteChecks.
type Options struct {
	// Iterations is the number of trials per check.
	Iterations int
	// Workers bounds the checks running at once; 0 means no bound.
	Workers int
	// Seed makes every check's operands reproducible when non-zero. Check i
	// draws from a source seeded with Seed+i.
	Seed uint64
	// Observer, if set, receives each finished check.
	Observer Observer
}

// sourceFor returns the random source for check index. Sources are never
// shared between goroutines.
func sourceFor(opts Options, index int) scalar.Source {
	if opts.Seed != 0 {
		return scalar.NewSeededSource(opts.Seed + uint64(index))
	}
	src, err := scalar.NewPRNGSource()
	if err != nil {
		return scalar.DefaultSource()
	}
	return src
}

// ExecuteChecks runs every check for opts.Iterations trials concurrently and
// returns one result per check, in input order. A mismatch does not stop the
// check; cancellation of ctx does.
func ExecuteChecks(ctx context.Context, checks []calc.Check, opts Options, progressReporter ProgressReporter, out io.Writer) []CheckResult {
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	results := make([]CheckResult, len(checks))
	progressChan := make(chan ProgressUpdate, len(checks)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(checks), out)

	tracer := otel.Tracer(tracerName)
	for i, c := range checks {
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "check "+c.Name())
			defer span.End()

			res := runCheck(spanCtx, c, i, opts.Iterations, sourceFor(opts, i), progressChan)
			results[i] = res

			span.SetAttributes(
				attribute.String("check.name", res.Name),
				attribute.Int("check.trials", res.Trials),
				attribute.Int("check.failures", res.Failures),
			)
			switch {
			case res.Err != nil:
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			case res.Failures > 0:
				span.SetStatus(codes.Error, fmt.Sprintf("%d mismatches", res.Failures))
			}
			if opts.Observer != nil {
				opts.Observer.ObserveCheck(res.Name, res.Trials, res.Failures, res.Duration)
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runCheck(ctx context.Context, c calc.Check, index, iterations int, src scalar.Source, progressChan chan<- ProgressUpdate) CheckResult {
	res := CheckResult{Name: c.Name()}
	start := time.Now()
	step := max(iterations/progressSteps, 1)

	for i := range iterations {
		if i%step == 0 {
			if err := ctx.Err(); err != nil {
				res.Err = err
				break
			}
			report(progressChan, index, float64(i)/float64(iterations))
		}
		err := c.Trial(src)
		res.Trials++
		if err == nil {
			continue
		}
		var mismatch apperrors.MismatchError
		if !errors.As(err, &mismatch) {
			res.Err = err
			break
		}
		res.Failures++
		if res.FirstMismatch == nil {
			res.FirstMismatch = err
		}
	}
	res.Duration = time.Since(start)
	if res.Err == nil {
		report(progressChan, index, 1)
	}
	return res
}

// report sends a progress update without blocking the check.
func report(progressChan chan<- ProgressUpdate, index int, value float64) {
	select {
	case progressChan <- ProgressUpdate{CheckIndex: index, Value: value}:
	default:
	}
}

// AnalyzeCheckResults presents the results and returns the exit code of the
// run: ExitErrorMismatch when any check disagreed with its reference, the
// code for the first check error otherwise, or ExitSuccess.
func AnalyzeCheckResults(results []CheckResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentCheckTable(results, out)

	var total time.Duration
	var firstErr, firstMismatch error
	for _, res := range results {
		total += res.Duration
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
		if res.FirstMismatch != nil && firstMismatch == nil {
			firstMismatch = res.FirstMismatch
		}
	}

	if firstMismatch != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! A fused routine disagreed with its reference form.\n")
		return presenter.HandleError(firstMismatch, total, out)
	}
	if firstErr != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. Not every check could complete.\n")
		return presenter.HandleError(firstErr, total, out)
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All checks agree with their reference forms.\n")
	return apperrors.ExitSuccess
}
