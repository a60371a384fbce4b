package orchestration

import (
	"io"
	"sync"
	"time"
)

// CheckResult is the outcome of running one check for a number of trials.
type CheckResult struct {
	// Name identifies the check (e.g. "fm3invadd").
	Name string
	// Trials is the number of trials actually run.
	Trials int
	// Failures counts trials whose optimized and reference forms disagreed.
	Failures int
	// FirstMismatch is the first disagreement observed, if any.
	FirstMismatch error
	// Duration is the wall time of all trials.
	Duration time.Duration
	// Err is set when the check stopped early, e.g. on cancellation.
	Err error
}

// ProgressUpdate reports the completion ratio of one check.
type ProgressUpdate struct {
	CheckIndex int
	Value      float64
}

// ProgressReporter defines the interface for displaying bench progress.
// Implementations must drain progressChan until it is closed and then call
// wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer) {
	f(wg, progressChan, numChecks, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting bench results.
type ResultPresenter interface {
	// PresentCheckTable displays one row per check.
	PresentCheckTable(results []CheckResult, out io.Writer)
	// HandleError reports err and returns the matching exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// Observer receives the outcome of every finished check. metrics.Recorder
// implements it.
type Observer interface {
	ObserveCheck(name string, trials, failures int, d time.Duration)
}
