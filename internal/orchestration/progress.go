package orchestration

import (
	"time"

	"github.com/agbru/fixcalc/internal/format"
)

// ProgressAggregator folds per-check progress updates into one average and
// an ETA.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numChecks int
}

// NewProgressAggregator creates an aggregator for numChecks checks. Returns
// nil if numChecks <= 0.
func NewProgressAggregator(numChecks int) *ProgressAggregator {
	if numChecks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numChecks),
		numChecks: numChecks,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	CheckIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CheckIndex, update.Value)
	return AggregatedProgress{
		CheckIndex:      update.CheckIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumChecks returns the number of checks being tracked.
func (a *ProgressAggregator) NumChecks() int {
	return a.numChecks
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
