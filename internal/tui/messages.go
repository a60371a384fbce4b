package tui

import (
	"time"

	"github.com/agbru/fixcalc/internal/metrics"
	"github.com/agbru/fixcalc/internal/orchestration"
)

// Messages sent by a bench run carry the generation that started it so
// updates from a run replaced by a restart are dropped.

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	CheckIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	Generation      uint64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct {
	Generation uint64
}

// ResultsMsg carries the finished check results.
type ResultsMsg struct {
	Results    []orchestration.CheckResult
	Generation uint64
}

// ErrorMsg reports the error that decided the exit code of a run.
type ErrorMsg struct {
	Err        error
	Duration   time.Duration
	Generation uint64
}

// BenchCompleteMsg is returned when ExecuteChecks and the analysis are done.
type BenchCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the context of a run is done.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Snapshot     metrics.MemorySnapshot
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
