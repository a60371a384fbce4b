package tui

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/orchestration"
)

// programRef outlives the Model copies bubbletea makes on every Update, so the
// bench goroutines always reach the running program. Sends before attach are
// dropped.
type programRef struct {
	p atomic.Pointer[tea.Program]
}

func (r *programRef) attach(p *tea.Program) { r.p.Store(p) }

// Send forwards msg to the attached program, if any.
func (r *programRef) Send(msg tea.Msg) {
	if p := r.p.Load(); p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter turns orchestration progress into ProgressMsg values
// stamped with the bench run they belong to.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.ProgressUpdate, numChecks int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numChecks)
	if agg == nil {
		orchestration.DrainChannel(updates)
		return
	}
	for u := range updates {
		a := agg.Update(u)
		t.ref.Send(ProgressMsg{
			CheckIndex:      a.CheckIndex,
			Value:           a.Value,
			AverageProgress: a.AverageProgress,
			ETA:             a.ETA,
			Generation:      t.generation,
		})
	}
	t.ref.Send(ProgressDoneMsg{Generation: t.generation})
}

// TUIResultPresenter hands the final table and any run error to the model
// instead of printing them.
type TUIResultPresenter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

func (t *TUIResultPresenter) PresentCheckTable(results []orchestration.CheckResult, _ io.Writer) {
	t.ref.Send(ResultsMsg{Results: results, Generation: t.generation})
}

// HandleError reports err to the model and returns the same exit code the
// CLI would.
func (t *TUIResultPresenter) HandleError(err error, d time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: d, Generation: t.generation})
	return apperrors.HandleError(err, d, io.Discard, nil)
}
