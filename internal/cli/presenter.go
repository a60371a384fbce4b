package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"

	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/format"
	"github.com/agbru/fixcalc/internal/metrics"
	"github.com/agbru/fixcalc/internal/orchestration"
	"github.com/agbru/fixcalc/internal/sysmon"
	"github.com/agbru/fixcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for running checks.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numChecks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numChecks, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct {
	// Verbose prints the first mismatch of every failing check.
	Verbose bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentCheckTable prints one row per check.
func (p CLIResultPresenter) PresentCheckTable(results []orchestration.CheckResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Check Summary ---\n")

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Check").SetAlign(tabulate.ML)
	tab.Header("Trials").SetAlign(tabulate.MR)
	tab.Header("Mismatches").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)
	tab.Header("Status").SetAlign(tabulate.ML)

	for _, res := range results {
		row := tab.Row()
		row.Column(res.Name)
		row.Column(format.FormatNumberString(strconv.Itoa(res.Trials)))
		row.Column(strconv.Itoa(res.Failures))
		row.Column(format.FormatExecutionDuration(res.Duration))
		row.Column(format.FormatRate(uint64(res.Trials), res.Duration))
		switch {
		case res.Failures > 0:
			row.Column("MISMATCH").SetFormat(tabulate.FmtBold)
		case res.Err != nil:
			row.Column(statusForError(res.Err)).SetFormat(tabulate.FmtItalic)
		default:
			row.Column("ok")
		}
	}
	tab.Print(out)

	if p.Verbose {
		for _, res := range results {
			if res.FirstMismatch != nil {
				fmt.Fprintf(out, "%s%v%s\n", ui.ColorRed(), res.FirstMismatch, ui.ColorReset())
			}
		}
	}
}

func statusForError(err error) string {
	if apperrors.IsContextError(err) {
		return "stopped"
	}
	var mismatch apperrors.MismatchError
	if errors.As(err, &mismatch) {
		return "MISMATCH"
	}
	return "error"
}

// HandleError reports err with the active theme and returns the exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleError(err, duration, out, ui.ColorProvider{})
}

// DisplayMemoryStats shows the memory activity of a bench run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// DisplaySystemLoad shows the system-wide load sampled at the end of a run.
func DisplaySystemLoad(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "  System load:     %s\n", s)
}
