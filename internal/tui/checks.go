package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/agbru/fixcalc/internal/format"
	"github.com/agbru/fixcalc/internal/orchestration"
)

const (
	minBarWidth = 10
	nameWidth   = 10
)

type checkRow struct {
	name   string
	value  float64
	result *orchestration.CheckResult
}

// ChecksModel renders one progress row per check, followed by the outcome
// once results are in.
type ChecksModel struct {
	rows  []checkRow
	bar   progress.Model
	width int
}

// NewChecksModel creates the panel for the named checks.
func NewChecksModel(names []string, colored bool) ChecksModel {
	opts := []progress.Option{progress.WithoutPercentage()}
	if colored {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithFillCharacters('█', '░'))
	}
	rows := make([]checkRow, len(names))
	for i, n := range names {
		rows[i] = checkRow{name: n}
	}
	return ChecksModel{rows: rows, bar: progress.New(opts...)}
}

// SetWidth updates the available width and resizes the bars.
func (c *ChecksModel) SetWidth(w int) {
	c.width = w
	c.bar.Width = max(w-nameWidth-45, minBarWidth)
}

// SetProgress records the progress of check i. Progress never moves back
// and out-of-range indexes are ignored.
func (c *ChecksModel) SetProgress(i int, v float64) {
	if i < 0 || i >= len(c.rows) {
		return
	}
	c.rows[i].value = max(c.rows[i].value, min(max(v, 0), 1))
}

// SetResults attaches the finished results, matched to rows by position.
func (c *ChecksModel) SetResults(results []orchestration.CheckResult) {
	for i := range results {
		if i >= len(c.rows) {
			break
		}
		res := results[i]
		c.rows[i].result = &res
		if res.Err == nil {
			c.rows[i].value = 1
		}
	}
}

// Reset clears progress and results.
func (c *ChecksModel) Reset() {
	for i := range c.rows {
		c.rows[i].value = 0
		c.rows[i].result = nil
	}
}

// View renders the rows.
func (c ChecksModel) View() string {
	var b strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s  %s",
			checkNameStyle.Render(fmt.Sprintf("%-*s", nameWidth, row.name)),
			c.bar.ViewAs(row.value),
			dimStyle.Render(fmt.Sprintf("%5.1f%%", row.value*100)),
			rowStatus(row))
	}
	return b.String()
}

func rowStatus(row checkRow) string {
	res := row.result
	switch {
	case res == nil:
		return statusRunningStyle.Render("running")
	case res.Failures > 0:
		return statusErrorStyle.Render(fmt.Sprintf("%d/%d MISMATCH", res.Failures, res.Trials))
	case res.Err != nil:
		return statusPausedStyle.Render("stopped")
	default:
		return statusDoneStyle.Render(fmt.Sprintf("ok %d trials, %s", res.Trials, format.FormatRate(uint64(res.Trials), res.Duration)))
	}
}
