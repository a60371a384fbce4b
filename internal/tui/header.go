package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fixcalc/internal/format"
)

// HeaderModel renders the top bar: title, width, version and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	width     string
	version   string
	cols      int
}

// NewHeaderModel creates a new header for an engine of the given width.
func NewHeaderModel(width, version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		width:     width,
		version:   version,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available terminal columns.
func (h *HeaderModel) SetWidth(cols int) {
	h.cols = cols
}

// Elapsed returns the running time, frozen once SetDone was called.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "fixcalc bench"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	left := titleStyle.Render(titleText) + pipe +
		valueStyle.Render(h.width) + pipe +
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := max(h.cols-2-lipgloss.Width(left), 0)
	return headerStyle.Render(left + strings.Repeat(" ", gap))
}
