package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fixcalc/internal/format"
	"github.com/agbru/fixcalc/internal/metrics"
)

const (
	sparklineLabelWidth = 16
	minSparklineWidth   = 10
)

// SystemModel shows CPU and memory history as sparklines next to the
// runtime heap figures of the process.
type SystemModel struct {
	cpu        *History
	mem        *History
	heap       metrics.MemorySnapshot
	goroutines int
	width      int
}

// NewSystemModel creates an empty panel.
func NewSystemModel() SystemModel {
	return SystemModel{
		cpu: NewHistory(minSparklineWidth),
		mem: NewHistory(minSparklineWidth),
	}
}

// SetWidth updates the available width, resizing the sample history.
func (s *SystemModel) SetWidth(w int) {
	s.width = w
	n := max(w-sparklineLabelWidth, minSparklineWidth)
	s.cpu.SetLimit(n)
	s.mem.SetLimit(n)
}

// UpdateSysStats appends a system-wide sample.
func (s *SystemModel) UpdateSysStats(msg SysStatsMsg) {
	s.cpu.Push(msg.CPUPercent)
	s.mem.Push(msg.MemPercent)
}

// UpdateMemStats records the latest runtime memory sample.
func (s *SystemModel) UpdateMemStats(msg MemStatsMsg) {
	s.heap = msg.Snapshot
	s.goroutines = msg.NumGoroutine
}

// View renders the panel.
func (s SystemModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		dimStyle.Render("CPU "),
		cpuSparklineStyle.Render(RenderSparkline(s.cpu.Values())),
		valueStyle.Render(fmt.Sprintf("%5.1f%%", s.cpu.Last())))
	fmt.Fprintf(&b, "%s %s %s\n",
		dimStyle.Render("MEM "),
		memSparklineStyle.Render(RenderSparkline(s.mem.Values())),
		valueStyle.Render(fmt.Sprintf("%5.1f%%", s.mem.Last())))
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d",
		dimStyle.Render("Heap"), valueStyle.Render(format.FormatBytes(s.heap.HeapAlloc)),
		dimStyle.Render("GC"), s.heap.NumGC,
		dimStyle.Render("Goroutines"), s.goroutines)
	return b.String()
}
