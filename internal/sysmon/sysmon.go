// Package sysmon samples system-wide CPU and memory usage while checks run.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/agbru/fixcalc/internal/format"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	TotalMemory uint64
}

// Sample collects a single system-wide CPU and memory snapshot. CPU usage is
// the delta since the previous call, so the first call of a process may
// report 0. Fields are left at zero when the platform cannot be queried.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = clampPercent(vmem.UsedPercent)
		s.TotalMemory = vmem.Total
	}
	return s
}

// String renders the snapshot as "cpu 12.5%, mem 40.1% of 15.5 GiB".
func (s Stats) String() string {
	str := fmt.Sprintf("cpu %.1f%%, mem %.1f%%", s.CPUPercent, s.MemPercent)
	if s.TotalMemory > 0 {
		str += " of " + format.FormatBytes(s.TotalMemory)
	}
	return str
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
