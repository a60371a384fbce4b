package metrics

import "runtime"

// MemorySnapshot is a subset of runtime.MemStats. After Delta, the
// cumulative fields count only the interval between two snapshots.
type MemorySnapshot struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	Sys          uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// Delta keeps the gauges of s and subtracts the counters of before.
func (s MemorySnapshot) Delta(before MemorySnapshot) MemorySnapshot {
	d := s
	d.TotalAlloc -= before.TotalAlloc
	d.NumGC -= before.NumGC
	d.PauseTotalNs -= before.PauseTotalNs
	return d
}

// MemoryCollector samples the Go runtime. It is stateless; the type exists so
// the bench command and the TUI can share a handle.
type MemoryCollector struct{}

func NewMemoryCollector() *MemoryCollector { return &MemoryCollector{} }

// Snapshot calls runtime.ReadMemStats, which briefly stops the world.
func (*MemoryCollector) Snapshot() MemorySnapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemorySnapshot{
		HeapAlloc:    ms.HeapAlloc,
		TotalAlloc:   ms.TotalAlloc,
		Sys:          ms.Sys,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
	}
}
