package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemorySnapshot_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	buf := make([]byte, 1<<20)
	buf[len(buf)-1] = 1
	after := mc.Snapshot()

	d := after.Delta(before)
	if d.TotalAlloc == 0 {
		t.Error("TotalAlloc delta should count the 1 MiB allocation")
	}
	if d.HeapAlloc != after.HeapAlloc {
		t.Error("HeapAlloc should be the absolute value of the later snapshot")
	}
	_ = buf
}
