package format

import (
	"strings"
	"testing"
	"time"
)

func TestNewProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(3)

	if p.ProgressState == nil {
		t.Fatal("ProgressState should not be nil")
	}
	if p.numChecks != 3 {
		t.Errorf("numChecks = %d, want 3", p.numChecks)
	}
	if p.progressRate != 0 {
		t.Errorf("initial progressRate = %f, want 0", p.progressRate)
	}
	if p.startTime.IsZero() {
		t.Error("startTime should not be zero")
	}
}

func TestUpdateWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)

	progress, eta := p.UpdateWithETA(0, 0.25)
	if progress != 0.125 {
		t.Errorf("initial progress = %f, want 0.125", progress)
	}
	if eta < 0 {
		t.Errorf("ETA should not be negative, got %v", eta)
	}

	progress, _ = p.UpdateWithETA(1, 0.5)
	if progress != 0.375 {
		t.Errorf("progress = %f, want 0.375", progress)
	}
}

func TestGetETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)

	if eta := p.GetETA(); eta != 0 {
		t.Errorf("initial ETA = %v, want 0", eta)
	}

	p.Update(0, 0.5)
	p.progressRate = 0.1

	eta := p.GetETA()
	if eta < 4*time.Second || eta > 6*time.Second {
		t.Errorf("ETA = %v, want about 5s", eta)
	}
}

func TestETACapping(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)
	p.Update(0, 0.001)
	p.progressRate = 0.0000001

	if eta := p.GetETA(); eta > maxETA {
		t.Errorf("ETA = %v, should be capped at %v", eta, maxETA)
	}
}

func TestProgressStateClamping(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(2)
	ps.Update(0, 1.5)
	ps.Update(1, -0.5)
	ps.Update(5, 0.5)
	ps.Update(-1, 0.5)
	if avg := ps.CalculateAverage(); avg != 0.5 {
		t.Errorf("average = %f, want 0.5", avg)
	}
	if NewProgressState(0).CalculateAverage() != 0 {
		t.Error("zero checks should average to 0")
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{time.Hour + 15*time.Minute, "1h15m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0.0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1.0, "██████████"},
		{1.2, "██████████"},
		{-0.1, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress, 10); got != tt.want {
			t.Errorf("ProgressBar(%f) = %s; want %s", tt.progress, got, tt.want)
		}
	}

	line := FormatProgressBarWithETA(0.5, 30*time.Second, 20)
	for _, want := range []string{"[", "]", "50.0%", "ETA: 30s"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatProgressBarWithETA = %q, missing %q", line, want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		ops  uint64
		d    time.Duration
		want string
	}{
		{10, 0, "n/a"},
		{500, time.Second, "500 ops/s"},
		{2500, time.Second, "2.50k ops/s"},
		{3_000_000, 2 * time.Second, "1.50M ops/s"},
		{4_000_000_000, time.Second, "4.00G ops/s"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.ops, tt.d); got != tt.want {
			t.Errorf("FormatRate(%d, %v) = %q, want %q", tt.ops, tt.d, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"", ""},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.in); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		b    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.b); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}
