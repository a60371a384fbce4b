package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates so a near-zero rate never renders an absurd value.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion ratio of a fixed set of concurrent checks.
type ProgressState struct {
	progresses []float64
	numChecks  int
}

// NewProgressState creates a tracker for numChecks checks.
func NewProgressState(numChecks int) *ProgressState {
	if numChecks < 0 {
		numChecks = 0
	}
	return &ProgressState{progresses: make([]float64, numChecks), numChecks: numChecks}
}

// Update records the ratio of check index. Out-of-range indices are ignored
// and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= ps.numChecks {
		return
	}
	ps.progresses[index] = clamp01(value)
}

// CalculateAverage returns the mean ratio across all checks.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numChecks == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numChecks)
}

// ProgressWithETA extends ProgressState with a smoothed rate estimate.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	numChecks    int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // ratio per second, exponentially smoothed
}

// NewProgressWithETA creates an ETA-aware tracker for numChecks checks.
func NewProgressWithETA(numChecks int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numChecks),
		numChecks:     numChecks,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records an update and returns the average ratio and the
// current time estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate).Seconds(); elapsed > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.3*rate + 0.7*p.progressRate
		}
		p.lastProgress = avg
		p.lastUpdate = now
	}
	return avg, p.etaLocked(avg)
}

// GetETA returns the estimate without recording an update.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.CalculateAverage())
}

func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	secs := (1 - avg) / p.progressRate
	eta := time.Duration(secs * float64(time.Second))
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// ProgressBar renders a bar of the given length for a ratio in [0, 1].
func ProgressBar(progress float64, length int) string {
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] pct% ETA: eta".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	progress = clamp01(progress)
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
