package tui

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps at most limit samples, oldest first.
type History struct {
	samples []float64
	limit   int
}

// NewHistory creates a history of at most limit samples (at least one).
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 1)}
}

// Push appends a sample, dropping the oldest one when full.
func (h *History) Push(v float64) {
	h.samples = append(h.samples, v)
	if over := len(h.samples) - h.limit; over > 0 {
		h.samples = append(h.samples[:0], h.samples[over:]...)
	}
}

// Len returns the number of samples held.
func (h *History) Len() int { return len(h.samples) }

// Last returns the most recent sample, or 0 if empty.
func (h *History) Last() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

// Values returns a copy of the samples, oldest first.
func (h *History) Values() []float64 {
	if len(h.samples) == 0 {
		return nil
	}
	return append([]float64(nil), h.samples...)
}

// SetLimit changes the capacity, keeping the most recent samples that fit.
func (h *History) SetLimit(limit int) {
	h.limit = max(limit, 1)
	if over := len(h.samples) - h.limit; over > 0 {
		h.samples = append(h.samples[:0], h.samples[over:]...)
	}
}

// Reset clears all samples.
func (h *History) Reset() { h.samples = h.samples[:0] }

// RenderSparkline renders percentages (0..100) as block elements. Values
// outside the range are clamped.
func RenderSparkline(values []float64) string {
	runes := make([]rune, len(values))
	for i, v := range values {
		level := int(min(max(v, 0), 100) / 100 * 7)
		runes[i] = sparklineChars[level]
	}
	return string(runes)
}
