package tui

import (
	"slices"
	"testing"
)

func TestHistory_PushAndValues(t *testing.T) {
	h := NewHistory(3)
	if h.Values() != nil || h.Last() != 0 {
		t.Error("empty history should have no values and Last 0")
	}
	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}
	if got := h.Values(); !slices.Equal(got, []float64{2, 3, 4}) {
		t.Errorf("Values() = %v, want [2 3 4]", got)
	}
	if h.Last() != 4 || h.Len() != 3 {
		t.Errorf("Last/Len = %v/%d, want 4/3", h.Last(), h.Len())
	}
}

func TestHistory_ValuesIsACopy(t *testing.T) {
	h := NewHistory(2)
	h.Push(1)
	v := h.Values()
	v[0] = 99
	if h.Last() != 1 {
		t.Error("mutating Values() changed the history")
	}
}

func TestHistory_SetLimit(t *testing.T) {
	h := NewHistory(5)
	for i := range 5 {
		h.Push(float64(i))
	}
	h.SetLimit(2)
	if got := h.Values(); !slices.Equal(got, []float64{3, 4}) {
		t.Errorf("after shrink Values() = %v, want [3 4]", got)
	}
	h.SetLimit(4)
	h.Push(5)
	h.Push(6)
	if got := h.Values(); !slices.Equal(got, []float64{3, 4, 5, 6}) {
		t.Errorf("after grow Values() = %v, want [3 4 5 6]", got)
	}
	h.SetLimit(0)
	if h.Len() != 1 || h.Last() != 6 {
		t.Errorf("limit 0 should keep one sample, got %v", h.Values())
	}
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory(3)
	h.Push(1)
	h.Reset()
	if h.Len() != 0 || h.Values() != nil {
		t.Error("Reset should clear all samples")
	}
}

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"bounds", []float64{0, 100}, "▁█"},
		{"gradient", []float64{0, 15, 29, 43, 58, 72, 86, 100}, "▁▂▃▄▅▆▇█"},
		{"clamped", []float64{-20, 250}, "▁█"},
		{"mid", []float64{50}, "▄"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderSparkline(tt.values); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
