package numberutils

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{6.3, 2, 6.3},
		{2299.4999999, 2, 2299.5},
		{1.005, 1, 1.0},
		{12.645, 0, 13},
		{-2.556, 2, -2.56},
	}
	for _, tt := range tests {
		if got := Round(tt.in, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("NaN and Inf must not be finite")
	}
	if !IsFinite(0) || !IsFinite(-3.5) {
		t.Error("ordinary values must be finite")
	}
}

func TestToFloatWithDefault(t *testing.T) {
	if v, err := ToFloatWithDefault("", 10); err != nil || v != 10 {
		t.Errorf("blank: got %v, %v", v, err)
	}
	if v, err := ToFloatWithDefault(" 0.2 ", 0.18); err != nil || v != 0.2 {
		t.Errorf("spaced: got %v, %v", v, err)
	}
	if _, err := ToFloatWithDefault("ten", 10); err == nil {
		t.Error("expected parse error")
	}
}
