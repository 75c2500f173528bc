package models

import "testing"

func TestIsValidAllocation(t *testing.T) {
	tests := []struct {
		pct      float64
		expected bool
	}{
		{0.25, true},
		{0.5, true},
		{1, true},
		{0, false},
		{0.75, false},
		{2, false},
		{-0.25, false},
	}

	for _, tt := range tests {
		if got := IsValidAllocation(tt.pct); got != tt.expected {
			t.Errorf("IsValidAllocation(%v) = %v, want %v", tt.pct, got, tt.expected)
		}
	}
}
