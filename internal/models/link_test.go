package models

import "testing"

func TestIsUUIDRef(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"123E4567-E89B-12D3-A456-426614174000", true},
		{"00000000-0000-0000-0000-000000000000", true},

		// Slug-shaped inputs
		{"joe-tip", false},
		{"my_link_42", false},
		{"", false},

		// Near misses
		{"123e4567-e89b-12d3-a456-42661417400", false},   // short last group
		{"123e4567-e89b-12d3-a456-4266141740000", false}, // long last group
		{"123e4567e89b12d3a456426614174000", false},      // no dashes
		{"123g4567-e89b-12d3-a456-426614174000", false},  // non-hex char
		{" 123e4567-e89b-12d3-a456-426614174000", false}, // leading space
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsUUIDRef(tt.input); got != tt.expected {
				t.Errorf("IsUUIDRef(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"joe-tip", true},
		{"abc", true},
		{"my_link_42", true},
		{"JOE-TIP", true},
		{"ab", false},
		{"", false},
		{"has space", false},
		{"emoji💸", false},
		{"dot.slug", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},   // 50 chars
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 51 chars
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidSlug(tt.input); got != tt.expected {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1.5", true},
		{"0.000001", true},
		{"100", true},
		{"1e2", true},
		{"0", false},
		{"-1", false},
		{"", false},
		{"abc", false},
		{"1.2.3", false},

		// Non-finite values parse as floats but would poison the
		// requested-SOL aggregate once stored.
		{"NaN", false},
		{"nan", false},
		{"Inf", false},
		{"+Inf", false},
		{"-Inf", false},
		{"Infinity", false},
		{"-Infinity", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidAmount(tt.input); got != tt.expected {
				t.Errorf("IsValidAmount(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeSlug(t *testing.T) {
	if got := NormalizeSlug("JOE-TIP"); got != "joe-tip" {
		t.Errorf("NormalizeSlug(JOE-TIP) = %q, want joe-tip", got)
	}
	if got := NormalizeSlug("already-lower"); got != "already-lower" {
		t.Errorf("NormalizeSlug(already-lower) = %q", got)
	}
}
