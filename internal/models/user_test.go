package models

import "testing"

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"alice", true},
		{"bob_99", true},
		{"ABC", true},
		{"a_b", true},
		{"ab", false},
		{"", false},
		{"this_name_is_way_too_long_for_us", false},
		{"has-dash", false},
		{"has space", false},
		{"dot.name", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidUsername(tt.input); got != tt.expected {
				t.Errorf("IsValidUsername(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSelfReferral(t *testing.T) {
	tests := []struct {
		username string
		referrer string
		expected bool
	}{
		{"alice", "alice", true},
		{"alice", "ALICE", true},
		{"Alice", "aLiCe", true},
		{"alice", "bob", false},
		{"alice", "alice_", false},
	}

	for _, tt := range tests {
		t.Run(tt.username+"/"+tt.referrer, func(t *testing.T) {
			if got := IsSelfReferral(tt.username, tt.referrer); got != tt.expected {
				t.Errorf("IsSelfReferral(%q, %q) = %v, want %v", tt.username, tt.referrer, got, tt.expected)
			}
		})
	}
}
