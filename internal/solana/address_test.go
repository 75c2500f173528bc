package solana

import "testing"

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"system program", "11111111111111111111111111111111", true},
		{"wrapped sol mint", "So11111111111111111111111111111111111111112", true},
		{"token program", "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", true},
		{"empty", "", false},
		{"too short", "abc", false},
		{"31 bytes", "1111111111111111111111111111111", false},
		{"33 bytes", "111111111111111111111111111111111", false},
		{"invalid base58 chars", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl", false},
		{"ethereum address", "0x8ba1f109551bD432803012645Ac136ddd64DBA72", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.input); got != tt.expected {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
