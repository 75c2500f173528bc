package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", Validation("bad input"), 400},
		{"not found", NotFound("no such link"), 404},
		{"conflict", Conflict("slug taken"), 409},
		{"internal", Internal("store failure", errors.New("boom")), 500},
		{"plain error", errors.New("boom"), 500},
		{"wrapped taxonomy error", fmt.Errorf("resolving: %w", NotFound("gone")), 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.expected {
				t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Internal("store failure", errors.New("connection reset"))
	if err.Error() != "store failure: connection reset" {
		t.Errorf("unexpected error string: %q", err.Error())
	}
	if !errors.Is(err, err.Err) {
		t.Error("Unwrap should expose the underlying cause")
	}
}
