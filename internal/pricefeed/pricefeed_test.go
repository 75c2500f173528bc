package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFetchParsesFeedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"solana":{"usd":142.37}}`))
	}))
	defer srv.Close()

	s := New(srv.URL, nil, time.Minute, zap.NewNop())
	price, err := s.fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if price != 142.37 {
		t.Errorf("price = %v, want 142.37", price)
	}
}

func TestFetchRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"upstream error", http.StatusBadGateway, ""},
		{"missing quote", http.StatusOK, `{"solana":{}}`},
		{"zero quote", http.StatusOK, `{"solana":{"usd":0}}`},
		{"not json", http.StatusOK, `<html>rate limited</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := New(srv.URL, nil, time.Minute, zap.NewNop())
			if _, err := s.fetch(context.Background()); err == nil {
				t.Error("expected error")
			}
		})
	}
}
