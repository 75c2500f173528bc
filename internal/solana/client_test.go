package solana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func rpcServer(t *testing.T, handler func(method string) (string, *rpcError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Fatal is not allowed off the test goroutine.
			t.Errorf("bad rpc request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		result, rpcErr := handler(req.Method)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = json.RawMessage(result)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGetLatestBlockhash(t *testing.T) {
	srv := rpcServer(t, func(method string) (string, *rpcError) {
		if method != "getLatestBlockhash" {
			t.Errorf("unexpected method %q", method)
		}
		return `{"context":{"slot":100},"value":{"blockhash":"EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N","lastValidBlockHeight":3090}}`, nil
	})
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	hash, err := c.GetLatestBlockhash(context.Background())
	if err != nil {
		t.Fatalf("GetLatestBlockhash: %v", err)
	}
	if hash != "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N" {
		t.Errorf("unexpected blockhash %q", hash)
	}
}

func TestTransactionExists(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected bool
	}{
		{"confirmed transaction", `{"slot":1234,"meta":{}}`, true},
		{"unknown signature", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := rpcServer(t, func(string) (string, *rpcError) {
				return tt.result, nil
			})
			defer srv.Close()

			c := NewClient(srv.URL, zap.NewNop())
			exists, err := c.TransactionExists(context.Background(), "sig")
			if err != nil {
				t.Fatalf("TransactionExists: %v", err)
			}
			if exists != tt.expected {
				t.Errorf("exists = %v, want %v", exists, tt.expected)
			}
		})
	}
}

func TestRPCErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := rpcServer(t, func(string) (string, *rpcError) {
		calls++
		return "", &rpcError{Code: -32602, Message: "invalid params"}
	})
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	if _, err := c.TransactionExists(context.Background(), "sig"); err == nil {
		t.Fatal("expected error for rpc fault")
	}
	if calls != 1 {
		t.Errorf("structured rpc error retried %d times, want a single call", calls)
	}
}
