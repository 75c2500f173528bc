package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is a minimal Solana JSON-RPC client. RPC endpoints drop requests
// under load, so every call retries up to maxRetries times with linear
// backoff before giving up.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewClient(endpoint string, log *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log:        log,
		maxRetries: 3,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warn("rpc request failed", zap.String("method", method), zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("rpc endpoint returned HTTP %d", resp.StatusCode)
			continue
		}

		var rpcResp rpcResponse
		err = json.NewDecoder(resp.Body).Decode(&rpcResp)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if rpcResp.Error != nil {
			// A structured RPC error is a definitive answer, not a transient fault.
			return nil, fmt.Errorf("rpc %s: %s (code %d)", method, rpcResp.Error.Message, rpcResp.Error.Code)
		}
		return rpcResp.Result, nil
	}

	return nil, fmt.Errorf("rpc %s failed after %d attempts: %w", method, c.maxRetries, lastErr)
}

// GetLatestBlockhash fetches the current blockhash. Used as a connectivity
// probe at startup.
func (c *Client) GetLatestBlockhash(ctx context.Context) (string, error) {
	result, err := c.call(ctx, "getLatestBlockhash", []any{map[string]any{"commitment": "confirmed"}})
	if err != nil {
		return "", err
	}

	var parsed struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return "", err
	}
	return parsed.Value.Blockhash, nil
}

// TransactionExists reports whether a confirmed transaction is known for the
// given signature.
func (c *Client) TransactionExists(ctx context.Context, signature string) (bool, error) {
	result, err := c.call(ctx, "getTransaction", []any{
		signature,
		map[string]any{"encoding": "json", "commitment": "confirmed", "maxSupportedTransactionVersion": 0},
	})
	if err != nil {
		return false, err
	}
	return len(result) > 0 && string(result) != "null", nil
}
