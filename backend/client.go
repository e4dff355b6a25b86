package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/sjson"

	"github.com/tradelingo/superbear/logger"
)

// Client is the interface the chat engine talks to. Implementations must
// return an error for any non-2xx status or transport failure.
type Client interface {
	Send(ctx context.Context, path string, req *Request) (*Payload, error)
}

// HTTPClient talks to a TradeLingo backend over HTTP.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates an HTTP client for the given base URL. The token is
// optional; when set it is sent as a bearer token.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts the request envelope to the given API path and decodes the
// structured payload.
func (c *HTTPClient) Send(ctx context.Context, path string, req *Request) (*Payload, error) {
	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	// trade_data is only part of the envelope when the user attached a trade.
	if req.Trade != nil {
		body, err = sjson.SetBytes(body, "trade_data", req.Trade)
		if err != nil {
			return nil, fmt.Errorf("failed to attach trade data: %w", err)
		}
	}

	logger.Info("backend request",
		"path", path,
		"sessionID", req.SessionID,
		"inputChars", len(req.Message),
		"hasTrade", req.Trade != nil,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("backend request send error", "path", path, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		logger.Error("backend response read error", "path", path, "err", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		logger.Error("backend status error", "path", path, "status", httpResp.StatusCode)
		return nil, fmt.Errorf("backend returned status %d", httpResp.StatusCode)
	}

	var payload Payload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		logger.Error("backend response parse error", "path", path, "err", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	payload.Raw = respBody

	logger.Info("backend response",
		"path", path,
		"type", payload.Type,
		"outputChars", len(respBody),
		"latencyMs", time.Since(start).Milliseconds(),
	)
	return &payload, nil
}

// Health checks the backend health endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer httpResp.Body.Close()
	_, _ = io.Copy(io.Discard, httpResp.Body)

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d", httpResp.StatusCode)
	}
	return nil
}
