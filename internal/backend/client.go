// Package backend implements the REST adapters for the external creation
// services the assistant hands confirmed drafts to. The services are
// simple CRUD endpoints; errors come back with a human-readable message
// that the assistant surfaces verbatim.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client posts JSON payloads to the backend API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// New creates a backend client for the given base URL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) postJSON(ctx context.Context, method, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Prefer the service's own message; it is what the user sees.
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
		return fmt.Errorf("%s", eb.Message)
	}
	c.logger.Warn("backend returned non-success", "path", path, "status", resp.StatusCode)
	return fmt.Errorf("dịch vụ trả về lỗi (mã %d)", resp.StatusCode)
}
