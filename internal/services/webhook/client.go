package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	appErrors "relay/internal/errors"
)

const userAgent = "Tenant-Notification-Relay/1.0"

// maxErrorBody bounds how much of a rejected response is kept for the error.
const maxErrorBody = 512

// Forwarder delivers notification documents to the downstream webhook.
type Forwarder interface {
	Forward(ctx context.Context, requestID string, payload interface{}) error
}

type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient posts to url. A zero timeout leaves the request bounded only by
// ctx and the transport defaults.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) URL() string {
	return c.url
}

// Forward POSTs payload as JSON and fails on transport errors and on any
// response outside 2xx. Nothing is retried.
func (c *Client) Forward(ctx context.Context, requestID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrWebhookUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", appErrors.ErrWebhookRejected, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Printf("Webhook accepted notification (status %d, request %s)", resp.StatusCode, requestID)
	return nil
}
