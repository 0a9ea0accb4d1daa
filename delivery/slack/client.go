// Package slack posts payloads to Slack-compatible incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/message"
)

const (
	userAgent       = "release-notify/1.0"
	maxBodyBytes    = 2048
	defaultTimeout  = 30 * time.Second
	contentTypeJSON = "application/json"
)

// ErrMissingURL is returned when no webhook URL could be resolved.
var ErrMissingURL = errors.New("webhook url is not set")

// Client implements delivery.Sender over HTTP
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a webhook client. The HTTP client timeout is a backstop;
// the notifier applies the delivery timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send POSTs payload as JSON to webhookURL. Any non-2xx answer is an error.
func (c *Client) Send(ctx context.Context, webhookURL string, payload message.Payload) (delivery.Result, error) {
	if strings.TrimSpace(webhookURL) == "" {
		return delivery.Result{}, ErrMissingURL
	}

	data, err := payload.Bytes()
	if err != nil {
		return delivery.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(data))
	if err != nil {
		return delivery.Result{}, fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return delivery.Result{}, fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_, _ = io.Copy(io.Discard, resp.Body)

	result := delivery.Result{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("webhook returned %d: %s", resp.StatusCode, result.Body)
	}
	return result, nil
}
