// Package mailer is an HTTP client for a transactional mail API,
// used as the notification provider for reminder digests.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is a transactional mail API client
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new mail API client
func New(baseURL, apiKey, from string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an error returned by the mail API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mail API error: %s (status: %d)", e.Message, e.StatusCode)
}

// SendInput represents one outbound message
type SendInput struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send dispatches one plain-text message
func (c *Client) Send(ctx context.Context, in SendInput) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      in.To,
		Subject: in.Subject,
		Text:    in.Text,
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = string(data)
		}
		return apiErr
	}

	return nil
}
