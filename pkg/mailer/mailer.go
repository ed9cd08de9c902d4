// Package mailer sends transactional email through a Resend-style HTTPS JSON API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message. Implemented by Client; fakes in tests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds API credentials and sender identity.
type Config struct {
	APIKey      string
	BaseURL     string // e.g. https://api.resend.com
	FromAddress string
	FromName    string
	Timeout     time.Duration
}

// Client calls the email delivery API over HTTPS.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates an email client with a bounded request timeout.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// Send posts the message to the delivery API. Returns an error on any non-2xx status.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("email API key not configured")
	}
	payload := sendRequest{
		From:    fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromAddress),
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr sendResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("email API status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("email API status %d", resp.StatusCode)
	}

	var ok sendResponse
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(raw, &ok)
	}
	c.logger.Debug("email sent", zap.String("to", msg.To), zap.String("provider_id", ok.ID))
	return nil
}
