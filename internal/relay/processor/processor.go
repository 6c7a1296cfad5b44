package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"reception-server/internal/observability"
)

var (
	ErrWebhookNotConfigured = errors.New("automation webhook is not configured")
	ErrForwardFailed        = errors.New("failed to forward message")
)

// RelayProcessor forwards free-text chat messages to the external
// automation webhook. One attempt per message, no queuing.
type RelayProcessor struct {
	webhookURL string
	httpClient *http.Client
	logger     *observability.Logger
}

func New(webhookURL string, logger *observability.Logger) *RelayProcessor {
	return &RelayProcessor{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// ForwardMessage posts {"message": …} to the automation webhook and treats
// any 2xx response as delivered.
func (p *RelayProcessor) ForwardMessage(ctx context.Context, message string) error {
	if p.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error(ctx, "webhook request failed", err)
		return fmt.Errorf("%w: %v", ErrForwardFailed, err)
	}
	defer resp.Body.Close()

	// Drain a bounded amount so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 10240))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: received status %d", ErrForwardFailed, resp.StatusCode)
	}

	p.logger.Info(ctx, "message forwarded to automation webhook")
	return nil
}
