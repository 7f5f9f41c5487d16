package webhookpublisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// Publisher implements secondary.TaskEventPublisher by POSTing events as JSON.
type Publisher struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewPublisher creates a webhook publisher targeting url.
func NewPublisher(url string, logger *zap.Logger) secondary.TaskEventPublisher {
	client := &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logger.Info("webhook publisher initialized",
		zap.String("url", url),
		zap.Duration("timeout", client.Timeout),
	)

	return &Publisher{
		url:    url,
		client: client,
		logger: logger.Named("webhook-publisher"),
	}
}

// Publish sends the event to the webhook URL.
func (p *Publisher) Publish(ctx context.Context, event entity.TaskEvent) error {
	if p.url == "" {
		return fmt.Errorf("webhook URL is required for event delivery")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling task event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", string(event.Type))
	req.Header.Set("User-Agent", "taskkeeper/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing http request to %q: %w", p.url, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	p.logger.Debug("event delivered via webhook",
		zap.String("url", p.url),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_size", len(body)),
	)

	return nil
}

// Close releases idle connections.
func (p *Publisher) Close() error {
	if p.client != nil {
		p.client.CloseIdleConnections()
	}
	return nil
}
