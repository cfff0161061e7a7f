package attachment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Client talks to the attachment service, which owns storage, scanning and
// moderation of uploaded files. The core only joins attachment references
// into message views.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Attachment.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Attachment.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) ListAttachments(ctx context.Context, messageID string) ([]model.Attachment, error) {
	url := fmt.Sprintf("%s/api/attachments?message_id=%s", c.baseURL, messageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var attachments []model.Attachment
	if err := json.NewDecoder(resp.Body).Decode(&attachments); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return attachments, nil
}
