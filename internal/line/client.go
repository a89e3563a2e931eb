// Package line sends report texts to the LINE Messaging API through the
// same-origin relay endpoint. Going through the relay keeps provider
// credentials and CORS handling out of the callers.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
)

var (
	ErrMissingCredential  = errors.New("credential is required")
	ErrMissingDestination = errors.New("destination is required")
	ErrEmptyText          = errors.New("message text is required")
)

type Client struct {
	relayURL   string
	httpClient *http.Client
}

var _ contract.Notifier = (*Client)(nil)

func New(relayURL string) *Client {
	return &Client{
		relayURL:   relayURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type relayRequest struct {
	Credential  string `json:"credential"`
	Destination string `json:"destination"`
	Text        string `json:"text"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Send posts the text to the relay, which forwards it to the LINE push API
// as a single message unit. All three inputs must be non-empty; validation
// failures return before any network call. Retry policy lives in the caller.
func (c *Client) Send(ctx context.Context, credential, destination, text string) error {
	if credential == "" {
		return ErrMissingCredential
	}
	if destination == "" {
		return ErrMissingDestination
	}
	if text == "" {
		return ErrEmptyText
	}

	body, err := json.Marshal(relayRequest{
		Credential:  credential,
		Destination: destination,
		Text:        text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach relay: %w", err)
	}
	defer resp.Body.Close()

	var relayResp relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		relayResp = relayResponse{}
	}

	if resp.StatusCode != http.StatusOK || !relayResp.Success {
		if relayResp.Error != "" {
			return fmt.Errorf("relay rejected message: %s", relayResp.Error)
		}
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	return nil
}
