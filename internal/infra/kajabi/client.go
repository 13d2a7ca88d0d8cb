package kajabi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"membership_deactivation_bot/internal/domain/membership"
)

const defaultRequestTimeout = 30 * time.Second

// Client calls the Kajabi offer deactivation webhook. It implements the
// entitlement.Client interface.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// deactivationPayload is the webhook's expected body. Kajabi identifies the
// member by external_user_id, which the shop keys by email.
type deactivationPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ExternalUserID string `json:"external_user_id"`
}

// Deactivate posts one deactivation request for the candidate. Transport
// errors and non-2xx responses are returned as errors; the caller decides how
// to surface them.
func (c *Client) Deactivate(ctx context.Context, candidate membership.Candidate) error {
	body, err := json.Marshal(deactivationPayload{
		Name:           candidate.Name,
		Email:          candidate.Email,
		ExternalUserID: candidate.Email,
	})
	if err != nil {
		return fmt.Errorf("error encoding deactivation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error building deactivation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deactivation request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("deactivation webhook returned status %d", resp.StatusCode)
	}
	return nil
}
