// Package notify talks to the legacy notification service that tracks
// user registrations. Calls carry an explicit timeout and are never
// retried; user creation must not block on this collaborator.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kodeksa-backend/pkg/logger"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// IsConfigured reports whether a base URL was supplied. An unconfigured
// client is a valid no-op collaborator.
func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != ""
}

// NotifyUserCreation tells the legacy service a user was registered.
func (c *Client) NotifyUserCreation(ctx context.Context, userID string) error {
	body, _ := json.Marshal(map[string]string{"userId": userID})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/notifications/user-created", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Error("user creation notification failed", "user_id", userID, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("notify: unexpected status %d", resp.StatusCode)
		logger.Log.Error("user creation notification rejected", "user_id", userID, "status", resp.StatusCode)
		return err
	}

	logger.Log.Info("user creation notification sent", "user_id", userID)
	return nil
}

// VerificationResult is the legacy service's opinion of an email address.
type VerificationResult struct {
	IsValid bool `json:"isValid"`
	Score   int  `json:"score"`
}

// VerifyUserInfo asks the legacy service to score an email address.
// On any failure it degrades to a permissive default instead of
// propagating the error.
func (c *Client) VerifyUserInfo(ctx context.Context, email string) VerificationResult {
	fallback := VerificationResult{IsValid: true, Score: 50}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/verify-user?email="+url.QueryEscape(email), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Error("user verification failed", "email", email, "error", err)
		return fallback
	}
	defer resp.Body.Close()

	var result VerificationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Error("user verification returned malformed body", "email", email, "error", err)
		return fallback
	}
	return result
}
