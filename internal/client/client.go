// Package client is a Go SDK for the session-offering API. The editor and
// the offeringctl command are built on it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
)

// APIError is a non-2xx response decoded from the error envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api request failed with status %d", e.StatusCode)
}

// Client calls the session-offering API over HTTP
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

// New creates a client against baseURL, e.g. "http://localhost:8080/api/v1"
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent with authenticated requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope mirrors the API response wrapper
type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

// Login authenticates and stores the returned access token on the client
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token.AccessToken
	return &out, nil
}

// Register creates a new account and stores the returned access token
func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token.AccessToken
	return &out, nil
}

// FetchMyProfile retrieves the authenticated coach's profile with offerings
func (c *Client) FetchMyProfile(ctx context.Context) (*models.CoachProfile, error) {
	var out models.CoachProfile
	if err := c.doWithRetry(ctx, http.MethodGet, "/coaches/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCoaches retrieves a page of the public coach directory
func (c *Client) ListCoaches(ctx context.Context, page, size int) ([]*dto.CoachSummary, error) {
	path := fmt.Sprintf("/coaches?page=%d&size=%d", page, size)
	var out struct {
		Items []*dto.CoachSummary `json:"items"`
	}
	if err := c.doWithRetry(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetCoach retrieves a coach profile with its offerings
func (c *Client) GetCoach(ctx context.Context, coachID int64) (*models.CoachProfile, error) {
	var out models.CoachProfile
	path := fmt.Sprintf("/coaches/%d", coachID)
	if err := c.doWithRetry(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOffering creates a new session offering
func (c *Client) CreateOffering(ctx context.Context, req *dto.OfferingRequest) (*models.SessionOffering, error) {
	var out models.SessionOffering
	if err := c.do(ctx, http.MethodPost, "/sessions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOffering replaces an existing session offering
func (c *Client) UpdateOffering(ctx context.Context, offeringID int64, req *dto.OfferingRequest) (*models.SessionOffering, error) {
	var out models.SessionOffering
	path := fmt.Sprintf("/sessions/%d", offeringID)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOffering removes a session offering
func (c *Client) DeleteOffering(ctx context.Context, offeringID int64) error {
	path := fmt.Sprintf("/sessions/%d", offeringID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// doWithRetry retries idempotent requests on transient failures with a
// capped exponential backoff
func (c *Client) doWithRetry(ctx context.Context, method, path string, body, out interface{}) error {
	const maxAttempts = 3

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.do(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}

		sleep := 500 * time.Millisecond * time.Duration(1<<(attempt-1))
		if sleep > 5*time.Second {
			sleep = 5 * time.Second
		}
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return fmt.Errorf("canceled while retrying: %w", ctx.Err())
		}
	}

	return lastErr
}

func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return nerr.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	// JoinPath escapes the query string, keep it out of the join
	path, query, hasQuery := strings.Cut(path, "?")
	fullURL, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return fmt.Errorf("invalid request path: %w", err)
	}
	if hasQuery {
		fullURL += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = string(env.Error.Code)
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}
