package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/drawdeck-dev/drawdeck/shared/api"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

// fallbackMessage is used when the server's error body can't be decoded.
const fallbackMessage = "Request failed"

// APIClient handles all communication with the backend API. The bearer
// token is attached automatically once set; safe for concurrent use.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a new client for interacting with the backend.
// baseURL is the one external configuration value the client needs.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ClearToken drops the stored token. Called when the server rejects it:
// a stale token is unrecoverable locally and the user must log in again.
func (c *APIClient) ClearToken() {
	c.SetToken("")
}

var errNotAuthorized = &internal_errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusUnauthorized}

// do is the single, unified helper for making API requests.
func (c *APIClient) do(method, path string, body any, needAuth bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if needAuth {
		token := c.Token()
		if token == "" {
			return nil, errNotAuthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// decodeOrError decodes a success body into out, or turns a non-2xx
// response into an error carrying the server's message.
func (c *APIClient) decodeOrError(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}

func (c *APIClient) errorFromResponse(resp *http.Response) error {
	var body api.ErrorResponse
	message := fallbackMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: resp.StatusCode}
}

// Ping checks backend connectivity.
func (c *APIClient) Ping() error {
	resp, err := c.do("GET", "/ping", nil, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return nil
}
