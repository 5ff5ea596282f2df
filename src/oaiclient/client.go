// Package oaiclient is a client for OpenAI-compatible chat completion and
// audio transcription endpoints.
package oaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tdnguyen/aureus/src/aisdk"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 60 * time.Second
)

// Config holds the client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	RetryCount int
	RetryDelay time.Duration
	Timeout    time.Duration
	// Optional logger
	Logger *slog.Logger
}

// Client is the chat API client.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.RetryCount == 0 {
		config.RetryCount = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = time.Second
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "oai_client")

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}
}

// createChatCompletion sends a chat completion request (internal method).
func (c *Client) createChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	logger := c.logger.With("method", "CreateChatCompletion", "model", req.Model)
	logger.Debug("sending chat completion request", "messages", len(req.Messages), "tools", len(req.Tools))

	body, err := json.Marshal(req)
	if err != nil {
		logger.Error("failed to marshal request", "error", err)
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/chat/completions", body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(httpReq)
	if err != nil {
		logger.Error("request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("received error response", "status_code", resp.StatusCode)
		return nil, c.handleError(resp)
	}

	var result aisdk.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("failed to decode response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	logger.Info("chat completion successful", "usage_total", result.Usage.TotalTokens)
	return &result, nil
}

// newRequest creates a new HTTP request with the appropriate headers.
func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	url := c.config.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	return req, nil
}

// doRequestWithRetry performs an HTTP request, retrying server errors with a
// linear backoff. Client errors (4xx) are returned immediately.
func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	var lastErr error

	logger := c.logger.With("method", "doRequestWithRetry", "url", req.URL.String())

	for i := 0; i < c.config.RetryCount; i++ {
		reqCopy := req.Clone(req.Context())
		if req.Body != nil {
			bodyBytes, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to read request body: %w", err)
			}
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			reqCopy.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		resp, err := c.httpClient.Do(reqCopy)
		if err != nil {
			lastErr = err
			logger.Debug("request attempt failed", "attempt", i+1, "error", err)
			time.Sleep(c.config.RetryDelay * time.Duration(i+1))
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		logger.Debug("server error, retrying", "attempt", i+1, "status_code", resp.StatusCode)
		time.Sleep(c.config.RetryDelay * time.Duration(i+1))
	}

	logger.Error("request failed after all retries", "retry_count", c.config.RetryCount, "error", lastErr)
	return nil, fmt.Errorf("request failed after %d retries: %w", c.config.RetryCount, lastErr)
}

// handleError processes error responses from the API.
func (c *Client) handleError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read error response: %w", err)
	}

	var errResp aisdk.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			RequestID:  resp.Header.Get("X-Request-ID"),
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Type:       errResp.Error.Type,
		Message:    errResp.Error.Message,
		Code:       errResp.Error.Code,
		Param:      errResp.Error.Param,
		RequestID:  resp.Header.Get("X-Request-ID"),
	}
}
