package novaposhta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TransportError represents an HTTP-level failure talking to the carrier.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e TransportError) Error() string {
	return fmt.Sprintf("nova poshta http error: status %d", e.StatusCode)
}

// APIError represents a response the carrier delivered but marked unsuccessful.
type APIError struct {
	Method   string
	Messages []string
}

func (e APIError) Error() string {
	return fmt.Sprintf("nova poshta api error: %s", strings.Join(e.Messages, "; "))
}

// Item carries the address fields the shop reads from carrier payloads.
// The upstream objects hold dozens of other fields; they are ignored.
type Item struct {
	Ref                       string `json:"Ref"`
	Description               string `json:"Description"`
	SettlementTypeDescription string `json:"SettlementTypeDescription,omitempty"`
}

// Response mirrors the carrier's JSON response envelope.
type Response struct {
	Success  bool     `json:"success"`
	Data     []Item   `json:"data"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// request is the carrier's JSON request envelope for the Address model.
type request struct {
	APIKey           string            `json:"apiKey"`
	ModelName        string            `json:"modelName"`
	CalledMethod     string            `json:"calledMethod"`
	MethodProperties map[string]string `json:"methodProperties"`
}

// Client exposes operations against the carrier address API.
type Client interface {
	Call(ctx context.Context, method string, props map[string]string) (*Response, error)
}

// HTTPClient implements Client via the carrier's JSON API.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a carrier client with default timeout.
func NewHTTPClient(endpoint, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse nova poshta url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("nova poshta url must be absolute")
	}
	return &HTTPClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Call performs a single Address-model request. One attempt, no retries.
func (c *HTTPClient) Call(ctx context.Context, method string, props map[string]string) (*Response, error) {
	payload, err := json.Marshal(request{
		APIKey:           c.apiKey,
		ModelName:        "Address",
		CalledMethod:     method,
		MethodProperties: props,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("nova poshta request failed", slog.String("method", method), slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("nova poshta http error", slog.String("method", method), slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data Response
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("nova poshta response decode failed", slog.String("method", method), slog.String("error", err.Error()))
		return nil, err
	}

	if !data.Success {
		messages := data.Errors
		if len(messages) == 0 {
			messages = []string{"Unknown API Error"}
		}
		c.logger.Error("nova poshta api error", slog.String("method", method), slog.String("errors", strings.Join(messages, "; ")))
		return nil, APIError{Method: method, Messages: messages}
	}

	return &data, nil
}
