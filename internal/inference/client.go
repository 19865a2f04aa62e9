package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrRateLimited marks an HTTP 429 from the completion endpoint so
// callers can distinguish a quota stall from a terminal failure.
var ErrRateLimited = errors.New("inference: rate limited")

const defaultBaseURL = "https://api.openai.com/v1"

// Client performs chat-completion requests against an
// OpenAI-compatible API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates an inference client. An empty baseURL falls back
// to the public OpenAI endpoint.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends a single user prompt to the given model and returns
// the raw completion text. HTTP 429 surfaces as ErrRateLimited.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("inference: api key is empty")
	}

	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("inference: marshal request: %w", err)
	}

	respBody, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	var completion chatResponse
	if err = json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("inference: decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("inference: completion has no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ListModels queries the models the endpoint can serve.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference: do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inference: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiError(resp.StatusCode, respBody)
	}

	var listing modelsResponse
	if err = json.Unmarshal(respBody, &listing); err != nil {
		return nil, fmt.Errorf("inference: decode models: %w", err)
	}

	ids := make([]string, 0, len(listing.Data))
	for _, m := range listing.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference: do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inference: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

func apiError(status int, body []byte) error {
	if status == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("inference: %s", apiErr.Error.Message)
	}
	return fmt.Errorf("inference: unexpected status %d", status)
}
