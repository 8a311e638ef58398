package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitcommitai/internal/debug"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type MessagesResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      Usage          `json:"usage"`
}

type errorResponse struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnthropicClient talks to the Anthropic Messages API.
type AnthropicClient struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewAnthropicClient(apiKey, baseURL string) *AnthropicClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &AnthropicClient{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		// No client timeout; the request is bound to the caller's context.
		client: &http.Client{},
	}
}

// SetClient replaces the HTTP client, e.g. to install a proxy-aware transport.
func (c *AnthropicClient) SetClient(client *http.Client) {
	c.client = client
}

func BuildMessagesRequest(model, systemPrompt, userContent string, maxTokens int) MessagesRequest {
	return MessagesRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: userContent},
		},
	}
}

// CreateMessage sends one request. Transport and HTTP failures come back as
// *APIError; a cancelled context is returned as the context's error.
func (c *AnthropicClient) CreateMessage(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.BaseURL + messagesPath
	log := debug.Log()
	log.Debug().
		Str("url", url).
		Str("model", req.Model).
		Int("max_tokens", req.MaxTokens).
		Int("body_bytes", len(reqBody)).
		Msg("sending messages request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("anthropic-version", AnthropicVersion)
	httpReq.Header.Set("User-Agent", "git-commit-ai/1.0")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	log.Debug().Dur("elapsed", time.Since(start)).Msg("request finished")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &APIError{Type: "connection_error", Message: "Connection error.", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Type: "connection_error", Message: "failed to read response", Err: err}
	}

	log.Debug().Int("status", resp.StatusCode).Str("body", string(body)).Msg("response received")

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp, body)
	}

	var msgResp MessagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &msgResp, nil
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("retry-after"), time.Now()),
	}

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		apiErr.Type = er.Error.Type
		apiErr.Message = er.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}

	return apiErr
}
