package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewAnthropicClient_normalizesBaseURL(t *testing.T) {
	t.Parallel()
	c := NewAnthropicClient("k", "http://localhost:8080/")
	if c.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want no trailing slash", c.BaseURL)
	}
	if d := NewAnthropicClient("k", ""); d.BaseURL != DefaultBaseURL {
		t.Errorf("default BaseURL = %q", d.BaseURL)
	}
}

func TestCreateMessage_sendsRequestAndDecodes(t *testing.T) {
	t.Parallel()
	var got MessagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/messages" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != AnthropicVersion {
			t.Errorf("anthropic-version = %q", r.Header.Get("anthropic-version"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","content":[{"type":"text","text":"feat: add x"}],"stop_reason":"end_turn"}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("secret", srv.URL)
	req := BuildMessagesRequest("claude-test", "sys", "user text", 300)
	resp, err := c.CreateMessage(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if got.Model != "claude-test" || got.MaxTokens != 300 || got.System != "sys" {
		t.Errorf("request fields = %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != RoleUser || got.Messages[0].Content != "user text" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if len(resp.Content) != 1 || resp.Content[0].Type != ContentTypeText || resp.Content[0].Text != "feat: add x" {
		t.Errorf("content = %+v", resp.Content)
	}
}

func TestCreateMessage_errorResponses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		status        int
		retryAfter    string
		body          string
		wantType      string
		wantMessage   string
		wantRateLimit bool
		wantRetry     time.Duration
	}{
		{
			name:          "rate_limited_with_retry_after",
			status:        http.StatusTooManyRequests,
			retryAfter:    "20",
			body:          `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`,
			wantType:      "rate_limit_error",
			wantMessage:   "slow down",
			wantRateLimit: true,
			wantRetry:     20 * time.Second,
		},
		{
			name:        "overloaded",
			status:      529,
			body:        `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
			wantType:    "overloaded_error",
			wantMessage: "Overloaded",
		},
		{
			name:        "non_json_body",
			status:      http.StatusBadGateway,
			body:        "upstream down",
			wantMessage: "upstream down",
		},
		{
			name:        "empty_body",
			status:      http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("retry-after", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewAnthropicClient("k", srv.URL)
			_, err := c.CreateMessage(context.Background(), BuildMessagesRequest("m", "s", "u", 10))
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", apiErr.Type, tt.wantType)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.IsRateLimit() != tt.wantRateLimit {
				t.Errorf("IsRateLimit = %v, want %v", apiErr.IsRateLimit(), tt.wantRateLimit)
			}
			if apiErr.RetryAfter != tt.wantRetry {
				t.Errorf("RetryAfter = %v, want %v", apiErr.RetryAfter, tt.wantRetry)
			}
		})
	}
}

func TestCreateMessage_connectionFailure(t *testing.T) {
	t.Parallel()
	dialErr := errors.New("dial tcp: connection refused")
	c := NewAnthropicClient("k", "http://api.invalid")
	c.SetClient(&http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, dialErr
	})})

	_, err := c.CreateMessage(context.Background(), BuildMessagesRequest("m", "s", "u", 10))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 0 || apiErr.Type != "connection_error" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if !errors.Is(err, dialErr) {
		t.Error("connection error should wrap the transport error")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestCreateMessage_cancelledContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewAnthropicClient("k", srv.URL)
	_, err := c.CreateMessage(ctx, BuildMessagesRequest("m", "s", "u", 10))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("cancelled context should not be reported as an APIError")
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"15", 15 * time.Second},
		{"1.5", 1500 * time.Millisecond},
		{"-3", 0},
		{"soon", 0},
		{now.Add(45 * time.Second).Format(http.TimeFormat), 45 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.in, now); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
