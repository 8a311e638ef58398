// Package generator turns a staged diff into a commit message with a single
// Messages API call.
package generator

import (
	"context"
	"errors"
	"strings"

	"gitcommitai/internal/apperr"
	"gitcommitai/internal/debug"
	"gitcommitai/internal/llm"
	"gitcommitai/internal/prompt"
)

// Completer is the part of the API client the generator needs.
type Completer interface {
	CreateMessage(ctx context.Context, req llm.MessagesRequest) (*llm.MessagesResponse, error)
}

type Settings struct {
	APIKey       string
	Model        string
	MaxTokens    int
	MaxDiffLines int
}

type Request struct {
	Diff    string
	Style   prompt.Style
	Context string
}

// Result is a parsed commit message. Body is empty when the message is a
// single line.
type Result struct {
	Message string
	Subject string
	Body    string
}

type Generator struct {
	client   Completer
	settings Settings
}

func New(client Completer, settings Settings) *Generator {
	if settings.Model == "" {
		settings.Model = llm.DefaultModel
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = llm.DefaultMaxTokens
	}
	if settings.MaxDiffLines <= 0 {
		settings.MaxDiffLines = prompt.DefaultMaxDiffLines
	}
	return &Generator{client: client, settings: settings}
}

// Generate performs exactly one API round trip. It never retries; a rate
// limit comes back as apperr.KindRateLimited for the caller to act on.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if g.settings.APIKey == "" {
		return Result{}, apperr.MissingAPIKey()
	}

	diff := prompt.TruncateDiff(req.Diff, g.settings.MaxDiffLines)
	msgReq := llm.BuildMessagesRequest(
		g.settings.Model,
		prompt.SystemPrompt(req.Style),
		prompt.UserPrompt(diff, req.Context),
		g.settings.MaxTokens,
	)

	debug.Log().Debug().
		Str("style", string(req.Style)).
		Int("diff_bytes", len(req.Diff)).
		Int("sent_bytes", len(diff)).
		Msg("generating commit message")

	resp, err := g.client.CreateMessage(ctx, msgReq)
	if err != nil {
		return Result{}, mapError(err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Type != llm.ContentTypeText {
		return Result{}, apperr.UnexpectedResponse("Unexpected response type from Claude API")
	}

	result := ParseMessage(resp.Content[0].Text)
	if result.Message == "" {
		return Result{}, apperr.UnexpectedResponse("Claude API returned an empty commit message. Please try again.")
	}
	return result, nil
}

// ParseMessage trims raw and splits it at the first line break into subject
// and body.
func ParseMessage(raw string) Result {
	message := strings.TrimSpace(raw)
	subject, rest, found := strings.Cut(message, "\n")

	result := Result{
		Message: message,
		Subject: strings.TrimRight(subject, "\r"),
	}
	if found {
		result.Body = strings.TrimSpace(rest)
	}
	return result
}

func mapError(err error) error {
	var apiErr *llm.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.IsRateLimit() {
		return apperr.RateLimited(apiErr.StatusCode, apiErr.RetryAfter, err)
	}
	return apperr.AIError("Claude API error: "+apiErr.Message, apiErr.StatusCode, err)
}
