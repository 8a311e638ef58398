// Package apperr defines the error kinds the CLI reports to the user.
// Error() returns only the user-facing message; the underlying cause is
// available through Unwrap for debug output.
package apperr

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindNotARepo           Kind = "not-a-repo"
	KindNoStagedChanges    Kind = "no-staged-changes"
	KindGitFailure         Kind = "git-failure"
	KindMissingAPIKey      Kind = "missing-api-key"
	KindRateLimited        Kind = "rate-limited"
	KindAIError            Kind = "ai-error"
	KindUnexpectedResponse Kind = "unexpected-response"
	KindConfig             Kind = "config-error"
)

type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status reported by the provider, 0 when unknown.
	Status int
	// RetryAfter is the provider's retry hint, 0 when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func NotARepo(cause error) error {
	return &Error{
		Kind:    KindNotARepo,
		Message: "Not a git repository. Run this command from within a git repository.",
		Err:     cause,
	}
}

func NoStagedChanges() error {
	return &Error{
		Kind:    KindNoStagedChanges,
		Message: "No staged changes found. Stage your changes with 'git add' first.",
	}
}

func GitFailure(args []string, output string, cause error) error {
	msg := fmt.Sprintf("Git command failed: git %s", strings.Join(args, " "))
	if output != "" {
		msg += "\n" + output
	}
	return &Error{Kind: KindGitFailure, Message: msg, Err: cause}
}

func MissingAPIKey() error {
	return &Error{
		Kind: KindMissingAPIKey,
		Message: "ANTHROPIC_API_KEY environment variable is not set.\n" +
			"Get your API key at: https://console.anthropic.com/\n" +
			"Then set it: export ANTHROPIC_API_KEY=your-key",
	}
}

// RateLimited reports a rate limit. status is the HTTP status the provider
// answered with, 0 when unknown.
func RateLimited(status int, retryAfter time.Duration, cause error) error {
	msg := "Rate limited by API."
	if retryAfter > 0 {
		msg += fmt.Sprintf(" Retry after %d seconds.", int(retryAfter.Round(time.Second)/time.Second))
	} else {
		msg += " Please try again later."
	}
	return &Error{
		Kind:       KindRateLimited,
		Message:    msg,
		Status:     status,
		RetryAfter: retryAfter,
		Err:        cause,
	}
}

func AIError(message string, status int, cause error) error {
	return &Error{Kind: KindAIError, Message: message, Status: status, Err: cause}
}

func UnexpectedResponse(message string) error {
	return &Error{Kind: KindUnexpectedResponse, Message: message}
}

func Config(format string, args ...any) error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}
