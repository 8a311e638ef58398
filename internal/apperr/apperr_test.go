package apperr

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestError_returnsMessageOnly(t *testing.T) {
	t.Parallel()
	cause := errors.New("exit status 128")
	err := NotARepo(cause)
	want := "Not a git repository. Run this command from within a git repository."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) should be true")
	}
}

func TestKindOf_throughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("reading diff: %w", NoStagedChanges())
	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("KindOf: want ok")
	}
	if kind != KindNoStagedChanges {
		t.Errorf("kind = %q, want %q", kind, KindNoStagedChanges)
	}
	if !Is(err, KindNoStagedChanges) {
		t.Error("Is(err, KindNoStagedChanges) = false")
	}
	if Is(err, KindGitFailure) {
		t.Error("Is(err, KindGitFailure) = true")
	}
}

func TestKindOf_plainError(t *testing.T) {
	t.Parallel()
	if _, ok := KindOf(errors.New("boom")); ok {
		t.Error("KindOf(plain error): want !ok")
	}
}

func TestRateLimited_message(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		after time.Duration
		want  string
	}{
		{"with_hint", 30 * time.Second, "Rate limited by API. Retry after 30 seconds."},
		{"without_hint", 0, "Rate limited by API. Please try again later."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := RateLimited(429, tt.after, nil)
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatal("errors.As to *Error failed")
			}
			if e.Status != 429 {
				t.Errorf("Status = %d, want 429", e.Status)
			}
			if e.RetryAfter != tt.after {
				t.Errorf("RetryAfter = %v, want %v", e.RetryAfter, tt.after)
			}
		})
	}
}

func TestGitFailure_includesCommandAndOutput(t *testing.T) {
	t.Parallel()
	err := GitFailure([]string{"commit", "-m", "x"}, "nothing to commit", nil)
	want := "Git command failed: git commit -m x\nnothing to commit"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_nilReceiver(t *testing.T) {
	t.Parallel()
	var e *Error
	if e.Error() != "" {
		t.Errorf("nil Error() = %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Error("nil Unwrap() should be nil")
	}
}
