package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_streams(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	l := New(&out, &errOut)

	l.Info("using conventional style")
	l.Step("reading staged diff")
	l.Success("done")
	l.Warn("dry run")
	l.Error("boom")

	for _, want := range []string{"ℹ using conventional style", "→ reading staged diff", "✔ done", "⚠ dry run"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "boom") {
		t.Error("errors must not go to stdout")
	}
	if !strings.Contains(errOut.String(), "✖ boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestLogger_CommitMessage(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	l := New(&out, &out)

	l.CommitMessage("feat: add x\n\nBody line.")
	got := out.String()
	if !strings.Contains(got, "Generated commit message:") {
		t.Error("missing heading")
	}
	if !strings.Contains(got, "feat: add x") || !strings.Contains(got, "Body line.") {
		t.Errorf("message not shown literally:\n%s", got)
	}
	if strings.Count(got, strings.Repeat("─", ruleWidth)) != 2 {
		t.Errorf("want two rules:\n%s", got)
	}
}
