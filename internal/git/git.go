package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"gitcommitai/internal/apperr"
	"gitcommitai/internal/debug"
)

// Repo runs git in Dir (the process working directory when empty).
type Repo struct {
	Dir string
}

func New(dir string) *Repo {
	return &Repo{Dir: dir}
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	debug.Printf("git %s", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		return "", apperr.GitFailure(args, output, err)
	}
	return stdout.String(), nil
}

func (r *Repo) EnsureRepository(ctx context.Context) error {
	if _, err := r.run(ctx, "rev-parse", "--git-dir"); err != nil {
		return apperr.NotARepo(err)
	}
	return nil
}

// StagedDiff returns `git diff --cached`. An empty diff is reported as
// apperr.KindNoStagedChanges.
func (r *Repo) StagedDiff(ctx context.Context) (string, error) {
	diff, err := r.run(ctx, "diff", "--cached")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(diff) == "" {
		return "", apperr.NoStagedChanges()
	}
	return diff, nil
}

func (r *Repo) StagedFiles(ctx context.Context) ([]string, error) {
	output, err := r.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// CreateCommit commits the index with message and returns git's summary output.
func (r *Repo) CreateCommit(ctx context.Context, message string) (string, error) {
	output, err := r.run(ctx, "commit", "-m", message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
