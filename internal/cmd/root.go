package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gitcommitai/internal/apperr"
	"gitcommitai/internal/config"
	"gitcommitai/internal/confirm"
	"gitcommitai/internal/debug"
	"gitcommitai/internal/generator"
	"gitcommitai/internal/git"
	"gitcommitai/internal/llm"
	"gitcommitai/internal/prompt"
	"gitcommitai/internal/tui"
	"gitcommitai/internal/ui"
)

type flags struct {
	style      string
	dryRun     bool
	context    string
	yes        bool
	configFile string
	copy       bool
	debug      bool
}

// newRootCmd builds the single git-commit-ai command. interactive decides
// whether the spinner and full-screen editor are used.
func newRootCmd(interactive bool) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "git-commit-ai",
		Short: "Generate commit messages for staged changes with Claude",
		Long: `git-commit-ai reads your staged changes, asks Claude for a commit message in
the chosen style, and lets you commit, regenerate, edit, or cancel.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return apperr.Config("%v", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.debug {
				debug.Enable(cmd.ErrOrStderr())
			} else {
				debug.FromEnv()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, interactive)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Config("%v", err)
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.style, "style", "s", "", "commit style: conventional, simple, detailed (default from COMMIT_STYLE or conventional)")
	fl.BoolVarP(&f.dryRun, "dry-run", "d", false, "show the generated message without committing")
	fl.StringVarP(&f.context, "context", "c", "", "extra context for the model")
	fl.BoolVarP(&f.yes, "yes", "y", false, "commit the first generated message without asking")
	fl.StringVar(&f.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/git-commit-ai/config.yaml)")
	fl.BoolVar(&f.copy, "copy", false, "copy the final message to the clipboard")
	fl.BoolVar(&f.debug, "debug", false, "enable debug output (same as DEBUG=1)")
	return cmd
}

// Execute runs the command and reports any error on stderr. The returned
// error only signals a non-zero exit.
func Execute(version, commit, buildTime string) error {
	cmd := newRootCmd(tui.IsTTY())
	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf("git-commit-ai version {{.Version}} (commit %s, built %s)\n", commit, buildTime))
	return execute(cmd)
}

func execute(cmd *cobra.Command) error {
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		reportError(ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr()), err)
	}
	return err
}

func run(cmd *cobra.Command, f *flags, interactive bool) error {
	ctx := cmd.Context()
	log := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	var flagStyle prompt.Style
	if f.style != "" {
		s, err := prompt.ParseStyle(f.style)
		if err != nil {
			return apperr.Config("%v", err)
		}
		flagStyle = s
	}

	cfg, err := config.Load(config.Options{ConfigFile: f.configFile})
	if err != nil {
		return err
	}
	if !debug.Enabled {
		// .env may have set DEBUG.
		debug.FromEnv()
	}
	style := cfg.DefaultStyle
	if flagStyle != "" {
		style = flagStyle
	}
	log.Info(fmt.Sprintf("Using %s commit style", log.Accent(style.String())))

	repo := git.New("")
	if err := repo.EnsureRepository(ctx); err != nil {
		return err
	}
	diff, err := repo.StagedDiff(ctx)
	if err != nil {
		return err
	}
	files, err := repo.StagedFiles(ctx)
	if err != nil {
		return err
	}
	log.Step(fmt.Sprintf("Analyzing %d staged file(s): %s", len(files), strings.Join(files, ", ")))

	gen := &spinnerGenerator{
		gen: generator.New(llm.NewAnthropicClient(cfg.APIKey, cfg.BaseURL), generator.Settings{
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			MaxTokens:    cfg.MaxTokens,
			MaxDiffLines: cfg.MaxDiffLines,
		}),
		spinner: tui.NewSpinner(cmd.ErrOrStderr(), interactive),
	}
	req := generator.Request{Diff: diff, Style: style, Context: f.context}

	first, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	prompter := tui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
	controller := confirm.NewController(gen, repo, prompter, log, confirm.Mode{
		DryRun:      f.dryRun,
		AutoConfirm: f.yes,
	})
	outcome, err := controller.Run(ctx, req, first)
	if err != nil {
		return err
	}
	debug.Printf("finished in state %s", outcome.State)
	if outcome.CommitOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), outcome.CommitOutput)
	}

	if f.copy && outcome.State != confirm.Cancelled {
		if err := tui.CopyToClipboard(outcome.Message); err != nil {
			log.Warn(err.Error())
		} else {
			log.Success("Commit message copied to clipboard")
		}
	}
	return nil
}

// spinnerGenerator shows the spinner around every generation, including
// regenerations requested from the menu.
type spinnerGenerator struct {
	gen     *generator.Generator
	spinner *tui.Spinner
}

func (s *spinnerGenerator) Generate(ctx context.Context, req generator.Request) (generator.Result, error) {
	s.spinner.Start("Generating commit message...")
	res, err := s.gen.Generate(ctx, req)
	s.spinner.Stop()
	return res, err
}

func reportError(log *ui.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		log.Error(appErr.Message)
		return
	}
	log.Error("Unexpected error: " + err.Error())
	if debug.Enabled {
		printChain(log.Err, err)
	}
}

func printChain(w io.Writer, err error) {
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(w, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)
		err = errors.Unwrap(err)
	}
}
