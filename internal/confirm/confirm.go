// Package confirm runs the accept / regenerate / edit / cancel loop around a
// generated commit message.
package confirm

import (
	"context"
	"strings"

	"gitcommitai/internal/generator"
)

type Action int

const (
	Confirm Action = iota
	Regenerate
	Edit
	Cancel
)

func (a Action) String() string {
	switch a {
	case Confirm:
		return "confirm"
	case Regenerate:
		return "regenerate"
	case Edit:
		return "edit"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

type State int

const (
	Presenting State = iota
	Committing
	Cancelled
	// Previewed ends a dry run: the message was shown and nothing committed.
	Previewed
)

func (s State) String() string {
	switch s {
	case Presenting:
		return "presenting"
	case Committing:
		return "committing"
	case Cancelled:
		return "cancelled"
	case Previewed:
		return "previewed"
	}
	return "unknown"
}

// ParseAction maps menu input to an action. Numbers follow the menu order.
func ParseAction(input string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "c", "commit", "y", "yes":
		return Confirm, true
	case "2", "r", "regenerate":
		return Regenerate, true
	case "3", "e", "edit":
		return Edit, true
	case "4", "q", "quit", "cancel", "n", "no":
		return Cancel, true
	}
	return 0, false
}

type Generator interface {
	Generate(ctx context.Context, req generator.Request) (generator.Result, error)
}

type Committer interface {
	CreateCommit(ctx context.Context, message string) (string, error)
}

// Prompter asks the user what to do next. ChooseAction blocks until a valid
// action is read. EditMessage returns the replacement text, or "" to keep
// the current message.
type Prompter interface {
	ChooseAction() (Action, error)
	EditMessage(current string) (string, error)
}

type Presenter interface {
	CommitMessage(message string)
	Step(message string)
	Success(message string)
	Warn(message string)
}

// Mode holds the short circuits that bypass the interactive loop.
type Mode struct {
	DryRun      bool
	AutoConfirm bool
}

type Outcome struct {
	State   State
	Message string
	// CommitOutput is the gateway's confirmation text when State is Committing.
	CommitOutput string
}

type Controller struct {
	gen       Generator
	committer Committer
	prompter  Prompter
	out       Presenter
	mode      Mode
}

func NewController(gen Generator, committer Committer, prompter Prompter, out Presenter, mode Mode) *Controller {
	return &Controller{
		gen:       gen,
		committer: committer,
		prompter:  prompter,
		out:       out,
		mode:      mode,
	}
}

// Run presents first and loops until the user commits or cancels. req is
// reused unchanged for every regeneration.
func (c *Controller) Run(ctx context.Context, req generator.Request, first generator.Result) (Outcome, error) {
	message := first.Message
	c.out.CommitMessage(message)

	switch {
	case c.mode.DryRun:
		c.out.Warn("Dry run - no commit created")
		return Outcome{State: Previewed, Message: message}, nil
	case c.mode.AutoConfirm:
		return c.commit(ctx, message)
	}

	for {
		action, err := c.prompter.ChooseAction()
		if err != nil {
			return Outcome{State: Presenting, Message: message}, err
		}

		switch action {
		case Confirm:
			return c.commit(ctx, message)

		case Regenerate:
			c.out.Step("Regenerating commit message...")
			res, err := c.gen.Generate(ctx, req)
			if err != nil {
				return Outcome{State: Presenting, Message: message}, err
			}
			message = res.Message
			c.out.CommitMessage(message)

		case Edit:
			edited, err := c.prompter.EditMessage(message)
			if err != nil {
				return Outcome{State: Presenting, Message: message}, err
			}
			if edited = strings.TrimSpace(edited); edited != "" {
				message = edited
			}
			c.out.CommitMessage(message)

		case Cancel:
			c.out.Warn("Commit cancelled")
			return Outcome{State: Cancelled, Message: message}, nil
		}
	}
}

func (c *Controller) commit(ctx context.Context, message string) (Outcome, error) {
	c.out.Step("Creating commit...")
	output, err := c.committer.CreateCommit(ctx, message)
	if err != nil {
		return Outcome{State: Presenting, Message: message}, err
	}
	c.out.Success("Commit created successfully!")
	return Outcome{State: Committing, Message: message, CommitOutput: output}, nil
}
