// Package app runs the interactive practice loop: it owns the terminal
// conversation and delegates every state change to the session engine.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/session"
)

// Options wires the practice loop.
type Options struct {
	Engine  *session.Engine
	UserID  string
	Subject *curriculum.Subject
	Topic   curriculum.Topic

	// In and Out default to the caller's choice of stdin/stdout.
	In  io.Reader
	Out io.Writer
}

// Run drives one practice session over a line-oriented prompt. It
// returns when the session completes or the learner quits; a quit
// leaves the persisted session resumable.
func Run(ctx context.Context, opts Options) error {
	state, err := opts.Engine.Start(ctx, opts.UserID, opts.Subject, opts.Topic)
	if err != nil {
		if errors.Is(err, session.ErrNoContent) {
			fmt.Fprintf(opts.Out, "No gradeable questions in %s right now.\n", opts.Topic.Name)
			return nil
		}
		return err
	}

	fmt.Fprintf(opts.Out, "%s / %s (%d questions)\n", opts.Subject.Name, opts.Topic.Name, len(state.Questions))
	fmt.Fprintln(opts.Out, `Type an answer, or a command: "retry", "next", "jump <n>", "quit".`)

	scanner := bufio.NewScanner(opts.In)
	for state.Phase != session.PhaseComplete {
		prompt(opts.Out, state)

		if !scanner.Scan() {
			// EOF behaves like quit: the session stays resumable.
			fmt.Fprintln(opts.Out, "\nSession saved. Come back to resume.")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if err := dispatch(ctx, opts, state, line); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(opts.Out, "Session saved. Come back to resume.")
				return nil
			}
			fmt.Fprintf(opts.Out, "%v\n", err)
		}
	}

	summary(opts.Out, state)
	return nil
}

var errQuit = errors.New("quit")

func dispatch(ctx context.Context, opts Options, state *session.State, line string) error {
	fields := strings.Fields(line)
	command := ""
	if len(fields) > 0 {
		command = strings.ToLower(fields[0])
	}

	switch command {
	case "quit", "q":
		return errQuit

	case "retry", "r":
		return opts.Engine.Retry(ctx, state)

	case "next", "n":
		if err := opts.Engine.Next(ctx, state); err != nil {
			if errors.Is(err, session.ErrNotShowingFeedback) {
				return errors.New("answer the question first, or quit to save")
			}
			return fmt.Errorf("finishing failed, try next again: %w", err)
		}
		return nil

	case "jump", "j":
		if len(fields) != 2 {
			return errors.New("usage: jump <question number>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return errors.New("usage: jump <question number>")
		}
		return opts.Engine.Jump(ctx, state, n-1)

	default:
		if state.Phase != session.PhaseAwaitingAnswer {
			return errors.New(`type "retry" to answer again or "next" to continue`)
		}
		if err := opts.Engine.Submit(ctx, state, line); err != nil {
			if errors.Is(err, session.ErrEmptyAnswer) {
				return errors.New("write an answer before submitting")
			}
			return err
		}
		showFeedback(opts.Out, state)
		return nil
	}
}

func prompt(out io.Writer, state *session.State) {
	q := state.CurrentQuestion()
	switch state.Phase {
	case session.PhaseAwaitingAnswer:
		fmt.Fprintf(out, "\n[%d/%d] %s (%d marks)\n> ",
			state.CurrentIndex+1, len(state.Questions), q.Text, q.Marks)
	case session.PhaseShowingFeedback:
		fmt.Fprint(out, "> ")
	}
}

func showFeedback(out io.Writer, state *session.State) {
	a := state.CurrentAttempt()
	if a == nil {
		return
	}
	fmt.Fprintf(out, "\n%d/%d marks (%s)\n", a.MarksAwarded, a.MarksAvailable, a.Assessment)
	if a.Feedback.Critique != "" {
		fmt.Fprintln(out, a.Feedback.Critique)
	}
	fmt.Fprintf(out, "Model answer: %s\n", a.Feedback.ModelAnswer)
	if a.Feedback.SpecReference != "" {
		fmt.Fprintf(out, "Spec reference: %s\n", a.Feedback.SpecReference)
	}
}

func summary(out io.Writer, state *session.State) {
	earned := state.Ledger.TotalMarksEarned()
	available := state.Ledger.TotalMarksAvailable(state.Questions)
	fmt.Fprintf(out, "\nSession complete: %d/%d marks, %d correct, %d partial.\n",
		earned, available, state.Ledger.CountCorrect(), state.Ledger.CountPartial())
}
