/*
File : mylang/main.go

Package main wires the cobra command, the cancellable REPL driver, and
script-mode execution together. At most one positional argument is
accepted: a script path. With none, it starts the REPL.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/amaji/mylang/interpreter"
	"github.com/amaji/mylang/pipeline"
	"github.com/amaji/mylang/repl"
)

var redColor = color.New(color.FgRed)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "mylang [script]",
		Short:         "Run a script, or start the interactive REPL with no arguments.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				// Script mode never reads ctx; restore the default signal
				// behavior so SIGINT/SIGTERM still end a running script.
				stop()
				return runFile(args[0])
			}
			return runRepl(cmd.Context())
		},
	}

	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile reads source as UTF-8, runs it once against a fresh
// Interpreter, and reports any translation or runtime errors to
// stderr. A non-nil return causes main to exit non-zero.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}

	interp := interpreter.New(os.Stdout)
	result := pipeline.Run(string(source), interp)

	for _, issue := range result.Translation.Issues {
		redColor.Fprintln(os.Stderr, issue.Error())
	}
	if result.Runtime != nil {
		redColor.Fprintln(os.Stderr, result.Runtime.Error())
	}
	if result.Failed() {
		return fmt.Errorf("%s failed", path)
	}
	return nil
}

// runRepl starts the interactive session under an errgroup. A
// SIGINT/SIGTERM cancels ctx, which closes the line editor so the
// session ends at its next read; a line that is already being
// evaluated, including one blocked in sleep(), is not interrupted and
// runs to completion first.
func runRepl(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	session := repl.New("> ")
	g.Go(func() error {
		return session.Run(ctx, os.Stdout)
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
