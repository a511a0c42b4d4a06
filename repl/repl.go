/*
File : mylang/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop: a line
editor around the same pipeline.Run entry point the CLI's file mode
uses, so a REPL session and a script behave identically statement by
statement. One Interpreter is kept alive for the whole session, so
`let` and `fn` bindings from one line are visible on the next.
*/
package repl

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/amaji/mylang/interpreter"
	"github.com/amaji/mylang/pipeline"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _ __ ___  _   _  | | __ _ _ __   __ _
 | '_ ` + "`" + ` _ \| | | | | |/ _` + "`" + ` | '_ \ / _` + "`" + ` |
 | | | | | | |_| | | | (_| | | | | (_| |
 |_| |_| |_|\__, | |_|\__,_|_| |_|\__, |
            |___/                |___/
`

const line = "----------------------------------------------------------------"

// Repl is a configured interactive session.
type Repl struct {
	Prompt string
}

// New builds a Repl with the given prompt.
func New(prompt string) *Repl {
	return &Repl{Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintf(writer, "%s\n", line)
	cyanColor.Fprintln(writer, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(writer, "Ctrl-D exits.")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Run starts the loop. It blocks until stdin is exhausted (Ctrl-D), an
// unrecoverable readline error occurs, or ctx is cancelled — the
// latter driven by main's SIGINT/SIGTERM handling via errgroup.
// Cancellation closes the line editor, so the loop ends at its next
// read; a line already being evaluated (for example one blocked in
// sleep()) is not interrupted and runs to completion first.
func (r *Repl) Run(ctx context.Context, writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	go func() {
		<-ctx.Done()
		rl.Close()
	}()

	interp := interpreter.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			yellowColor.Fprintln(writer, "Goodbye!")
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		result := pipeline.Run(line, interp)
		for _, issue := range result.Translation.Issues {
			redColor.Fprintln(writer, issue.Error())
		}
		if result.Runtime != nil {
			redColor.Fprintln(writer, result.Runtime.Error())
		}
	}
}
