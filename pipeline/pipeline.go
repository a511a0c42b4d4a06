/*
File : mylang/pipeline/pipeline.go

Package pipeline wires the four stages — lexer, parser, resolver,
interpreter — into the single entry point both the CLI's script mode
and the REPL call for every chunk of source they run.
*/
package pipeline

import (
	"github.com/amaji/mylang/interpreter"
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/lexer"
	"github.com/amaji/mylang/parser"
	"github.com/amaji/mylang/resolver"
)

// Result is what Run returns: the batch of static errors (empty on a
// clean parse/resolve) and, if evaluation was attempted, the runtime
// error it failed with (nil on success).
type Result struct {
	Translation langerr.TranslationErrors
	Runtime     *langerr.Runtime
}

// Failed reports whether the run produced any error at all.
func (r Result) Failed() bool {
	return r.Translation.HasErrors() || r.Runtime != nil
}

// Run lexes, parses, and resolves source, aborting before evaluation
// if any stage reported an error; otherwise it interprets the parsed
// statements against interp, which callers construct once and may
// reuse across multiple Run calls (the REPL does, so top-level
// bindings persist across lines).
func Run(source string, interp *interpreter.Interpreter) Result {
	var result Result

	tokens, lexErrors := lexer.New(source).Scan()
	result.Translation.Merge(lexErrors)

	statements, parseErrors := parser.New(tokens).Parse()
	result.Translation.Merge(parseErrors)

	resolveErrors := resolver.New(interp).Resolve(statements)
	result.Translation.Merge(resolveErrors)

	if result.Translation.HasErrors() {
		return result
	}

	result.Runtime = interp.Interpret(statements)
	return result
}
