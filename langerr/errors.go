/*
File : mylang/langerr/errors.go

Package langerr implements the two-tier error model shared by the
lexer, parser, resolver and interpreter: a batched TranslationErrors
produced by the static stages, and a single RuntimeError produced by
evaluation.
*/
package langerr

import (
	"fmt"
	"strings"

	"github.com/amaji/mylang/token"
)

// Translation is one recorded translation-stage failure: a lex,
// parse, or resolve error. Span is attached wherever the offending
// token or node is known.
type Translation struct {
	Span    token.Span
	Message string
}

func (e Translation) Error() string {
	return fmt.Sprintf("[line %d] TranslationError: %s", e.Span.Line, e.Message)
}

// NewTranslation builds a Translation error from a span and message.
func NewTranslation(span token.Span, format string, args ...interface{}) Translation {
	return Translation{Span: span, Message: fmt.Sprintf(format, args...)}
}

// FromToken builds a Translation error anchored at tok's span.
func FromToken(tok token.Token, format string, args ...interface{}) Translation {
	return NewTranslation(tok.Span, format, args...)
}

// TranslationErrors is the batch collected across lexing, parsing and
// resolving. The pipeline merges all three stages' batches and aborts
// before evaluation if the merged batch is non-empty, so a user
// editing a script sees every mistake at once rather than one at a
// time.
type TranslationErrors struct {
	Issues []Translation
}

// Add appends one issue to the batch.
func (e *TranslationErrors) Add(issue Translation) {
	e.Issues = append(e.Issues, issue)
}

// Merge appends another batch's issues onto e.
func (e *TranslationErrors) Merge(other TranslationErrors) {
	e.Issues = append(e.Issues, other.Issues...)
}

// HasErrors reports whether any issue has been recorded.
func (e TranslationErrors) HasErrors() bool {
	return len(e.Issues) > 0
}

// Error renders every issue, one per line, in the order the issues
// were recorded (after a Merge: lexer, then parser, then resolver).
func (e TranslationErrors) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.Error()
	}
	return strings.Join(lines, "\n")
}

// Runtime is the single error surfaced by a failed evaluation. Span is
// the zero value when no source location applies (this does not
// happen today — every Runtime constructed by the interpreter carries
// a span — but the type supports the spanless case per the spec).
type Runtime struct {
	Span    token.Span
	HasSpan bool
	Message string
}

// NewRuntime builds a Runtime error anchored at span.
func NewRuntime(span token.Span, format string, args ...interface{}) *Runtime {
	return &Runtime{Span: span, HasSpan: true, Message: fmt.Sprintf(format, args...)}
}

// FromRuntimeToken builds a Runtime error anchored at tok's span.
func FromRuntimeToken(tok token.Token, format string, args ...interface{}) *Runtime {
	return NewRuntime(tok.Span, format, args...)
}

func (e *Runtime) Error() string {
	if !e.HasSpan {
		return fmt.Sprintf("RuntimeError: %s", e.Message)
	}
	return fmt.Sprintf("[line %d] RuntimeError: %s", e.Span.Line, e.Message)
}
