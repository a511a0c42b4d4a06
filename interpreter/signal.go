/*
File : mylang/interpreter/signal.go

Control-flow sentinels. executeStmt and evalExpr both return a plain
object.Value; a *returnSignal or *errorSignal threaded back through
that same return channel is how a `return` statement or a runtime
fault unwinds out of nested blocks and calls without a second return
value at every call site — the same sentinel-object style the
dependency family's own tree-walker uses for its Error and
ReturnValue objects.
*/
package interpreter

import (
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/object"
)

// returnSignal carries a `return` statement's value up through
// whatever Block/If/While nesting is currently executing, to be
// unwrapped by the enclosing Function.Call.
type returnSignal struct {
	value object.Value
}

var _ object.Value = (*returnSignal)(nil)
var _ object.Value = (*errorSignal)(nil)

func (r *returnSignal) Kind() string    { return "Return" }
func (r *returnSignal) Truthy() bool    { return r.value.Truthy() }
func (r *returnSignal) Display() string { return r.value.Display() }

// errorSignal carries a runtime fault up through evaluation. It is
// never bound to a name or observable from interpreted code; it only
// ever appears as an evalExpr/executeStmt return value on its way to
// Interpret's top-level check.
type errorSignal struct {
	err *langerr.Runtime
}

func (e *errorSignal) Kind() string    { return "Error" }
func (e *errorSignal) Truthy() bool    { return false }
func (e *errorSignal) Display() string { return e.err.Error() }
