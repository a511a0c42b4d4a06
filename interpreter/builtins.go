/*
File : mylang/interpreter/builtins.go

Native functions pre-defined in the global scope: clock, typeof, and
sleep. Registered through a package-level slice populated by init(),
mirroring the registration idiom the reference dependency family uses
for its own builtin table — the difference being each Interpreter
copies these into its own global scope rather than sharing one global
map, since an Interpreter's environment stack is per-run state.
*/
package interpreter

import (
	"time"

	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/object"
	"github.com/amaji/mylang/token"
)

var builtins []*Builtin

func init() {
	builtins = []*Builtin{
		{Name: "clock", ArityN: 0, Fn: builtinClock},
		{Name: "typeof", ArityN: 1, Fn: builtinTypeof},
		{Name: "sleep", ArityN: 1, Fn: builtinSleep},
	}
}

// defineBuiltins installs a copy of every registered Builtin into the
// interpreter's global scope. Called once, from New.
func (i *Interpreter) defineBuiltins() {
	for _, b := range builtins {
		copied := *b
		i.stack.DefineGlobal(copied.Name, &copied)
	}
}

// builtinClock returns seconds since the Unix epoch as a Number.
func builtinClock(_ *Interpreter, _ []object.Value, _ token.Span) object.Value {
	return ast.NumberLit{Value: float64(time.Now().UnixNano()) / 1e9}
}

// builtinTypeof returns the runtime type name of its single argument.
func builtinTypeof(_ *Interpreter, args []object.Value, _ token.Span) object.Value {
	return ast.StringLit{Value: args[0].Kind()}
}

// builtinSleep suspends the host thread for ms/1000 seconds.
func builtinSleep(interp *Interpreter, args []object.Value, callSpan token.Span) object.Value {
	ms, ok := args[0].(ast.NumberLit)
	if !ok {
		return interp.runtimeError(callSpan, "sleep duration must be a number, given %s", args[0].Kind())
	}
	time.Sleep(time.Duration(ms.Value * float64(time.Millisecond)))
	return ast.NullLit{}
}
