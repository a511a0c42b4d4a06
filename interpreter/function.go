/*
File : mylang/interpreter/function.go

Callable values: user-defined Function (captures a closure snapshot)
and the native Builtin wrapper registered in builtins.go. Both satisfy
object.Value so they can be stored and passed around like any other
value, and Callable so evalCall can dispatch to either uniformly.
*/
package interpreter

import (
	"fmt"

	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/object"
	"github.com/amaji/mylang/token"
)

// Callable is implemented by every value that can appear on the left
// of a call expression.
type Callable interface {
	object.Value
	Arity() int
	Call(interp *Interpreter, args []object.Value, callSpan token.Span) object.Value
}

// Function is a user-defined function: its declared shape plus the
// environment snapshot captured at the moment its `fn` statement ran.
type Function struct {
	name    ast.Ident
	params  []ast.Ident
	body    []ast.Stmt
	closure []object.Scope
}

// NewFunction builds a Function, capturing closure as the environment
// snapshot in effect when the declaring statement executed.
func NewFunction(name ast.Ident, params []ast.Ident, body []ast.Stmt, closure []object.Scope) *Function {
	return &Function{name: name, params: params, body: body, closure: closure}
}

func (f *Function) Kind() string   { return "Function" }
func (f *Function) Truthy() bool   { return true }
func (f *Function) Display() string {
	return fmt.Sprintf("<fn %s>", f.name.Symbol)
}
func (f *Function) Arity() int { return len(f.params) }

// Call pushes a fresh parameter scope on top of the captured closure
// snapshot, binds arguments, and executes the body. A return signal
// unwraps to its carried value; falling off the end of the body
// yields null, matching a bodiless `return;`.
func (f *Function) Call(interp *Interpreter, args []object.Value, callSpan token.Span) object.Value {
	scopes := make([]object.Scope, len(f.closure)+1)
	copy(scopes, f.closure)
	scopes[len(f.closure)] = make(object.Scope)
	callStack := object.FromSnapshot(scopes)
	for i, param := range f.params {
		callStack.Define(param.Symbol, args[i])
	}

	previous := interp.stack
	interp.stack = callStack
	defer func() { interp.stack = previous }()

	for _, stmt := range f.body {
		result := interp.executeStmt(stmt)
		if result == nil {
			continue
		}
		if ret, ok := result.(*returnSignal); ok {
			return ret.value
		}
		return result
	}
	return ast.NullLit{}
}

// BuiltinFunc is the Go implementation behind a native function.
// callSpan is the call expression's closing-paren span, used to
// attach a location to any runtime error the built-in raises.
type BuiltinFunc func(interp *Interpreter, args []object.Value, callSpan token.Span) object.Value

// Builtin wraps a native function so it satisfies Callable and can be
// bound into the global scope exactly like a user-defined Function.
type Builtin struct {
	Name    string
	ArityN  int
	Fn      BuiltinFunc
}

func (b *Builtin) Kind() string    { return "Function" }
func (b *Builtin) Truthy() bool    { return true }
func (b *Builtin) Display() string { return fmt.Sprintf("<native fn %s>", b.Name) }
func (b *Builtin) Arity() int      { return b.ArityN }
func (b *Builtin) Call(interp *Interpreter, args []object.Value, callSpan token.Span) object.Value {
	return b.Fn(interp, args, callSpan)
}
