/*
File : mylang/interpreter/interpreter.go

Package interpreter executes a resolved statement list: the tree-
walking evaluator at the end of the lex/parse/resolve/interpret
pipeline. It implements resolver.Interpreter so the resolver can feed
it depths directly, and owns the single environment stack and output
sink for a run.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/object"
	"github.com/amaji/mylang/token"
)

// Interpreter walks a resolved AST and evaluates it against a single
// environment stack. One Interpreter is good for one program run, but
// the REPL reuses a single instance across lines so that top-level
// `let` and `fn` bindings persist between them.
type Interpreter struct {
	stack  *object.EnvStack
	locals map[int]int
	out    io.Writer
}

// New builds an Interpreter writing Print output to out, with the
// global scope pre-populated with the built-ins in builtins.go.
func New(out io.Writer) *Interpreter {
	interp := &Interpreter{
		stack:  object.NewGlobalStack(),
		locals: make(map[int]int),
		out:    out,
	}
	interp.defineBuiltins()
	return interp
}

// Resolve records that the expression identified by exprID resolves
// depth scopes outward from wherever it is evaluated. Called by
// resolver.Resolver; satisfies resolver.Interpreter.
func (i *Interpreter) Resolve(exprID int, depth int) {
	i.locals[exprID] = depth
}

// Interpret executes every statement in order. It stops at the first
// runtime error and returns it; a nil return means the whole program
// ran to completion.
func (i *Interpreter) Interpret(statements []ast.Stmt) *langerr.Runtime {
	for _, stmt := range statements {
		result := i.executeStmt(stmt)
		if sig, ok := result.(*errorSignal); ok {
			return sig.err
		}
	}
	return nil
}

// executeStmt runs one statement and returns nil on normal
// completion, or a *returnSignal / *errorSignal to propagate to the
// nearest Function.Call or to Interpret itself.
func (i *Interpreter) executeStmt(stmt ast.Stmt) object.Value {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements)
	case *ast.ExpressionStmt:
		result := i.evalExpr(s.Expr)
		if sig, ok := result.(*errorSignal); ok {
			return sig
		}
		return nil
	case *ast.FunctionStmt:
		fn := NewFunction(s.Name, s.Params, s.Body, i.stack.Snapshot())
		i.stack.Define(s.Name.Symbol, fn)
		return nil
	case *ast.IfStmt:
		cond := i.evalExpr(s.Cond)
		if sig, ok := cond.(*errorSignal); ok {
			return sig
		}
		if cond.Truthy() {
			return i.executeStmt(s.Then)
		}
		if s.Else != nil {
			return i.executeStmt(s.Else)
		}
		return nil
	case *ast.PrintStmt:
		value := i.evalExpr(s.Expr)
		if sig, ok := value.(*errorSignal); ok {
			return sig
		}
		fmt.Fprintln(i.out, value.Display())
		return nil
	case *ast.ReturnStmt:
		value := i.evalExpr(s.Expr)
		if sig, ok := value.(*errorSignal); ok {
			return sig
		}
		return &returnSignal{value: value}
	case *ast.LetStmt:
		value := i.evalExpr(s.Initializer)
		if sig, ok := value.(*errorSignal); ok {
			return sig
		}
		i.stack.Define(s.Name.Symbol, value)
		return nil
	case *ast.WhileStmt:
		for {
			cond := i.evalExpr(s.Cond)
			if sig, ok := cond.(*errorSignal); ok {
				return sig
			}
			if !cond.Truthy() {
				return nil
			}
			result := i.executeStmt(s.Body)
			if result != nil {
				return result
			}
		}
	case *ast.ClassStmt:
		// unreachable: the parser never constructs a ClassStmt.
		return nil
	default:
		return nil
	}
}

// executeBlock pushes a fresh scope, runs every statement, and always
// pops the scope on the way out — including when a statement yields a
// return or error signal.
func (i *Interpreter) executeBlock(statements []ast.Stmt) object.Value {
	i.stack.BeginScope()
	defer i.stack.EndScope()

	for _, stmt := range statements {
		result := i.executeStmt(stmt)
		if result != nil {
			return result
		}
	}
	return nil
}

// evalExpr evaluates expr and returns its value, or an *errorSignal if
// evaluation faulted.
func (i *Interpreter) evalExpr(expr ast.Expr) object.Value {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value
	case *ast.GroupingExpr:
		return i.evalExpr(e.Inner)
	case *ast.VariableExpr:
		return i.lookupVariable(e.Name, e.ID())
	case *ast.AssignExpr:
		return i.evalAssign(e)
	case *ast.LogicalExpr:
		return i.evalLogical(e)
	case *ast.UnaryExpr:
		return i.evalUnary(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case *ast.CallExpr:
		return i.evalCall(e)
	default:
		return ast.NullLit{}
	}
}

func (i *Interpreter) lookupVariable(name ast.Ident, exprID int) object.Value {
	if depth, ok := i.locals[exprID]; ok {
		if v, ok2 := i.stack.GetAt(name.Symbol, depth); ok2 {
			return v
		}
		return i.runtimeError(name.Span, "Undefined variable '%s'.", name.Symbol)
	}
	if v, ok := i.stack.GlobalGet(name.Symbol); ok {
		return v
	}
	return i.runtimeError(name.Span, "Undefined variable '%s'.", name.Symbol)
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) object.Value {
	value := i.evalExpr(e.Value)
	if sig, ok := value.(*errorSignal); ok {
		return sig
	}
	if depth, ok := i.locals[e.ID()]; ok {
		if !i.stack.AssignAt(e.Name.Symbol, value, depth) {
			return i.runtimeError(e.Name.Span, "Undefined variable '%s'.", e.Name.Symbol)
		}
		return value
	}
	if !i.stack.GlobalAssign(e.Name.Symbol, value) {
		return i.runtimeError(e.Name.Span, "Undefined variable '%s'.", e.Name.Symbol)
	}
	return value
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) object.Value {
	left := i.evalExpr(e.Left)
	if sig, ok := left.(*errorSignal); ok {
		return sig
	}
	if e.Operator.Kind == token.Or {
		if left.Truthy() {
			return left
		}
	} else {
		if !left.Truthy() {
			return left
		}
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) object.Value {
	operand := i.evalExpr(e.Operand)
	if sig, ok := operand.(*errorSignal); ok {
		return sig
	}
	switch e.Operator.Kind {
	case token.Minus:
		num, ok := operand.(ast.NumberLit)
		if !ok {
			return i.runtimeError(e.Operator.Span, "Unary operand must be numeric.")
		}
		return ast.NumberLit{Value: -num.Value}
	case token.Bang:
		return ast.BoolLit{Value: !operand.Truthy()}
	default:
		return ast.NullLit{}
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) object.Value {
	left := i.evalExpr(e.Left)
	if sig, ok := left.(*errorSignal); ok {
		return sig
	}
	right := i.evalExpr(e.Right)
	if sig, ok := right.(*errorSignal); ok {
		return sig
	}

	switch e.Operator.Kind {
	case token.Plus:
		if ln, ok := left.(ast.NumberLit); ok {
			rn, ok2 := right.(ast.NumberLit)
			if !ok2 {
				return i.runtimeError(e.Operator.Span, "Operands must be two numbers or two strings.")
			}
			return ast.NumberLit{Value: ln.Value + rn.Value}
		}
		if ls, ok := left.(ast.StringLit); ok {
			rs, ok2 := right.(ast.StringLit)
			if !ok2 {
				return i.runtimeError(e.Operator.Span, "Operands must be two numbers or two strings.")
			}
			return ast.StringLit{Value: ls.Value + rs.Value}
		}
		return i.runtimeError(e.Operator.Span, "Operands must be two numbers or two strings.")
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, ok1 := left.(ast.NumberLit)
		rn, ok2 := right.(ast.NumberLit)
		if !ok1 || !ok2 {
			return i.runtimeError(e.Operator.Span, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Minus:
			return ast.NumberLit{Value: ln.Value - rn.Value}
		case token.Star:
			return ast.NumberLit{Value: ln.Value * rn.Value}
		case token.Slash:
			return ast.NumberLit{Value: ln.Value / rn.Value}
		case token.Greater:
			return ast.BoolLit{Value: ln.Value > rn.Value}
		case token.GreaterEqual:
			return ast.BoolLit{Value: ln.Value >= rn.Value}
		case token.Less:
			return ast.BoolLit{Value: ln.Value < rn.Value}
		default: // LessEqual
			return ast.BoolLit{Value: ln.Value <= rn.Value}
		}
	case token.EqualEqual:
		return ast.BoolLit{Value: valuesEqual(left, right)}
	case token.BangEqual:
		return ast.BoolLit{Value: !valuesEqual(left, right)}
	default:
		return ast.NullLit{}
	}
}

// valuesEqual implements == / != across literal kinds. Two Callables
// (Function or Builtin) are equal only if they are the same instance;
// no test exercises function equality, so identity is sufficient.
func valuesEqual(left, right object.Value) bool {
	if ll, ok := left.(ast.Literal); ok {
		if rl, ok2 := right.(ast.Literal); ok2 {
			return ll.EqualLiteral(rl)
		}
		return false
	}
	return left == right
}

func (i *Interpreter) evalCall(e *ast.CallExpr) object.Value {
	calleeExpr, ok := e.Callee.(*ast.VariableExpr)
	if !ok {
		return i.runtimeError(e.Paren.Span, "Not a valid function call.")
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		value := i.evalExpr(argExpr)
		if sig, ok := value.(*errorSignal); ok {
			return sig
		}
		args = append(args, value)
	}

	callee := i.lookupVariable(calleeExpr.Name, calleeExpr.ID())
	if sig, ok := callee.(*errorSignal); ok {
		return sig
	}
	callable, ok := callee.(Callable)
	if !ok {
		return i.runtimeError(e.Paren.Span, "Not a valid function call.")
	}

	if len(args) != callable.Arity() {
		return i.runtimeError(e.Paren.Span, "Function expected %d arguments but was given %d", callable.Arity(), len(args))
	}
	return callable.Call(i, args, e.Paren.Span)
}

func (i *Interpreter) runtimeError(span token.Span, format string, args ...interface{}) *errorSignal {
	return &errorSignal{err: langerr.NewRuntime(span, format, args...)}
}
