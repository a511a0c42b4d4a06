/*
File : mylang/resolver/resolver.go

Package resolver implements the static scope-resolution pass: a walk
over the parsed statement list that computes, for every Variable and
Assign expression, how many enclosing scopes to skip to find the
scope that binds the name. The result is recorded into an
Interpreter-shaped sink (see the Interpreter interface below) keyed by
expression identity, never by token or by name.

This is the hardest part of the pipeline to get right, and it is kept
deliberately separate from the interpreter package: the resolver only
ever needs to record depths, never to read or write a Value, so it
carries no dependency on the object package at all.
*/
package resolver

import (
	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/langerr"
)

// Interpreter is the minimal surface the resolver needs from the
// evaluator it is annotating: a place to record resolved depths. The
// real interpreter.Interpreter satisfies this trivially; tests can
// supply a bare map-backed fake instead.
type Interpreter interface {
	Resolve(exprID int, depth int)
}

// functionKind tracks whether the walk is currently inside a function
// body, so a top-level `return` can be rejected.
type functionKind int

const (
	functionNone functionKind = iota
	functionInFunction
)

// scope maps a name to whether its initializer has finished running
// yet. false means "declared but not yet defined" — reading the name
// in this state is the self-initializer error.
type scope map[string]bool

// Resolver walks a statement list exactly once per Resolve call.
type Resolver struct {
	interp          Interpreter
	scopes          []scope
	currentFunction functionKind
	errors          langerr.TranslationErrors
}

// New builds a Resolver that records depths into interp.
func New(interp Interpreter) *Resolver {
	return &Resolver{interp: interp}
}

// Resolve walks every statement in order and returns the accumulated
// translation errors (duplicate declarations, self-initializer reads,
// top-level returns).
func (r *Resolver) Resolve(statements []ast.Stmt) langerr.TranslationErrors {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
	return r.errors
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		for _, inner := range s.Statements {
			r.resolveStmt(inner)
		}
		r.endScope()
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)
	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.errors.Add(langerr.FromToken(s.Keyword, "Can't return from top-level code."))
		}
		r.resolveExpr(s.Expr)
	case *ast.LetStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Initializer)
		r.define(s.Name)
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.ClassStmt:
		// unreachable: the parser never constructs a ClassStmt.
	}
}

// resolveFunction pushes a Function marker, begins a fresh scope,
// declares+defines each parameter, and resolves the body's statements
// directly (no extra scope beyond the parameter scope) — matching the
// reference resolver's treatment of a function's own block.
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt) {
	enclosingFunction := r.currentFunction
	r.currentFunction = functionInFunction

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
	}
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *ast.LiteralExpr:
		// no-op
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if initialized, declared := r.scopes[len(r.scopes)-1][e.Name.Symbol]; declared && !initialized {
				r.errors.Add(langerr.NewTranslation(e.Name.Span, "Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(e.ID(), e.Name)
	}
}

// resolveLocal walks the scope stack from innermost outward; on the
// first scope that declares ident, it records the number of scopes
// skipped as that expression's depth. An unmatched name is left
// unrecorded, which the interpreter treats as a global reference.
func (r *Resolver) resolveLocal(exprID int, ident ast.Ident) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][ident.Symbol]; ok {
			r.interp.Resolve(exprID, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts ident into the innermost scope as not-yet-defined.
// Redeclaring a name already present in that same scope is an error.
func (r *Resolver) declare(ident ast.Ident) {
	if len(r.scopes) == 0 {
		return
	}
	current := r.scopes[len(r.scopes)-1]
	if _, exists := current[ident.Symbol]; exists {
		r.errors.Add(langerr.NewTranslation(ident.Span, "Already a variable with this name in this scope."))
	}
	current[ident.Symbol] = false
}

// define marks ident as fully initialized in the innermost scope.
func (r *Resolver) define(ident ast.Ident) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][ident.Symbol] = true
}
