/*
File : mylang/ast/ast.go

Package ast defines the expression and statement tree produced by the
parser and walked by the resolver and interpreter. Expressions carry a
stable identity assigned at construction (see newExprID below); that
identity, not the expression's shape or its tokens, is what the
resolver's resolution map is keyed on.
*/
package ast

import (
	"strconv"
	"sync/atomic"

	"github.com/amaji/mylang/token"
)

// nextExprID is a monotonically increasing counter shared by every
// Expr constructor. It mirrors the AtomicUsize counter the reference
// implementation keeps for the same purpose: two expressions built
// from identical source text must still receive distinct identities,
// because the resolver and interpreter key their side tables on
// identity, never on structural equality.
var nextExprID int64

func newExprID() int {
	return int(atomic.AddInt64(&nextExprID, 1))
}

// Ident names a bound identifier: a variable, function, or parameter
// name together with the span where it was written.
type Ident struct {
	Symbol string
	Span   token.Span
}

func NewIdent(symbol string, span token.Span) Ident {
	return Ident{Symbol: symbol, Span: span}
}

// Literal is the runtime-value side of a literal token: String,
// Number, Bool, or Null. It is defined here, rather than in a
// separate values package, because it is constructed directly by
// literal AST nodes and consumed unchanged by the interpreter as a
// Value — the same dual role the reference implementation's Literal
// enum plays for its AST and its evaluator.
type Literal interface {
	// Kind names the runtime type, one of "String", "Number", "Bool",
	// "Null" — the exact vocabulary typeof() reports.
	Kind() string
	// Truthy implements this language's truthiness rule: false and
	// null are falsy, everything else (including 0 and "") is truthy.
	Truthy() bool
	// Display renders the canonical string form used by print. String
	// concatenation does not use it: `+` requires two String operands.
	Display() string
	// EqualLiteral implements == / != for literals of possibly
	// different kinds; literals of different kinds are never equal.
	EqualLiteral(other Literal) bool
}

type StringLit struct{ Value string }

func (StringLit) Kind() string                   { return "String" }
func (l StringLit) Truthy() bool                  { return true }
func (l StringLit) Display() string               { return l.Value }
func (l StringLit) EqualLiteral(o Literal) bool {
	other, ok := o.(StringLit)
	return ok && other.Value == l.Value
}

type NumberLit struct{ Value float64 }

func (NumberLit) Kind() string   { return "Number" }
func (l NumberLit) Truthy() bool { return true }

// Display renders the shortest decimal string that round-trips back
// to Value, per strconv's 'g' format with precision -1, except that
// an integral value is rendered without a fractional part (matching
// the host-runtime-default formatting the reference implementation
// relies on, where `10.0` prints as `10`, not `1e+01` or `10.0`).
func (l NumberLit) Display() string {
	if l.Value == float64(int64(l.Value)) {
		return strconv.FormatInt(int64(l.Value), 10)
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}
func (l NumberLit) EqualLiteral(o Literal) bool {
	other, ok := o.(NumberLit)
	return ok && other.Value == l.Value
}

type BoolLit struct{ Value bool }

func (BoolLit) Kind() string      { return "Bool" }
func (l BoolLit) Truthy() bool    { return l.Value }
func (l BoolLit) Display() string {
	if l.Value {
		return "true"
	}
	return "false"
}
func (l BoolLit) EqualLiteral(o Literal) bool {
	other, ok := o.(BoolLit)
	return ok && other.Value == l.Value
}

type NullLit struct{}

func (NullLit) Kind() string                 { return "Null" }
func (NullLit) Truthy() bool                 { return false }
func (NullLit) Display() string              { return "null" }
func (NullLit) EqualLiteral(o Literal) bool {
	_, ok := o.(NullLit)
	return ok
}

// Expr is implemented by every expression node. ID is the stable
// identity assigned at construction and is what the resolver and
// interpreter key their side tables on.
type Expr interface {
	ID() int
	Span() token.Span
	exprNode()
}

type exprBase struct {
	id   int
	span token.Span
}

func (e exprBase) ID() int           { return e.id }
func (e exprBase) Span() token.Span  { return e.span }
func (exprBase) exprNode()           {}

func newExprBase(span token.Span) exprBase {
	return exprBase{id: newExprID(), span: span}
}

// AssignExpr is `name = value`.
type AssignExpr struct {
	exprBase
	Name  Ident
	Value Expr
}

func NewAssign(name Ident, value Expr, span token.Span) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(span), Name: name, Value: value}
}

// BinaryExpr is `left op right` for op in {==, !=, >, >=, <, <=, +, -, *, /}.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: newExprBase(left.Span().To(right.Span())), Left: left, Operator: operator, Right: right}
}

// CallExpr is `callee(args...)`. Paren is the closing-parenthesis
// token; its span is used to attach a location to call-site runtime
// errors.
type CallExpr struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{exprBase: newExprBase(paren.Span), Callee: callee, Paren: paren, Args: args}
}

// GroupingExpr is `(inner)`.
type GroupingExpr struct {
	exprBase
	Inner Expr
}

func NewGrouping(inner Expr, span token.Span) *GroupingExpr {
	return &GroupingExpr{exprBase: newExprBase(span), Inner: inner}
}

// LiteralExpr wraps a constant value written directly in source.
type LiteralExpr struct {
	exprBase
	Value Literal
}

func NewLiteral(value Literal, span token.Span) *LiteralExpr {
	return &LiteralExpr{exprBase: newExprBase(span), Value: value}
}

// LogicalExpr is `left and right` / `left or right`. Unlike Binary,
// evaluation short-circuits, so it is kept as a distinct node rather
// than folded into Binary.
type LogicalExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: newExprBase(left.Span().To(right.Span())), Left: left, Operator: operator, Right: right}
}

// UnaryExpr is `-operand` or `!operand`.
type UnaryExpr struct {
	exprBase
	Operator token.Token
	Operand  Expr
}

func NewUnary(operator token.Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: newExprBase(operator.Span.To(operand.Span())), Operator: operator, Operand: operand}
}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	exprBase
	Name Ident
}

func NewVariable(name Ident) *VariableExpr {
	return &VariableExpr{exprBase: newExprBase(name.Span), Name: name}
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

func NewBlock(statements []Stmt) *BlockStmt {
	return &BlockStmt{Statements: statements}
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	stmtBase
	Expr Expr
}

func NewExpressionStmt(expr Expr) *ExpressionStmt {
	return &ExpressionStmt{Expr: expr}
}

// FunctionStmt is `fn name(params...) { body... }`.
type FunctionStmt struct {
	stmtBase
	Name   Ident
	Params []Ident
	Body   []Stmt
}

func NewFunctionStmt(name Ident, params []Ident, body []Stmt) *FunctionStmt {
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// IfStmt is `if (cond) then [else else_]`. Else is nil when absent.
type IfStmt struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt
}

func NewIf(cond Expr, then Stmt, els Stmt) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

// PrintStmt is `print expr;`.
type PrintStmt struct {
	stmtBase
	Expr Expr
}

func NewPrint(expr Expr) *PrintStmt {
	return &PrintStmt{Expr: expr}
}

// ReturnStmt is `return [expr];`. Expr is never nil: a bare `return;`
// is parsed with Expr set to a literal null, matching the source
// language's "operand defaults to literal null when absent" rule.
type ReturnStmt struct {
	stmtBase
	Keyword token.Token
	Expr    Expr
}

func NewReturn(keyword token.Token, expr Expr) *ReturnStmt {
	return &ReturnStmt{Keyword: keyword, Expr: expr}
}

// LetStmt is `let name [= initializer];`. Initializer is never nil:
// an absent initializer is parsed as a literal null.
type LetStmt struct {
	stmtBase
	Name        Ident
	Initializer Expr
}

func NewLet(name Ident, initializer Expr) *LetStmt {
	return &LetStmt{Name: name, Initializer: initializer}
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func NewWhile(cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body}
}

// ClassStmt exists so the AST shape matches the reference grammar's
// placeholder, but no parser rule ever constructs one, and the
// resolver and the interpreter carry only no-op cases for it — classes
// are not implemented in this language. Kept as dead-but-present type
// rather than deleted, per the reference implementation's own
// treatment of the variant.
type ClassStmt struct {
	stmtBase
	Name    Ident
	Methods []*FunctionStmt
}
