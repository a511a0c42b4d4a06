/*
File : mylang/parser/parser_test.go
*/
package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/lexer"
)

// paramNames returns "p0, p1, ..., p{n-1}" for use in generated sources.
func paramNames(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("p%d", i)
	}
	return strings.Join(names, ", ")
}

func parse(t *testing.T, source string) ([]ast.Stmt, bool) {
	t.Helper()
	tokens, lexErrs := lexer.New(source).Scan()
	assert.False(t, lexErrs.HasErrors(), "unexpected lex error in %q", source)
	statements, parseErrs := New(tokens).Parse()
	return statements, parseErrs.HasErrors()
}

func TestParse_LetWithoutInitializerDefaultsToNull(t *testing.T) {
	statements, hasErrs := parse(t, `let a;`)
	assert.False(t, hasErrs)
	assert.Len(t, statements, 1)
	let, ok := statements[0].(*ast.LetStmt)
	assert.True(t, ok)
	lit, ok := let.Initializer.(*ast.LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.NullLit{}, lit.Value)
}

func TestParse_BinaryPrecedence(t *testing.T) {
	statements, hasErrs := parse(t, `1 + 2 * 3;`)
	assert.False(t, hasErrs)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	bin := exprStmt.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Operator.Lexeme)
	_, rightIsMul := bin.Right.(*ast.BinaryExpr)
	assert.True(t, rightIsMul, "multiplication must bind tighter than addition")
}

func TestParse_ForLoopDesugarsToBlockWithWhile(t *testing.T) {
	statements, hasErrs := parse(t, `for (let i = 0; i < 3; i = i + 1) { print i; }`)
	assert.False(t, hasErrs)
	block, ok := statements[0].(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
	_, initIsLet := block.Statements[0].(*ast.LetStmt)
	assert.True(t, initIsLet)
	whileStmt, whileOk := block.Statements[1].(*ast.WhileStmt)
	assert.True(t, whileOk)
	innerBlock, innerOk := whileStmt.Body.(*ast.BlockStmt)
	assert.True(t, innerOk)
	assert.Len(t, innerBlock.Statements, 2, "body statement followed by the appended increment")
}

func TestParse_ForLoopWithNoClausesDefaultsConditionTrue(t *testing.T) {
	statements, hasErrs := parse(t, `for (;;) { print 1; }`)
	assert.False(t, hasErrs)
	whileStmt := statements[0].(*ast.WhileStmt)
	lit := whileStmt.Cond.(*ast.LiteralExpr)
	assert.Equal(t, ast.BoolLit{Value: true}, lit.Value)
}

func TestParse_CompoundAssignDesugarsToBinaryAssign(t *testing.T) {
	statements, hasErrs := parse(t, `x += 1;`)
	assert.False(t, hasErrs)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expr.(*ast.AssignExpr)
	assert.Equal(t, "x", assign.Name.Symbol)
	bin := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Operator.Lexeme)
}

func TestParse_IncrementDesugarsToAssignPlusOne(t *testing.T) {
	statements, hasErrs := parse(t, `x++;`)
	assert.False(t, hasErrs)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expr.(*ast.AssignExpr)
	bin := assign.Value.(*ast.BinaryExpr)
	one := bin.Right.(*ast.LiteralExpr)
	assert.Equal(t, ast.NumberLit{Value: 1}, one.Value)
}

func TestParse_InvalidAssignmentTargetIsRecoverable(t *testing.T) {
	statements, hasErrs := parse(t, `1 + 2 = 3; print "still parses";`)
	assert.True(t, hasErrs)
	assert.Len(t, statements, 2, "a recoverable error does not desynchronize the rest of the parse")
}

func TestParse_StraySemicolonSynchronizesAtNextStatement(t *testing.T) {
	statements, hasErrs := parse(t, `; let b = 2;`)
	assert.True(t, hasErrs)
	assert.Len(t, statements, 1, "the stray leading semicolon is consumed during synchronization and never produces a statement")
	_, ok := statements[0].(*ast.LetStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	statements, hasErrs := parse(t, `fn add(a, b) { return a + b; }`)
	assert.False(t, hasErrs)
	fn := statements[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Symbol)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParse_CallExpression(t *testing.T) {
	statements, hasErrs := parse(t, `add(1, 2);`)
	assert.False(t, hasErrs)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	call := exprStmt.Expr.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
}

func TestParse_FunctionWithExactly255ParamsParsesCleanly(t *testing.T) {
	source := fmt.Sprintf(`fn f(%s) { return 0; }`, paramNames(255))
	statements, hasErrs := parse(t, source)
	assert.False(t, hasErrs)
	fn := statements[0].(*ast.FunctionStmt)
	assert.Len(t, fn.Params, 255)
}

func TestParse_FunctionWith256ParamsParsesWithRecoverableError(t *testing.T) {
	source := fmt.Sprintf(`fn f(%s) { return 0; }`, paramNames(256))
	statements, hasErrs := parse(t, source)
	assert.True(t, hasErrs, "the 256th parameter must report an error")
	fn := statements[0].(*ast.FunctionStmt)
	assert.Len(t, fn.Params, 256, "the error is recoverable: every parameter still parses")
}

func TestParse_CallWithExactly255ArgsParsesCleanly(t *testing.T) {
	source := fmt.Sprintf(`f(%s);`, paramNames(255))
	statements, hasErrs := parse(t, source)
	assert.False(t, hasErrs)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	call := exprStmt.Expr.(*ast.CallExpr)
	assert.Len(t, call.Args, 255)
}

func TestParse_CallWith256ArgsParsesWithRecoverableError(t *testing.T) {
	source := fmt.Sprintf(`f(%s);`, paramNames(256))
	statements, hasErrs := parse(t, source)
	assert.True(t, hasErrs, "the 256th argument must report an error")
	exprStmt := statements[0].(*ast.ExpressionStmt)
	call := exprStmt.Expr.(*ast.CallExpr)
	assert.Len(t, call.Args, 256, "the error is recoverable: every argument still parses")
}
