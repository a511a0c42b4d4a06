/*
File : mylang/parser/expr.go

Expression grammar: assignment, the compound-assignment and
increment/decrement desugarings, the binary-operator precedence
ladder, and primary expressions. Split out of parser.go the way the
reference grammar's expression rules form their own section of the
grammar comment.
*/
package parser

import (
	"strconv"

	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses `IDENT = assignment`, falling through to
// compoundAssign. The left-hand side must already have parsed as a
// plain Variable; any other shape is a recoverable error ("Invalid
// assignment target.") that does not desynchronize the parser, since
// the rest of the expression was already successfully consumed.
func (p *Parser) assignment() ast.Expr {
	expr := p.compoundAssign()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()
		if variable, ok := expr.(*ast.VariableExpr); ok {
			return ast.NewAssign(variable.Name, value, equals.Span)
		}
		p.errors.Add(langerr.FromToken(equals, "Invalid assignment target."))
		return expr
	}
	return expr
}

// compoundAssign desugars `x += e` (and -=, *=, /=) to `x = x + e`.
// Like plain assignment, a non-Variable target is a recoverable error
// rather than a panic.
func (p *Parser) compoundAssign() ast.Expr {
	expr := p.logicOr()

	var arithmeticKind token.Kind
	switch {
	case p.match(token.PlusEqual):
		arithmeticKind = token.Plus
	case p.match(token.MinusEqual):
		arithmeticKind = token.Minus
	case p.match(token.StarEqual):
		arithmeticKind = token.Star
	case p.match(token.SlashEqual):
		arithmeticKind = token.Slash
	default:
		return expr
	}
	opTok := p.previous()
	rhs := p.assignment()

	variable, ok := expr.(*ast.VariableExpr)
	if !ok {
		p.errors.Add(langerr.FromToken(opTok, "Invalid assignment target."))
		return expr
	}
	synthetic := token.New(arithmeticKind, opTok.Lexeme[:1], opTok.Span)
	binary := ast.NewBinary(expr, synthetic, rhs)
	return ast.NewAssign(variable.Name, binary, opTok.Span)
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return ast.NewUnary(op, operand)
	}
	return p.incDec()
}

// incDec desugars `x++`/`x--` to `x = x + 1` / `x = x - 1`, under the
// same plain-Variable-target restriction as compound assignment.
func (p *Parser) incDec() ast.Expr {
	expr := p.call()

	var arithmeticKind token.Kind
	switch {
	case p.match(token.PlusPlus):
		arithmeticKind = token.Plus
	case p.match(token.MinusMinus):
		arithmeticKind = token.Minus
	default:
		return expr
	}
	opTok := p.previous()

	variable, ok := expr.(*ast.VariableExpr)
	if !ok {
		p.errors.Add(langerr.FromToken(opTok, "Invalid increment/decrement target."))
		return expr
	}
	one := ast.NewLiteral(ast.NumberLit{Value: 1}, opTok.Span)
	synthetic := token.New(arithmeticKind, string(arithmeticKind), opTok.Span)
	binary := ast.NewBinary(expr, synthetic, one)
	return ast.NewAssign(variable.Name, binary, opTok.Span)
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errors.Add(langerr.FromToken(p.peek(), "Can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expected ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(ast.BoolLit{Value: false}, p.previous().Span)
	case p.match(token.True):
		return ast.NewLiteral(ast.BoolLit{Value: true}, p.previous().Span)
	case p.match(token.Null):
		return ast.NewLiteral(ast.NullLit{}, p.previous().Span)
	case p.match(token.Number):
		tok := p.previous()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			panic(p.fail(tok, "Invalid number literal '%s'.", tok.Lexeme))
		}
		return ast.NewLiteral(ast.NumberLit{Value: value}, tok.Span)
	case p.match(token.String):
		tok := p.previous()
		return ast.NewLiteral(ast.StringLit{Value: stringValue(tok.Lexeme)}, tok.Span)
	case p.match(token.Identifier):
		tok := p.previous()
		return ast.NewVariable(ast.NewIdent(tok.Lexeme, tok.Span))
	case p.match(token.LeftParen):
		start := p.previous()
		expr := p.expression()
		end := p.consume(token.RightParen, "Expected ')' after expression.")
		return ast.NewGrouping(expr, start.Span.To(end.Span))
	case p.match(token.BangEqual, token.EqualEqual, token.Greater, token.GreaterEqual,
		token.Less, token.LessEqual, token.Plus, token.Slash, token.Star):
		tok := p.previous()
		panic(p.fail(tok, "Binary operator '%s' missing operand(s)", tok.Lexeme))
	default:
		panic(p.fail(p.peek(), "Expected expression."))
	}
}

// stringValue strips the surrounding quotes from a STRING token's
// lexeme; the lexeme is the raw quoted source slice, so the parser
// (not the lexer) is responsible for unquoting it.
func stringValue(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
