/*
File : mylang/parser/parser.go

Package parser implements a recursive-descent parser over the token
stream produced by lexer.Scan. It is error-collecting like the lexer:
a malformed statement is recorded and the parser resynchronizes at
the next statement boundary rather than aborting the whole parse.

This file holds the driver (Parser, Parse, declaration/statement
grammar, and synchronize). Expression grammar lives in expr.go.
*/
package parser

import (
	"github.com/amaji/mylang/ast"
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/token"
)

// maxArgs is the fixed limit on function parameters and call
// arguments. Violating it is reported but does not abort parsing.
const maxArgs = 255

// Parser consumes a fixed token slice (already fully scanned) and
// produces a statement list plus any parse errors.
type Parser struct {
	tokens  []token.Token
	current int
	errors  langerr.TranslationErrors
}

// New builds a Parser over tokens, which must end in a single EOF
// token (as lexer.Scan guarantees).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the parsed
// statements together with every recorded error.
func (p *Parser) Parse() ([]ast.Stmt, langerr.TranslationErrors) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errors
}

// declaration dispatches to a var or function declaration, or falls
// through to a plain statement. On a parse error it synchronizes and
// reports, returning ok=false so the caller skips appending anything.
func (p *Parser) declaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			perr, isParseErr := r.(parseError)
			if !isParseErr {
				panic(r)
			}
			p.synchronize()
			p.errors.Add(perr.issue)
			stmt, ok = nil, false
		}
	}()

	switch {
	case p.match(token.Let):
		return p.varDeclaration(), true
	case p.match(token.Fn):
		return p.functionDeclaration(), true
	default:
		return p.statement(), true
	}
}

// parseError is the panic payload used to unwind out of an arbitrarily
// deep expression/statement recursion back to declaration(), mirroring
// the reference parser's early-return-on-Result pattern without
// threading an error value through every call in the grammar.
type parseError struct {
	issue langerr.Translation
}

func (p *Parser) fail(tok token.Token, format string, args ...interface{}) parseError {
	return parseError{issue: langerr.FromToken(tok, format, args...)}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expected variable name.")
	var initializer ast.Expr = ast.NewLiteral(ast.NullLit{}, name.Span)
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expected ';' after variable declaration")
	return ast.NewLet(ast.NewIdent(name.Lexeme, name.Span), initializer)
}

func (p *Parser) functionDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expected function name.")
	p.consume(token.LeftParen, "Expected '(' after function name.")
	var params []ast.Ident
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errors.Add(langerr.FromToken(p.peek(), "Can't have more than %d parameters.", maxArgs))
			}
			param := p.consume(token.Identifier, "Expected parameter name.")
			params = append(params, ast.NewIdent(param.Lexeme, param.Span))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expected ')' after parameters.")
	p.consume(token.LeftBrace, "Expected '{' before function body.")
	body := p.block()
	return ast.NewFunctionStmt(ast.NewIdent(name.Lexeme, name.Span), params, body)
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.LeftBrace):
		return ast.NewBlock(p.block())
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expected '}' after block.")
	return statements
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr = ast.NewLiteral(ast.NullLit{}, keyword.Span)
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expected ';' after return value.")
	return ast.NewReturn(keyword, value)
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expected ';' after value.")
	return ast.NewPrint(value)
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expected '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expected ')' after if condition.")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	return ast.NewIf(cond, then, els)
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expected '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expected ')' after condition.")
	body := p.statement()
	return ast.NewWhile(cond, body)
}

// forStatement desugars the three-clause for-loop into a block
// containing an optional initializer followed by a while loop whose
// body appends the increment, exactly as a hand-written expansion of
// `for (init; cond; inc) body` would: `{ init; while (cond) { body;
// inc; } }`. A missing condition defaults to literal true; missing
// initializer/increment are simply omitted.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expected '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Let):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	semi := p.consume(token.Semicolon, "Expected ';' after loop condition.")
	if cond == nil {
		cond = ast.NewLiteral(ast.BoolLit{Value: true}, semi.Span)
	}

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expected ')' after for clauses.")

	body := p.statement()
	if increment != nil {
		if block, ok := body.(*ast.BlockStmt); ok {
			block.Statements = append(block.Statements, ast.NewExpressionStmt(increment))
		} else {
			body = ast.NewBlock([]ast.Stmt{body, ast.NewExpressionStmt(increment)})
		}
	}

	body = ast.NewWhile(cond, body)
	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}
	return body
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expected ';' after expression.")
	return ast.NewExpressionStmt(expr)
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a semicolon, or just before a keyword that
// begins a new statement. Called after a parse error is caught so the
// parser can keep looking for further, independent mistakes.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fn, token.Let, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// --- token cursor helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.fail(p.peek(), "%s", message))
}
