/*
File : mylang/lexer/lexer.go

Package lexer turns source text into a token stream. It is
byte-indexed (identifiers are restricted to ASCII, but string literals
may contain arbitrary bytes) and error-collecting: a malformed lexeme
records an error and the scan continues, rather than aborting on the
first bad character.
*/
package lexer

import (
	"github.com/amaji/mylang/langerr"
	"github.com/amaji/mylang/token"
)

// Lexer scans a single source string into tokens. Zero value is not
// usable; construct with New.
type Lexer struct {
	source  string
	start   int
	current int
	line    int
	tokens  []token.Token
	errors  langerr.TranslationErrors
}

// New creates a Lexer over source, ready to Scan.
func New(source string) *Lexer {
	return &Lexer{source: source, line: 1}
}

// Scan consumes the entire source and returns the resulting tokens
// (always ending in a single EOF) together with any collected lexer
// errors. Scan does not rewind: calling it a second time on the same
// Lexer scans nothing more and appends a further EOF to the tokens
// already produced, so callers should construct a fresh Lexer per
// source string.
func (l *Lexer) Scan() ([]token.Token, langerr.TranslationErrors) {
	for !l.atEnd() {
		l.start = l.current
		l.scanToken()
	}
	eofLine := 1
	if n := len(l.tokens); n > 0 {
		eofLine = l.tokens[n-1].Span.Line
	}
	l.tokens = append(l.tokens, token.New(token.EOF, "", token.Span{Line: eofLine}))
	return l.tokens, l.errors
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case ' ', '\r', '\t':
		// skip whitespace
	case '\n':
		l.line++
	case '(':
		l.addToken(token.LeftParen)
	case ')':
		l.addToken(token.RightParen)
	case '{':
		l.addToken(token.LeftBrace)
	case '}':
		l.addToken(token.RightBrace)
	case ',':
		l.addToken(token.Comma)
	case '.':
		l.addToken(token.Dot)
	case ';':
		l.addToken(token.Semicolon)
	case '+':
		switch {
		case l.match('='):
			l.addToken(token.PlusEqual)
		case l.match('+'):
			l.addToken(token.PlusPlus)
		default:
			l.addToken(token.Plus)
		}
	case '-':
		switch {
		case l.match('='):
			l.addToken(token.MinusEqual)
		case l.match('-'):
			l.addToken(token.MinusMinus)
		default:
			l.addToken(token.Minus)
		}
	case '*':
		if l.match('=') {
			l.addToken(token.StarEqual)
		} else {
			l.addToken(token.Star)
		}
	case '!':
		if l.match('=') {
			l.addToken(token.BangEqual)
		} else {
			l.addToken(token.Bang)
		}
	case '=':
		if l.match('=') {
			l.addToken(token.EqualEqual)
		} else {
			l.addToken(token.Equal)
		}
	case '<':
		if l.match('=') {
			l.addToken(token.LessEqual)
		} else {
			l.addToken(token.Less)
		}
	case '>':
		if l.match('=') {
			l.addToken(token.GreaterEqual)
		} else {
			l.addToken(token.Greater)
		}
	case '/':
		switch {
		case l.match('/'):
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
		case l.match('*'):
			l.scanBlockComment()
		case l.match('='):
			l.addToken(token.SlashEqual)
		default:
			l.addToken(token.Slash)
		}
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			l.reportError("Unexpected character %c", c)
		}
	}
}

func (l *Lexer) scanBlockComment() {
	for !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		if l.advance() == '*' && l.peek() == '/' {
			l.advance()
			return
		}
	}
}

func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.reportError("Unterminated string")
		return
	}
	l.advance() // closing quote
	value := l.source[l.start+1 : l.current-1]
	l.addToken(token.String)
	_ = value // lexeme already carries the quoted text; value form is read back by the parser
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	l.addToken(token.Number)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	l.addToken(token.LookupIdentifier(text))
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.New(kind, text, token.Span{Line: l.line}))
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) reportError(format string, args ...interface{}) {
	l.errors.Add(langerr.NewTranslation(token.Span{Line: l.line}, format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
