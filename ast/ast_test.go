/*
File : mylang/ast/ast_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaji/mylang/token"
)

func TestExpr_IdentityIsUniquePerConstruction(t *testing.T) {
	span := token.Span{Line: 1}
	a := NewLiteral(NumberLit{Value: 1}, span)
	b := NewLiteral(NumberLit{Value: 1}, span)
	assert.NotEqual(t, a.ID(), b.ID(), "two structurally identical nodes must still have distinct identities")
}

func TestNumberLit_Display(t *testing.T) {
	assert.Equal(t, "10", NumberLit{Value: 10}.Display())
	assert.Equal(t, "10.5", NumberLit{Value: 10.5}.Display())
	assert.Equal(t, "0", NumberLit{Value: 0}.Display())
	assert.Equal(t, "-3", NumberLit{Value: -3}.Display())
}

func TestBoolLit_Display(t *testing.T) {
	assert.Equal(t, "true", BoolLit{Value: true}.Display())
	assert.Equal(t, "false", BoolLit{Value: false}.Display())
}

func TestNullLit_TruthyAndDisplay(t *testing.T) {
	assert.False(t, NullLit{}.Truthy())
	assert.Equal(t, "null", NullLit{}.Display())
}

func TestEqualLiteral_DifferentKindsAreNeverEqual(t *testing.T) {
	assert.False(t, NumberLit{Value: 0}.EqualLiteral(BoolLit{Value: false}))
	assert.False(t, StringLit{Value: ""}.EqualLiteral(NullLit{}))
}

func TestEqualLiteral_SameKindComparesValue(t *testing.T) {
	assert.True(t, NumberLit{Value: 5}.EqualLiteral(NumberLit{Value: 5}))
	assert.False(t, NumberLit{Value: 5}.EqualLiteral(NumberLit{Value: 6}))
	assert.True(t, StringLit{Value: "a"}.EqualLiteral(StringLit{Value: "a"}))
}

func TestBinaryExpr_SpanSpansLeftToRight(t *testing.T) {
	left := NewLiteral(NumberLit{Value: 1}, token.Span{Line: 2})
	right := NewLiteral(NumberLit{Value: 2}, token.Span{Line: 5})
	op := token.New(token.Plus, "+", token.Span{Line: 2})
	bin := NewBinary(left, op, right)
	assert.Equal(t, token.Span{Line: 2}, bin.Span())
}
