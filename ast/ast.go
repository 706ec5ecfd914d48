// Package ast holds the syntax tree of mainlang expressions.
package ast

import (
	"strconv"
	"strings"

	"mainlang.io/mainlang/token"
)

type Node interface {
	TokenLiteral() string
	String() string // normalized string representation of the expression.
}

// Common to all nodes that have a token and avoids repeating the same TokenLiteral() methods.
type Base struct {
	token.Token
}

func (b *Base) TokenLiteral() string {
	return b.Literal
}

func (b *Base) String() string {
	return b.Type.String() + " " + b.Literal
}

type Identifier struct {
	Base
	Val string
}

func (i *Identifier) String() string {
	return i.Literal
}

type IntegerLiteral struct {
	Base
	Val int64
}

func (i *IntegerLiteral) String() string {
	return i.Literal
}

type FloatLiteral struct {
	Base
	Val float64
}

func (f *FloatLiteral) String() string {
	return f.Literal
}

type StringLiteral struct {
	Base
	Val string
}

// Literal holds the unescaped value so we re-quote it.
func (s *StringLiteral) String() string {
	return strconv.Quote(s.Val)
}

type Boolean struct {
	Base
	Val bool
}

func (b *Boolean) String() string {
	return b.Literal
}

type PrefixExpression struct {
	Base
	Operator string
	Right    Node
}

func (p *PrefixExpression) String() string {
	var out strings.Builder

	out.WriteString("(")
	out.WriteString(p.Operator)
	out.WriteString(p.Right.String())
	out.WriteString(")")

	return out.String()
}

type InfixExpression struct {
	Base
	Left     Node
	Operator string
	Right    Node
}

func (i *InfixExpression) String() string {
	var out strings.Builder

	out.WriteString("(")
	out.WriteString(i.Left.String())
	out.WriteString(" ")
	out.WriteString(i.Operator)
	out.WriteString(" ")
	out.WriteString(i.Right.String())
	out.WriteString(")")

	return out.String()
}

// Empty is the expression of blank text.
type Empty struct {
	Base
}

func (e *Empty) String() string {
	return ""
}
