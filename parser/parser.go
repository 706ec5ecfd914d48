package parser

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"
	"github.com/rivo/uniseg"
	"mainlang.io/mainlang/ast"
	"mainlang.io/mainlang/lexer"
	"mainlang.io/mainlang/token"
)

type Priority int8

const (
	_ Priority = iota
	LOWEST
	OR          // ||
	AND         // &&
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
)

//go:generate stringer -type=Priority
var _ = PREFIX.String() // force compile error if go generate is missing.

var precedences = map[token.Type]Priority{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOTEQ:    EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTEQ:     LESSGREATER,
	token.GTEQ:     LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
}

type (
	prefixParseFn func() ast.Node
	infixParseFn  func(ast.Node) ast.Node
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t token.Type, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for t := range precedences {
		p.registerInfix(t, p.parseInfixExpression)
	}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses a complete expression from text.
// Shortcut for New(lexer.New(text)).ParseExpression().
func Parse(text string) (ast.Node, []string) {
	p := New(lexer.New(text))
	node := p.ParseExpression()
	return node, p.Errors()
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseExpression parses the whole input as a single expression.
// Blank input yields an *ast.Empty. Check Errors() before using the result.
func (p *Parser) ParseExpression() ast.Node {
	if p.curTokenIs(token.EOF) {
		return &ast.Empty{Base: ast.Base{Token: p.curToken}}
	}
	exp := p.parseExpression(LOWEST)
	if exp != nil && !p.peekTokenIs(token.EOF) {
		p.errorAt(p.peekToken, fmt.Sprintf("unexpected %s", describe(p.peekToken)))
	}
	return exp
}

func sameToken(msg string, actual token.Token, expected token.Type) bool {
	res := actual.Type == expected
	if res {
		log.Debugf("%sTokenIs indeed: %v", msg, actual)
	} else {
		log.LogVf("%sTokenIs not: %s - found %s/%s instead", msg, expected, actual.Type, actual.Literal)
	}
	return res
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return sameToken("cur", p.curToken, t)
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return sameToken("peek", p.peekToken, t)
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorAt(p.peekToken, fmt.Sprintf("expected %s, got %s instead", t, describe(p.peekToken)))
}

// column is the 1 based display column of the token, counted in
// grapheme clusters width so it lines up under what the user typed.
func (p *Parser) column(tok token.Token) int {
	input := p.l.Input()
	pos := min(tok.Pos, len(input))
	return uniseg.StringWidth(input[:pos]) + 1
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	p.errors = append(p.errors, fmt.Sprintf("%s at column %d", msg, p.column(tok)))
}

func describe(tok token.Token) string {
	switch tok.Type { //nolint:exhaustive // only the ones needing special rendering.
	case token.EOF:
		return "end of expression"
	case token.ILLEGAL:
		return fmt.Sprintf("illegal %q", tok.Literal)
	case token.STRING:
		return "string " + strconv.Quote(tok.Literal)
	default:
		return strconv.Quote(tok.Literal)
	}
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errorAt(tok, "unexpected "+describe(tok))
}

func (p *Parser) peekPrecedence() Priority {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) curPrecedence() Priority {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence Priority) ast.Node {
	log.Debugf("parseExpression: %v precedence %s", p.curToken, precedence)
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	for leftExp != nil && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Node {
	i := &ast.Identifier{}
	i.Token = p.curToken
	i.Val = p.curToken.Literal
	return i
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	lit := &ast.IntegerLiteral{}
	lit.Token = p.curToken

	value, err := strconv.ParseInt(p.curToken.Literal, 0, 64)
	if err != nil {
		p.errorAt(p.curToken, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}

	lit.Val = value

	return lit
}

func (p *Parser) parseFloatLiteral() ast.Node {
	lit := &ast.FloatLiteral{}
	lit.Token = p.curToken
	value, err := strconv.ParseFloat(strings.ReplaceAll(p.curToken.Literal, "_", ""), 64)
	if err != nil {
		p.errorAt(p.curToken, fmt.Sprintf("could not parse %q as float", p.curToken.Literal))
		return nil
	}
	lit.Val = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Node {
	s := &ast.StringLiteral{}
	s.Token = p.curToken
	s.Val = p.curToken.Literal
	return s
}

func (p *Parser) parseBoolean() ast.Node {
	b := &ast.Boolean{}
	b.Token = p.curToken
	b.Val = p.curTokenIs(token.TRUE)
	return b
}

func (p *Parser) parsePrefixExpression() ast.Node {
	expression := &ast.PrefixExpression{}
	expression.Token = p.curToken
	expression.Operator = p.curToken.Literal

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Node) ast.Node {
	expression := &ast.InfixExpression{}
	expression.Token = p.curToken
	expression.Operator = p.curToken.Literal
	expression.Left = left

	precedence := p.curPrecedence()
	if p.peekTokenIs(token.EOF) {
		p.errorAt(p.peekToken, fmt.Sprintf("missing right operand for %q", expression.Operator))
		return nil
	}
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}
