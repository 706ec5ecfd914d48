package parser_test

import (
	"strings"
	"testing"

	"mainlang.io/mainlang/ast"
	"mainlang.io/mainlang/lexer"
	"mainlang.io/mainlang/parser"
)

func checkParserErrors(t *testing.T, p *parser.Parser) {
	t.Helper()
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errors))
	for _, msg := range errors {
		t.Errorf("parser error: %q", msg)
	}
	t.FailNow()
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"+a", "(+a)"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a % b + c", "((a % b) + c)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 >= 4 != 3 <= 4", "((5 >= 4) != (3 <= 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c && d", "((a && b) || (c && d))"},
		{"a == 1 && b < 2", "((a == 1) && (b < 2))"},
		{`"x" + y`, `("x" + y)`},
		{`"a\nb"`, `"a\nb"`},
		{"1.5 * .5", "(1.5 * .5)"},
		{"0x10 + 0b11", "(0x10 + 0b11)"},
	}

	for _, tt := range tests {
		l := lexer.New(tt.input)
		p := parser.New(l)
		exp := p.ParseExpression()
		checkParserErrors(t, p)

		actual := exp.String()
		if actual != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, actual)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	node, errs := parser.Parse("1_000")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	i, ok := node.(*ast.IntegerLiteral)
	if !ok || i.Val != 1000 {
		t.Errorf("expected integer 1000, got %#v", node)
	}
	node, _ = parser.Parse("2.5e1")
	f, ok := node.(*ast.FloatLiteral)
	if !ok || f.Val != 25 {
		t.Errorf("expected float 25, got %#v", node)
	}
	node, _ = parser.Parse("false")
	b, ok := node.(*ast.Boolean)
	if !ok || b.Val {
		t.Errorf("expected false boolean, got %#v", node)
	}
	node, _ = parser.Parse(`"hi there"`)
	s, ok := node.(*ast.StringLiteral)
	if !ok || s.Val != "hi there" {
		t.Errorf("expected string, got %#v", node)
	}
}

func TestEmptyExpression(t *testing.T) {
	node, errs := parser.Parse("   ")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if _, ok := node.(*ast.Empty); !ok {
		t.Errorf("expected Empty node, got %#v", node)
	}
}

func TestParsingErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 +", `missing right operand for "+" at column 4`},
		{"(1 + 2", "expected RPAREN, got end of expression instead at column 7"},
		{"1 2", `unexpected "2" at column 3`},
		{")", `unexpected ")" at column 1`},
		{"a = 1", `unexpected illegal "=" at column 3`},
		{"-", "unexpected end of expression at column 2"},
		{`"open`, `unexpected illegal "\"open" at column 1`},
		{"a && @", `unexpected illegal "@" at column 6`},
		{"99999999999999999999", `could not parse "99999999999999999999" as integer at column 1`},
		{`"日本" 1`, `unexpected "1" at column 8`},
	}
	for _, tt := range tests {
		_, errs := parser.Parse(tt.input)
		if len(errs) == 0 {
			t.Errorf("input %q: expected errors, got none", tt.input)
			continue
		}
		if errs[0] != tt.expected {
			t.Errorf("input %q: got error %q, expected %q (all: %s)", tt.input, errs[0], tt.expected,
				strings.Join(errs, "; "))
		}
	}
}

func TestPriorityString(t *testing.T) {
	if parser.PRODUCT.String() != "PRODUCT" {
		t.Errorf("unexpected %q", parser.PRODUCT.String())
	}
	if parser.Priority(0).String() != "Priority(0)" {
		t.Errorf("unexpected %q", parser.Priority(0).String())
	}
}
