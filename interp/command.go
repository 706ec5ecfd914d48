package interp

import (
	"strconv"
	"strings"

	"mainlang.io/mainlang/lexer"
	"mainlang.io/mainlang/parser"
	"mainlang.io/mainlang/token"
)

// Kind is the command a line selects.
type Kind uint8

const (
	NOOP Kind = iota
	LET
	FUNCTION
	IF
	PRINT
	ASM
	CALL
)

//go:generate stringer -type=Kind
var _ = CALL.String() // force compile error if go generate is missing.

// Command is one parsed line.
type Command struct {
	Kind Kind
	Name string   // variable for let, procedure for function and calls.
	Expr string   // expression for let and print, condition for if, raw text for asm.
	Args []string // call arguments: accepted, never bound.
	Then *Command // statement guarded by an if, nil when the line has none.
	Line string   // source text of the statement.
}

// Parse turns a line into a Command without executing it.
// Whether the first word is a call depends on the procedures defined so far.
func (s *State) Parse(line string) Command {
	c := s.parseWords(lexer.Words(line))
	c.Line = line
	return c
}

func (s *State) parseWords(words []string) Command {
	if len(words) == 0 {
		return Command{Kind: NOOP}
	}
	switch words[0] {
	case token.LET:
		if len(words) < 2 {
			return Command{Kind: NOOP}
		}
		c := Command{Kind: LET, Name: words[1]}
		if len(words) > 3 {
			c.Expr = lexer.Join(words[3:])
		}
		return c
	case token.FUNCTION:
		if len(words) < 2 {
			return Command{Kind: NOOP}
		}
		return Command{Kind: FUNCTION, Name: words[1]}
	case token.IF:
		cond, rest := s.splitCondition(words[1:])
		c := Command{Kind: IF, Expr: lexer.Join(cond)}
		if len(rest) > 0 {
			then := s.parseWords(rest)
			then.Line = lexer.Join(rest)
			c.Then = &then
		}
		return c
	case token.PRINT:
		return Command{Kind: PRINT, Expr: lexer.Join(words[1:])}
	case token.ASM:
		return Command{Kind: ASM, Expr: lexer.Join(words[1:])}
	}
	if s.isProcedure(words[0]) {
		return Command{Kind: CALL, Name: words[0], Args: words[1:]}
	}
	return Command{Kind: NOOP}
}

// splitCondition cuts the words following `if` where a statement starts:
// the first command keyword or known procedure name.
func (s *State) splitCondition(words []string) (cond, rest []string) {
	for i, w := range words {
		if token.IsCommand(w) || s.isProcedure(w) {
			return words[:i], words[i:]
		}
	}
	return words, nil
}

// normalized shows how an expression was understood, or the raw text
// when it doesn't parse.
func normalized(expr string) string {
	node, errs := parser.Parse(expr)
	if len(errs) != 0 {
		return expr
	}
	return node.String()
}

func (c *Command) String() string {
	out := strings.Builder{}
	switch c.Kind {
	case NOOP:
		out.WriteString("noop ")
		out.WriteString(strconv.Quote(strings.TrimSpace(c.Line)))
	case LET:
		out.WriteString("let ")
		out.WriteString(c.Name)
		out.WriteString(" = ")
		out.WriteString(normalized(c.Expr))
	case FUNCTION:
		out.WriteString("function ")
		out.WriteString(c.Name)
		out.WriteString(" {")
		for i, stmt := range (Procedure{Name: c.Name, Definition: c.Line}).Body() {
			if i > 0 {
				out.WriteString(";")
			}
			out.WriteString(" ")
			out.WriteString(strings.TrimSpace(stmt))
		}
		out.WriteString(" }")
	case IF:
		out.WriteString("if ")
		out.WriteString(normalized(c.Expr))
		if c.Then != nil {
			out.WriteString(" then ")
			out.WriteString(c.Then.String())
		}
	case PRINT:
		out.WriteString("print ")
		out.WriteString(normalized(c.Expr))
	case ASM:
		out.WriteString("asm ")
		out.WriteString(strconv.Quote(c.Expr))
	case CALL:
		out.WriteString("call ")
		out.WriteString(c.Name)
		if len(c.Args) > 0 {
			out.WriteString(" (unbound args: ")
			out.WriteString(lexer.Join(c.Args))
			out.WriteString(")")
		}
	}
	return out.String()
}
