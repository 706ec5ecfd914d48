// Package token defines the tokens of the mainlang expression grammar
// and the command keywords recognized at the start of a line.
package token

import "fortio.org/log"

type Type uint8

type Token struct {
	Type    Type
	Literal string
	Pos     int // byte offset of the first character in the lexed input.
}

const (
	ILLEGAL Type = iota
	EOF

	// Identifiers + literals.
	IDENT  // add, foobar, x, y, ...
	INT    // 1343456
	FLOAT  // 1.5, .5, 1e3
	STRING // "foo" or `foo`

	// Operators.
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	PERCENT

	LT
	GT
	LTEQ
	GTEQ

	EQ
	NOTEQ

	AND
	OR

	// Delimiters.
	LPAREN
	RPAREN

	// Keywords.
	TRUE
	FALSE
)

//go:generate stringer -type=Type
var _ = FALSE.String() // force compile error if go generate is missing.

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		log.Debugf("LookupIdent(%s) found %s", ident, tok.String())
		return tok
	}
	return IDENT
}

// Line level commands, always the first word of a line.
const (
	LET      = "let"
	FUNCTION = "function"
	IF       = "if"
	PRINT    = "print"
	ASM      = "asm"
)

// IsCommand is true for the words that select a built-in command.
func IsCommand(word string) bool {
	return info.Commands.Has(word)
}
