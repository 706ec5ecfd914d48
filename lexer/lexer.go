package lexer

import (
	"strings"

	"mainlang.io/mainlang/token"
)

// Lexer turns one expression's text into tokens.
type Lexer struct {
	input string
	pos   int
	start int // start of the token being read.
}

func New(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) Pos() int {
	return l.pos
}

// Input returns the text being lexed (used for error reporting).
func (l *Lexer) Input() string {
	return l.input
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.start = l.pos
	ch := l.readChar()
	nextChar := l.peekChar()
	switch ch {
	case '=':
		if nextChar == '=' {
			l.pos++
			return l.newToken(token.EQ)
		}
		return l.newToken(token.ILLEGAL) // no assignment inside expressions.
	case '!':
		if nextChar == '=' {
			l.pos++
			return l.newToken(token.NOTEQ)
		}
		return l.newToken(token.BANG)
	case '<', '>':
		t := token.LT
		if ch == '>' {
			t = token.GT
		}
		if nextChar == '=' {
			l.pos++
			t += token.LTEQ - token.LT
		}
		return l.newToken(t)
	case '&', '|':
		if nextChar != ch {
			return l.newToken(token.ILLEGAL)
		}
		l.pos++
		if ch == '&' {
			return l.newToken(token.AND)
		}
		return l.newToken(token.OR)
	case '+':
		return l.newToken(token.PLUS)
	case '-':
		return l.newToken(token.MINUS)
	case '*':
		return l.newToken(token.ASTERISK)
	case '/':
		return l.newToken(token.SLASH)
	case '%':
		return l.newToken(token.PERCENT)
	case '(':
		return l.newToken(token.LPAREN)
	case ')':
		return l.newToken(token.RPAREN)
	case '"', '`':
		str, ok := l.readString(ch)
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: l.input[l.start:], Pos: l.start}
		}
		return token.Token{Type: token.STRING, Literal: str, Pos: l.start}
	case 0:
		return token.Token{Type: token.EOF, Pos: l.start}
	case '.':
		if !isDigit(nextChar) {
			return l.newToken(token.ILLEGAL)
		}
		// number can start with . eg .5
		return l.readNumber(ch)
	default:
		switch {
		case isLetter(ch):
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: ident, Pos: l.start}
		case isDigit(ch):
			return l.readNumber(ch)
		default:
			return l.newToken(token.ILLEGAL)
		}
	}
}

// newToken makes a token whose literal is the input consumed since start.
func (l *Lexer) newToken(t token.Type) token.Token {
	end := min(l.pos, len(l.input))
	return token.Token{Type: t, Literal: l.input[l.start:end], Pos: l.start}
}

func isWhiteSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (l *Lexer) skipWhitespace() {
	for isWhiteSpace(l.peekChar()) {
		l.pos++
	}
}

func (l *Lexer) readChar() byte {
	ch := l.peekChar()
	l.pos++
	return ch
}

func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func hexCharToHex(ch byte) byte {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}

func (l *Lexer) readHex() byte {
	hb := hexCharToHex(l.readChar()) << 4
	lb := hexCharToHex(l.readChar())
	return hb | lb
}

func (l *Lexer) readUnicode16() rune {
	hb := int(l.readHex()) << 8
	lb := int(l.readHex())
	return rune(hb | lb)
}

func (l *Lexer) readUnicode32() rune {
	hb := l.readUnicode16() << 16
	lb := l.readUnicode16()
	return hb | lb
}

// readString reads up to the closing sep; false if the input ends first.
// Only double quoted strings process escapes.
func (l *Lexer) readString(sep byte) (string, bool) {
	doubleQuotes := (sep == '"')
	buf := strings.Builder{}
	for {
		if l.pos >= len(l.input) {
			return buf.String(), false
		}
		ch := l.readChar()
		switch {
		case doubleQuotes && ch == '\\':
			ch = l.readChar()
			switch ch {
			case 'r':
				ch = '\r'
			case 'n':
				ch = '\n'
			case 't':
				ch = '\t'
			case 'u':
				buf.WriteRune(l.readUnicode16())
				continue
			case 'U':
				buf.WriteRune(l.readUnicode32())
				continue
			case 'x':
				ch = l.readHex()
			}
		case ch == sep:
			return buf.String(), true
		}
		buf.WriteByte(ch)
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos - 1
	for IsAlphaNum(l.peekChar()) {
		l.pos++
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readNumber(ch byte) token.Token {
	t := token.INT
	dotSeen := false
	hasDigits := true
	if ch == '.' {
		t = token.FLOAT
		hasDigits = false
		dotSeen = true
	}
	if ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.pos++
		for isHexDigit(l.peekChar()) {
			l.pos++
		}
		return l.newToken(t)
	}
	if ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.pos++
		for isBinaryDigit(l.peekChar()) {
			l.pos++
		}
		return l.newToken(t)
	}
	for isDigitOrUnderscore(l.peekChar()) {
		hasDigits = true
		l.pos++
	}
	// Fractional part
	if l.peekChar() == '.' && !dotSeen {
		t = token.FLOAT
		l.pos++
		for isDigitOrUnderscore(l.peekChar()) {
			hasDigits = true
			l.pos++
		}
	}
	// Exponent part
	peek := l.peekChar()
	if (peek != 'e' && peek != 'E') || !hasDigits {
		return l.newToken(t)
	}
	errPos := l.pos
	l.pos++
	peek = l.peekChar()
	if peek == '+' || peek == '-' {
		l.pos++
	}
	if !isDigit(l.peekChar()) {
		// Invalid exponent, stop before the 'e'.
		l.pos = errPos
		return l.newToken(t)
	}
	for isDigitOrUnderscore(l.peekChar()) {
		l.pos++
	}
	return l.newToken(token.FLOAT)
}

func isHexDigit(ch byte) bool {
	return isDigitOrUnderscore(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1' || ch == '_'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func IsAlphaNum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isDigitOrUnderscore(ch byte) bool {
	return isDigit(ch) || ch == '_'
}
