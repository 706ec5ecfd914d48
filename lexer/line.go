package lexer

import "strings"

// Words splits a source line into its whitespace separated words,
// ignoring leading and trailing whitespace. A blank line has no words.
func Words(line string) []string {
	return strings.Fields(line)
}

// Join rebuilds expression text from a run of words, single space separated.
func Join(words []string) string {
	return strings.Join(words, " ")
}
