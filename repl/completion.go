package repl

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/terminal"
	"mainlang.io/mainlang/token"
	"mainlang.io/mainlang/trie"
)

type AutoComplete struct {
	Trie *trie.Trie
}

// NewCompletion starts with the command and expression keywords and the
// REPL's own exit command.
func NewCompletion() *AutoComplete {
	a := &AutoComplete{trie.NewTrie()}
	info := token.Info()
	for k := range info.Commands {
		a.Trie.Insert(k)
	}
	for k := range info.Keywords {
		a.Trie.Insert(k)
	}
	a.Trie.Insert(ExitCommand)
	return a
}

// Add makes names (procedures, variables) completable.
func (a *AutoComplete) Add(names ...string) {
	for _, n := range names {
		a.Trie.Insert(n)
	}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		return a.Complete(t.Out, line, pos)
	}
}

// Complete expands the word ending at pos. When several names match, they
// are listed on out and the word is expanded to their common prefix.
func (a *AutoComplete) Complete(out io.Writer, line string, pos int) (newLine string, newPos int, ok bool) {
	start := strings.LastIndexAny(line[:pos], " \t") + 1
	l, words := a.Trie.PrefixAll(line[start:pos])
	if len(words) == 0 {
		return
	}
	if len(words) > 1 {
		fmt.Fprintln(out, "One of:", strings.Join(words, " "))
	}
	return line[:start] + words[0][:l] + line[pos:], start + l, true
}
