// Trie implements a byte trie data structure, used for tab completion
// of command keywords and of the names defined in a session.
// It is fast as it uses arrays instead of maps.
package trie // import "mainlang.io/mainlang/trie"

type Trie struct {
	// Children of this node
	children [256]*Trie
	// This node itself is a valid leaf (end of a word) in addition having children.
	valid bool
	leaf  bool // Not really needed outside of debugging but with struct alignment it doesn't cost anything extra.
}

// Save some memory by having a shared end marker for leaves.
// Only one having "leaf" set to true.
var endMarker = &Trie{valid: true, leaf: true}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Insert(word string) {
	l := len(word)
	for i := range l {
		char := word[i]
		last := i == l-1
		child := t.children[char]
		switch {
		case child == nil && last:
			t.children[char] = endMarker // Shared for all leaves, saves memory.
		case child == nil:
			t.children[char] = &Trie{}
		case child == endMarker && !last:
			// This was a valid leaf before, keep it valid as an inner node.
			t.children[char] = &Trie{valid: true}
		case last:
			child.valid = true
		}
		t = t.children[char]
	}
}

func (t *Trie) Contains(word string) bool {
	return t.Prefix(word).IsValid()
}

func (t *Trie) Prefix(word string) *Trie {
	for i := range len(word) {
		char := word[i]
		t = t.children[char]
		if t == nil {
			return nil
		}
	}
	return t
}

func (t *Trie) IsLeaf() bool {
	return t != nil && t.leaf
}

func (t *Trie) IsValid() bool {
	return t != nil && t.valid
}

// PrefixAll returns every word starting with prefix, in byte order,
// along with the length of the longest prefix they all share.
func (t *Trie) PrefixAll(prefix string) (int, []string) {
	n := t.Prefix(prefix)
	if n == nil {
		return 0, nil
	}
	var words []string
	n.collect([]byte(prefix), &words)
	if len(words) == 0 {
		return 0, nil
	}
	l := len(words[0])
	for _, w := range words[1:] {
		l = min(l, commonLen(words[0], w))
	}
	return l, words
}

func (t *Trie) collect(buf []byte, words *[]string) {
	if t.valid {
		*words = append(*words, string(buf))
	}
	for c, child := range t.children {
		if child != nil {
			child.collect(append(buf, byte(c)), words)
		}
	}
}

func commonLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

/*
  A-B
  A-B-C

  [A] -> [B] children[C] = endMarker
*/
