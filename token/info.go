package token

import "fortio.org/sets"

// Info enables introspection of known commands, keywords and operators.
type MainInfo struct {
	// Commands is the set of line commands (let, function, ...).
	Commands sets.Set[string]
	// Keywords is the set of expression keywords (true, false).
	Keywords sets.Set[string]
	// Tokens is the set of operator and delimiter literals.
	Tokens sets.Set[string]
}

var info = MainInfo{
	Commands: sets.New(LET, FUNCTION, IF, PRINT, ASM),
	Keywords: sets.New("true", "false"),
	Tokens: sets.New("+", "-", "!", "*", "/", "%", "<", ">", "<=", ">=",
		"==", "!=", "&&", "||", "(", ")"),
}

func Info() MainInfo {
	return info
}
