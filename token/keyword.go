package token

// Keyword is the closed set of reserved words.
//
//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Keyword
type Keyword int

const (
	IF Keyword = iota
	ELSE
	RETURN
	UNSIGNED
	FOR
	DO
	WHILE
	GOTO
	SWITCH
	CASE
	CONST
	VOLATILE
	EXTERNAL
	STATIC
	AUTO
	STRUCT
	UNION
)

var keywords = map[string]Keyword{
	"if":       IF,
	"else":     ELSE,
	"return":   RETURN,
	"unsigned": UNSIGNED,
	"for":      FOR,
	"do":       DO,
	"while":    WHILE,
	"goto":     GOTO,
	"switch":   SWITCH,
	"case":     CASE,
	"const":    CONST,
	"volatile": VOLATILE,
	"external": EXTERNAL,
	"static":   STATIC,
	"auto":     AUTO,
	"struct":   STRUCT,
	"union":    UNION,
}

// LookupKeyword matches a word against the reserved word table. Only
// exact matches count; the caller is expected to scan the whole word
// before asking.
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := keywords[word]

	return k, ok
}
