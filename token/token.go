package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Operators and punctuation.
	PLUS
	PLUSPLUS
	MINUS
	MINUSMINUS
	STAR
	SLASH
	BANG
	BANGEQUAL
	TILDE
	CARET
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL
	SEMICOLON
	AMPERSAND
	COMMA
	DOT
	ARROW

	// Paired delimiters, tagged with a Direction.
	BRACE
	PAREN
	BRACKET

	// Comments, literals and identifiers.
	SLASHSLASH
	SLASHSTAR
	IDENT
	NUMBER
	STRING
	KEYWORD
)

// Direction denotes whether a paired symbol, such as a bracket, opens or
// closes its pair.
//
//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Direction
type Direction int

const (
	LEFT Direction = iota
	RIGHT
)

// Token is one classified unit of source text. Text holds the lexeme for
// most kinds; for SLASHSLASH, SLASHSTAR and STRING it holds the body with
// escape backslashes preserved verbatim. Dir is set for delimiter kinds
// only, Word for KEYWORD only.
type Token struct {
	Kind Kind
	Text string
	Dir  Direction
	Word Keyword
}

func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

func Delim(kind Kind, text string, dir Direction) Token {
	return Token{Kind: kind, Text: text, Dir: dir}
}

func Reserved(word Keyword, text string) Token {
	return Token{Kind: KEYWORD, Text: text, Word: word}
}

func (t Token) String() string {
	switch t.Kind {
	case BRACE, PAREN, BRACKET:
		return fmt.Sprintf("{%v, %q, %v}", t.Kind, t.Text, t.Dir)
	case KEYWORD:
		return fmt.Sprintf("{%v, %q, %v}", t.Kind, t.Text, t.Word)
	default:
		return fmt.Sprintf("{%v, %q}", t.Kind, t.Text)
	}
}
