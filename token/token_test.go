package token_test

import (
	"testing"

	"github.com/takoeight0821/cfmt/token"
)

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	words := map[string]token.Keyword{
		"if":       token.IF,
		"else":     token.ELSE,
		"return":   token.RETURN,
		"unsigned": token.UNSIGNED,
		"for":      token.FOR,
		"do":       token.DO,
		"while":    token.WHILE,
		"goto":     token.GOTO,
		"switch":   token.SWITCH,
		"case":     token.CASE,
		"const":    token.CONST,
		"volatile": token.VOLATILE,
		"external": token.EXTERNAL,
		"static":   token.STATIC,
		"auto":     token.AUTO,
		"struct":   token.STRUCT,
		"union":    token.UNION,
	}

	for word, want := range words {
		got, ok := token.LookupKeyword(word)
		if !ok {
			t.Errorf("LookupKeyword(%q) found no match", word)
			continue
		}
		if got != want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", word, got, want)
		}
	}

	for _, word := range []string{"", "If", "FOR", "foreign", "whiles", "int"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("LookupKeyword(%q) matched, want no match", word)
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.New(token.PLUSPLUS, "++"), `{PLUSPLUS, "++"}`},
		{token.Delim(token.PAREN, "(", token.LEFT), `{PAREN, "(", LEFT}`},
		{token.Delim(token.BRACKET, "]", token.RIGHT), `{BRACKET, "]", RIGHT}`},
		{token.Reserved(token.FOR, "for"), `{KEYWORD, "for", FOR}`},
		{token.New(token.STRING, `a\"b`), `{STRING, "a\\\"b"}`},
		{token.New(token.SLASHSLASH, " a comment"), `{SLASHSLASH, " a comment"}`},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
