// Package parser consumes the token stream produced by the lexer.
//
// The grammar passes are not built yet. Parse drains the stream into a
// flat Tree so the pass runner has something to hand around; structural
// parsing replaces the Tree body once the formatter grows a grammar.
package parser

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/cfmt/lexer"
	"github.com/takoeight0821/cfmt/token"
)

// TokenReader is the pull interface the parser consumes. *lexer.Lexer
// implements it. Finished distinguishes a clean end of input from a scan
// that stopped early.
type TokenReader interface {
	Next() (token.Token, error)
	Finished() bool
}

// Tree is the parse result. For now it carries the token sequence.
type Tree struct {
	Tokens []token.Token
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse pulls tokens one at a time until the reader reports a clean end
// of input. Any other error is fatal to the parse.
func (p *Parser) Parse(tokens TokenReader) (*Tree, error) {
	tree := &Tree{}

	for {
		tok, err := tokens.Next()
		if err != nil {
			if errors.Is(err, lexer.ErrEndOfInput) && tokens.Finished() {
				return tree, nil
			}

			return nil, fmt.Errorf("lex: %w", err)
		}
		tree.Tokens = append(tree.Tokens, tok)
	}
}
