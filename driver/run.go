package driver

import (
	"fmt"

	"github.com/takoeight0821/cfmt/lexer"
	"github.com/takoeight0821/cfmt/parser"
	"github.com/takoeight0821/cfmt/token"
)

// Pass rewrites the token sequence. Formatting passes plug in here.
type Pass interface {
	Init([]token.Token) error
	Run([]token.Token) ([]token.Token, error)
}

type PassRunner struct {
	passes []Pass
}

func NewPassRunner() *PassRunner {
	return &PassRunner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current tokens.
func (r *PassRunner) Run(tokens []token.Token) ([]token.Token, error) {
	for _, pass := range r.passes {
		err := pass.Init(tokens)
		if err != nil {
			return tokens, fmt.Errorf("init: %w", err)
		}
		tokens, err = pass.Run(tokens)
		if err != nil {
			return tokens, fmt.Errorf("run: %w", err)
		}
	}

	return tokens, nil
}

// RunSource tokenizes and parses the source code, then executes passes
// in order. The first error wins; nothing is recovered.
func (r *PassRunner) RunSource(source string) ([]token.Token, error) {
	tree, err := parser.NewParser().Parse(lexer.New(source))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return r.Run(tree.Tokens)
}
