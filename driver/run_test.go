package driver_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/cfmt/driver"
	"github.com/takoeight0821/cfmt/lexer"
	"github.com/takoeight0821/cfmt/token"
)

// stripComments drops comment tokens from the sequence.
type stripComments struct{}

func (stripComments) Init([]token.Token) error {
	return nil
}

func (stripComments) Run(tokens []token.Token) ([]token.Token, error) {
	kept := []token.Token{}
	for _, tok := range tokens {
		if tok.Kind == token.SLASHSLASH || tok.Kind == token.SLASHSTAR {
			continue
		}
		kept = append(kept, tok)
	}

	return kept, nil
}

type failingPass struct {
	err error
}

func (p failingPass) Init([]token.Token) error {
	return nil
}

func (p failingPass) Run([]token.Token) ([]token.Token, error) {
	return nil, p.err
}

func TestRunSourceAppliesPasses(t *testing.T) {
	t.Parallel()

	runner := driver.NewPassRunner()
	runner.AddPass(stripComments{})

	got, err := runner.RunSource("x = 1; // set x\n")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}

	want := []token.Token{
		token.New(token.IDENT, "x"),
		token.New(token.EQUAL, "="),
		token.New(token.NUMBER, "1"),
		token.New(token.SEMICOLON, ";"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunSource mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnPassError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("pass failed")
	runner := driver.NewPassRunner()
	runner.AddPass(failingPass{err: sentinel})
	runner.AddPass(stripComments{})

	_, err := runner.RunSource("x;")
	if !errors.Is(err, sentinel) {
		t.Fatalf("RunSource returned %v, want the pass error", err)
	}
}

func TestRunSourceSurfacesLexError(t *testing.T) {
	t.Parallel()

	_, err := driver.NewPassRunner().RunSource("a = @b;")
	var unknown lexer.UnknownCharacterError
	if !errors.As(err, &unknown) {
		t.Fatalf("RunSource returned %v, want UnknownCharacterError", err)
	}
	if unknown.Char != '@' {
		t.Errorf("UnknownCharacterError.Char = %q, want '@'", unknown.Char)
	}
}
