// Package lexer turns C source text into a stream of tokens.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/takoeight0821/cfmt/token"
)

// ErrEndOfInput reports that no characters remain. At a clean token
// boundary it is the expected terminal signal, not a failure.
var ErrEndOfInput = errors.New("end of input")

// MismatchError reports that an assumption about the character stream did
// not hold. It never escapes through Next under correct usage; eat doubles
// as a probe for optional characters and the failed probe is discarded.
type MismatchError struct {
	Want rune
	Got  rune
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("expected %q, found %q", e.Want, e.Got)
}

type InvalidNumberError struct {
	Text string
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number: %q has a second decimal point", e.Text)
}

type UnknownCharacterError struct {
	Char rune
}

func (e UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character: %q", e.Char)
}

// Lexer is a single-pass scanner over one source file. The cursor only
// moves forward, one character at a time; a Lexer cannot be reset or
// reused, and must not be advanced from more than one goroutine.
type Lexer struct {
	source []rune
	index  int
}

func New(source string) *Lexer {
	return &Lexer{source: []rune(source), index: 0}
}

// Lex tokenizes the whole source, stopping at the first error.
func Lex(source string) ([]token.Token, error) {
	lexer := New(source)
	tokens := []token.Token{}

	for {
		tok, err := lexer.Next()
		if errors.Is(err, ErrEndOfInput) && lexer.Finished() {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// Finished reports whether every character has been consumed.
func (l *Lexer) Finished() bool {
	return l.index == len(l.source)
}

func (l *Lexer) peek() (rune, error) {
	if l.index >= len(l.source) {
		return 0, ErrEndOfInput
	}

	return l.source[l.index], nil
}

// eat consumes the next character if it equals want. Callers invoke it
// after peeking, or as a cheap probe for an optional character.
func (l *Lexer) eat(want rune) error {
	got, err := l.peek()
	if err != nil {
		return err
	}
	if got != want {
		return MismatchError{Want: want, Got: got}
	}
	l.index++

	return nil
}

func (l *Lexer) trimWhitespace() {
	for {
		c, err := l.peek()
		if err != nil || !unicode.IsSpace(c) {
			return
		}
		l.index++
	}
}

// eatUntil consumes characters up to and including goal, returning what
// came before it. A backslash escapes the character after it, so an
// escaped goal does not terminate the scan; the backslash stays in the
// result verbatim. If the input runs out first, the partial result is
// returned as-is: the formatter is lenient about unterminated literals.
func (l *Lexer) eatUntil(goal rune) string {
	var result strings.Builder
	escaped := false

	for {
		c, err := l.peek()
		if err != nil {
			break
		}
		l.index++

		if !escaped && c == goal {
			break
		}

		escaped = !escaped && c == '\\'
		result.WriteRune(c)
	}

	return result.String()
}

// eatLine consumes the rest of the current line. Handy for line comments,
// nothing else really.
func (l *Lexer) eatLine() string {
	return l.eatUntil('\n')
}

func (l *Lexer) eatStringLiteral() (string, error) {
	if err := l.eat('"'); err != nil {
		return "", err
	}

	return l.eatUntil('"'), nil
}

// eatBlockComment consumes characters up to and including the closing */
// and returns the body. Escapes mean nothing inside a block comment. An
// unterminated comment yields the partial body, same as eatUntil.
func (l *Lexer) eatBlockComment() string {
	var result strings.Builder

	for {
		c, err := l.peek()
		if err != nil {
			break
		}
		l.index++

		if c == '*' && l.eat('/') == nil {
			break
		}

		result.WriteRune(c)
	}

	return result.String()
}

// eatNumber consumes digits and at most one decimal point, keeping the
// literal as raw text. A second decimal point is an InvalidNumberError.
func (l *Lexer) eatNumber() (string, error) {
	var result strings.Builder
	periodPassed := false

	for {
		c, err := l.peek()
		if err != nil {
			break
		}

		if c == '.' {
			if periodPassed {
				return "", InvalidNumberError{Text: result.String() + "."}
			}
			periodPassed = true
		} else if !isDigit(c) {
			break
		}

		l.index++
		result.WriteRune(c)
	}

	return result.String(), nil
}

// eatWord consumes every character that might be part of an identifier or
// a keyword.
func (l *Lexer) eatWord() string {
	var result strings.Builder

	for {
		c, err := l.peek()
		if err != nil || !isWordChar(c) {
			break
		}
		l.index++
		result.WriteRune(c)
	}

	return result.String()
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isWordChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// Every character that can start a punctuation or operator token.
const punctuation = "+-*/!~^=><(){}[];&,."

// Next scans and returns the next token. Two-character operators win over
// their one-character prefixes, and a word is only checked against the
// keyword table once the whole alphanumeric run is captured. At the end
// of the input Next returns ErrEndOfInput; pair it with Finished to tell
// a clean stop from anything else.
func (l *Lexer) Next() (token.Token, error) {
	l.trimWhitespace()

	c, err := l.peek()
	if err != nil {
		return token.Token{}, err
	}

	switch {
	case c == '"':
		body, err := l.eatStringLiteral()
		if err != nil {
			return token.Token{}, err
		}

		return token.New(token.STRING, body), nil
	case isDigit(c):
		text, err := l.eatNumber()
		if err != nil {
			return token.Token{}, err
		}

		return token.New(token.NUMBER, text), nil
	case isWordStart(c):
		word := l.eatWord()
		if keyword, ok := token.LookupKeyword(word); ok {
			return token.Reserved(keyword, word), nil
		}

		return token.New(token.IDENT, word), nil
	}

	if !strings.ContainsRune(punctuation, c) {
		return token.Token{}, UnknownCharacterError{Char: c}
	}
	if err := l.eat(c); err != nil {
		return token.Token{}, err
	}

	switch c {
	case '+':
		if l.eat('+') == nil {
			return token.New(token.PLUSPLUS, "++"), nil
		}

		return token.New(token.PLUS, "+"), nil
	case '-':
		if l.eat('-') == nil {
			return token.New(token.MINUSMINUS, "--"), nil
		}
		if l.eat('>') == nil {
			return token.New(token.ARROW, "->"), nil
		}

		return token.New(token.MINUS, "-"), nil
	case '*':
		return token.New(token.STAR, "*"), nil
	case '/':
		if l.eat('/') == nil {
			return token.New(token.SLASHSLASH, l.eatLine()), nil
		}
		if l.eat('*') == nil {
			return token.New(token.SLASHSTAR, l.eatBlockComment()), nil
		}

		return token.New(token.SLASH, "/"), nil
	case '!':
		if l.eat('=') == nil {
			return token.New(token.BANGEQUAL, "!="), nil
		}

		return token.New(token.BANG, "!"), nil
	case '~':
		return token.New(token.TILDE, "~"), nil
	case '^':
		return token.New(token.CARET, "^"), nil
	case '=':
		if l.eat('=') == nil {
			return token.New(token.EQUALEQUAL, "=="), nil
		}

		return token.New(token.EQUAL, "="), nil
	case '>':
		if l.eat('=') == nil {
			return token.New(token.GREATEREQUAL, ">="), nil
		}

		return token.New(token.GREATER, ">"), nil
	case '<':
		if l.eat('=') == nil {
			return token.New(token.LESSEQUAL, "<="), nil
		}

		return token.New(token.LESS, "<"), nil
	case '(':
		return token.Delim(token.PAREN, "(", token.LEFT), nil
	case ')':
		return token.Delim(token.PAREN, ")", token.RIGHT), nil
	case '{':
		return token.Delim(token.BRACE, "{", token.LEFT), nil
	case '}':
		return token.Delim(token.BRACE, "}", token.RIGHT), nil
	case '[':
		return token.Delim(token.BRACKET, "[", token.LEFT), nil
	case ']':
		return token.Delim(token.BRACKET, "]", token.RIGHT), nil
	case ';':
		return token.New(token.SEMICOLON, ";"), nil
	case '&':
		return token.New(token.AMPERSAND, "&"), nil
	case ',':
		return token.New(token.COMMA, ","), nil
	case '.':
		return token.New(token.DOT, "."), nil
	}

	return token.Token{}, UnknownCharacterError{Char: c}
}
