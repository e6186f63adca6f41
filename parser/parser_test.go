package parser_test

import (
	"errors"
	"os"
	"testing"

	"github.com/takoeight0821/cfmt/driver"
	"github.com/takoeight0821/cfmt/lexer"
	"github.com/takoeight0821/cfmt/parser"
	"github.com/takoeight0821/cfmt/utils"
)

func TestParseFromTestData(t *testing.T) {
	t.Parallel()
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)
	for _, testcase := range testcases {
		runner := driver.NewPassRunner()
		if expected, ok := testcase.Expected["parser"]; ok {
			utils.RunTest(runner, t, testcase.Label, testcase.Input, expected)
		} else {
			utils.RunTest(runner, t, testcase.Label, testcase.Input, "no expected value")
		}
	}
}

func BenchmarkFromTestData(b *testing.B) {
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)

	for _, testcase := range testcases {
		b.Run(testcase.Label, func(b *testing.B) {
			for range b.N {
				runner := driver.NewPassRunner()
				utils.RunTest(runner, b, testcase.Label, testcase.Input, testcase.Expected["parser"])
			}
		})
	}
}

func TestParseStopsOnFirstLexError(t *testing.T) {
	t.Parallel()

	_, err := parser.NewParser().Parse(lexer.New("int x = 1.2.3;"))
	var invalid lexer.InvalidNumberError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse returned %v, want InvalidNumberError", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	tree, err := parser.NewParser().Parse(lexer.New(" \n\t "))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(tree.Tokens) != 0 {
		t.Errorf("Parse of blank input produced tokens: %v", tree.Tokens)
	}
}
