package utils

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/cfmt/driver"
	"gopkg.in/yaml.v3"
)

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles lists every C source file under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(path, ".c") {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

type Reporter interface {
	Errorf(format string, args ...interface{})
}

// RunTest feeds input through the runner and diffs the rendered token
// stream against expected. Benchmarks skip the diff.
func RunTest(runner *driver.PassRunner, test Reporter, label, input, expected string) {
	tokens, err := runner.RunSource(input)
	if err != nil {
		test.Errorf("RunSource %s returned error: %v", label, err)
		return
	}

	if _, ok := test.(*testing.B); ok {
		return
	}

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.String())
		b.WriteString("\n")
	}
	actual := b.String()

	if diff := cmp.Diff(expected, actual); diff != "" {
		test.Errorf("%s mismatch (-want +got):\n%s", label, diff)
	}
}
