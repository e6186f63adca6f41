package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/cfmt/driver"
)

const usage = "usage: cfmt [-tokens] <file path>"

func main() {
	const interactiveUsage = "read sources from a prompt"

	var interactive bool
	flag.BoolVar(&interactive, "interactive", false, interactiveUsage)
	flag.BoolVar(&interactive, "i", false, interactiveUsage+" (shorthand)")

	var showTokens bool
	flag.BoolVar(&showTokens, "tokens", false, "print the token stream")

	flag.Parse()

	if interactive {
		if err := RunPrompt(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err := RunFile(path, showTokens); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var history = filepath.Join(xdg.DataHome, "cfmt", ".cfmt_history")

func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	r := driver.NewPassRunner()
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		tokens, err := r.RunSource(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}
}

func RunFile(path string, showTokens bool) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	r := driver.NewPassRunner()
	tokens, err := r.RunSource(string(bytes))
	if err != nil {
		return err
	}

	if showTokens {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	return nil
}
