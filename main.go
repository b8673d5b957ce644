package main

import (
	"fmt"
	"os"
)

// we say lantern instead of glox bc this one's a tree-walker all the
// way down, no bytecode stage.

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Source file not provided!")
		os.Exit(1)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !run(string(source)) {
		os.Exit(1)
	}
}

// run drives the Scanner -> Parser -> Resolver -> Interpreter pipeline
// for a single source file, gating each phase on the previous one's
// ErrorReporter state per the error-handling design: scan/parse errors
// prevent resolution, resolve errors prevent interpretation. It returns
// false if any phase reported an error.
func run(source string) bool {
	reporter := NewErrorReporter(os.Stderr)

	scanner := NewScanner(source, reporter)
	tokens := scanner.ScanTokens()
	if reporter.HadError() {
		return false
	}

	parser := NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return false
	}

	interpreter := NewInterpreter(reporter, os.Stdout)
	resolver := NewResolver(interpreter, reporter)
	resolver.Resolve(statements)
	if reporter.HadError() {
		return false
	}

	interpreter.Interpret(statements)
	return !reporter.HadRuntimeError()
}
