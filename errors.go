package main

import (
	"fmt"
	"io"
)

// ErrorReporter centralizes diagnostic output for every phase, replacing
// the process-wide had_error flag of the original implementation with a
// value the driver owns and each phase borrows. This keeps the
// interpreter reentrant: a fresh ErrorReporter per run means two runs
// in the same process never share error state.
type ErrorReporter struct {
	w               io.Writer
	hadError        bool
	hadRuntimeError bool
}

func NewErrorReporter(w io.Writer) *ErrorReporter {
	return &ErrorReporter{w: w}
}

// Report writes a diagnostic in the form "[line N] Error<where>: <msg>"
// and marks the run as having failed a static phase.
func (r *ErrorReporter) Report(line int, where, msg string) {
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", line, where, msg)
	r.hadError = true
}

// ReportScan reports a scanner-phase error; where is always empty.
func (r *ErrorReporter) ReportScan(line int, msg string) {
	r.Report(line, "", msg)
}

// ReportToken reports a parser or resolver error at tok, using " at end"
// for an EOF-position token and " at '<lexeme>'" otherwise.
func (r *ErrorReporter) ReportToken(tok Token, msg string) {
	if tok.typ == END {
		r.Report(tok.line, " at end", msg)
		return
	}
	r.Report(tok.line, " at '"+tok.lexeme+"'", msg)
}

// ReportRuntime reports an unwound runtime error and marks the run as
// having failed at runtime, distinct from a static failure.
func (r *ErrorReporter) ReportRuntime(err *RuntimeError) {
	fmt.Fprintf(r.w, "[line %d] Error at '%s': %s\n", err.tok.line, err.tok.lexeme, err.msg)
	r.hadRuntimeError = true
}

func (r *ErrorReporter) HadError() bool        { return r.hadError }
func (r *ErrorReporter) HadRuntimeError() bool { return r.hadRuntimeError }

// ParseError is a panic-mode signal carrying the token and message
// needed for diagnostic reporting; it is recovered at declaration
// boundaries, never allowed to escape the parser.
type ParseError struct {
	tok Token
	msg string
}

func (e *ParseError) Error() string {
	return e.msg
}

// RuntimeError unwinds interpretation to the top level, carrying the
// token responsible for line/lexeme reporting.
type RuntimeError struct {
	tok Token
	msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError at '%s': %s", e.tok.line, e.tok.lexeme, e.msg)
}
