package main

import (
	"bytes"
	"strings"
	"testing"
)

// runProgram scans, parses, resolves, and interprets source, returning
// everything printed to stdout and whatever diagnostics the
// ErrorReporter accumulated.
func runProgram(t *testing.T, source string) (stdout string, diagnostics string) {
	t.Helper()
	var errBuf, outBuf bytes.Buffer
	reporter := NewErrorReporter(&errBuf)

	tokens := NewScanner(source, reporter).ScanTokens()
	if reporter.HadError() {
		return outBuf.String(), errBuf.String()
	}

	stmts := NewParser(tokens, reporter).Parse()
	if reporter.HadError() {
		return outBuf.String(), errBuf.String()
	}

	interpreter := NewInterpreter(reporter, &outBuf)
	NewResolver(interpreter, reporter).Resolve(stmts)
	if reporter.HadError() {
		return outBuf.String(), errBuf.String()
	}

	interpreter.Interpret(stmts)
	return outBuf.String(), errBuf.String()
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, diag := runProgram(t, `print 1 + 2 * 3 - (4 - 1) / 3;`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "6"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringConcatenation(t *testing.T) {
	out, diag := runProgram(t, `print "foo" + "bar";`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "foobar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClosureCapturesByReference(t *testing.T) {
	out, diag := runProgram(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "1\n2\n3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, diag := runProgram(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "...\nWoof"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	out, diag := runProgram(t, `
		class Thing {
			init(label) {
				this.label = label;
			}
		}
		var t = Thing("widget");
		print t.label;
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "widget"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThisOutsideClassIsStaticError(t *testing.T) {
	_, diag := runProgram(t, `print this;`)
	if diag == "" {
		t.Fatalf("expected a static error for 'this' outside a class")
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	out, diag := runProgram(t, `print undeclared;`)
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if diag == "" {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
	if !strings.Contains(diag, "Undefined variable") {
		t.Errorf("expected an undefined-variable diagnostic, got %q", diag)
	}
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	_, diag := runProgram(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	if diag == "" {
		t.Fatalf("expected a runtime error for an arity mismatch")
	}
	if !strings.Contains(diag, "Expected 2 arguments but got 1") {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
}

func TestLambdaClosureAndCall(t *testing.T) {
	out, diag := runProgram(t, `
		var add = fun (a, b) { return a + b; };
		print add(2, 3);
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "5"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWhileAndForLoops(t *testing.T) {
	out, diag := runProgram(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
		for (var j = 0; j < 2; j = j + 1) {
			print j;
		}
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "0\n1\n2\n0\n1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFieldsAndMethodsOnInstances(t *testing.T) {
	out, diag := runProgram(t, `
		class Box {
			fill(value) {
				this.value = value;
				return this;
			}
			show() {
				print this.value;
			}
		}
		Box().fill(42).show();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if got, want := strings.TrimSpace(out), "42"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOperandMustBeNumberRuntimeError(t *testing.T) {
	_, diag := runProgram(t, `print -"oops";`)
	if !strings.Contains(diag, "Operand must be a number.") {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
}

func TestOperandsMustBeNumbersRuntimeError(t *testing.T) {
	_, diag := runProgram(t, `print "a" - 1;`)
	if !strings.Contains(diag, "Operands must be numbers.") {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
}

func TestOperandsMustBeTwoNumbersOrTwoStrings(t *testing.T) {
	_, diag := runProgram(t, `print "a" + 1;`)
	if !strings.Contains(diag, "Operands must be two numbers or two strings.") {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
}
