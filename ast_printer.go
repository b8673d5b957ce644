package main

import (
	"strconv"
	"strings"
)

// PrintExpr renders expr as a parenthesized, Lisp-style canonical form,
// e.g. "(+ 1 (group 2))". It exists to exercise the round-trip testable
// property (parse, print, re-parse, compare) and for debugging — it is
// not on the interpreter's evaluation path.
//
// Grounded on original_source/inc/ast_printer.h & src/ast_printer.cpp's
// Ast_printer visitor, adapted to this repo's type-switch dispatch
// style and extended to the OOP expressions that file predates.
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return stringifyLiteral(e.value)
	case *Grouping:
		return parenthesize("group", e.expression)
	case *Unary:
		return parenthesize(e.op.lexeme, e.right)
	case *Binary:
		return parenthesize(e.op.lexeme, e.left, e.right)
	case *Logical:
		return parenthesize(e.op.lexeme, e.left, e.right)
	case *Variable:
		return e.name.lexeme
	case *Assign:
		return parenthesize("= "+e.name.lexeme, e.value)
	case *Call:
		return parenthesize("call", append([]Expr{e.callee}, e.arguments...)...)
	case *Lambda:
		return "(fun " + PrintStmts(e.body) + ")"
	case *Get:
		return parenthesize(". "+e.name.lexeme, e.object)
	case *Set:
		return parenthesize("=. "+e.name.lexeme, e.object, e.value)
	case *This:
		return "this"
	case *Super:
		return "(super " + e.method.lexeme + ")"
	default:
		panic("PrintExpr: unhandled expression type")
	}
}

// PrintStmts renders a statement list in the same canonical form,
// joined by spaces, for use by Lambda printing and by tests.
func PrintStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = printStmt(s)
	}
	return strings.Join(parts, " ")
}

func printStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return PrintExpr(s.expression)
	case *PrintStmt:
		return "(print " + PrintExpr(s.expression) + ")"
	case *VarStmt:
		if s.initializer == nil {
			return "(var " + s.name.lexeme + ")"
		}
		return "(var " + s.name.lexeme + " " + PrintExpr(s.initializer) + ")"
	case *BlockStmt:
		return "(block " + PrintStmts(s.statements) + ")"
	case *IfStmt:
		if s.elseBranch == nil {
			return "(if " + PrintExpr(s.condition) + " " + printStmt(s.thenBranch) + ")"
		}
		return "(if " + PrintExpr(s.condition) + " " + printStmt(s.thenBranch) + " " + printStmt(s.elseBranch) + ")"
	case *WhileStmt:
		return "(while " + PrintExpr(s.condition) + " " + printStmt(s.body) + ")"
	case *FunctionStmt:
		return "(fun " + s.name.lexeme + " " + PrintStmts(s.body) + ")"
	case *ReturnStmt:
		if s.value == nil {
			return "(return)"
		}
		return "(return " + PrintExpr(s.value) + ")"
	case *ClassStmt:
		return "(class " + s.name.lexeme + ")"
	default:
		panic("PrintStmt: unhandled statement type")
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(PrintExpr(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

func stringifyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		panic("stringifyLiteral: unsupported literal type")
	}
}
