package main

// functionType tracks what kind of function body the resolver is
// currently inside, so "return" can be statically checked per spec
// §4.3.
type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftMethod
	ftInitializer
)

// classType tracks whether the resolver is currently inside a class
// body, and whether that class has a superclass, so "this"/"super" can
// be statically checked per spec §4.3.
type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

// Resolver is the static-analysis pass described in spec §4.3: it
// walks the AST computing, for every Variable/Assign/This/Super node,
// the lexical distance to its binding site, and it enforces the static
// errors around return/this/super. Depths are written into the
// Interpreter's side table as they are discovered.
//
// Grounded on jmann345-glox/resolver.go's scope-stack shape
// (declare/define/resolveLocal, currentFunction save/restore via
// defer); class-type tracking and the super/this two-scope layering
// are new, built directly from spec §4.3 steps 1-5.
type Resolver struct {
	interpreter *Interpreter
	reporter    *ErrorReporter
	scopes      Stack[map[string]bool]
	currentFn   functionType
	currentCls  classType
}

func NewResolver(interpreter *Interpreter, reporter *ErrorReporter) *Resolver {
	return &Resolver{interpreter: interpreter, reporter: reporter}
}

func (r *Resolver) Resolve(stmts []Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes.Push(map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes.Pop()
}

func (r *Resolver) declare(name Token) {
	if r.scopes.Empty() {
		return
	}
	scope := r.scopes.Peek()
	if _, ok := scope[name.lexeme]; ok {
		r.reporter.ReportToken(name, "Already a variable with this name in this scope!")
	}
	scope[name.lexeme] = false
}

func (r *Resolver) define(name Token) {
	if r.scopes.Empty() {
		return
	}
	r.scopes.Peek()[name.lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// scope containing name yields a depth equal to the number of scopes
// above it. A reference found nowhere is left out of the side table
// and resolves against globals at evaluation time.
func (r *Resolver) resolveLocal(expr Expr, name Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.interpreter.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveFunctionBody(params []Token, body []Stmt, typ functionType) {
	enclosingFn := r.currentFn
	r.currentFn = typ
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	defer r.endScope()

	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.Resolve(body)
}

// --- statements ----------------------------------------------------

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *BlockStmt:
		r.beginScope()
		r.Resolve(s.statements)
		r.endScope()
	case *ClassStmt:
		r.resolveClassStmt(s)
	case *VarStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *FunctionStmt:
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunctionBody(s.params, s.body, ftFunction)
	case *ExpressionStmt:
		r.resolveExpr(s.expression)
	case *IfStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *PrintStmt:
		r.resolveExpr(s.expression)
	case *ReturnStmt:
		if r.currentFn == ftNone {
			r.reporter.ReportToken(s.keyword, "Can't return from top-level code!")
		}
		if s.value != nil {
			if r.currentFn == ftInitializer {
				r.reporter.ReportToken(s.keyword, "Can't return a value from an initializer!")
			}
			r.resolveExpr(s.value)
		}
	case *WhileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClassStmt(s *ClassStmt) {
	enclosingCls := r.currentCls
	r.currentCls = ctClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.reporter.ReportToken(s.superclass.name, "A class can't inherit from itself!")
		}
		r.currentCls = ctSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.scopes.Peek()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes.Peek()["this"] = true
	defer r.endScope()

	for _, method := range s.methods {
		declType := ftMethod
		if method.name.lexeme == "init" {
			declType = ftInitializer
		}
		r.resolveFunctionBody(method.params, method.body, declType)
	}
}

// --- expressions -----------------------------------------------------

func (r *Resolver) resolveExpr(expr Expr) {
	switch e := expr.(type) {
	case *Variable:
		if !r.scopes.Empty() {
			if defined, ok := r.scopes.Peek()[e.name.lexeme]; ok && !defined {
				r.reporter.ReportToken(e.name, "Can't read local variable in its own initializer!")
			}
		}
		r.resolveLocal(e, e.name)
	case *Assign:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *Binary:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *Logical:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *Call:
		r.resolveExpr(e.callee)
		for _, arg := range e.arguments {
			r.resolveExpr(arg)
		}
	case *Lambda:
		r.resolveFunctionBody(e.params, e.body, ftFunction)
	case *Get:
		r.resolveExpr(e.object)
	case *Set:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *This:
		if r.currentCls == ctNone {
			r.reporter.ReportToken(e.keyword, "Can't use 'this' outside of a class!")
			return
		}
		r.resolveLocal(e, e.keyword)
	case *Super:
		switch r.currentCls {
		case ctNone:
			r.reporter.ReportToken(e.keyword, "Can't use 'super' outside of a class!")
		case ctClass:
			r.reporter.ReportToken(e.keyword, "Can't use 'super' in a class with no superclass!")
		}
		r.resolveLocal(e, e.keyword)
	case *Grouping:
		r.resolveExpr(e.expression)
	case *Unary:
		r.resolveExpr(e.right)
	case *Literal:
		// no sub-expressions and no reference to resolve
	default:
		panic("resolver: unhandled expression type")
	}
}
