package main

import (
	"fmt"
	"io"
)

// Interpreter walks the AST produced by the parser, evaluating
// expressions and executing statements directly against a chain of
// Environments. globals never goes out of scope; environment is the
// innermost scope currently in effect. locals is the resolver's side
// table: it maps an Expr node (by pointer identity) to the number of
// enclosing scopes to walk before looking the name up, letting variable
// resolution be O(1) after the static pass instead of always searching
// from environment outward.
//
// Grounded on jmann345-glox/interpreter.go's execute/evaluate type
// switch shape and environment-swap-with-defer pattern for executeBlock;
// the locals side table and its Resolve/lookupVariable pair are new,
// built from spec §4.3/§4.4 directly, since the teacher's retrieved
// snapshot predates its own resolver and still resolves every variable
// by walking the chain.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	reporter    *ErrorReporter
	stdout      io.Writer
}

func NewInterpreter(reporter *ErrorReporter, stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", Clock{})
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		reporter:    reporter,
		stdout:      stdout,
	}
}

// Resolve is called by the Resolver once per variable reference it
// manages to bind to a local scope; unresolved references (globals)
// simply never appear in the table.
func (i *Interpreter) Resolve(expr Expr, depth int) {
	i.locals[expr] = depth
}

func (i *Interpreter) Interpret(stmts []Stmt) {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				i.reporter.ReportRuntime(rerr)
				return
			}
			panic(err)
		}
	}
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := i.evaluate(s.expression)
		return err
	case *PrintStmt:
		value, err := i.evaluate(s.expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, Stringify(value))
		return nil
	case *VarStmt:
		var value any
		if s.initializer != nil {
			v, err := i.evaluate(s.initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.name.lexeme, value)
		return nil
	case *BlockStmt:
		return i.executeBlock(s.statements, NewEnvironment(i.environment))
	case *IfStmt:
		cond, err := i.evaluate(s.condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.thenBranch)
		} else if s.elseBranch != nil {
			return i.execute(s.elseBranch)
		}
		return nil
	case *WhileStmt:
		for {
			cond, err := i.evaluate(s.condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.body); err != nil {
				return err
			}
		}
	case *FunctionStmt:
		fn := NewFunction(s, i.environment, false)
		i.environment.Define(s.name.lexeme, fn)
		return nil
	case *ReturnStmt:
		var value any
		if s.value != nil {
			v, err := i.evaluate(s.value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value}
	case *ClassStmt:
		return i.executeClassStmt(s)
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", s))
	}
}

func (i *Interpreter) executeClassStmt(s *ClassStmt) error {
	var superclass *Class
	if s.superclass != nil {
		v, err := i.evaluate(s.superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &RuntimeError{s.superclass.name, "Superclass must be a class."}
		}
		superclass = sc
	}

	i.environment.Define(s.name.lexeme, nil)

	env := i.environment
	if s.superclass != nil {
		env = NewEnvironment(i.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range s.methods {
		methods[m.name.lexeme] = NewFunction(m, env, m.name.lexeme == "init")
	}

	class := NewClass(s.name.lexeme, superclass, methods)
	return i.environment.Assign(s.name, class)
}

// executeBlock runs stmts against env, restoring the prior environment
// whether or not execution completes cleanly; a returnSignal or
// RuntimeError both propagate upward through the restore.
func (i *Interpreter) executeBlock(stmts []Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluate(expr Expr) (any, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.value, nil
	case *Grouping:
		return i.evaluate(e.expression)
	case *Unary:
		return i.evalUnary(e)
	case *Binary:
		return i.evalBinary(e)
	case *Logical:
		return i.evalLogical(e)
	case *Variable:
		return i.lookupVariable(e.name, e)
	case *Assign:
		value, err := i.evaluate(e.value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals[e]; ok {
			i.environment.AssignAt(distance, e.name.lexeme, value)
		} else if err := i.globals.Assign(e.name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *Call:
		return i.evalCall(e)
	case *Lambda:
		return NewLoxLambda(e, i.environment), nil
	case *Get:
		object, err := i.evaluate(e.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, &RuntimeError{e.name, "Only instances have properties."}
		}
		return instance.Get(e.name)
	case *Set:
		object, err := i.evaluate(e.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, &RuntimeError{e.name, "Only instances have fields."}
		}
		value, err := i.evaluate(e.value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.name, value)
		return value, nil
	case *This:
		return i.lookupVariable(e.keyword, e)
	case *Super:
		return i.evalSuper(e)
	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", e))
	}
}

func (i *Interpreter) lookupVariable(name Token, expr Expr) (any, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.environment.GetAt(distance, name.lexeme), nil
	}
	return i.globals.Get(name)
}

func (i *Interpreter) evalSuper(e *Super) (any, error) {
	distance := i.locals[e]
	superclass := i.environment.GetAt(distance, "super").(*Class)
	instance := i.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.method.lexeme)
	if method == nil {
		return nil, &RuntimeError{e.method, "Undefined property '" + e.method.lexeme + "'."}
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalCall(e *Call) (any, error) {
	callee, err := i.evaluate(e.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]any, 0, len(e.arguments))
	for _, argExpr := range e.arguments {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{e.paren, "Can only call functions and classes."}
	}

	if len(arguments) != callable.Arity() {
		return nil, &RuntimeError{e.paren, fmt.Sprintf(
			"Expected %d arguments but got %d.", callable.Arity(), len(arguments))}
	}

	return callable.Call(i, arguments)
}

func (i *Interpreter) evalLogical(e *Logical) (any, error) {
	left, err := i.evaluate(e.left)
	if err != nil {
		return nil, err
	}

	if e.op.typ == OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(e.right)
}

func (i *Interpreter) evalUnary(e *Unary) (any, error) {
	right, err := i.evaluate(e.right)
	if err != nil {
		return nil, err
	}

	switch e.op.typ {
	case BANG:
		return !isTruthy(right), nil
	case MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{e.op, "Operand must be a number."}
		}
		return -n, nil
	}
	panic("interpreter: unreachable unary operator")
}

func (i *Interpreter) evalBinary(e *Binary) (any, error) {
	left, err := i.evaluate(e.left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.right)
	if err != nil {
		return nil, err
	}

	switch e.op.typ {
	case GREATER:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case GREATER_EQUAL:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case LESS:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case LESS_EQUAL:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case BANG_EQUAL:
		return !valuesEqual(left, right), nil
	case EQUAL_EQUAL:
		return valuesEqual(left, right), nil
	case MINUS:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case SLASH:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case STAR:
		l, r, err := i.numberOperands(e.op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{e.op, "Operands must be two numbers or two strings."}
	}
	panic("interpreter: unreachable binary operator")
}

func (i *Interpreter) numberOperands(op Token, left, right any) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &RuntimeError{op, "Operands must be numbers."}
	}
	return l, r, nil
}
