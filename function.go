package main

// Function is a reference to a syntactic Function declaration together
// with the environment captured at its declaration site and a flag
// marking whether it is a class initializer. Methods are Functions;
// Bind returns a new Function whose closure is a fresh single-layer
// environment over the original closure with "this" bound to the
// instance, per spec §3's invariant that bind adds at most one closure
// layer.
//
// Grounded on jmann345-glox/function.go's Function.Call (build a local
// Environment over closure, bind params positionally, execute the body
// as a block) and on original_source/src/function.cpp's bind/call,
// which is the direct source for the is_initializer early-return rule.
type Function struct {
	decl          *FunctionStmt
	closure       *Environment
	isInitializer bool
}

func NewFunction(decl *FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int {
	return len(f.decl.params)
}

func (f *Function) Call(interpreter *Interpreter, arguments []any) (any, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.params {
		env.Define(param.lexeme, arguments[i])
	}

	err := interpreter.executeBlock(f.decl.body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.decl.name.lexeme + ">"
}

// Bind returns a new Function closing over a fresh environment layered
// on f.closure, containing only "this" bound to instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

// LoxLambda is a callable built from a Lambda expression. It never
// participates in class method binding and is never an initializer, so
// it needs none of Function's is_initializer machinery — it is still a
// distinct Value variant, per spec §3, closing over its own
// declaration site the same way Function does.
type LoxLambda struct {
	decl    *Lambda
	closure *Environment
}

func NewLoxLambda(decl *Lambda, closure *Environment) *LoxLambda {
	return &LoxLambda{decl: decl, closure: closure}
}

func (l *LoxLambda) Arity() int {
	return len(l.decl.params)
}

func (l *LoxLambda) Call(interpreter *Interpreter, arguments []any) (any, error) {
	env := NewEnvironment(l.closure)
	for i, param := range l.decl.params {
		env.Define(param.lexeme, arguments[i])
	}

	err := interpreter.executeBlock(l.decl.body, env)
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (l *LoxLambda) String() string {
	return "<lambda>"
}
