package main

// Class is a runtime value: a name, an optional superclass, and an
// ordered mapping from method name to Function. Calling a Class
// constructs an Instance; its arity is the arity of its "init" method
// if present, else 0.
//
// Grounded on jmann345-glox/class.go's Call/Arity shape and on
// original_source/src/class.cpp's Class::call/arity/find_method, which
// is the direct source for walking the superclass chain on method miss.
type Class struct {
	name       string
	superclass *Class // nil for a root class
	methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{name: name, superclass: superclass, methods: methods}
}

// FindMethod walks the superclass chain looking for name, returning
// nil if no class in the chain declares it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interpreter *Interpreter, arguments []any) (any, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interpreter, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.name
}
