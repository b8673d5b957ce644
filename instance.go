package main

// Instance is a back-reference to its Class plus a field-name-to-Value
// map. Fields are created on first assignment; method lookup defers to
// the class and its superclass chain.
//
// Grounded on jmann345-glox/instance.go's Get/Set shape.
type Instance struct {
	class  *Class
	fields map[string]any
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]any)}
}

func (i *Instance) Get(name Token) (any, error) {
	if v, ok := i.fields[name.lexeme]; ok {
		return v, nil
	}
	if m := i.class.FindMethod(name.lexeme); m != nil {
		return m.Bind(i), nil
	}
	return nil, &RuntimeError{name, "Undefined property '" + name.lexeme + "'."}
}

func (i *Instance) Set(name Token, value any) {
	i.fields[name.lexeme] = value
}

func (i *Instance) String() string {
	return i.class.name + " instance"
}
