package main

import "strconv"

// Value is realized as Go's any, closed over a fixed set of concrete
// types: nil, bool, float64, string, Callable (Function/Lambda/Class/
// native), and *Instance. This is the idiomatic Go rendition of the
// spec's tagged sum — a type switch over a closed, internally
// controlled set of concrete types plays the role a hand-rolled tagged
// enum would in a language without sum types, exactly as the teacher's
// own Stringify/SameType helpers (jmann345-glox/utils.go) already do.

// isTruthy implements spec §3's truthiness rule: nil and false are
// falsy, everything else is truthy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements spec §3's equality rule: different variants
// are never equal, and nil is only equal to nil.
func valuesEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Value the way "print" should, per spec §4.4:
// integral doubles print without a trailing ".0", booleans print as
// true/false, nil prints as nil.
func Stringify(v any) string {
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
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		panic("Stringify: unsupported value type")
	}
}
