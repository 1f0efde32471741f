// Package types defines the builtin value types of FanC and the rules that
// relate them: which types are numeric, which assignments widen implicitly,
// which casts are legal and what a binary operator yields.
package types

import "fmt"

// BuiltInType is the type of every FanC value.
//
// The zero value Undef is never the type of a real expression. It marks a
// computed type that has not been written yet, and as an expected return type
// it means "not inside any function".
type BuiltInType int

const (
	Undef BuiltInType = iota
	Int
	Byte
	Bool
	String
	Void
)

// All lists every real type in declaration order. Undef is excluded.
var All = []BuiltInType{Int, Byte, Bool, String, Void}

func (t BuiltInType) String() string {
	switch t {
	case Int:
		return TYPE_INT
	case Byte:
		return TYPE_BYTE
	case Bool:
		return TYPE_BOOL
	case String:
		return TYPE_STRING
	case Void:
		return TYPE_VOID
	case Undef:
		return TYPE_UNDEF
	default:
		return fmt.Sprintf("BuiltInType(%d)", int(t))
	}
}

// Parse maps a canonical lowercase spelling back to its type.
func Parse(name string) (BuiltInType, error) {
	switch name {
	case TYPE_INT:
		return Int, nil
	case TYPE_BYTE:
		return Byte, nil
	case TYPE_BOOL:
		return Bool, nil
	case TYPE_STRING:
		return String, nil
	case TYPE_VOID:
		return Void, nil
	}
	return Undef, fmt.Errorf("unknown type %q", name)
}

// Names renders a list of types with their canonical spellings, in order.
func Names(ts []BuiltInType) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return names
}
