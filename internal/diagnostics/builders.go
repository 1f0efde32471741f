package diagnostics

import (
	"fmt"
	"strings"
)

// One constructor per Kind. Messages follow the course output format;
// Error() prefixes them with the line.

func newKind(kind Kind, line int, message, label string) *Diagnostic {
	return NewError(message).
		WithCode(kind.Code()).
		WithPrimaryLabel(line, label).
		withKind(kind)
}

func (d *Diagnostic) withKind(kind Kind) *Diagnostic {
	d.Kind = kind
	return d
}

func (d *Diagnostic) withName(name string) *Diagnostic {
	d.Name = name
	return d
}

func Lexical(line int) *Diagnostic {
	return newKind(KindLex, line, "lexical error", "unrecognized input")
}

func Syntax(line int) *Diagnostic {
	return newKind(KindSyn, line, "syntax error", "unexpected token")
}

// Undefined reports a name with no live declaration.
func Undefined(line int, name string) *Diagnostic {
	return newKind(KindUndef, line, fmt.Sprintf("variable %s is not defined", name), "not found in this scope").
		withName(name).
		WithHelp("declare the variable before using it")
}

// DefinedAsFunction reports a function name used where a variable is needed.
func DefinedAsFunction(line int, name string) *Diagnostic {
	return newKind(KindDefAsFunc, line, fmt.Sprintf("symbol %s is a function", name), "used as a variable").
		withName(name)
}

func UndefinedFunction(line int, name string) *Diagnostic {
	return newKind(KindUndefFunc, line, fmt.Sprintf("function %s is not defined", name), "not found in this scope").
		withName(name)
}

// DefinedAsVariable reports a call whose callee is a variable.
func DefinedAsVariable(line int, name string) *Diagnostic {
	return newKind(KindDefAsVar, line, fmt.Sprintf("symbol %s is a variable", name), "called as a function").
		withName(name)
}

// Redeclared reports a declaration of a name that is still live. prevLine
// is the line of the live declaration; 0 means a builtin.
func Redeclared(line int, name string, prevLine int) *Diagnostic {
	d := newKind(KindDef, line, fmt.Sprintf("symbol %s is already defined", name), "redeclared here").
		withName(name).
		WithHelp("use a different name; shadowing is not allowed")
	if prevLine > 0 {
		d.WithSecondaryLabel(prevLine, "previously declared here")
	} else {
		d.WithNote(name + " is a builtin function")
	}
	return d
}

// PrototypeMismatch reports a call with the wrong number of arguments.
// paramTypes are the canonical names of the declared parameter types.
func PrototypeMismatch(line int, name string, paramTypes []string) *Diagnostic {
	d := newKind(KindPrototypeMismatch, line,
		fmt.Sprintf("prototype mismatch, function %s expects parameters (%s)", name, strings.Join(paramTypes, ",")),
		"wrong number of arguments").
		withName(name)
	d.ParamTypes = append([]string{}, paramTypes...)
	return d
}

func Mismatch(line int) *Diagnostic {
	return newKind(KindMismatch, line, "type mismatch", "incompatible type")
}

// MismatchWithNote is Mismatch with the expected/found types spelled out.
func MismatchWithNote(line int, expected, found string) *Diagnostic {
	return Mismatch(line).WithNote(fmt.Sprintf("expected %s, found %s", expected, found))
}

func UnexpectedBreak(line int) *Diagnostic {
	return newKind(KindUnexpectedBreak, line, "unexpected break statement", "not inside a loop")
}

func UnexpectedContinue(line int) *Diagnostic {
	return newKind(KindUnexpectedContinue, line, "unexpected continue statement", "not inside a loop")
}

// MainMissing reports the absence of the entry function. It is not tied to a
// line.
func MainMissing(entry string) *Diagnostic {
	return NewError(fmt.Sprintf("program has no 'void %s()' function", entry)).
		WithCode(KindMainMissing.Code()).
		withKind(KindMainMissing).
		withName(entry)
}

// ByteTooLarge reports a byte literal above 255; value is its decimal value.
func ByteTooLarge(line int, value string) *Diagnostic {
	d := newKind(KindByteTooLarge, line, fmt.Sprintf("byte literal %s out of range", value), "does not fit in a byte").
		WithNote("byte literals range from 0 to 255")
	d.Value = value
	return d
}

// InvalidAssignArray reports an assignment whose target is a whole array.
func InvalidAssignArray(line int, name string) *Diagnostic {
	return newKind(KindInvalidAssignArray, line, fmt.Sprintf("invalid assignment to array %s", name), "arrays are assigned element by element").
		withName(name)
}
