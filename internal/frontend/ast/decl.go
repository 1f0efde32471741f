package ast

import "github.com/matanophir/Compi-3/internal/types"

// Formal is one parameter of a function signature.
type Formal struct {
	Base
	ID         *ID
	FormalType *PrimitiveType
}

func (f *Formal) Accept(v Visitor) error { return v.VisitFormal(f) }

type Formals struct {
	Base
	Formals []*Formal
}

func (f *Formals) Accept(v Visitor) error { return v.VisitFormals(f) }

// ParamTypes lists the declared parameter types in order.
func (f *Formals) ParamTypes() []types.BuiltInType {
	if f == nil {
		return nil
	}
	params := make([]types.BuiltInType, len(f.Formals))
	for i, formal := range f.Formals {
		params[i] = formal.FormalType.Builtin
	}
	return params
}

type FuncDecl struct {
	Base
	ID         *ID
	ReturnType *PrimitiveType
	Formals    *Formals
	Body       *Statements
}

func (f *FuncDecl) Accept(v Visitor) error { return v.VisitFuncDecl(f) }

// Funcs is the program root: every function in declaration order.
type Funcs struct {
	Base
	Funcs []*FuncDecl
}

func (f *Funcs) Accept(v Visitor) error { return v.VisitFuncs(f) }
