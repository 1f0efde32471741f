package ast

import "github.com/matanophir/Compi-3/internal/types"

// PrimitiveType names a builtin type in a declaration, cast or signature.
type PrimitiveType struct {
	Base
	Builtin types.BuiltInType
}

func (p *PrimitiveType) TypeExpr()              {} // Type nodes implement TypeExpr
func (p *PrimitiveType) Accept(v Visitor) error { return v.VisitPrimitiveType(p) }

// ArrayType is a fixed-size array of a builtin element type: elem[size]
type ArrayType struct {
	Base
	Elem types.BuiltInType
	Size int
}

func (a *ArrayType) TypeExpr()              {}
func (a *ArrayType) Accept(v Visitor) error { return v.VisitArrayType(a) }
