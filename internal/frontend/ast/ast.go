// Package ast defines the FanC syntax tree handed over by the parser.
//
// The set of node variants is closed. Every variant dispatches through
// Visitor, so a new variant without a matching Visit method does not compile.
package ast

import "github.com/matanophir/Compi-3/internal/types"

// Node is the base interface for all AST nodes
type Node interface {
	Line() int
	// Type is the type computed by semantic analysis; types.Undef until set.
	Type() types.BuiltInType
	SetType(t types.BuiltInType)
	Accept(v Visitor) error
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// TypeNode represents a type annotation in a declaration
type TypeNode interface {
	Node
	TypeExpr()
}

// Base carries the data shared by every node: its source line and the
// computed type slot.
type Base struct {
	Lineno   int
	computed types.BuiltInType
}

func (b *Base) Line() int                   { return b.Lineno }
func (b *Base) Type() types.BuiltInType     { return b.computed }
func (b *Base) SetType(t types.BuiltInType) { b.computed = t }

// Typed reports whether semantic analysis has written the node's type.
func (b *Base) Typed() bool { return b.computed != types.Undef }

func at(line int) Base { return Base{Lineno: line} }

// Visitor has one method per node variant.
type Visitor interface {
	VisitNum(n *Num) error
	VisitNumB(n *NumB) error
	VisitString(n *String) error
	VisitBool(n *Bool) error
	VisitID(n *ID) error
	VisitBinOp(n *BinOp) error
	VisitRelOp(n *RelOp) error
	VisitNot(n *Not) error
	VisitAnd(n *And) error
	VisitOr(n *Or) error
	VisitPrimitiveType(n *PrimitiveType) error
	VisitArrayType(n *ArrayType) error
	VisitArrayDereference(n *ArrayDereference) error
	VisitArrayAssign(n *ArrayAssign) error
	VisitCast(n *Cast) error
	VisitExpList(n *ExpList) error
	VisitCall(n *Call) error
	VisitStatements(n *Statements) error
	VisitBreak(n *Break) error
	VisitContinue(n *Continue) error
	VisitReturn(n *Return) error
	VisitIf(n *If) error
	VisitWhile(n *While) error
	VisitVarDecl(n *VarDecl) error
	VisitAssign(n *Assign) error
	VisitFormal(n *Formal) error
	VisitFormals(n *Formals) error
	VisitFuncDecl(n *FuncDecl) error
	VisitFuncs(n *Funcs) error
}
