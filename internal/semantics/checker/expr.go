package checker

import (
	"fmt"

	"github.com/matanophir/Compi-3/internal/diagnostics"
	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/semantics/symbols"
	"github.com/matanophir/Compi-3/internal/types"
	"github.com/matanophir/Compi-3/internal/utils/numeric"
)

func (c *Checker) VisitNum(n *ast.Num) error {
	n.SetType(types.Int)
	return nil
}

// VisitNumB reads the literal digits in base 2.
func (c *Checker) VisitNumB(n *ast.NumB) error {
	value, err := numeric.ParseBinary(n.Digits)
	if err != nil {
		return diagnostics.Lexical(n.Line())
	}
	if !numeric.FitsInBitSize(value, 8, false) {
		return diagnostics.ByteTooLarge(n.Line(), value.String())
	}
	n.SetType(types.Byte)
	return nil
}

func (c *Checker) VisitString(n *ast.String) error {
	n.SetType(types.String)
	return nil
}

func (c *Checker) VisitBool(n *ast.Bool) error {
	n.SetType(types.Bool)
	return nil
}

// VisitID resolves a name used as a value.
func (c *Checker) VisitID(n *ast.ID) error {
	sym, ok := c.table.Lookup(n.Name)
	if !ok {
		return diagnostics.Undefined(n.Line(), n.Name)
	}
	if sym.IsFunction() {
		return diagnostics.DefinedAsFunction(n.Line(), n.Name)
	}
	if sym.IsArray() {
		return diagnostics.MismatchWithNote(n.Line(), "a scalar value", "array "+n.Name)
	}
	n.SetType(sym.Type)
	return nil
}

// visitAll visits expressions left to right, stopping at the first error.
func (c *Checker) visitAll(exps ...ast.Expression) error {
	for _, exp := range exps {
		if err := exp.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

// numericOperands checks both sides of an arithmetic or relational
// operator.
func numericOperands(line int, left, right ast.Expression) error {
	for _, operand := range []ast.Expression{left, right} {
		if !types.IsNumeric(operand.Type()) {
			return diagnostics.MismatchWithNote(line, "int or byte", operand.Type().String())
		}
	}
	return nil
}

func (c *Checker) VisitBinOp(n *ast.BinOp) error {
	if err := c.visitAll(n.Left, n.Right); err != nil {
		return err
	}
	if err := numericOperands(n.Line(), n.Left, n.Right); err != nil {
		return err
	}
	n.SetType(types.BinaryResult(n.Left.Type(), n.Right.Type()))
	return nil
}

func (c *Checker) VisitRelOp(n *ast.RelOp) error {
	if err := c.visitAll(n.Left, n.Right); err != nil {
		return err
	}
	if err := numericOperands(n.Line(), n.Left, n.Right); err != nil {
		return err
	}
	n.SetType(types.Bool)
	return nil
}

// requireBool reports a mismatch at line unless every expression is bool.
func requireBool(line int, exps ...ast.Expression) error {
	for _, exp := range exps {
		if exp.Type() != types.Bool {
			return diagnostics.MismatchWithNote(line, types.TYPE_BOOL, exp.Type().String())
		}
	}
	return nil
}

func (c *Checker) VisitNot(n *ast.Not) error {
	if err := n.Exp.Accept(c); err != nil {
		return err
	}
	if err := requireBool(n.Line(), n.Exp); err != nil {
		return err
	}
	n.SetType(types.Bool)
	return nil
}

func (c *Checker) VisitAnd(n *ast.And) error {
	if err := c.visitAll(n.Left, n.Right); err != nil {
		return err
	}
	if err := requireBool(n.Line(), n.Left, n.Right); err != nil {
		return err
	}
	n.SetType(types.Bool)
	return nil
}

func (c *Checker) VisitOr(n *ast.Or) error {
	if err := c.visitAll(n.Left, n.Right); err != nil {
		return err
	}
	if err := requireBool(n.Line(), n.Left, n.Right); err != nil {
		return err
	}
	n.SetType(types.Bool)
	return nil
}

// resolveArray looks up the array named by id and records its element type
// on id.
func (c *Checker) resolveArray(id *ast.ID) (*symbols.Symbol, error) {
	sym, ok := c.table.Lookup(id.Name)
	if !ok {
		return nil, diagnostics.Undefined(id.Line(), id.Name)
	}
	if sym.IsFunction() {
		return nil, diagnostics.DefinedAsFunction(id.Line(), id.Name)
	}
	if !sym.IsArray() {
		return nil, diagnostics.MismatchWithNote(id.Line(), "an array", sym.Type.String())
	}
	id.SetType(sym.Type)
	return sym, nil
}

func requireIndex(line int, index ast.Expression) error {
	if !types.IsNumeric(index.Type()) {
		return diagnostics.MismatchWithNote(line, "int or byte index", index.Type().String())
	}
	return nil
}

func (c *Checker) VisitArrayDereference(n *ast.ArrayDereference) error {
	sym, err := c.resolveArray(n.ID)
	if err != nil {
		return err
	}
	if err := n.Index.Accept(c); err != nil {
		return err
	}
	if err := requireIndex(n.Line(), n.Index); err != nil {
		return err
	}
	n.SetType(sym.Type)
	return nil
}

// VisitCast allows identical types and any numeric to numeric conversion.
func (c *Checker) VisitCast(n *ast.Cast) error {
	if err := n.Exp.Accept(c); err != nil {
		return err
	}
	if err := n.Target.Accept(c); err != nil {
		return err
	}
	from, to := n.Exp.Type(), n.Target.Type()
	if !types.CanCast(from, to) {
		return diagnostics.MismatchWithNote(n.Line(), to.String(), from.String())
	}
	n.SetType(to)
	return nil
}

func (c *Checker) VisitExpList(n *ast.ExpList) error {
	return c.visitAll(n.Exps...)
}

// VisitCall resolves the callee, visits the arguments, then checks them
// against the callee's signature.
func (c *Checker) VisitCall(n *ast.Call) error {
	name, line := n.Func.Name, n.Func.Line()
	sym, ok := c.table.Lookup(name)
	if !ok {
		return diagnostics.UndefinedFunction(line, name)
	}
	if !sym.IsFunction() {
		return diagnostics.DefinedAsVariable(line, name)
	}

	var args []ast.Expression
	if n.Args != nil {
		if err := n.Args.Accept(c); err != nil {
			return err
		}
		args = n.Args.Exps
	}

	if len(args) != len(sym.ParamTypes) {
		return diagnostics.PrototypeMismatch(line, name, sym.ParamTypeNames())
	}
	for i, arg := range args {
		if !types.CanAssign(arg.Type(), sym.ParamTypes[i]) {
			return diagnostics.Mismatch(arg.Line()).WithNote(fmt.Sprintf("%s argument of %s: expected %s, found %s",
				numeric.NumericToOrdinal(i+1), name, sym.ParamTypes[i], arg.Type()))
		}
	}

	n.Func.SetType(sym.Type)
	n.SetType(sym.Type)
	return nil
}
