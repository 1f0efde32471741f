package checker

import (
	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/diagnostics"
	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/semantics/symbols"
	"github.com/matanophir/Compi-3/internal/types"
)

func (c *Checker) VisitStatements(n *ast.Statements) error {
	for _, stmt := range n.Statements {
		if err := stmt.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) VisitBreak(n *ast.Break) error {
	if !c.inLoop {
		return diagnostics.UnexpectedBreak(n.Line())
	}
	return nil
}

func (c *Checker) VisitContinue(n *ast.Continue) error {
	if !c.inLoop {
		return diagnostics.UnexpectedContinue(n.Line())
	}
	return nil
}

func (c *Checker) VisitReturn(n *ast.Return) error {
	if c.expectedReturn == types.Undef {
		return diagnostics.MismatchWithNote(n.Line(), "return inside a function", "return at global scope")
	}

	if n.Exp == nil {
		if c.expectedReturn != types.Void {
			return diagnostics.MismatchWithNote(n.Line(), c.expectedReturn.String(), types.TYPE_VOID)
		}
		return nil
	}

	if err := n.Exp.Accept(c); err != nil {
		return err
	}
	if !types.CanAssign(n.Exp.Type(), c.expectedReturn) {
		return diagnostics.MismatchWithNote(n.Line(), c.expectedReturn.String(), n.Exp.Type().String())
	}
	return nil
}

// condition visits an if/while condition, which must be bool.
func (c *Checker) condition(line int, cond ast.Expression) error {
	if err := cond.Accept(c); err != nil {
		return err
	}
	return requireBool(line, cond)
}

func (c *Checker) VisitIf(n *ast.If) error {
	if err := c.condition(n.Line(), n.Cond); err != nil {
		return err
	}
	if err := n.Then.Accept(c); err != nil {
		return err
	}
	if n.Else != nil {
		return n.Else.Accept(c)
	}
	return nil
}

func (c *Checker) VisitWhile(n *ast.While) error {
	if err := c.condition(n.Line(), n.Cond); err != nil {
		return err
	}
	defer c.enterLoop()()
	return n.Body.Accept(c)
}

// VisitVarDecl checks the name is free, then the initializer, then
// registers the variable. The name is not visible in its own initializer.
func (c *Checker) VisitVarDecl(n *ast.VarDecl) error {
	name, line := n.ID.Name, n.ID.Line()
	if existing, ok := c.table.Lookup(name); ok {
		return diagnostics.Redeclared(line, name, existing.Line)
	}

	if err := n.VarType.Accept(c); err != nil {
		return err
	}
	typ := n.VarType.Type()
	if typ == types.Void {
		return diagnostics.MismatchWithNote(n.Line(), "a value type", typ.String())
	}

	var (
		sym *symbols.Symbol
		err error
	)
	switch vt := n.VarType.(type) {
	case *ast.ArrayType:
		if n.Init != nil {
			return diagnostics.MismatchWithNote(n.Line(), "no initializer", "initialized array "+name)
		}
		if vt.Size <= 0 {
			return diagnostics.MismatchWithNote(n.Line(), "a positive array size", "size 0 or less")
		}
		sym, err = c.table.AddArray(name, typ, vt.Size, line)
	default:
		if n.Init != nil {
			if err := n.Init.Accept(c); err != nil {
				return err
			}
			if !types.CanAssign(n.Init.Type(), typ) {
				return diagnostics.MismatchWithNote(n.Line(), typ.String(), n.Init.Type().String())
			}
		}
		sym, err = c.table.AddVariable(name, typ, line)
	}
	if err != nil {
		return declared(err)
	}

	c.tracef(colors.GREY, "  local %s at %d\n", sym.Name, sym.Offset)
	n.ID.SetType(typ)
	n.SetType(typ)
	return nil
}

// VisitAssign stores into a scalar; whole arrays cannot be assigned.
func (c *Checker) VisitAssign(n *ast.Assign) error {
	name, line := n.ID.Name, n.ID.Line()
	sym, ok := c.table.Lookup(name)
	if !ok {
		return diagnostics.Undefined(line, name)
	}
	if sym.IsFunction() {
		return diagnostics.DefinedAsFunction(line, name)
	}
	if sym.IsArray() {
		return diagnostics.InvalidAssignArray(n.Line(), name)
	}
	n.ID.SetType(sym.Type)

	if err := n.Exp.Accept(c); err != nil {
		return err
	}
	if !types.CanAssign(n.Exp.Type(), sym.Type) {
		return diagnostics.MismatchWithNote(n.Line(), sym.Type.String(), n.Exp.Type().String())
	}
	return nil
}

// VisitArrayAssign checks the stored value before the index.
func (c *Checker) VisitArrayAssign(n *ast.ArrayAssign) error {
	sym, err := c.resolveArray(n.ID)
	if err != nil {
		return err
	}
	if err := c.visitAll(n.Index, n.Exp); err != nil {
		return err
	}

	if !types.CanAssign(n.Exp.Type(), sym.Type) {
		return diagnostics.MismatchWithNote(n.Line(), sym.Type.String(), n.Exp.Type().String())
	}
	return requireIndex(n.Line(), n.Index)
}
