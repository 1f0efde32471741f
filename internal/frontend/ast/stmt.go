package ast

// Statements is an ordered statement sequence. It does not open a scope.
type Statements struct {
	Base
	Statements []Statement
}

func (s *Statements) Stmt()                  {} // Stmt is a marker interface for all statements
func (s *Statements) Accept(v Visitor) error { return v.VisitStatements(s) }

type Break struct {
	Base
}

func (b *Break) Stmt()                  {}
func (b *Break) Accept(v Visitor) error { return v.VisitBreak(b) }

type Continue struct {
	Base
}

func (c *Continue) Stmt()                  {}
func (c *Continue) Accept(v Visitor) error { return v.VisitContinue(c) }

// Return optionally carries a value; Exp is nil for a bare return.
type Return struct {
	Base
	Exp Expression
}

func (r *Return) Stmt()                  {}
func (r *Return) Accept(v Visitor) error { return v.VisitReturn(r) }

// If has an optional Else branch (nil when absent).
type If struct {
	Base
	Cond Expression
	Then Statement
	Else Statement
}

func (i *If) Stmt()                  {}
func (i *If) Accept(v Visitor) error { return v.VisitIf(i) }

type While struct {
	Base
	Cond Expression
	Body Statement
}

func (w *While) Stmt()                  {}
func (w *While) Accept(v Visitor) error { return v.VisitWhile(w) }

// VarDecl declares a local: "type id;" or "type id = init;".
// VarType is a *PrimitiveType or an *ArrayType.
type VarDecl struct {
	Base
	ID      *ID
	VarType TypeNode
	Init    Expression
}

func (d *VarDecl) Stmt()                  {}
func (d *VarDecl) Accept(v Visitor) error { return v.VisitVarDecl(d) }

// Assign stores into a scalar variable: id = exp
type Assign struct {
	Base
	ID  *ID
	Exp Expression
}

func (a *Assign) Stmt()                  {}
func (a *Assign) Accept(v Visitor) error { return v.VisitAssign(a) }

// ArrayAssign stores into one array element: id[index] = exp
type ArrayAssign struct {
	Base
	ID    *ID
	Index Expression
	Exp   Expression
}

func (a *ArrayAssign) Stmt()                  {}
func (a *ArrayAssign) Accept(v Visitor) error { return v.VisitArrayAssign(a) }
