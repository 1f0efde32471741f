package ast

// ID is an identifier: a variable reference, or the name part of a call,
// declaration or assignment.
type ID struct {
	Base
	Name string
}

func (i *ID) Expr()                  {} // Expr is a marker interface for all expressions
func (i *ID) Accept(v Visitor) error { return v.VisitID(i) }

type BinOpType int

const (
	ADD BinOpType = iota
	SUB
	MUL
	DIV
)

func (op BinOpType) String() string {
	return [...]string{"+", "-", "*", "/"}[op]
}

// BinOp is an arithmetic expression
type BinOp struct {
	Base
	Left  Expression
	Right Expression
	Op    BinOpType
}

func (b *BinOp) Expr()                  {}
func (b *BinOp) Accept(v Visitor) error { return v.VisitBinOp(b) }

type RelOpType int

const (
	EQ RelOpType = iota
	NE
	LT
	GT
	LE
	GE
)

func (op RelOpType) String() string {
	return [...]string{"==", "!=", "<", ">", "<=", ">="}[op]
}

// RelOp is a comparison between two numeric operands
type RelOp struct {
	Base
	Left  Expression
	Right Expression
	Op    RelOpType
}

func (r *RelOp) Expr()                  {}
func (r *RelOp) Accept(v Visitor) error { return v.VisitRelOp(r) }

type Not struct {
	Base
	Exp Expression
}

func (n *Not) Expr()                  {}
func (n *Not) Accept(v Visitor) error { return v.VisitNot(n) }

type And struct {
	Base
	Left  Expression
	Right Expression
}

func (a *And) Expr()                  {}
func (a *And) Accept(v Visitor) error { return v.VisitAnd(a) }

type Or struct {
	Base
	Left  Expression
	Right Expression
}

func (o *Or) Expr()                  {}
func (o *Or) Accept(v Visitor) error { return v.VisitOr(o) }

// ArrayDereference reads one element: id[index]
type ArrayDereference struct {
	Base
	ID    *ID
	Index Expression
}

func (a *ArrayDereference) Expr()                  {}
func (a *ArrayDereference) Accept(v Visitor) error { return v.VisitArrayDereference(a) }

// Cast converts Exp to the Target type: (type) exp
type Cast struct {
	Base
	Exp    Expression
	Target *PrimitiveType
}

func (c *Cast) Expr()                  {}
func (c *Cast) Accept(v Visitor) error { return v.VisitCast(c) }

// ExpList is an ordered list of call arguments
type ExpList struct {
	Base
	Exps []Expression
}

func (e *ExpList) Accept(v Visitor) error { return v.VisitExpList(e) }

// Call invokes a function. It is both an expression and, on its own line,
// a statement.
type Call struct {
	Base
	Func *ID
	Args *ExpList
}

func (c *Call) Expr()                  {}
func (c *Call) Stmt()                  {} // Stmt is a marker interface for all statements
func (c *Call) Accept(v Visitor) error { return v.VisitCall(c) }
