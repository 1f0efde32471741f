package ast

// Num is a decimal integer literal.
type Num struct {
	Base
	Value int
}

func (n *Num) Expr()                  {} // Expr is a marker interface for all expressions
func (n *Num) Accept(v Visitor) error { return v.VisitNum(n) }

// NumB is a byte literal. Digits holds the literal digits exactly as
// written; they are read in base 2.
type NumB struct {
	Base
	Digits string
}

func (n *NumB) Expr()                  {}
func (n *NumB) Accept(v Visitor) error { return v.VisitNumB(n) }

// String is a string literal, without the quotes.
type String struct {
	Base
	Value string
}

func (s *String) Expr()                  {}
func (s *String) Accept(v Visitor) error { return v.VisitString(s) }

type Bool struct {
	Base
	Value bool
}

func (b *Bool) Expr()                  {}
func (b *Bool) Accept(v Visitor) error { return v.VisitBool(b) }
