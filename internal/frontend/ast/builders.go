package ast

import "github.com/matanophir/Compi-3/internal/types"

// Constructors used by the loader and by tests to build trees by hand.

func NewNum(line, value int) *Num { return &Num{Base: at(line), Value: value} }

func NewNumB(line int, digits string) *NumB { return &NumB{Base: at(line), Digits: digits} }

func NewString(line int, value string) *String { return &String{Base: at(line), Value: value} }

func NewBool(line int, value bool) *Bool { return &Bool{Base: at(line), Value: value} }

func NewID(line int, name string) *ID { return &ID{Base: at(line), Name: name} }

func NewBinOp(line int, op BinOpType, left, right Expression) *BinOp {
	return &BinOp{Base: at(line), Op: op, Left: left, Right: right}
}

func NewRelOp(line int, op RelOpType, left, right Expression) *RelOp {
	return &RelOp{Base: at(line), Op: op, Left: left, Right: right}
}

func NewNot(line int, exp Expression) *Not { return &Not{Base: at(line), Exp: exp} }

func NewAnd(line int, left, right Expression) *And {
	return &And{Base: at(line), Left: left, Right: right}
}

func NewOr(line int, left, right Expression) *Or {
	return &Or{Base: at(line), Left: left, Right: right}
}

func NewPrimitiveType(line int, t types.BuiltInType) *PrimitiveType {
	return &PrimitiveType{Base: at(line), Builtin: t}
}

func NewArrayType(line int, elem types.BuiltInType, size int) *ArrayType {
	return &ArrayType{Base: at(line), Elem: elem, Size: size}
}

func NewArrayDereference(line int, id *ID, index Expression) *ArrayDereference {
	return &ArrayDereference{Base: at(line), ID: id, Index: index}
}

func NewArrayAssign(line int, id *ID, index, exp Expression) *ArrayAssign {
	return &ArrayAssign{Base: at(line), ID: id, Index: index, Exp: exp}
}

func NewCast(line int, exp Expression, target *PrimitiveType) *Cast {
	return &Cast{Base: at(line), Exp: exp, Target: target}
}

func NewExpList(line int, exps ...Expression) *ExpList {
	return &ExpList{Base: at(line), Exps: exps}
}

// NewCall builds a call whose argument list sits on the call's line.
func NewCall(line int, fn *ID, args ...Expression) *Call {
	return &Call{Base: at(line), Func: fn, Args: NewExpList(line, args...)}
}

func NewStatements(line int, stmts ...Statement) *Statements {
	return &Statements{Base: at(line), Statements: stmts}
}

func NewBreak(line int) *Break { return &Break{Base: at(line)} }

func NewContinue(line int) *Continue { return &Continue{Base: at(line)} }

// NewReturn builds a return statement; exp may be nil.
func NewReturn(line int, exp Expression) *Return { return &Return{Base: at(line), Exp: exp} }

// NewIf builds a conditional; els may be nil.
func NewIf(line int, cond Expression, then, els Statement) *If {
	return &If{Base: at(line), Cond: cond, Then: then, Else: els}
}

func NewWhile(line int, cond Expression, body Statement) *While {
	return &While{Base: at(line), Cond: cond, Body: body}
}

// NewVarDecl builds a declaration; init may be nil.
func NewVarDecl(line int, typ TypeNode, id *ID, init Expression) *VarDecl {
	return &VarDecl{Base: at(line), VarType: typ, ID: id, Init: init}
}

func NewAssign(line int, id *ID, exp Expression) *Assign {
	return &Assign{Base: at(line), ID: id, Exp: exp}
}

func NewFormal(line int, typ *PrimitiveType, id *ID) *Formal {
	return &Formal{Base: at(line), FormalType: typ, ID: id}
}

func NewFormals(line int, formals ...*Formal) *Formals {
	return &Formals{Base: at(line), Formals: formals}
}

func NewFuncDecl(line int, ret *PrimitiveType, id *ID, formals *Formals, body *Statements) *FuncDecl {
	return &FuncDecl{Base: at(line), ReturnType: ret, ID: id, Formals: formals, Body: body}
}

func NewFuncs(funcs ...*FuncDecl) *Funcs {
	line := 0
	if len(funcs) > 0 {
		line = funcs[0].Line()
	}
	return &Funcs{Base: at(line), Funcs: funcs}
}
