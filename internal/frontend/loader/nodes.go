package loader

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/utils/numeric"
)

func (d *decoder) statement(n *yaml.Node, path string) (ast.Statement, error) {
	kind, line, f, err := node(n, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "decl":
		return d.varDecl(f, line)
	case "assign":
		name, err := f.scalar("name")
		if err != nil {
			return nil, err
		}
		value, err := d.exprField(f, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(line, ast.NewID(line, name), value), nil
	case "array_assign":
		name, err := f.scalar("name")
		if err != nil {
			return nil, err
		}
		index, err := d.exprField(f, "index")
		if err != nil {
			return nil, err
		}
		value, err := d.exprField(f, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewArrayAssign(line, ast.NewID(line, name), index, value), nil
	case "call":
		call, err := d.call(f, line)
		if err != nil {
			return nil, err
		}
		return call, nil
	case "if":
		cond, err := d.exprField(f, "cond")
		if err != nil {
			return nil, err
		}
		then, err := d.block(f, "then", line)
		if err != nil {
			return nil, err
		}
		if !f.has("else") {
			return ast.NewIf(line, cond, then, nil), nil
		}
		els, err := d.block(f, "else", line)
		if err != nil {
			return nil, err
		}
		return ast.NewIf(line, cond, then, els), nil
	case "while":
		cond, err := d.exprField(f, "cond")
		if err != nil {
			return nil, err
		}
		body, err := d.block(f, "body", line)
		if err != nil {
			return nil, err
		}
		return ast.NewWhile(line, cond, body), nil
	case "break":
		return ast.NewBreak(line), nil
	case "continue":
		return ast.NewContinue(line), nil
	case "return":
		if !f.has("value") {
			return ast.NewReturn(line, nil), nil
		}
		value, err := d.exprField(f, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewReturn(line, value), nil
	case "block":
		body, err := d.block(f, "body", line)
		if err != nil {
			return nil, err
		}
		return body, nil
	default:
		return nil, errorf(n, path, "%s is not a statement", kind)
	}
}

// varDecl decodes "type name [= init]"; a size makes it an array.
func (d *decoder) varDecl(f *fields, line int) (ast.Statement, error) {
	name, err := f.scalar("name")
	if err != nil {
		return nil, err
	}
	typ, err := f.builtin("type")
	if err != nil {
		return nil, err
	}

	var varType ast.TypeNode = ast.NewPrimitiveType(line, typ)
	if f.has("size") {
		size, err := f.integer("size")
		if err != nil {
			return nil, err
		}
		varType = ast.NewArrayType(line, typ, size)
	}

	if !f.has("init") {
		return ast.NewVarDecl(line, varType, ast.NewID(line, name), nil), nil
	}
	initExp, err := d.exprField(f, "init")
	if err != nil {
		return nil, err
	}
	return ast.NewVarDecl(line, varType, ast.NewID(line, name), initExp), nil
}

func (d *decoder) call(f *fields, line int) (*ast.Call, error) {
	name, err := f.scalar("name")
	if err != nil {
		return nil, err
	}
	items, err := f.seq("args")
	if err != nil {
		return nil, err
	}
	args := make([]ast.Expression, 0, len(items))
	for i, item := range items {
		arg, err := d.expression(item, f.sub("args")+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ast.NewCall(line, ast.NewID(line, name), args...), nil
}

func (d *decoder) exprField(f *fields, key string) (ast.Expression, error) {
	n, err := f.require(key)
	if err != nil {
		return nil, err
	}
	return d.expression(n, f.sub(key))
}

// operands decodes the "left" and "right" fields.
func (d *decoder) operands(f *fields) (ast.Expression, ast.Expression, error) {
	left, err := d.exprField(f, "left")
	if err != nil {
		return nil, nil, err
	}
	right, err := d.exprField(f, "right")
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (d *decoder) expression(n *yaml.Node, path string) (ast.Expression, error) {
	kind, line, f, err := node(n, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "num":
		raw, err := f.scalar("value")
		if err != nil {
			return nil, err
		}
		value, err := numeric.ParseDecimal(raw)
		if err != nil {
			return nil, errorf(f.values["value"], f.sub("value"), "%v", err)
		}
		return ast.NewNum(line, value), nil
	case "numb":
		// digits are kept verbatim; "0101" must not lose its leading zero
		digits, err := f.scalar("value")
		if err != nil {
			return nil, err
		}
		return ast.NewNumB(line, digits), nil
	case "string":
		value, err := f.scalar("value")
		if err != nil {
			return nil, err
		}
		return ast.NewString(line, value), nil
	case "bool":
		raw, err := f.scalar("value")
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errorf(f.values["value"], f.sub("value"), "expected true or false")
		}
		return ast.NewBool(line, value), nil
	case "id":
		name, err := f.scalar("name")
		if err != nil {
			return nil, err
		}
		return ast.NewID(line, name), nil
	case "binop":
		sym, err := f.scalar("op")
		if err != nil {
			return nil, err
		}
		op, ok := binOps[sym]
		if !ok {
			return nil, errorf(f.values["op"], f.sub("op"), "unknown arithmetic operator %q", sym)
		}
		left, right, err := d.operands(f)
		if err != nil {
			return nil, err
		}
		return ast.NewBinOp(line, op, left, right), nil
	case "relop":
		sym, err := f.scalar("op")
		if err != nil {
			return nil, err
		}
		op, ok := relOps[sym]
		if !ok {
			return nil, errorf(f.values["op"], f.sub("op"), "unknown relational operator %q", sym)
		}
		left, right, err := d.operands(f)
		if err != nil {
			return nil, err
		}
		return ast.NewRelOp(line, op, left, right), nil
	case "not":
		exp, err := d.exprField(f, "exp")
		if err != nil {
			return nil, err
		}
		return ast.NewNot(line, exp), nil
	case "and", "or":
		left, right, err := d.operands(f)
		if err != nil {
			return nil, err
		}
		if kind == "and" {
			return ast.NewAnd(line, left, right), nil
		}
		return ast.NewOr(line, left, right), nil
	case "index":
		name, err := f.scalar("name")
		if err != nil {
			return nil, err
		}
		index, err := d.exprField(f, "index")
		if err != nil {
			return nil, err
		}
		return ast.NewArrayDereference(line, ast.NewID(line, name), index), nil
	case "cast":
		target, err := f.builtin("type")
		if err != nil {
			return nil, err
		}
		exp, err := d.exprField(f, "exp")
		if err != nil {
			return nil, err
		}
		return ast.NewCast(line, exp, ast.NewPrimitiveType(line, target)), nil
	case "call":
		call, err := d.call(f, line)
		if err != nil {
			return nil, err
		}
		return call, nil
	default:
		return nil, errorf(n, path, "%s is not an expression", kind)
	}
}
