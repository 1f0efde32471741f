package loader

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/types"
)

// Fields accepted by each node kind, besides "kind" and "line".
var kindFields = map[string][]string{
	// statements
	"decl":         {"type", "name", "size", "init"},
	"assign":       {"name", "value"},
	"array_assign": {"name", "index", "value"},
	"call":         {"name", "args"},
	"if":           {"cond", "then", "else"},
	"while":        {"cond", "body"},
	"break":        {},
	"continue":     {},
	"return":       {"value"},
	"block":        {"body"},

	// expressions
	"num":    {"value"},
	"numb":   {"value"},
	"string": {"value"},
	"bool":   {"value"},
	"id":     {"name"},
	"binop":  {"op", "left", "right"},
	"relop":  {"op", "left", "right"},
	"not":    {"exp"},
	"and":    {"left", "right"},
	"or":     {"left", "right"},
	"index":  {"name", "index"},
	"cast":   {"type", "exp"},
}

var binOps = map[string]ast.BinOpType{"+": ast.ADD, "-": ast.SUB, "*": ast.MUL, "/": ast.DIV}

var relOps = map[string]ast.RelOpType{
	"==": ast.EQ, "!=": ast.NE, "<": ast.LT, ">": ast.GT, "<=": ast.LE, ">=": ast.GE,
}

type decoder struct{}

// fields is a validated mapping node.
type fields struct {
	node   *yaml.Node
	path   string
	values map[string]*yaml.Node
}

func errorf(n *yaml.Node, path, format string, args ...any) error {
	return &DecodeError{Path: path, YAMLLine: n.Line, Msg: fmt.Sprintf(format, args...)}
}

// mapping checks that n is a mapping using only the allowed keys.
func mapping(n *yaml.Node, path string, allowed ...string) (*fields, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, path, "expected a mapping")
	}
	f := &fields{node: n, path: path, values: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return nil, errorf(key, path, "unknown field %q", key.Value)
		}
		if _, dup := f.values[key.Value]; dup {
			return nil, errorf(key, path, "duplicate field %q", key.Value)
		}
		f.values[key.Value] = n.Content[i+1]
	}
	return f, nil
}

func (f *fields) sub(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

func (f *fields) has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *fields) require(key string) (*yaml.Node, error) {
	n, ok := f.values[key]
	if !ok {
		return nil, errorf(f.node, f.path, "missing field %q", key)
	}
	return n, nil
}

func (f *fields) scalar(key string) (string, error) {
	n, err := f.require(key)
	if err != nil {
		return "", err
	}
	if n.Kind != yaml.ScalarNode {
		return "", errorf(n, f.sub(key), "expected a scalar")
	}
	return n.Value, nil
}

func (f *fields) integer(key string) (int, error) {
	n, err := f.require(key)
	if err != nil {
		return 0, err
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, errorf(n, f.sub(key), "expected an integer: %v", err)
	}
	return v, nil
}

// line is the explicit "line" field, or the node's line in the document.
func (f *fields) line() (int, error) {
	if !f.has("line") {
		return f.node.Line, nil
	}
	line, err := f.integer("line")
	if err != nil {
		return 0, err
	}
	if line < 1 {
		return 0, errorf(f.values["line"], f.sub("line"), "line must be positive")
	}
	return line, nil
}

func (f *fields) builtin(key string) (types.BuiltInType, error) {
	name, err := f.scalar(key)
	if err != nil {
		return types.Undef, err
	}
	t, err := types.Parse(name)
	if err != nil {
		return types.Undef, errorf(f.values[key], f.sub(key), "%v", err)
	}
	return t, nil
}

func (f *fields) seq(key string) ([]*yaml.Node, error) {
	n, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, f.sub(key), "expected a list")
	}
	return n.Content, nil
}

func (d *decoder) program(n *yaml.Node) (*Program, error) {
	f, err := mapping(n, "", "source", "funcs")
	if err != nil {
		return nil, err
	}

	prog := &Program{}
	if f.has("source") {
		if prog.Source, err = f.scalar("source"); err != nil {
			return nil, err
		}
	}

	items, err := f.seq("funcs")
	if err != nil {
		return nil, err
	}
	funcs := make([]*ast.FuncDecl, 0, len(items))
	for i, item := range items {
		fn, err := d.funcDecl(item, fmt.Sprintf("funcs[%d]", i))
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}
	prog.Root = ast.NewFuncs(funcs...)
	return prog, nil
}

func (d *decoder) funcDecl(n *yaml.Node, path string) (*ast.FuncDecl, error) {
	f, err := mapping(n, path, "line", "name", "returns", "params", "body")
	if err != nil {
		return nil, err
	}
	line, err := f.line()
	if err != nil {
		return nil, err
	}
	name, err := f.scalar("name")
	if err != nil {
		return nil, err
	}
	ret, err := f.builtin("returns")
	if err != nil {
		return nil, err
	}

	params, err := f.seq("params")
	if err != nil {
		return nil, err
	}
	formals := make([]*ast.Formal, 0, len(params))
	for i, p := range params {
		formal, err := d.formal(p, fmt.Sprintf("%s.params[%d]", path, i))
		if err != nil {
			return nil, err
		}
		formals = append(formals, formal)
	}

	body, err := d.block(f, "body", line)
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDecl(line, ast.NewPrimitiveType(line, ret), ast.NewID(line, name),
		ast.NewFormals(line, formals...), body), nil
}

func (d *decoder) formal(n *yaml.Node, path string) (*ast.Formal, error) {
	f, err := mapping(n, path, "line", "type", "name")
	if err != nil {
		return nil, err
	}
	line, err := f.line()
	if err != nil {
		return nil, err
	}
	typ, err := f.builtin("type")
	if err != nil {
		return nil, err
	}
	name, err := f.scalar("name")
	if err != nil {
		return nil, err
	}
	return ast.NewFormal(line, ast.NewPrimitiveType(line, typ), ast.NewID(line, name)), nil
}

// block decodes the statement list under key; a missing key is an empty
// block.
func (d *decoder) block(f *fields, key string, line int) (*ast.Statements, error) {
	items, err := f.seq(key)
	if err != nil {
		return nil, err
	}
	stmts := make([]ast.Statement, 0, len(items))
	for i, item := range items {
		stmt, err := d.statement(item, fmt.Sprintf("%s[%d]", f.sub(key), i))
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewStatements(line, stmts...), nil
}

// node validates a kind-tagged mapping and returns its kind and line.
func node(n *yaml.Node, path string) (string, int, *fields, error) {
	if n.Kind != yaml.MappingNode {
		return "", 0, nil, errorf(n, path, "expected a mapping")
	}
	var kind string
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "kind" {
			kind = n.Content[i+1].Value
		}
	}
	allowed, ok := kindFields[kind]
	if !ok {
		return "", 0, nil, errorf(n, path, "unknown node kind %q", kind)
	}
	f, err := mapping(n, path, append([]string{"kind", "line"}, allowed...)...)
	if err != nil {
		return "", 0, nil, err
	}
	line, err := f.line()
	if err != nil {
		return "", 0, nil, err
	}
	return kind, line, f, nil
}
