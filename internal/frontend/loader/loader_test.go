package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/types"
)

func TestLoadFile(t *testing.T) {
	prog, err := LoadFile("testdata/accept.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if prog.Path != "testdata/accept.yaml" {
		t.Errorf("Path = %q", prog.Path)
	}
	if !strings.HasPrefix(prog.Source, "int add(int a, byte b) {\n") {
		t.Errorf("Source = %q", prog.Source)
	}
	if len(prog.Root.Funcs) != 2 {
		t.Fatalf("len(Funcs) = %d, want 2", len(prog.Root.Funcs))
	}

	add := prog.Root.Funcs[0]
	if add.ID.Name != "add" || add.ReturnType.Builtin != types.Int {
		t.Errorf("first function = %s %s", add.ReturnType.Builtin, add.ID.Name)
	}
	if got := add.Formals.ParamTypes(); len(got) != 2 || got[0] != types.Int || got[1] != types.Byte {
		t.Errorf("ParamTypes() = %v, want [int byte]", got)
	}

	main := prog.Root.Funcs[1]
	if main.Line() != 4 || len(main.Body.Statements) != 4 {
		t.Fatalf("main at line %d with %d statements", main.Line(), len(main.Body.Statements))
	}

	arr, ok := main.Body.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.VarDecl", main.Body.Statements[0])
	}
	if at, ok := arr.VarType.(*ast.ArrayType); !ok || at.Size != 3 || at.Elem != types.Int {
		t.Errorf("arr type = %#v, want int[3]", arr.VarType)
	}

	loop, ok := main.Body.Statements[2].(*ast.While)
	if !ok {
		t.Fatalf("statement 2 is %T, want *ast.While", main.Body.Statements[2])
	}
	if rel, ok := loop.Cond.(*ast.RelOp); !ok || rel.Op != ast.LT || rel.Line() != 7 {
		t.Errorf("while condition = %#v", loop.Cond)
	}
	body := loop.Body.(*ast.Statements)
	store := body.Statements[0].(*ast.ArrayAssign)
	call := store.Exp.(*ast.Call)
	if call.Func.Name != "add" || len(call.Args.Exps) != 2 {
		t.Errorf("call = %s with %d args", call.Func.Name, len(call.Args.Exps))
	}
	if numb := call.Args.Exps[1].(*ast.NumB); numb.Digits != "1" {
		t.Errorf("byte digits = %q", numb.Digits)
	}

	branch := main.Body.Statements[3].(*ast.If)
	if branch.Else == nil {
		t.Error("if without else branch")
	}
}

func TestDecodeDefaultsLineToYAMLLine(t *testing.T) {
	src := `funcs:
  - name: main
    returns: void
    body:
      - {kind: break}
`
	prog, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	fn := prog.Root.Funcs[0]
	if fn.Line() != 2 {
		t.Errorf("function line = %d, want 2", fn.Line())
	}
	if got := fn.Body.Statements[0].Line(); got != 5 {
		t.Errorf("break line = %d, want 5", got)
	}
}

func TestDecodeKeepsByteDigits(t *testing.T) {
	src := `funcs:
  - name: main
    returns: void
    body:
      - {kind: decl, type: byte, name: b, init: {kind: numb, value: 0101}}
`
	prog, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	decl := prog.Root.Funcs[0].Body.Statements[0].(*ast.VarDecl)
	if digits := decl.Init.(*ast.NumB).Digits; digits != "0101" {
		t.Errorf("Digits = %q, want 0101", digits)
	}
}

func TestDecodeOptionalParts(t *testing.T) {
	src := `funcs:
  - name: main
    returns: void
    body:
      - {kind: return}
      - {kind: if, cond: {kind: bool, value: true}}
      - {kind: block, body: [{kind: continue}]}
`
	prog, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	stmts := prog.Root.Funcs[0].Body.Statements
	if ret := stmts[0].(*ast.Return); ret.Exp != nil {
		t.Error("bare return has a value")
	}
	if branch := stmts[1].(*ast.If); branch.Else != nil {
		t.Error("if without else decoded an else branch")
	}
	if block := stmts[2].(*ast.Statements); len(block.Statements) != 1 {
		t.Errorf("block has %d statements, want 1", len(block.Statements))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
		msg  string
	}{
		{
			name: "unknown top-level field",
			src:  "funcs: []\nversion: 2\n",
			msg:  `unknown field "version"`,
		},
		{
			name: "unknown node kind",
			src:  "funcs:\n  - {name: main, returns: void, body: [{kind: goto}]}\n",
			path: "funcs[0].body[0]",
			msg:  `unknown node kind "goto"`,
		},
		{
			name: "field of another kind",
			src:  "funcs:\n  - {name: main, returns: void, body: [{kind: break, value: 1}]}\n",
			path: "funcs[0].body[0]",
			msg:  `unknown field "value"`,
		},
		{
			name: "bad type",
			src:  "funcs:\n  - {name: main, returns: float}\n",
			path: "funcs[0].returns",
			msg:  "float",
		},
		{
			name: "missing name",
			src:  "funcs:\n  - {returns: void}\n",
			path: "funcs[0]",
			msg:  `missing field "name"`,
		},
		{
			name: "bad operator",
			src:  "funcs:\n  - {name: main, returns: void, body: [{kind: return, value: {kind: binop, op: '%', left: {kind: num, value: 1}, right: {kind: num, value: 2}}}]}\n",
			path: "funcs[0].body[0].value.op",
			msg:  "unknown arithmetic operator",
		},
		{
			name: "bad bool",
			src:  "funcs:\n  - {name: main, returns: void, body: [{kind: return, value: {kind: bool, value: maybe}}]}\n",
			path: "funcs[0].body[0].value.value",
			msg:  "expected true or false",
		},
		{
			name: "expression as statement",
			src:  "funcs:\n  - {name: main, returns: void, body: [{kind: num, value: 1}]}\n",
			path: "funcs[0].body[0]",
			msg:  "num is not a statement",
		},
		{
			name: "not a mapping",
			src:  "- 1\n- 2\n",
			msg:  "expected a mapping",
		},
		{
			name: "duplicate field",
			src:  "funcs:\n  - {name: main, name: other, returns: void}\n",
			msg:  "",
		},
		{
			name: "bad line",
			src:  "funcs:\n  - {line: 0, name: main, returns: void}\n",
			path: "funcs[0].line",
			msg:  "line must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Decode() error = %q, want it to mention %q", err, tt.msg)
			}
			if tt.path == "" {
				return
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Decode() error %T is not a *DecodeError", err)
			}
			if de.Path != tt.path {
				t.Errorf("Path = %q, want %q", de.Path, tt.path)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(strings.NewReader("")); err == nil {
		t.Error("Decode() of empty input succeeded")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	if err == nil || !strings.Contains(err.Error(), "does-not-exist.yaml") {
		t.Errorf("LoadFile() error = %v", err)
	}
}

func TestLoadFileNumbers(t *testing.T) {
	prog, err := LoadFile("testdata/reject.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	decl := prog.Root.Funcs[0].Body.Statements[0].(*ast.VarDecl)
	if num, ok := decl.Init.(*ast.Num); !ok || num.Value != 300 {
		t.Errorf("init = %#v, want num 300", decl.Init)
	}

	_, err = Decode(strings.NewReader("funcs:\n  - {name: main, returns: void, body: [{kind: return, value: {kind: num, value: -1}}]}\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid decimal literal") {
		t.Errorf("Decode() of a negative literal error = %v", err)
	}
}
