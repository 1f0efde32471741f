package checker

import (
	"errors"
	"testing"

	"github.com/matanophir/Compi-3/internal/diagnostics"
	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/semantics/symbols"
	"github.com/matanophir/Compi-3/internal/types"
)

func prim(line int, t types.BuiltInType) *ast.PrimitiveType {
	return ast.NewPrimitiveType(line, t)
}

func id(line int, name string) *ast.ID {
	return ast.NewID(line, name)
}

// fn builds "ret name(formals) { body }" with everything on line.
func fn(line int, ret types.BuiltInType, name string, formals []*ast.Formal, body ...ast.Statement) *ast.FuncDecl {
	return ast.NewFuncDecl(line, prim(line, ret), id(line, name),
		ast.NewFormals(line, formals...), ast.NewStatements(line, body...))
}

func param(line int, t types.BuiltInType, name string) *ast.Formal {
	return ast.NewFormal(line, prim(line, t), id(line, name))
}

func mainFn(line int, body ...ast.Statement) *ast.FuncDecl {
	return fn(line, types.Void, "main", nil, body...)
}

func decl(line int, t types.BuiltInType, name string, init ast.Expression) *ast.VarDecl {
	return ast.NewVarDecl(line, prim(line, t), id(line, name), init)
}

func printi(line int, arg ast.Expression) *ast.Call {
	return ast.NewCall(line, id(line, "printi"), arg)
}

// inMain wraps statements in a "void main()" program.
func inMain(stmts ...ast.Statement) *ast.Funcs {
	return ast.NewFuncs(mainFn(1, stmts...))
}

func mustAccept(t *testing.T, prog *ast.Funcs, opts ...Option) *Result {
	t.Helper()
	res, err := Analyze(prog, opts...)
	if err != nil {
		t.Fatalf("Analyze() error = %v, want accepted", err)
	}
	return res
}

func mustReject(t *testing.T, prog *ast.Funcs, kind diagnostics.Kind, line int) *diagnostics.Diagnostic {
	t.Helper()
	_, err := Analyze(prog)
	if err == nil {
		t.Fatalf("Analyze() accepted, want %v at line %d", kind, line)
	}
	var diag *diagnostics.Diagnostic
	if !errors.As(err, &diag) {
		t.Fatalf("Analyze() error %T is not a diagnostic", err)
	}
	if diag.Kind != kind {
		t.Fatalf("Analyze() kind = %v (%v), want %v", diag.Kind, diag, kind)
	}
	if diag.Line != line {
		t.Errorf("Analyze() line = %d, want %d (%v)", diag.Line, line, diag)
	}
	return diag
}

// recorder keeps the symbols of every closed scope, keyed by name.
type recorder struct {
	closed  [][]*symbols.Symbol
	offsets map[string]int
}

func newRecorder() *recorder {
	return &recorder{offsets: make(map[string]int)}
}

func (r *recorder) ScopeOpened(depth int) {}

func (r *recorder) ScopeClosed(depth int, syms []*symbols.Symbol) {
	r.closed = append(r.closed, syms)
	for _, sym := range syms {
		r.offsets[sym.Name] = sym.Offset
	}
}
