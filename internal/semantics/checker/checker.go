// Package checker is the semantic pass over a FanC syntax tree. It resolves
// names against a shadow-free symbol table, assigns frame offsets and checks
// types, stopping at the first violation.
package checker

import (
	"errors"
	"io"

	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/diagnostics"
	"github.com/matanophir/Compi-3/internal/frontend/ast"
	"github.com/matanophir/Compi-3/internal/semantics/symbols"
	"github.com/matanophir/Compi-3/internal/semantics/table"
	"github.com/matanophir/Compi-3/internal/types"
)

const DefaultEntryFunction = "main"

type Options struct {
	EntryFunction string
	Listener      table.Listener
	Trace         io.Writer // debug trace; nil disables it
}

type Option func(*Options)

// WithEntryFunction sets the name of the function every program must define
// as "void name()".
func WithEntryFunction(name string) Option {
	return func(o *Options) { o.EntryFunction = name }
}

// WithListener forwards scope open/close events of the pass's table.
func WithListener(l table.Listener) Option {
	return func(o *Options) { o.Listener = l }
}

func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.Trace = w }
}

// Result describes an accepted program.
type Result struct {
	Globals []*symbols.Symbol // global scope at the end of the pass, builtins first
}

// Checker implements ast.Visitor. A Checker serves a single Analyze call.
type Checker struct {
	opts  Options
	table *table.SymbolTable

	expectedReturn types.BuiltInType // types.Undef outside any function
	inLoop         bool
}

var _ ast.Visitor = (*Checker)(nil)

// Analyze checks a whole program. The returned error, when non-nil, is the
// first *diagnostics.Diagnostic found.
func Analyze(root *ast.Funcs, opts ...Option) (*Result, error) {
	o := Options{EntryFunction: DefaultEntryFunction}
	for _, opt := range opts {
		opt(&o)
	}

	var tableOpts []table.Option
	if o.Listener != nil {
		tableOpts = append(tableOpts, table.WithListener(o.Listener))
	}

	c := &Checker{opts: o, table: table.New(tableOpts...)}
	defer c.table.Close()

	if root == nil {
		root = ast.NewFuncs()
	}
	if err := root.Accept(c); err != nil {
		c.tracef(colors.RED, "rejected: %v\n", err)
		return nil, err
	}
	if err := c.checkEntry(); err != nil {
		c.tracef(colors.RED, "rejected: %v\n", err)
		return nil, err
	}

	c.tracef(colors.GREEN, "accepted\n")
	return &Result{Globals: c.table.Scope()}, nil
}

func (c *Checker) tracef(color colors.COLOR, format string, args ...any) {
	if c.opts.Trace == nil {
		return
	}
	color.Fprintf(c.opts.Trace, "[checker] "+format, args...)
}

// enterFunction sets the expected return type and opens the function scope.
// The returned func undoes both.
func (c *Checker) enterFunction(ret types.BuiltInType) func() {
	saved := c.expectedReturn
	c.expectedReturn = ret
	c.table.EnterScope()
	return func() {
		c.table.ExitScope()
		c.expectedReturn = saved
	}
}

func (c *Checker) enterLoop() func() {
	saved := c.inLoop
	c.inLoop = true
	return func() { c.inLoop = saved }
}

// declared maps a table error to a redeclaration diagnostic.
func declared(err error) error {
	var redecl *table.RedeclarationError
	if errors.As(err, &redecl) {
		return diagnostics.Redeclared(redecl.Line, redecl.Name, redecl.Existing.Line)
	}
	return err
}

// checkEntry verifies the whole-program postcondition once the walk is done.
func (c *Checker) checkEntry() error {
	entry := c.opts.EntryFunction
	sym, ok := c.table.Lookup(entry)
	if !ok || !sym.IsFunction() || sym.Type != types.Void || len(sym.ParamTypes) != 0 {
		return diagnostics.MainMissing(entry)
	}
	return nil
}

// VisitFuncs registers every signature before any body is visited so that
// forward and recursive calls resolve.
func (c *Checker) VisitFuncs(n *ast.Funcs) error {
	for _, fn := range n.Funcs {
		if fn.ReturnType == nil {
			return diagnostics.Syntax(fn.Line())
		}
		if _, err := c.table.AddFunction(fn.ID.Name, fn.ReturnType.Builtin, fn.ID.Line(), fn.Formals.ParamTypes()); err != nil {
			return declared(err)
		}
	}

	for _, fn := range n.Funcs {
		if err := fn.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) VisitFuncDecl(n *ast.FuncDecl) error {
	if err := n.ReturnType.Accept(c); err != nil {
		return err
	}
	ret := n.ReturnType.Type()
	c.tracef(colors.CYAN, "function %s %s\n", ret, n.ID.Name)

	defer c.enterFunction(ret)()

	if n.Formals != nil {
		if err := n.Formals.Accept(c); err != nil {
			return err
		}
	}
	if n.Body != nil {
		if err := n.Body.Accept(c); err != nil {
			return err
		}
	}
	n.SetType(ret)
	return nil
}

func (c *Checker) VisitFormals(n *ast.Formals) error {
	for _, formal := range n.Formals {
		if err := formal.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) VisitFormal(n *ast.Formal) error {
	if err := n.FormalType.Accept(c); err != nil {
		return err
	}
	typ := n.FormalType.Type()
	if typ == types.Void {
		return diagnostics.MismatchWithNote(n.Line(), "a value type", typ.String())
	}

	sym, err := c.table.AddParameter(n.ID.Name, typ, n.ID.Line())
	if err != nil {
		return declared(err)
	}
	c.tracef(colors.GREY, "  param %s %s at %d\n", typ, sym.Name, sym.Offset)
	n.SetType(typ)
	return nil
}

func (c *Checker) VisitPrimitiveType(n *ast.PrimitiveType) error {
	n.SetType(n.Builtin)
	return nil
}

// VisitArrayType computes the element type; the size is checked by the
// declaration that owns it.
func (c *Checker) VisitArrayType(n *ast.ArrayType) error {
	n.SetType(n.Elem)
	return nil
}
