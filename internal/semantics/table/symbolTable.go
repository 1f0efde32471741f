package table

import (
	"fmt"
	"slices"

	"github.com/matanophir/Compi-3/internal/semantics/symbols"
	"github.com/matanophir/Compi-3/internal/types"
)

// Listener observes scope lifetimes. The scope dump printer implements it.
type Listener interface {
	// ScopeOpened is called after a scope is pushed; depth 0 is the global scope.
	ScopeOpened(depth int)
	// ScopeClosed receives the symbols of a scope in enumeration order
	// (parameters first, by ascending offset, then locals), just before the
	// scope is discarded.
	ScopeClosed(depth int, syms []*symbols.Symbol)
}

// RedeclarationError is returned when a name is declared while another
// symbol of the same name is still live anywhere in the scope stack.
type RedeclarationError struct {
	Name     string
	Line     int
	Existing *symbols.Symbol
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("symbol '%s' already declared (line %d)", e.Name, e.Existing.Line)
}

// scope is one lexical level: its symbols in declaration order and the
// running frame offset.
type scope struct {
	symbols []*symbols.Symbol
	offset  int
}

// SymbolTable holds every live symbol of one analysis pass.
//
// Names are resolved through a single index rather than a parent chain:
// FanC forbids shadowing, so a name maps to at most one live symbol no
// matter how deep the scope stack is.
type SymbolTable struct {
	scopes   []*scope
	index    map[string]*symbols.Symbol
	listener Listener
}

type Option func(*SymbolTable)

// WithListener attaches a listener that sees every scope open and close,
// including the global scope.
func WithListener(l Listener) Option {
	return func(st *SymbolTable) { st.listener = l }
}

// New opens the global scope and registers the builtin print functions.
func New(opts ...Option) *SymbolTable {
	st := &SymbolTable{index: make(map[string]*symbols.Symbol)}
	for _, opt := range opts {
		opt(st)
	}

	st.scopes = append(st.scopes, &scope{})
	if st.listener != nil {
		st.listener.ScopeOpened(0)
	}

	for _, b := range builtins {
		if _, err := st.AddFunction(b.name, b.ret, 0, b.params); err != nil {
			panic(err)
		}
	}
	return st
}

var builtins = []struct {
	name   string
	ret    types.BuiltInType
	params []types.BuiltInType
}{
	{"print", types.Void, []types.BuiltInType{types.String}},
	{"printi", types.Void, []types.BuiltInType{types.Int}},
}

func (st *SymbolTable) current() *scope {
	return st.scopes[len(st.scopes)-1]
}

// Depth is the number of open scopes above the global one.
func (st *SymbolTable) Depth() int {
	return len(st.scopes) - 1
}

// EnterScope pushes an empty scope. Its offset counter starts from the
// enclosing scope's current value so numbering continues across nesting.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, &scope{offset: st.current().offset})
	if st.listener != nil {
		st.listener.ScopeOpened(st.Depth())
	}
}

// ExitScope releases every name declared in the innermost scope and pops it.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) == 0 {
		panic("table: ExitScope without an open scope")
	}
	top := st.current()
	for _, sym := range top.symbols {
		delete(st.index, sym.Name)
	}
	if st.listener != nil {
		st.listener.ScopeClosed(st.Depth(), top.symbols)
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Close exits every open scope, the global one included. The table must
// not be used afterwards.
func (st *SymbolTable) Close() {
	for len(st.scopes) > 0 {
		st.ExitScope()
	}
}

func (st *SymbolTable) checkFree(name string, line int) error {
	if existing, ok := st.index[name]; ok {
		return &RedeclarationError{Name: name, Line: line, Existing: existing}
	}
	return nil
}

func (st *SymbolTable) register(sym *symbols.Symbol) {
	st.index[sym.Name] = sym
}

// AddVariable declares a local in the current scope and gives it the next
// non-negative slot.
func (st *SymbolTable) AddVariable(name string, typ types.BuiltInType, line int) (*symbols.Symbol, error) {
	return st.addLocal(name, typ, line, 0)
}

// AddArray declares a local array of size elements; it occupies size
// consecutive slots starting at its offset.
func (st *SymbolTable) AddArray(name string, elem types.BuiltInType, size, line int) (*symbols.Symbol, error) {
	if size <= 0 {
		return nil, fmt.Errorf("array '%s' must have a positive size, got %d", name, size)
	}
	return st.addLocal(name, elem, line, size)
}

func (st *SymbolTable) addLocal(name string, typ types.BuiltInType, line, size int) (*symbols.Symbol, error) {
	if err := st.checkFree(name, line); err != nil {
		return nil, err
	}

	cur := st.current()
	// Only parameters were allocated so far; locals start at the frame base.
	if cur.offset < 0 {
		cur.offset = 0
	}

	sym := &symbols.Symbol{
		Name:   name,
		Kind:   symbols.SymbolVariable,
		Type:   typ,
		Line:   line,
		Offset: cur.offset,
		Size:   size,
	}
	cur.symbols = append(cur.symbols, sym)
	st.register(sym)

	if size > 0 {
		cur.offset += size
	} else {
		cur.offset++
	}
	return sym, nil
}

// AddFunction declares a function signature in the current scope.
func (st *SymbolTable) AddFunction(name string, ret types.BuiltInType, line int, params []types.BuiltInType) (*symbols.Symbol, error) {
	if err := st.checkFree(name, line); err != nil {
		return nil, err
	}

	sym := &symbols.Symbol{
		Name:       name,
		Kind:       symbols.SymbolFunction,
		Type:       ret,
		Line:       line,
		ParamTypes: slices.Clone(params),
	}
	cur := st.current()
	cur.symbols = append(cur.symbols, sym)
	st.register(sym)
	return sym, nil
}

// AddParameter declares a formal parameter. The counter is decremented
// before use, so the first parameter gets -1, the second -2 and so on.
// Parameters are inserted at the front of the scope.
func (st *SymbolTable) AddParameter(name string, typ types.BuiltInType, line int) (*symbols.Symbol, error) {
	if err := st.checkFree(name, line); err != nil {
		return nil, err
	}

	cur := st.current()
	cur.offset--

	sym := &symbols.Symbol{
		Name:   name,
		Kind:   symbols.SymbolParameter,
		Type:   typ,
		Line:   line,
		Offset: cur.offset,
	}
	cur.symbols = slices.Insert(cur.symbols, 0, sym)
	st.register(sym)
	return sym, nil
}

// Lookup returns the live symbol named name.
func (st *SymbolTable) Lookup(name string) (*symbols.Symbol, bool) {
	sym, ok := st.index[name]
	return sym, ok
}

func (st *SymbolTable) Exists(name string) bool {
	_, ok := st.index[name]
	return ok
}

// Scope returns the symbols of the innermost scope in enumeration order.
func (st *SymbolTable) Scope() []*symbols.Symbol {
	return slices.Clone(st.current().symbols)
}
