// Package scopes renders the scope dump used for debugging and golden files.
package scopes

import (
	"io"
	"slices"
	"strings"

	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/semantics/symbols"
)

const indentUnit = "  "

type scopeNode struct {
	symbols  []*symbols.Symbol
	children []*scopeNode
}

// Printer records scopes as a symbol table opens and closes them and renders
// them in creation order, each nested scope indented under its parent.
// It implements table.Listener.
type Printer struct {
	// Colored wraps the scope markers in ANSI colors.
	Colored bool

	root  *scopeNode
	stack []*scopeNode
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) ScopeOpened(depth int) {
	n := &scopeNode{}
	if len(p.stack) == 0 {
		p.root = n
	} else {
		parent := p.stack[len(p.stack)-1]
		parent.children = append(parent.children, n)
	}
	p.stack = append(p.stack, n)
}

func (p *Printer) ScopeClosed(depth int, syms []*symbols.Symbol) {
	if len(p.stack) == 0 {
		return
	}
	top := p.stack[len(p.stack)-1]
	top.symbols = declarationOrder(syms)
	p.stack = p.stack[:len(p.stack)-1]
}

// declarationOrder undoes the front insertion of parameters: the leading
// parameters of a scope are listed from -1 down, as they were declared.
func declarationOrder(syms []*symbols.Symbol) []*symbols.Symbol {
	out := slices.Clone(syms)
	n := 0
	for n < len(out) && out[n].Kind == symbols.SymbolParameter {
		n++
	}
	slices.Reverse(out[:n])
	return out
}

// String renders every scope seen so far. Scopes that are still open are
// printed without their symbols.
func (p *Printer) String() string {
	if p.root == nil {
		return ""
	}
	var b strings.Builder
	p.render(&b, p.root, 0)
	return b.String()
}

func (p *Printer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

func (p *Printer) render(b *strings.Builder, n *scopeNode, depth int) {
	pad := strings.Repeat(indentUnit, depth)
	begin, end := "---begin scope---", "---end scope---"
	if depth == 0 {
		begin, end = "---begin global scope---", "---end global scope---"
	}

	b.WriteString(pad + p.marker(begin) + "\n")
	for _, sym := range n.symbols {
		b.WriteString(pad + sym.String() + "\n")
	}
	for _, child := range n.children {
		p.render(b, child, depth+1)
	}
	b.WriteString(pad + p.marker(end) + "\n")
}

func (p *Printer) marker(s string) string {
	if p.Colored {
		return colors.GREY.Sprint(s)
	}
	return s
}
