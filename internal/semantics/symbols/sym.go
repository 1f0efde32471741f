package symbols

import (
	"fmt"
	"strings"

	"github.com/matanophir/Compi-3/internal/types"
)

// SymbolKind categorizes symbols
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolParameter
	SymbolFunction
)

func (sk SymbolKind) String() string {
	switch sk {
	case SymbolVariable:
		return "variable"
	case SymbolParameter:
		return "parameter"
	case SymbolFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Symbol represents one declared name.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type types.BuiltInType // declared type, or return type for functions
	Line int               // declaration line; 0 for builtins

	// Offset is the activation-record slot. Parameters are negative, locals
	// start at 0. Meaningless for functions, which always get 0.
	Offset int

	// ParamTypes holds the ordered parameter types of a function.
	ParamTypes []types.BuiltInType

	// Size is the element count of an array variable, 0 for scalars.
	Size int
}

func (s *Symbol) IsFunction() bool { return s.Kind == SymbolFunction }

func (s *Symbol) IsArray() bool { return s.Size > 0 }

// ParamTypeNames renders the parameter types with their canonical spelling.
func (s *Symbol) ParamTypeNames() []string {
	return types.Names(s.ParamTypes)
}

// String renders the symbol the way the scope dump prints it:
// "offset type name" for data, "offset type name(p1, p2)" for functions.
func (s *Symbol) String() string {
	switch {
	case s.IsFunction():
		return fmt.Sprintf("%d %s %s(%s)", s.Offset, s.Type, s.Name, strings.Join(s.ParamTypeNames(), ", "))
	case s.IsArray():
		return fmt.Sprintf("%d %s[%d] %s", s.Offset, s.Type, s.Size, s.Name)
	default:
		return fmt.Sprintf("%d %s %s", s.Offset, s.Type, s.Name)
	}
}
