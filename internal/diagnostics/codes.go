package diagnostics

// Kind identifies which rule a diagnostic reports.
type Kind int

const (
	KindNone Kind = iota

	// Front end kinds, reported before analysis starts
	KindLex
	KindSyn

	// Analysis kinds
	KindUndef
	KindDefAsFunc
	KindUndefFunc
	KindDefAsVar
	KindDef
	KindPrototypeMismatch
	KindMismatch
	KindUnexpectedBreak
	KindUnexpectedContinue
	KindMainMissing
	KindByteTooLarge
	KindInvalidAssignArray
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lexical error"
	case KindSyn:
		return "syntax error"
	case KindUndef:
		return "undefined identifier"
	case KindDefAsFunc:
		return "defined as function"
	case KindUndefFunc:
		return "undefined function"
	case KindDefAsVar:
		return "defined as variable"
	case KindDef:
		return "redeclaration"
	case KindPrototypeMismatch:
		return "prototype mismatch"
	case KindMismatch:
		return "type mismatch"
	case KindUnexpectedBreak:
		return "unexpected break"
	case KindUnexpectedContinue:
		return "unexpected continue"
	case KindMainMissing:
		return "missing main"
	case KindByteTooLarge:
		return "byte too large"
	case KindInvalidAssignArray:
		return "invalid array assignment"
	default:
		return "unknown"
	}
}

// Error codes
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"

	// Parser errors (P prefix)
	ErrUnexpectedToken = "P0001"

	// Type checker errors (T prefix)
	ErrTypeMismatch       = "T0001"
	ErrUndefinedSymbol    = "T0002"
	ErrRedeclaredSymbol   = "T0003"
	ErrFunctionAsValue    = "T0004"
	ErrNotCallable        = "T0005"
	ErrWrongArgumentCount = "T0006"
	ErrInvalidAssignment  = "T0007"
	ErrUndefinedFunction  = "T0008"
	ErrLiteralOutOfRange  = "T0009"
	ErrInvalidBreak       = "T0019"
	ErrInvalidContinue    = "T0020"
	ErrMissingEntryPoint  = "T0030"
)

var kindCodes = map[Kind]string{
	KindLex:                ErrUnexpectedCharacter,
	KindSyn:                ErrUnexpectedToken,
	KindUndef:              ErrUndefinedSymbol,
	KindDefAsFunc:          ErrFunctionAsValue,
	KindUndefFunc:          ErrUndefinedFunction,
	KindDefAsVar:           ErrNotCallable,
	KindDef:                ErrRedeclaredSymbol,
	KindPrototypeMismatch:  ErrWrongArgumentCount,
	KindMismatch:           ErrTypeMismatch,
	KindUnexpectedBreak:    ErrInvalidBreak,
	KindUnexpectedContinue: ErrInvalidContinue,
	KindMainMissing:        ErrMissingEntryPoint,
	KindByteTooLarge:       ErrLiteralOutOfRange,
	KindInvalidAssignArray: ErrInvalidAssignment,
}

// Code returns the error code reported for kind.
func (k Kind) Code() string {
	return kindCodes[k]
}
