package types

// Canonical spellings, as they appear in source and in diagnostics.
const (
	TYPE_INT    = "int"
	TYPE_BYTE   = "byte"
	TYPE_BOOL   = "bool"
	TYPE_STRING = "string"
	TYPE_VOID   = "void"
	TYPE_UNDEF  = "undef"
)
