package types

// IsNumeric reports whether t takes part in arithmetic.
func IsNumeric(t BuiltInType) bool {
	return t == Int || t == Byte
}

// CanAssign reports whether a value of type from may be stored where to is
// expected. Only identity and byte-to-int widening are allowed.
func CanAssign(from, to BuiltInType) bool {
	switch CheckCompatibility(from, to) {
	case Identical, Widening:
		return true
	default:
		return false
	}
}

// CanCast reports whether an explicit cast from -> to is legal: the types
// already match, or both are numeric.
func CanCast(from, to BuiltInType) bool {
	return CheckCompatibility(from, to) != Incompatible
}

// BinaryResult is the type of an arithmetic expression over l and r, which
// must already be known to be numeric. byte op byte stays byte, anything
// else is int.
func BinaryResult(l, r BuiltInType) BuiltInType {
	if l == Byte && r == Byte {
		return Byte
	}
	return Int
}
