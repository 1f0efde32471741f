package types

// TypeCompatibility represents the relationship between two types
type TypeCompatibility int

const (
	// Incompatible types cannot be converted, not even with a cast
	Incompatible TypeCompatibility = iota

	// Identical types are exactly the same
	Identical

	// Widening means the conversion is implicit and loses nothing (byte -> int)
	Widening

	// Narrowing means the conversion may lose information and needs a cast
	Narrowing
)

func (tc TypeCompatibility) String() string {
	switch tc {
	case Incompatible:
		return "incompatible"
	case Identical:
		return "identical"
	case Widening:
		return "widening"
	case Narrowing:
		return "narrowing"
	default:
		return "unknown"
	}
}

// CheckCompatibility determines how a value of type source relates to a
// slot of type target.
func CheckCompatibility(source, target BuiltInType) TypeCompatibility {
	if source == Undef || target == Undef {
		return Incompatible
	}

	if source == target {
		return Identical
	}

	if IsNumeric(source) && IsNumeric(target) {
		if source == Byte && target == Int {
			return Widening
		}
		return Narrowing
	}

	return Incompatible
}
