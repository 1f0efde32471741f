package numeric

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Regex pattern components for literal digits
const (
	BinDigits = `[01]`
	DecDigits = `[0-9]`

	// Digits may be grouped with single underscores: 1111_0000
	BinNumber = BinDigits + `(?:` + BinDigits + `|_` + BinDigits + `)*`
	DecNumber = DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`
)

var (
	binaryRegex  = regexp.MustCompile(`^` + BinNumber + `$`)
	decimalRegex = regexp.MustCompile(`^` + DecNumber + `$`)
)

// IsBinary checks if the string is a run of binary digits
func IsBinary(s string) bool {
	return binaryRegex.MatchString(s)
}

// IsDecimal checks if the string is a run of decimal digits
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// ParseBinary reads binary digits of any length.
func ParseBinary(s string) (*big.Int, error) {
	if !IsBinary(s) {
		return nil, fmt.Errorf("invalid binary literal: %q", s)
	}
	result, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 2)
	if !ok {
		return nil, fmt.Errorf("invalid binary literal: %q", s)
	}
	return result, nil
}

// ParseDecimal reads a non-negative decimal literal into an int.
func ParseDecimal(s string) (int, error) {
	if !IsDecimal(s) {
		return 0, fmt.Errorf("invalid decimal literal: %q", s)
	}
	return strconv.Atoi(strings.ReplaceAll(s, "_", ""))
}

// FitsInBitSize checks if a big.Int value fits in the given bit size (signed or unsigned)
func FitsInBitSize(value *big.Int, bitSize int, signed bool) bool {
	if signed {
		// Signed range: -2^(bitSize-1) to 2^(bitSize-1) - 1
		min := new(big.Int).Lsh(big.NewInt(-1), uint(bitSize-1))
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1)), big.NewInt(1))
		return value.Cmp(min) >= 0 && value.Cmp(max) <= 0
	}
	// Unsigned range: 0 to 2^bitSize - 1
	if value.Sign() < 0 {
		return false
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize)), big.NewInt(1))
	return value.Cmp(max) <= 0
}

// numeric to ordinal: 1 -> 1st, 2 -> 2nd, 3 -> 3rd, 4 -> 4th, etc.
func NumericToOrdinal(n int) string {
	if n <= 0 {
		return ""
	}

	// Handle special cases for 11, 12, 13
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}

	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
