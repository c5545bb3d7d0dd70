package calc

import (
	"strconv"
	"strings"
)

// ParseOperand converts operand text to a number. Text that does not parse
// (including empty) is worth 0. Entry is digit-only, so this is the total,
// defensive form of the conversion.
func ParseOperand(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Apply evaluates one binary operation. Division by zero yields 0: the
// calculator has no error surface, so the quotient degrades to a defined
// value instead of failing.
func Apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	}
	return 0
}

// FormatResult renders a result for display: shortest decimal form, with a
// trailing ".00" or ".0" stripped once so integral results show without
// decoration.
func FormatResult(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.HasSuffix(s, ".00") {
		return s[:len(s)-3]
	}
	if strings.HasSuffix(s, ".0") {
		return s[:len(s)-2]
	}
	return s
}
