package domain

import (
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	// DefaultMaxLength bounds free text such as item descriptions.
	DefaultMaxLength = 1000

	// DefaultMinimum is the lower bound ValidatedNumber callers use when they have no other.
	DefaultMinimum = 1.0
)

// DefaultMaximum is the unbounded upper limit for ValidatedNumber.
var DefaultMaximum = math.Inf(1)

// ValidatedString returns value unchanged if it is at most maxLength characters long.
// Length is counted in runes, not bytes.
func ValidatedString(value string, maxLength int) (string, error) {
	if maxLength < 0 {
		return "", NewRangeError("maxLength", "must be non-negative", maxLength)
	}
	if utf8.RuneCountInString(value) > maxLength {
		return "", NewRangeError("value", fmt.Sprintf("length cannot be longer than %d", maxLength), value)
	}
	return value, nil
}

// ValidatedNumber returns value unchanged if it lies within [minimum, maximum].
// NaN is not a real number and is reported as a TypeError for any argument.
func ValidatedNumber(value, minimum, maximum float64) (float64, error) {
	if math.IsNaN(value) {
		return 0, NewTypeError("value", "must be a real number", value)
	}
	if math.IsNaN(minimum) {
		return 0, NewTypeError("minimum", "must be a real number", minimum)
	}
	if math.IsNaN(maximum) {
		return 0, NewTypeError("maximum", "must be a real number", maximum)
	}
	if maximum < minimum {
		return 0, NewRangeError("minimum", "must not be greater than maximum", minimum)
	}
	if value < minimum {
		return 0, NewRangeError("value", fmt.Sprintf("cannot be less than %v", minimum), value)
	}
	if value > maximum {
		return 0, NewRangeError("value", fmt.Sprintf("cannot be greater than %v", maximum), value)
	}
	return value, nil
}
