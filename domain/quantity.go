package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Quantity is a positive number of units.
type Quantity struct {
	value int
}

// ValidateQuantity returns value unchanged if it is greater than zero.
func ValidateQuantity(value int) (int, error) {
	if value <= 0 {
		return 0, NewRangeError("quantity", "must be greater than 0", value)
	}
	return value, nil
}

// NewQuantity creates a validated Quantity.
func NewQuantity(value int) (Quantity, error) {
	v, err := ValidateQuantity(value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

// ParseQuantity validates a quantity that arrived as an untyped value, e.g. from a
// decoder. Only integer kinds are accepted: a float is a TypeError even when whole.
// json.Number is accepted when it is written as an integer.
func ParseQuantity(v any) (Quantity, error) {
	var n int64
	switch x := v.(type) {
	case int:
		return NewQuantity(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Quantity{}, NewRangeError("quantity", "too large", v)
		}
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return Quantity{}, NewRangeError("quantity", "too large", v)
		}
		n = int64(x)
	case json.Number:
		if strings.ContainsAny(x.String(), ".eE") {
			return Quantity{}, NewTypeError("quantity", "must be an integer", v)
		}
		i, err := x.Int64()
		if errors.Is(err, strconv.ErrRange) {
			return Quantity{}, NewRangeError("quantity", "too large", v)
		}
		if err != nil {
			return Quantity{}, NewTypeError("quantity", "must be an integer", v)
		}
		n = i
	default:
		return Quantity{}, NewTypeError("quantity", "must be an integer", v)
	}
	if n > math.MaxInt || n < math.MinInt {
		return Quantity{}, NewRangeError("quantity", "too large", v)
	}
	return NewQuantity(int(n))
}

// Value returns the stored quantity.
func (q Quantity) Value() int {
	return q.value
}
