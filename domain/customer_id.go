package domain

import "regexp"

// customerIDPattern: three letters, five digits, two letters, a hyphen, then A or Q.
// Letters are any Unicode letter.
var customerIDPattern = regexp.MustCompile(`^\p{L}{3}\d{5}\p{L}{2}-[AQ]$`)

// CustomerID identifies the customer who owns a cart.
type CustomerID struct {
	id string
}

// ValidateCustomerID returns raw unchanged if it is a well-formed customer ID.
func ValidateCustomerID(raw string) (string, error) {
	if !customerIDPattern.MatchString(raw) {
		return "", NewRangeError("customer_id", "must be formatted correctly", raw)
	}
	return raw, nil
}

// NewCustomerID creates a validated CustomerID.
func NewCustomerID(raw string) (CustomerID, error) {
	id, err := ValidateCustomerID(raw)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// ParseCustomerID validates a customer ID that arrived as an untyped value.
func ParseCustomerID(v any) (CustomerID, error) {
	s, ok := v.(string)
	if !ok {
		return CustomerID{}, NewTypeError("customer_id", "must be a string", v)
	}
	return NewCustomerID(s)
}

func (c CustomerID) String() string {
	return c.id
}

// IsZero reports whether c was never constructed.
func (c CustomerID) IsZero() bool {
	return c.id == ""
}
