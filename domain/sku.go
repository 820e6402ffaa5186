package domain

import "regexp"

var skuPattern = regexp.MustCompile(`^[A-Z]{3}_[A-Z]{3}_[0-9]{2}$`)

// SKU is a stock-keeping unit, the key shared by Catalogue, Inventory and Cart.
// The zero value is not a valid SKU.
type SKU struct {
	code string
}

// ValidateSKU returns code unchanged if it matches XXX_XXX_NN.
func ValidateSKU(code string) (string, error) {
	if !skuPattern.MatchString(code) {
		return "", NewRangeError("sku", "must be formatted correctly", code)
	}
	return code, nil
}

// NewSKU creates a validated SKU.
func NewSKU(code string) (SKU, error) {
	c, err := ValidateSKU(code)
	if err != nil {
		return SKU{}, err
	}
	return SKU{code: c}, nil
}

// MustSKU is NewSKU for literals known to be valid; it panics otherwise.
func MustSKU(code string) SKU {
	s, err := NewSKU(code)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSKU validates a sku that arrived as an untyped value.
func ParseSKU(v any) (SKU, error) {
	s, ok := v.(string)
	if !ok {
		return SKU{}, NewTypeError("sku", "must be a string", v)
	}
	return NewSKU(s)
}

// Code returns the sku string.
func (s SKU) Code() string {
	return s.code
}

func (s SKU) String() string {
	return s.code
}

// MarshalText lets SKU-keyed maps encode as JSON objects.
func (s SKU) MarshalText() ([]byte, error) {
	return []byte(s.code), nil
}

// UnmarshalText validates the decoded code.
func (s *SKU) UnmarshalText(text []byte) error {
	parsed, err := NewSKU(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
