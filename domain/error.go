// Package domain defines error types for the shopping cart core.
package domain

import (
	"errors"
	"fmt"
)

// TypeError is returned when a value is of the wrong fundamental kind
// (not text, not a real number, not a list, not a known record shape).
type TypeError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for TypeError
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *TypeError) Is(target error) bool {
	_, ok := target.(*TypeError)
	return ok
}

// RangeError is returned when a value has the right kind but breaks a domain rule:
// bad format, out of bounds, unknown sku, missing stock.
type RangeError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for RangeError
func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

// CartNotFoundError is returned when no open cart has the given ID
type CartNotFoundError struct {
	CartID string
}

// Error implements the error interface for CartNotFoundError
func (e *CartNotFoundError) Error() string {
	return fmt.Sprintf("cart not found: id=%s", e.CartID)
}

// Is allows proper error type checking with errors.Is()
func (e *CartNotFoundError) Is(target error) bool {
	_, ok := target.(*CartNotFoundError)
	return ok
}

// Helper functions for creating errors with context

// NewTypeError creates a new TypeError
func NewTypeError(field, reason string, value interface{}) error {
	return &TypeError{Field: field, Reason: reason, Value: value}
}

// NewRangeError creates a new RangeError
func NewRangeError(field, reason string, value interface{}) error {
	return &RangeError{Field: field, Reason: reason, Value: value}
}

// NewCartNotFoundError creates a new CartNotFoundError
func NewCartNotFoundError(cartID string) error {
	return &CartNotFoundError{CartID: cartID}
}

// IsTypeError checks if an error is a TypeError
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// IsRangeError checks if an error is a RangeError
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// IsCartNotFoundError checks if an error is a CartNotFoundError
func IsCartNotFoundError(err error) bool {
	var cnf *CartNotFoundError
	return errors.As(err, &cnf)
}
