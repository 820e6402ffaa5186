package domain

import (
	"context"

	"github.com/google/uuid"
)

// CartSummary describes an open cart without exposing its contents
type CartSummary struct {
	ID         uuid.UUID `json:"id"`
	CustomerID string    `json:"customer_id"`
	Lines      int       `json:"lines"`
}

// CartFilter narrows the results of List
type CartFilter struct {
	CustomerID string
}

// CartStore holds the open carts of a session. View and Update run fn with
// exclusive (Update) or shared (View) access to the cart.
type CartStore interface {
	Create(ctx context.Context, customerID string) (uuid.UUID, error)
	View(ctx context.Context, id uuid.UUID, fn func(*Cart) error) error
	Update(ctx context.Context, id uuid.UUID, fn func(*Cart) error) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter CartFilter) ([]CartSummary, error)
}
