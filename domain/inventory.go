package domain

import (
	"iter"
	"math"
	"slices"
	"sync"
)

// InventoryRecord is the plain form of one stock entry.
type InventoryRecord struct {
	SKU   string `json:"sku" yaml:"sku"`
	Stock int    `json:"stock" yaml:"stock"`
}

// Inventory tracks how many units of each SKU are on hand.
// A SKU that is absent, or present with zero stock, is not in stock.
// It is safe for concurrent use.
type Inventory struct {
	mu    sync.RWMutex
	stock map[SKU]int
}

// NewInventory builds an Inventory from stock records. Every stock must be positive.
// A later record with the same SKU replaces an earlier one.
func NewInventory(records iter.Seq[InventoryRecord]) (*Inventory, error) {
	if records == nil {
		return nil, NewTypeError("records", "expected iterable", nil)
	}
	inv := &Inventory{stock: make(map[SKU]int)}
	for r := range records {
		s, err := NewSKU(r.SKU)
		if err != nil {
			return nil, err
		}
		q, err := ValidateQuantity(r.Stock)
		if err != nil {
			return nil, err
		}
		inv.stock[s] = q
	}
	return inv, nil
}

// InventoryOf is NewInventory over an explicit list.
func InventoryOf(records ...InventoryRecord) (*Inventory, error) {
	return NewInventory(slices.Values(records))
}

func parseStockArgs(sku string, quantity int) (SKU, int, error) {
	s, err := NewSKU(sku)
	if err != nil {
		return SKU{}, 0, err
	}
	q, err := ValidateQuantity(quantity)
	if err != nil {
		return SKU{}, 0, err
	}
	return s, q, nil
}

// AddItem increases the stock of sku by quantity, creating the entry if needed.
func (inv *Inventory) AddItem(sku string, quantity int) error {
	s, q, err := parseStockArgs(sku, quantity)
	if err != nil {
		return err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.stock[s] > math.MaxInt-q {
		return NewRangeError("quantity", "stock would overflow", quantity)
	}
	inv.stock[s] += q
	return nil
}

// SubtractItem decreases the stock of sku by quantity. Stock may reach zero;
// the entry is kept.
func (inv *Inventory) SubtractItem(sku string, quantity int) error {
	s, q, err := parseStockArgs(sku, quantity)
	if err != nil {
		return err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	current, ok := inv.stock[s]
	if q > current {
		return NewRangeError("quantity", "cannot subtract more than current stock", quantity)
	}
	if ok {
		inv.stock[s] = current - q
	}
	return nil
}

// SetItemStock replaces the stock of sku.
func (inv *Inventory) SetItemStock(sku string, quantity int) error {
	s, q, err := parseStockArgs(sku, quantity)
	if err != nil {
		return err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.stock[s] = q
	return nil
}

// RemoveItem deletes the entry for sku. Removing an absent sku does nothing.
func (inv *Inventory) RemoveItem(sku string) error {
	s, err := NewSKU(sku)
	if err != nil {
		return err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	delete(inv.stock, s)
	return nil
}

// Lookup returns the current stock of an item that is in stock.
func (inv *Inventory) Lookup(sku string) (int, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	s, err := inv.validateInStock(sku, 1)
	if err != nil {
		return 0, err
	}
	return inv.stock[s], nil
}

// ValidateInStock returns the validated SKU if at least quantity units are on hand.
func (inv *Inventory) ValidateInStock(sku string, quantity int) (SKU, error) {
	if inv == nil {
		return SKU{}, errNoInventory
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.validateInStock(sku, quantity)
}

func (inv *Inventory) validateInStock(sku string, quantity int) (SKU, error) {
	s, err := NewSKU(sku)
	if err != nil {
		return SKU{}, err
	}
	current := inv.stock[s]
	if current == 0 {
		return SKU{}, NewRangeError("sku", "item not in stock", sku)
	}
	q, err := ValidateQuantity(quantity)
	if err != nil {
		return SKU{}, err
	}
	if q > current {
		return SKU{}, NewRangeError("quantity", "requested quantity greater than stock", quantity)
	}
	return s, nil
}

// Stock returns a copy of every entry, including those at zero.
func (inv *Inventory) Stock() map[SKU]int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make(map[SKU]int, len(inv.stock))
	for s, n := range inv.stock {
		out[s] = n
	}
	return out
}

func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.stock)
}
