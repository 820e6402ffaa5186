package domain

import (
	"maps"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogueChecker confirms that a sku is sellable.
type CatalogueChecker interface {
	Has(sku string) (SKU, error)
}

// StockChecker confirms that a sku is in stock.
type StockChecker interface {
	ValidateInStock(sku string, quantity int) (SKU, error)
}

// PriceLookup resolves a sku to its catalogue entry.
type PriceLookup interface {
	Lookup(sku string) (CatalogItem, error)
}

var (
	_ CatalogueChecker = (*Catalogue)(nil)
	_ PriceLookup      = (*Catalogue)(nil)
	_ StockChecker     = (*Inventory)(nil)
)

var (
	errNoCatalogue = NewTypeError("catalogue", "a catalogue is required", nil)
	errNoInventory = NewTypeError("inventory", "an inventory is required", nil)
)

// Cart is one customer's working set of sku quantities. A Cart is not safe for
// concurrent use; CartStore serializes access to the carts it holds.
type Cart struct {
	id         uuid.UUID
	customerID CustomerID
	items      map[SKU]int
}

// NewCart opens an empty cart for the given customer.
func NewCart(customerID string) (*Cart, error) {
	c, err := NewCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return &Cart{
		id:         uuid.New(),
		customerID: c,
		items:      make(map[SKU]int),
	}, nil
}

func (c *Cart) ID() uuid.UUID {
	return c.id
}

func (c *Cart) CustomerID() CustomerID {
	return c.customerID
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() map[SKU]int {
	return maps.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

// checkLine runs the shared preconditions of AddItems and UpdateItemQuantity.
// Stock is checked for presence only, not against quantity.
func checkLine(sku string, quantity int, catalogue CatalogueChecker, inventory StockChecker) (SKU, int, error) {
	if catalogue == nil {
		return SKU{}, 0, errNoCatalogue
	}
	if inventory == nil {
		return SKU{}, 0, errNoInventory
	}
	s, err := NewSKU(sku)
	if err != nil {
		return SKU{}, 0, err
	}
	if _, err := catalogue.Has(sku); err != nil {
		return SKU{}, 0, err
	}
	if _, err := inventory.ValidateInStock(sku, 1); err != nil {
		return SKU{}, 0, err
	}
	q, err := ValidateQuantity(quantity)
	if err != nil {
		return SKU{}, 0, err
	}
	return s, q, nil
}

// AddItems adds quantity units of sku to the cart.
func (c *Cart) AddItems(sku string, quantity int, catalogue CatalogueChecker, inventory StockChecker) error {
	s, q, err := checkLine(sku, quantity, catalogue, inventory)
	if err != nil {
		return err
	}
	if c.items[s] > math.MaxInt-q {
		return NewRangeError("quantity", "cart quantity would overflow", quantity)
	}
	c.items[s] += q
	return nil
}

// UpdateItemQuantity sets the quantity of sku in the cart.
func (c *Cart) UpdateItemQuantity(sku string, quantity int, catalogue CatalogueChecker, inventory StockChecker) error {
	s, q, err := checkLine(sku, quantity, catalogue, inventory)
	if err != nil {
		return err
	}
	c.items[s] = q
	return nil
}

// RemoveItem deletes sku from the cart. It fails if the cart does not hold it.
func (c *Cart) RemoveItem(sku string) error {
	s, err := NewSKU(sku)
	if err != nil {
		return err
	}
	if _, ok := c.items[s]; !ok {
		return NewRangeError("sku", "item not in cart", sku)
	}
	delete(c.items, s)
	return nil
}

// TotalCost prices every line against catalogue. It fails if a sku in the cart
// is no longer in the catalogue.
func (c *Cart) TotalCost(catalogue PriceLookup) (decimal.Decimal, error) {
	if catalogue == nil {
		return decimal.Zero, errNoCatalogue
	}
	total := decimal.Zero
	for s, n := range c.items {
		ci, err := catalogue.Lookup(s.code)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(ci.Price.Mul(decimal.NewFromInt(int64(n))))
	}
	return total, nil
}
