package domain

import (
	"iter"
	"slices"
	"sort"
	"sync"
)

// Catalogue is the authoritative index of sellable items, keyed by SKU.
// It is safe for concurrent use.
type Catalogue struct {
	mu    sync.RWMutex
	items map[SKU]CatalogItem
}

// NewCatalogue builds a Catalogue from a sequence of Items or CatalogRecords.
// A later entry with the same SKU replaces an earlier one.
func NewCatalogue(items iter.Seq[Listing]) (*Catalogue, error) {
	if items == nil {
		return nil, NewTypeError("items", "expected iterable", nil)
	}
	c := &Catalogue{items: make(map[SKU]CatalogItem)}
	for item := range items {
		if item == nil {
			return nil, NewTypeError("items", "Item or CatalogRecord expected", item)
		}
		ci, err := item.catalogItem()
		if err != nil {
			return nil, err
		}
		c.items[ci.SKU] = ci
	}
	return c, nil
}

// CatalogueOf is NewCatalogue over an explicit list.
func CatalogueOf(items ...Listing) (*Catalogue, error) {
	return NewCatalogue(slices.Values(items))
}

// Has returns the validated SKU if the catalogue contains it.
func (c *Catalogue) Has(sku string) (SKU, error) {
	if c == nil {
		return SKU{}, errNoCatalogue
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.has(sku)
}

func (c *Catalogue) has(sku string) (SKU, error) {
	s, err := NewSKU(sku)
	if err != nil {
		return SKU{}, err
	}
	if _, ok := c.items[s]; !ok {
		return SKU{}, NewRangeError("sku", "no item with this sku in catalogue", sku)
	}
	return s, nil
}

// Lookup returns the sku, description and price of an item.
func (c *Catalogue) Lookup(sku string) (CatalogItem, error) {
	if c == nil {
		return CatalogItem{}, errNoCatalogue
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, err := c.has(sku)
	if err != nil {
		return CatalogItem{}, err
	}
	return c.items[s], nil
}

// Remove drops an item from the catalogue. Carts that already hold it are not touched.
func (c *Catalogue) Remove(sku string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.has(sku)
	if err != nil {
		return err
	}
	delete(c.items, s)
	return nil
}

func (c *Catalogue) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Items returns every entry ordered by SKU.
func (c *Catalogue) Items() []CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CatalogItem, 0, len(c.items))
	for _, ci := range c.items {
		out = append(out, ci)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU.code < out[j].SKU.code })
	return out
}
