// Package domain defines the cart, catalogue and inventory core.
package domain

import "github.com/shopspring/decimal"

// Price bounds for a sellable item.
const (
	MinPrice = 0.01
	MaxPrice = 999999999.99
)

// Item is something sellable. It is immutable once constructed.
type Item struct {
	sku         SKU
	description string
	price       decimal.Decimal
}

// NewItem validates sku, description and price and builds an Item.
func NewItem(sku, description string, price float64) (Item, error) {
	s, err := NewSKU(sku)
	if err != nil {
		return Item{}, err
	}
	d, err := ValidatedString(description, DefaultMaxLength)
	if err != nil {
		return Item{}, err
	}
	p, err := ValidatedNumber(price, MinPrice, MaxPrice)
	if err != nil {
		return Item{}, err
	}
	return Item{sku: s, description: d, price: decimal.NewFromFloat(p)}, nil
}

func (i Item) SKU() SKU {
	return i.sku
}

func (i Item) Description() string {
	return i.description
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

func (i Item) catalogItem() (CatalogItem, error) {
	if i.sku == (SKU{}) {
		return CatalogItem{}, NewTypeError("item", "item was not constructed with NewItem", i)
	}
	return CatalogItem{SKU: i.sku, Description: i.description, Price: i.price}, nil
}

// CatalogItem is the (sku, description, price) record a Catalogue hands out.
// It is a copy; changing it does not change the catalogue.
type CatalogItem struct {
	SKU         SKU             `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// CatalogRecord is the plain, unvalidated form of a catalogue entry.
type CatalogRecord struct {
	SKU         string  `json:"sku" yaml:"sku"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}

func (r CatalogRecord) catalogItem() (CatalogItem, error) {
	item, err := NewItem(r.SKU, r.Description, r.Price)
	if err != nil {
		return CatalogItem{}, err
	}
	return item.catalogItem()
}

// Listing is anything a Catalogue can be built from: an Item or a CatalogRecord.
type Listing interface {
	catalogItem() (CatalogItem, error)
}

var (
	_ Listing = Item{}
	_ Listing = CatalogRecord{}
)
