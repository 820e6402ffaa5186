package store

import (
	"context"
	"fmt"
	"shopcart/domain"
)

// Seed is the bulk input a Catalogue and an Inventory are built from.
type Seed struct {
	Catalogue []domain.CatalogRecord   `json:"catalogue" yaml:"catalogue"`
	Inventory []domain.InventoryRecord `json:"inventory" yaml:"inventory"`
}

// SeedSource produces a Seed.
type SeedSource interface {
	Load(ctx context.Context) (*Seed, error)
}

// Build constructs the catalogue and inventory described by the seed.
func (s *Seed) Build() (*domain.Catalogue, *domain.Inventory, error) {
	listings := make([]domain.Listing, 0, len(s.Catalogue))
	for _, r := range s.Catalogue {
		listings = append(listings, r)
	}
	cat, err := domain.CatalogueOf(listings...)
	if err != nil {
		return nil, nil, fmt.Errorf("catalogue: %w", err)
	}
	inv, err := domain.InventoryOf(s.Inventory...)
	if err != nil {
		return nil, nil, fmt.Errorf("inventory: %w", err)
	}
	return cat, inv, nil
}

// MemorySeedSource serves a fixed seed, by default a small demo shop.
type MemorySeedSource struct {
	seed Seed
}

// NewMemorySeedSource returns a source serving seed, or the demo shop when seed is nil.
func NewMemorySeedSource(seed *Seed) *MemorySeedSource {
	if seed == nil {
		return &MemorySeedSource{seed: demoSeed()}
	}
	return &MemorySeedSource{seed: *seed}
}

var _ SeedSource = (*MemorySeedSource)(nil)

func (m *MemorySeedSource) Load(ctx context.Context) (*Seed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := Seed{
		Catalogue: append([]domain.CatalogRecord(nil), m.seed.Catalogue...),
		Inventory: append([]domain.InventoryRecord(nil), m.seed.Inventory...),
	}
	return &out, nil
}

// MNO_PQR_56 is listed but never stocked.
func demoSeed() Seed {
	return Seed{
		Catalogue: []domain.CatalogRecord{
			{SKU: "ABC_DEF_12", Description: "Enamel mug, 350ml", Price: 7.99},
			{SKU: "GHI_JKL_34", Description: "Cast iron skillet, 26cm", Price: 39.99},
			{SKU: "MNO_PQR_56", Description: "Beeswax candle", Price: 0.50},
			{SKU: "STU_VWX_78", Description: "Linen tea towel", Price: 4.25},
		},
		Inventory: []domain.InventoryRecord{
			{SKU: "ABC_DEF_12", Stock: 10},
			{SKU: "GHI_JKL_34", Stock: 20},
			{SKU: "STU_VWX_78", Stock: 5},
		},
	}
}
