package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalogRecord(t *testing.T) {
	r, err := DecodeCatalogRecord(map[string]any{
		"sku":         testSKU1,
		"description": "Enamel mug",
		"price":       json.Number("7.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, CatalogRecord{SKU: testSKU1, Description: "Enamel mug", Price: 7.99}, r)

	r, err = DecodeCatalogRecord(map[any]any{"sku": testSKU1, "description": "d", "price": 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Price)

	typeCases := map[string]any{
		"not a record":       "This is not an item!",
		"sku not string":     map[string]any{"sku": 1, "description": "d", "price": 1.0},
		"description absent": map[string]any{"sku": testSKU1, "price": 1.0},
		"price not number":   map[string]any{"sku": testSKU1, "description": "d", "price": "free"},
		"non string key":     map[any]any{1: testSKU1},
	}
	for name, raw := range typeCases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCatalogRecord(raw)
			assert.True(t, IsTypeError(err), "expected TypeError, got %v", err)
		})
	}

	_, err = DecodeCatalogRecord(map[string]any{"sku": testSKU1, "description": "d", "price": 0.001})
	assert.True(t, IsRangeError(err))
}

func TestDecodeInventoryRecord(t *testing.T) {
	r, err := DecodeInventoryRecord(map[string]any{"sku": testSKU1, "stock": json.Number("10")})
	require.NoError(t, err)
	assert.Equal(t, InventoryRecord{SKU: testSKU1, Stock: 10}, r)

	_, err = DecodeInventoryRecord(map[string]any{"sku": testSKU1, "stock": json.Number("10.0")})
	assert.True(t, IsTypeError(err))
	_, err = DecodeInventoryRecord(map[string]any{"sku": testSKU1, "stock": 10.4})
	assert.True(t, IsTypeError(err))
	_, err = DecodeInventoryRecord([]any{testSKU1, 10})
	assert.True(t, IsTypeError(err))
	_, err = DecodeInventoryRecord(map[string]any{"sku": testSKU1, "stock": 0})
	assert.True(t, IsRangeError(err))
	_, err = DecodeInventoryRecord(map[string]any{"sku": "bad", "stock": 1})
	assert.True(t, IsRangeError(err))
}

func TestDecodeRecords(t *testing.T) {
	recs, err := DecodeRecords("inventory", []any{
		map[string]any{"sku": testSKU1, "stock": 1},
		map[string]any{"sku": testSKU2, "stock": 2},
	}, DecodeInventoryRecord)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = DecodeRecords("inventory", "This is not an iterable!", DecodeInventoryRecord)
	assert.True(t, IsTypeError(err))

	_, err = DecodeRecords("inventory", []any{map[string]any{"sku": testSKU1, "stock": 1}, "x"}, DecodeInventoryRecord)
	require.Error(t, err)
	assert.True(t, IsTypeError(err))
	assert.Contains(t, err.Error(), "inventory[1]")
}
