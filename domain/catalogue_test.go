package domain

import (
	"iter"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, sku, desc string, price float64) Item {
	t.Helper()
	it, err := NewItem(sku, desc, price)
	require.NoError(t, err)
	return it
}

func TestNewItem(t *testing.T) {
	it := mustItem(t, testSKU1, "This is an item!", 3.99)
	assert.Equal(t, testSKU1, it.SKU().Code())
	assert.Equal(t, "This is an item!", it.Description())
	assert.True(t, decimal.RequireFromString("3.99").Equal(it.Price()))

	cases := []struct {
		name  string
		sku   string
		desc  string
		price float64
	}{
		{"bad sku", "this is not a sku!", "d", 1},
		{"description too long", testSKU1, strings.Repeat("x", DefaultMaxLength+1), 1},
		{"price too low", testSKU1, "d", 0},
		{"price too high", testSKU1, "d", 1_000_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem(tc.sku, tc.desc, tc.price)
			assert.True(t, IsRangeError(err), "expected RangeError, got %v", err)
		})
	}
}

func TestCatalogue_Build(t *testing.T) {
	cat, err := CatalogueOf(
		mustItem(t, testSKU1, "This is an item!", 7.99),
		CatalogRecord{SKU: testSKU2, Description: "This is an expensive item!", Price: 39.99},
		mustItem(t, testSKU3, "This is a cheap item!", 0.50),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	got, err := cat.Lookup(testSKU2)
	require.NoError(t, err)
	assert.Equal(t, MustSKU(testSKU2), got.SKU)
	assert.Equal(t, "This is an expensive item!", got.Description)
	assert.True(t, decimal.RequireFromString("39.99").Equal(got.Price))

	items := cat.Items()
	require.Len(t, items, 3)
	assert.Equal(t, testSKU1, items[0].SKU.Code())
	assert.Equal(t, testSKU3, items[2].SKU.Code())
}

func TestCatalogue_LastWriteWins(t *testing.T) {
	cat, err := CatalogueOf(
		CatalogRecord{SKU: testSKU1, Description: "first", Price: 1},
		CatalogRecord{SKU: testSKU1, Description: "second", Price: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	got, err := cat.Lookup(testSKU1)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Description)
}

func TestCatalogue_RejectsBadInput(t *testing.T) {
	t.Run("not iterable", func(t *testing.T) {
		var seq iter.Seq[Listing]
		_, err := NewCatalogue(seq)
		assert.True(t, IsTypeError(err))
	})

	t.Run("nil element", func(t *testing.T) {
		_, err := CatalogueOf(mustItem(t, testSKU1, "d", 1), nil)
		assert.True(t, IsTypeError(err))
	})

	t.Run("zero Item", func(t *testing.T) {
		_, err := CatalogueOf(Item{})
		assert.True(t, IsTypeError(err))
	})

	t.Run("invalid plain record", func(t *testing.T) {
		_, err := CatalogueOf(CatalogRecord{SKU: "bad", Description: "d", Price: 1})
		assert.True(t, IsRangeError(err))
	})
}

func TestCatalogue_HasLookupRemove(t *testing.T) {
	cat, err := CatalogueOf(mustItem(t, testSKU1, "d", 1))
	require.NoError(t, err)

	s, err := cat.Has(testSKU1)
	require.NoError(t, err)
	assert.Equal(t, testSKU1, s.Code())

	_, err = cat.Has(testSKU2)
	assert.True(t, IsRangeError(err))
	_, err = cat.Lookup(testSKU2)
	assert.True(t, IsRangeError(err))
	_, err = cat.Has("garbage")
	assert.True(t, IsRangeError(err))

	t.Run("lookup result is a copy", func(t *testing.T) {
		got, err := cat.Lookup(testSKU1)
		require.NoError(t, err)
		got.Description = "Different description!"
		again, err := cat.Lookup(testSKU1)
		require.NoError(t, err)
		assert.Equal(t, "d", again.Description)
	})

	require.NoError(t, cat.Remove(testSKU1))
	assert.Equal(t, 0, cat.Len())
	assert.True(t, IsRangeError(cat.Remove(testSKU1)))
}
