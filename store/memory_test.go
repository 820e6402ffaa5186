package store

import (
	"context"
	"errors"
	"shopcart/domain"
	"sync"
	"testing"

	"github.com/google/uuid"
)

const testCustomerID = "ABC12345DE-A"

func demoShop(t *testing.T) (*domain.Catalogue, *domain.Inventory) {
	t.Helper()
	seed, err := NewMemorySeedSource(nil).Load(context.Background())
	if err != nil {
		t.Fatalf("demo seed failed: %v", err)
	}
	cat, inv, err := seed.Build()
	if err != nil {
		t.Fatalf("demo build failed: %v", err)
	}
	return cat, inv
}

func TestCreate_Validation(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx := context.Background()

	cases := []struct {
		name     string
		customer string
		wantErr  bool
	}{
		{"empty id", "", true},
		{"bad format", "not-a-customer", true},
		{"wrong suffix", "ABC12345DE-B", true},
		{"valid", testCustomerID, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			id, err := s.Create(ctx, tc.customer)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for case %s", tc.name)
				}
				if !domain.IsRangeError(err) {
					t.Fatalf("expected RangeError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id == uuid.Nil {
				t.Fatal("expected a cart id")
			}
		})
	}
}

func TestViewUpdateDelete_NotFound(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx := context.Background()
	missing := uuid.New()
	noop := func(*domain.Cart) error { return nil }

	t.Run("view not found", func(t *testing.T) {
		if err := s.View(ctx, missing, noop); !domain.IsCartNotFoundError(err) {
			t.Fatalf("expected CartNotFoundError, got %v", err)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		if err := s.Update(ctx, missing, noop); !domain.IsCartNotFoundError(err) {
			t.Fatalf("expected CartNotFoundError, got %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		if err := s.Delete(ctx, missing); !domain.IsCartNotFoundError(err) {
			t.Fatalf("expected CartNotFoundError, got %v", err)
		}
	})
}

func TestUpdate_MutatesStoredCart(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx := context.Background()
	cat, inv := demoShop(t)

	id, err := s.Create(ctx, testCustomerID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err = s.Update(ctx, id, func(c *domain.Cart) error {
		return c.AddItems("ABC_DEF_12", 2, cat, inv)
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// errors from fn are returned unchanged
	err = s.Update(ctx, id, func(c *domain.Cart) error {
		return c.AddItems("MNO_PQR_56", 1, cat, inv)
	})
	if !domain.IsRangeError(err) {
		t.Fatalf("expected RangeError for unstocked sku, got %v", err)
	}

	var got map[domain.SKU]int
	_ = s.View(ctx, id, func(c *domain.Cart) error {
		got = c.Items()
		return nil
	})
	if len(got) != 1 || got[domain.MustSKU("ABC_DEF_12")] != 2 {
		t.Fatalf("unexpected cart contents: %v", got)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.View(ctx, id, func(*domain.Cart) error { return nil }); !domain.IsCartNotFoundError(err) {
		t.Fatalf("expected cart to be deleted, got %v", err)
	}
}

func TestList_FilterAndOrder(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx := context.Background()
	_, _ = s.Create(ctx, "XYZ00000AB-Q")
	_, _ = s.Create(ctx, testCustomerID)
	_, _ = s.Create(ctx, testCustomerID)

	t.Run("filter by customer", func(t *testing.T) {
		out, err := s.List(ctx, domain.CartFilter{CustomerID: testCustomerID})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2, got %d", len(out))
		}
	})

	t.Run("ordered by customer", func(t *testing.T) {
		out, _ := s.List(ctx, domain.CartFilter{})
		if len(out) != 3 || out[0].CustomerID != testCustomerID || out[2].CustomerID != "XYZ00000AB-Q" {
			t.Fatalf("unexpected order: %+v", out)
		}
	})
}

func TestCanceledContext(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Create(ctx, testCustomerID); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := s.List(ctx, domain.CartFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInMemoryCartStore_ConcurrentAccess(t *testing.T) {
	s := NewInMemoryCartStore()
	ctx := context.Background()
	cat, inv := demoShop(t)

	id, err := s.Create(ctx, testCustomerID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, id, func(c *domain.Cart) error {
				return c.AddItems("ABC_DEF_12", 1, cat, inv)
			})
			_ = s.View(ctx, id, func(c *domain.Cart) error {
				_ = c.Items()
				return nil
			})
		}()
	}
	wg.Wait()

	var got int
	_ = s.View(ctx, id, func(c *domain.Cart) error {
		got = c.Items()[domain.MustSKU("ABC_DEF_12")]
		return nil
	})
	if got != n {
		t.Fatalf("expected %d units, got %d", n, got)
	}
}

func BenchmarkInMemoryCartStore_Update(b *testing.B) {
	s := NewInMemoryCartStore()
	seed, _ := NewMemorySeedSource(nil).Load(context.Background())
	cat, inv, _ := seed.Build()
	id, _ := s.Create(context.Background(), testCustomerID)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Update(context.Background(), id, func(c *domain.Cart) error {
			return c.UpdateItemQuantity("ABC_DEF_12", i%9+1, cat, inv)
		})
	}
}
