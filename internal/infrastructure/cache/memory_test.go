package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arbitragevault/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	products := []domain.DisplayableProduct{
		{ASIN: "B08TEST123", Source: domain.SourceProductScore},
	}

	if err := c.Set(ctx, "analysis:batch:abc", products, time.Minute); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	value, err := c.Get(ctx, "analysis:batch:abc")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}

	// Values come back JSON-shaped, as a Redis-backed cache would return them.
	list, ok := value.([]interface{})
	if !ok {
		t.Fatalf("cached value type = %T, want []interface{}", value)
	}
	if len(list) != 1 {
		t.Fatalf("cached list len = %d, want 1", len(list))
	}
	entry, ok := list[0].(map[string]interface{})
	if !ok {
		t.Fatalf("cached entry type = %T", list[0])
	}
	if entry["asin"] != "B08TEST123" {
		t.Errorf("asin = %v, want B08TEST123", entry["asin"])
	}
}

func TestMemoryCache_MissAndExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, err := c.Get(ctx, "nope"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get(missing) error = %v, want ErrCacheMiss", err)
	}

	if err := c.Set(ctx, "short", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get(expired) error = %v, want ErrCacheMiss", err)
	}
	if ok, _ := c.Exists(ctx, "short"); ok {
		t.Error("Exists(expired) = true, want false")
	}
}

func TestMemoryCache_SetReplacesWholeEntry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	first := []domain.DisplayableProduct{
		{ASIN: "B000000001", Source: domain.SourceNicheProduct},
		{ASIN: "B000000002", Source: domain.SourceNicheProduct},
	}
	second := []domain.DisplayableProduct{
		{ASIN: "B000000003", Source: domain.SourceNicheProduct},
	}

	if err := c.Set(ctx, "niches:q", first, time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "niches:q", second, time.Minute); err != nil {
		t.Fatal(err)
	}

	value, err := c.Get(ctx, "niches:q")
	if err != nil {
		t.Fatal(err)
	}
	list := value.([]interface{})
	if len(list) != 1 {
		t.Fatalf("refetch must replace the list atomically; len = %d, want 1", len(list))
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.Set(ctx, "a", 1, time.Minute)
	_ = c.Set(ctx, "b", 2, time.Minute)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if ok, _ := c.Exists(ctx, "a"); ok {
		t.Error("Exists(deleted) = true, want false")
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", c.Size())
	}
}
