package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || string(value) != "v" {
		t.Errorf("expected v, got %q (ok=%v)", value, ok)
	}

	_, ok, err = c.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("missing key should not be found")
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expired entry should not be returned")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted key should not be found")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("cleared key should not be found")
	}
	if err := c.Set(ctx, "c", []byte("3"), 0); err != nil {
		t.Errorf("cache should remain usable after Clear: %v", err)
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err == nil {
		t.Error("set on closed cache should fail")
	}
	if _, _, err := c.Get(ctx, "k"); err == nil {
		t.Error("get on closed cache should fail")
	}
	if err := c.Clear(ctx); err == nil {
		t.Error("clear on closed cache should fail")
	}
}

func TestMemoryCacheValueIsolation(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	original := []byte("abc")
	_ = c.Set(ctx, "k", original, 0)
	original[0] = 'x'

	value, _, _ := c.Get(ctx, "k")
	if string(value) != "abc" {
		t.Errorf("stored value must not alias the caller's slice: %q", value)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := string(rune('a' + n))
				_ = c.Set(ctx, key, []byte{byte(j)}, 0)
				_, _, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
