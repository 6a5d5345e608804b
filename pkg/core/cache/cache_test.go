package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(cfg Config) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := New(cfg)
	c.now = clock.Now
	return c, clock
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(Config{})
	defer c.Close()

	c.Set("abc", 42)
	val, ok := c.Get("abc")
	if !ok || val != 42 {
		t.Errorf("Get() = %v, %v; want 42, true", val, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() found a missing key")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.HitRate != 50 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestCache_Expiration(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Minute})
	defer c.Close()

	c.Set("trip", "state")
	c.SetWithTTL("forever", "state", 0)

	clock.Advance(2 * time.Minute)

	if _, ok := c.Get("trip"); ok {
		t.Error("expired entry was returned")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("entry without TTL should not expire")
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1 after lazy removal", c.Size())
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c, clock := newTestCache(Config{MaxItems: 3})
	defer c.Close()

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Second)
	}

	// Overwriting an existing key must not evict
	c.Set("k2", 22)
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", c.Size())
	}

	c.Set("k3", 3)
	if _, ok := c.Get("k0"); ok {
		t.Error("oldest entry should have been evicted")
	}
	for _, key := range []string{"k1", "k2", "k3"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Second})
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(time.Minute)
	c.cleanup()

	if c.Size() != 0 {
		t.Errorf("Size() = %d after cleanup, want 0", c.Size())
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c, _ := newTestCache(Config{})
	defer c.Close()

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return "computed", nil
	}

	for i := 0; i < 2; i++ {
		val, err := c.GetOrSet("key", compute)
		if err != nil || val != "computed" {
			t.Fatalf("GetOrSet() = %v, %v", val, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	_, err := c.GetOrSet("bad", func() (interface{}, error) { return nil, errors.New("boom") })
	if err == nil {
		t.Error("GetOrSet() should return the compute error")
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be cached")
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c, _ := newTestCache(Config{})
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	if c.Size() != 1 {
		t.Errorf("Size() = %d after Delete, want 1", c.Size())
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Clear, want 0", c.Size())
	}
}

func TestCache_CloseTwice(t *testing.T) {
	c := New(Config{CleanupInterval: time.Millisecond})
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	c.Set("still", "usable")
	if _, ok := c.Get("still"); !ok {
		t.Error("cache should remain usable after Close")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c, _ := newTestCache(Config{MaxItems: 16})
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (n+j)%32)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() > 16 {
		t.Errorf("Size() = %d exceeds MaxItems", c.Size())
	}
}
