package httpcache

import (
	"testing"
	"time"
)

func TestGetMissesWhenEmpty(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("platform=pc"); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestSetThenGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("platform=pc", []byte(`[{"title":"Mir4"}]`))

	body, ok := c.Get("platform=pc")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(body) != `[{"title":"Mir4"}]` {
		t.Fatalf("unexpected cached body: %s", body)
	}
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	c := New(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", []byte("body"))

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	if _, ok := c.Get("key"); !ok {
		t.Fatal("expected hit inside TTL")
	}

	c.now = func() time.Time { return base.Add(time.Minute) }
	if _, ok := c.Get("key"); ok {
		t.Fatal("expected miss at TTL boundary")
	}
}

func TestInvalidateDropsAllEntries(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Invalidate()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after invalidate")
	}
}

func TestNonPositiveTTLFallsBack(t *testing.T) {
	c := New(0)
	if c.ttl != DefaultTTL {
		t.Fatalf("expected default TTL, got %s", c.ttl)
	}
}
