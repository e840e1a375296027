package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSetDelete(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("hit on a key that was never set")
	}

	c.Set(ctx, "k", []byte("v"))

	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "v" {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	c.Delete(ctx, "k")

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("hit after delete")
	}
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory(20 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"))

	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatal("miss before expiry")
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("hit after expiry")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("first"))
	c.Set(ctx, "k", []byte("second"))

	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "second" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
