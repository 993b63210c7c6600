package cache

import (
	"fmt"
	"testing"

	"github.com/posty-app/post-api/internal/domain/image"
)

func TestGenerationCache(t *testing.T) {
	c, err := NewGenerationCache(2)
	if err != nil {
		t.Fatalf("NewGenerationCache: %v", err)
	}

	set := []image.Candidate{{ID: "dalle-1-0", Source: image.SourceDalle}}
	c.Add("a", set)

	got, ok := c.Get("a")
	if !ok || len(got) != 1 || got[0].ID != "dalle-1-0" {
		t.Fatalf("Get(a) = %v, %v", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("unknown key must miss")
	}

	// Oldest entry is evicted once the bound is hit.
	c.Add("b", set)
	c.Add("c", set)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("eviction must drop the oldest entry")
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("purge left %d entries", c.Len())
	}
}

func TestGenerationCacheDefaultSize(t *testing.T) {
	c, err := NewGenerationCache(0)
	if err != nil {
		t.Fatalf("NewGenerationCache: %v", err)
	}
	for i := 0; i < 10; i++ {
		c.Add(fmt.Sprintf("k%d", i), nil)
	}
	if c.Len() != 10 {
		t.Fatalf("default-sized cache evicted too early, len = %d", c.Len())
	}
}
