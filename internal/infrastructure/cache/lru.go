package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/posty-app/post-api/internal/domain/image"
)

const defaultSize = 512

// GenerationCache is a bounded LRU over generated image sets. Eviction keeps
// memory flat no matter how many distinct briefings pass through.
type GenerationCache struct {
	inner *lru.Cache[string, []image.Candidate]
}

func NewGenerationCache(size int) (*GenerationCache, error) {
	if size <= 0 {
		size = defaultSize
	}
	inner, err := lru.New[string, []image.Candidate](size)
	if err != nil {
		return nil, err
	}
	return &GenerationCache{inner: inner}, nil
}

func (c *GenerationCache) Get(key string) ([]image.Candidate, bool) {
	return c.inner.Get(key)
}

func (c *GenerationCache) Add(key string, images []image.Candidate) {
	c.inner.Add(key, images)
}

func (c *GenerationCache) Purge() {
	c.inner.Purge()
}

// Len reports the number of cached generation sets.
func (c *GenerationCache) Len() int {
	return c.inner.Len()
}
