package utils

import (
	"sync"
	"time"
)

// GenCache memoizes generated text by prompt key so repeated requests for
// the same topic skip the generative service.
type GenCache struct {
	mu     sync.RWMutex
	items  map[string]genItem
	hits   int
	misses int
}

type genItem struct {
	value      string
	hits       int
	lastAccess time.Time
}

func NewGenCache() *GenCache {
	return &GenCache{
		items: make(map[string]genItem),
	}
}

func (c *GenCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		c.misses += 1
		return "", false
	}

	c.hits += 1
	item.hits += 1
	item.lastAccess = time.Now()
	c.items[key] = item

	return item.value, true
}

func (c *GenCache) Add(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = genItem{
		value:      value,
		lastAccess: time.Now(),
	}
}

func (c *GenCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *GenCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	}
	return 0.0
}
