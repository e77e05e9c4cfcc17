package usecase

import (
	"sync"
	"time"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// settlementCache holds one snapshot of the full settlement list together
// with the time it was computed. The snapshot is replaced wholesale; a
// failed refresh never touches it.
type settlementCache struct {
	mu        sync.RWMutex
	items     []model.Settlement
	fetchedAt time.Time
}

func (c *settlementCache) get(now time.Time, lifetime time.Duration) ([]model.Settlement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.items == nil || now.Sub(c.fetchedAt) >= lifetime {
		return nil, false
	}
	return c.items, true
}

func (c *settlementCache) set(items []model.Settlement, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.fetchedAt = now
}
