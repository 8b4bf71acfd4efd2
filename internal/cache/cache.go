package cache

import (
	"sync"
	"time"

	"demo/kitchenpos/internal/model"
)

type entry struct {
	order   model.Order
	expires time.Time
}

// Orders keeps hydrated orders by id. Values are copies; callers may mutate what they get.
// With a positive ttl an entry is served for at most ttl, so writes made by another
// instance show up once it expires. A zero ttl keeps entries forever.
type Orders struct {
	mu   sync.RWMutex
	data map[int64]entry
	ttl  time.Duration
	now  func() time.Time
}

func NewOrders(ttl time.Duration) *Orders {
	return &Orders{data: make(map[int64]entry), ttl: ttl, now: time.Now}
}

func (c *Orders) Get(id int64) (model.Order, bool) {
	c.mu.RLock()
	e, ok := c.data[id]
	c.mu.RUnlock()
	if !ok {
		return model.Order{}, false
	}
	if c.ttl > 0 && !c.now().Before(e.expires) {
		c.mu.Lock()
		if cur, ok := c.data[id]; ok && cur.expires.Equal(e.expires) {
			delete(c.data, id)
		}
		c.mu.Unlock()
		return model.Order{}, false
	}
	return clone(e.order), true
}

func (c *Orders) Set(v model.Order) {
	e := entry{order: clone(v)}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.data[v.ID] = e
	c.mu.Unlock()
}

func (c *Orders) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func clone(o model.Order) model.Order {
	items := make([]model.OrderLineItem, len(o.LineItems))
	copy(items, o.LineItems)
	o.LineItems = items
	return o
}
