package search

// Closed records the best g value seen for every expanded identity key.
type Closed[K comparable] struct {
	best map[K]float64
}

// NewClosed returns an empty closed record.
func NewClosed[K comparable]() *Closed[K] {
	return &Closed[K]{best: make(map[K]float64)}
}

// Record stores g for key unless an equal or smaller value is already recorded.
func (c *Closed[K]) Record(key K, g float64) {
	if old, ok := c.best[key]; ok && old <= g {
		return
	}
	c.best[key] = g
}

// Best returns the recorded g for key.
func (c *Closed[K]) Best(key K) (g float64, ok bool) {
	g, ok = c.best[key]
	return g, ok
}

// Contains reports whether key has been closed.
func (c *Closed[K]) Contains(key K) bool {
	_, ok := c.best[key]
	return ok
}

// Stale reports whether key is closed with a g less than or equal to g, i.e.
// whether a node with this key and cost would be a redundant expansion.
func (c *Closed[K]) Stale(key K, g float64) bool {
	best, ok := c.best[key]
	return ok && best <= g
}

// Len returns the number of closed keys.
func (c *Closed[K]) Len() int { return len(c.best) }

// Keys returns the closed keys in unspecified order.
func (c *Closed[K]) Keys() []K {
	out := make([]K, 0, len(c.best))
	for k := range c.best {
		out = append(out, k)
	}

	return out
}
