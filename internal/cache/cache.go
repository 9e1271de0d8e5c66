// Package cache provides the named resource cache the driver keeps its
// textures in.
//
// Entries carry a cost, the byte size of a texture's mip chain. When the
// total cost exceeds the budget the least recently used entries are
// dropped until it fits again. The newest entry is never dropped, so a
// single resource larger than the budget still stays resident.
//
//	c := cache.New[string, *Texture](64<<20, func(t *Texture) int { return t.Bytes() })
//	c.Set("wall.png", tex)
//	tex, ok := c.Get("wall.png")
package cache

// Cache is an LRU map with a cost budget. It is not safe for concurrent
// use.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[K, V]
	order   lruList[K, V]
	cost    func(V) int
	budget  int
	total   int

	// OnEvict, when set, is called for every entry the budget pushes out.
	OnEvict func(K, V)

	hits, misses, evictions uint64
}

type entry[K comparable, V any] struct {
	node  lruNode[K, V]
	value V
	cost  int
}

// New returns a cache holding at most budget cost units. A budget of 0
// means unlimited. A nil cost counts every entry as 1.
func New[K comparable, V any](budget int, cost func(V) int) *Cache[K, V] {
	if cost == nil {
		cost = func(V) int { return 1 }
	}
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		cost:    cost,
		budget:  budget,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(&e.node)
	return e.value, true
}

// Peek returns the value for key without touching its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous value, and evicts
// old entries while the budget is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	if old, ok := c.entries[key]; ok {
		c.total -= old.cost
		c.order.remove(&old.node)
		delete(c.entries, key)
	}
	e := &entry[K, V]{value: value, cost: c.cost(value)}
	e.node.key = key
	e.node.owner = e
	c.entries[key] = e
	c.order.pushFront(&e.node)
	c.total += e.cost
	c.shrink()
}

// GetOrCreate returns the cached value for key or stores the result of
// create. An error from create is returned and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Delete removes key and reports whether it was present. OnEvict is not
// called.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.total -= e.cost
	c.order.remove(&e.node)
	delete(c.entries, key)
	return true
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	clear(c.entries)
	c.order = lruList[K, V]{}
	c.total = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for n := c.order.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

func (c *Cache[K, V]) shrink() {
	if c.budget <= 0 {
		return
	}
	for c.total > c.budget && c.order.len > 1 {
		n := c.order.tail
		c.order.remove(n)
		e := n.owner
		delete(c.entries, n.key)
		c.total -= e.cost
		c.evictions++
		if c.OnEvict != nil {
			c.OnEvict(n.key, e.value)
		}
	}
}

// Stats reports cache usage.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Cost:      c.total,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len       int
	Cost      int
	Budget    int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
