package mount

// Pool recycles content instances per ContentType. It is owned by a single
// thread and passed explicitly to each MountState that should share it. A
// nil *Pool is valid and always allocates.
type Pool struct {
	defaultSize int
	free        map[*ContentType][]Content
	hits        int
	misses      int
}

// NewPool creates a pool. defaultSize caps the freelist of content types
// that leave PoolSize at zero; values <= 0 use the built-in default of 3.
func NewPool(defaultSize int) *Pool {
	if defaultSize <= 0 {
		defaultSize = defaultPoolSize
	}
	return &Pool{
		defaultSize: defaultSize,
		free:        make(map[*ContentType][]Content),
	}
}

// Acquire returns a recycled instance of t or creates a new one.
func (p *Pool) Acquire(t *ContentType) Content {
	if p != nil {
		if list := p.free[t]; len(list) > 0 {
			c := list[len(list)-1]
			list[len(list)-1] = nil
			p.free[t] = list[:len(list)-1]
			p.hits++
			return c
		}
		p.misses++
	}
	return t.create()
}

// Release returns content to the pool. It reports false when the freelist
// is full and the content was dropped.
func (p *Pool) Release(t *ContentType, c Content) bool {
	if p == nil || c == nil {
		return false
	}
	if h, ok := c.(*Host); ok {
		if h.MountedCount() > 0 || len(h.children) > 0 {
			return false
		}
		h.reset()
	}
	list := p.free[t]
	if len(list) >= t.poolSize(p.defaultSize) {
		return false
	}
	p.free[t] = append(list, c)
	return true
}

// Len returns the number of pooled instances of t.
func (p *Pool) Len(t *ContentType) int {
	if p == nil {
		return 0
	}
	return len(p.free[t])
}

// Hits returns how many Acquire calls were served from the pool.
func (p *Pool) Hits() int {
	if p == nil {
		return 0
	}
	return p.hits
}

// Misses returns how many Acquire calls had to allocate.
func (p *Pool) Misses() int {
	if p == nil {
		return 0
	}
	return p.misses
}
