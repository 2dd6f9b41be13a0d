package du

import "sync"

// Pool records the identities already counted during one scan.
type Pool struct {
	// most identities are new, so a plain Mutex is enough
	mu   sync.Mutex
	seen map[Identity]struct{}
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{seen: make(map[Identity]struct{})}
}

// Observe records id and returns true if it had not been seen before.
// The zero Identity is never recorded, so entries without identity
// information are always reported as new.
func (p *Pool) Observe(id Identity) bool {
	if id.IsZero() {
		return true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[id]; ok {
		return false
	}

	p.seen[id] = struct{}{}

	return true
}

// Len returns the number of recorded identities.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.seen)
}
