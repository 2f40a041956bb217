package rewrite

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Memo decorates a Rewriter with a process-lifetime cache keyed by the input
// body's shape (tag and name). Repeated rewrites of structurally identical
// indirections return the previously rewritten body without re-invoking the
// engine.
//
// The memo only bounds rewrite cost. Callers must not rely on it for
// correctness: cache policy may change, and errors are never cached.
type Memo struct {
	inner Rewriter
	mu    sync.Mutex
	seen  map[uint64]Body
}

// NewMemo wraps inner with shape memoization.
func NewMemo(inner Rewriter) *Memo {
	return &Memo{
		inner: inner,
		seen:  make(map[uint64]Body),
	}
}

// Rewrite returns the cached body for an already-seen shape, otherwise
// delegates to the inner engine and stores the result. Failures propagate
// unmodified and leave the cache untouched.
func (m *Memo) Rewrite(b Body, t Transform) (Body, error) {
	key := shapeKey(b)

	m.mu.Lock()
	cached, ok := m.seen[key]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	out, err := m.inner.Rewrite(b, t)
	if err != nil {
		return Body{}, err
	}

	m.mu.Lock()
	if prior, ok := m.seen[key]; ok {
		// first writer wins
		out = prior
	} else {
		m.seen[key] = out
	}
	m.mu.Unlock()

	return out, nil
}

// Len reports the number of memoized shapes.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}

// shapeKey hashes the body's tag and name into a compact map key.
func shapeKey(b Body) uint64 {
	h := xxhash.New()
	h.Write(b.Tag[:])
	h.WriteString(b.Name)
	return h.Sum64()
}
