package inline

import (
	"go.uber.org/zap"

	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/rewrite"
)

// Session is one execution context of the compiler frontend. It owns the
// wrapper cache for that context; nothing is shared between sessions, so
// cache access needs no locking.
//
// A Session is NOT safe for concurrent use. Contexts that trace concurrently
// each create their own.
type Session struct {
	wrappers map[tracebridge.CodeID]*Wrapper
	factory  *Factory
}

// Option configures a Session.
type Option func(*Session)

// WithRewriter replaces the session's rewriting engine.
func WithRewriter(r rewrite.Rewriter) Option {
	return func(s *Session) {
		s.factory = NewFactory(r)
	}
}

// NewSession creates an execution context with an empty wrapper cache.
func NewSession(opts ...Option) *Session {
	s := &Session{factory: NewFactory(nil)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WrapInline returns this session's wrapper for fn, building it on first
// use. Repeated calls with callables sharing one body return the identical
// wrapper, so tracer caches keyed on wrapper identity stay warm.
func (s *Session) WrapInline(fn any) (*Wrapper, error) {
	id, err := tracebridge.CodeIDOf(fn)
	if err != nil {
		return nil, err
	}
	return s.getOrCreate(id, func() (*Wrapper, error) {
		return s.factory.Build(fn)
	})
}

// getOrCreate guarantees at most one wrapper per (session, identity). The
// builder runs only on a miss; its result is stored before being returned.
func (s *Session) getOrCreate(id tracebridge.CodeID, build func() (*Wrapper, error)) (*Wrapper, error) {
	if w, ok := s.wrappers[id]; ok {
		return w, nil
	}

	w, err := build()
	if err != nil {
		return nil, err
	}

	if s.wrappers == nil {
		s.wrappers = make(map[tracebridge.CodeID]*Wrapper)
	}
	s.wrappers[id] = w

	Logger().Debug("cached wrapper",
		zap.Uint64("code_id", uint64(id)),
		zap.Int("cache_size", len(s.wrappers)),
	)

	return w, nil
}

// Len reports the number of wrappers cached in this session.
func (s *Session) Len() int {
	return len(s.wrappers)
}
