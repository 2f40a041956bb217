// Package inline implements function re-wrapping with per-session identity
// caching.
//
// The compiler frontend skips certain code during tracing. When such code
// must nevertheless appear as a traceable unit, WrapInline produces an extra
// frame around it: a new callable, behaviorally identical to the original,
// whose body carries a fresh identity. Because the tracer keys its caches on
// body identity, the wrapper never aliases the original or any other
// wrapped function.
//
// # Caching
//
// Wrapping is memoized per Session and keyed on the original's CodeID:
//
//	sess := inline.NewSession()
//	a, _ := sess.WrapInline(fn)
//	b, _ := sess.WrapInline(fn)
//	// a == b
//
// At most one wrapper is ever built per (session, identity). Callables that
// share a body — method values of different receivers of one type — share a
// wrapper. Entries are never evicted; the cache is bounded by the number of
// distinct bodies encountered, not by call volume.
//
// # Sessions
//
// A Session is the explicit form of "one tracing context". Two sessions
// never share cache entries: wrapping the same function from two sessions
// yields two independent wrappers with distinct body tags, each behaviorally
// identical to the original. This isolation is what removes any need for
// locking on the cache.
package inline
