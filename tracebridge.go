package tracebridge

// Func is the canonical callable shape: unconstrained arity, a single result
// and an explicit error. Typed functions are bridged to this shape at wrap
// time (see FuncOf).
type Func func(args ...any) (any, error)

// Callable is any value invocable through the canonical calling convention.
// Wrappers produced by the inline package implement it.
type Callable interface {
	Call(args ...any) (any, error)
}

// Forwarder marks a stateful invocable object whose canonical entry point is
// its Forward method. For identity and dispatch purposes a Forwarder IS its
// Forward body: two instances of one type share a body.
type Forwarder interface {
	Forward(args ...any) (any, error)
}

// Metadata is the explicit attribute bag attached to callables and copied by
// value onto wrappers, so reflection-based tooling keeps working across
// re-wrapping.
type Metadata struct {
	Name  string
	Attrs map[string]any
}

// Clone returns a copy of m whose Attrs map does not alias the original.
func (m Metadata) Clone() Metadata {
	out := Metadata{Name: m.Name}
	if m.Attrs != nil {
		out.Attrs = make(map[string]any, len(m.Attrs))
		for k, v := range m.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// Annotated exposes a callable's metadata. Callables that do not implement it
// get metadata synthesized from their body's symbol name.
type Annotated interface {
	Metadata() Metadata
}
