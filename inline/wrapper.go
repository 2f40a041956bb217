package inline

import (
	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/rewrite"
)

// Wrapper is a re-wrapped callable: behaviorally identical to the original,
// carrying a body identity of its own plus the original's metadata. The
// tracer sees it as a distinct traceable unit.
type Wrapper struct {
	body rewrite.Body
	meta tracebridge.Metadata
}

// Call invokes the wrapped body, forwarding arguments verbatim. The result
// and error are exactly those of the original callable.
func (w *Wrapper) Call(args ...any) (any, error) {
	return w.body.Fn(args...)
}

// Tag is the wrapper's body identity. It is never equal to any code pointer
// and never shared with another wrapper.
func (w *Wrapper) Tag() rewrite.Tag {
	return w.body.Tag
}

// Name reports the original callable's declared name.
func (w *Wrapper) Name() string {
	return w.meta.Name
}

// Metadata returns the attribute bag copied from the original callable.
func (w *Wrapper) Metadata() tracebridge.Metadata {
	return w.meta
}
