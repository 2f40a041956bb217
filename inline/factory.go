package inline

import (
	"go.uber.org/zap"

	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/rewrite"
)

// Factory builds wrappers: it constructs an indirection around the original
// callable, submits it to the rewriting engine, and assembles the result
// with the original's metadata.
type Factory struct {
	rewriter rewrite.Rewriter
}

// NewFactory creates a factory on the given rewriting engine. A nil engine
// selects the default: a memoized Tagger. The memo is scoped to this factory
// so wrappers built by different sessions never share a body tag.
func NewFactory(r rewrite.Rewriter) *Factory {
	if r == nil {
		r = rewrite.NewMemo(rewrite.NewTagger())
	}
	return &Factory{rewriter: r}
}

// Build produces a wrapper for fn.
//
// fn may be a Func, any typed function, a Callable, or a Forwarder; anything
// else fails with an invalid_callable error. Rewrite failures propagate
// unmodified.
func (f *Factory) Build(fn any) (*Wrapper, error) {
	id, err := tracebridge.CodeIDOf(fn)
	if err != nil {
		return nil, err
	}
	target, err := tracebridge.FuncOf(fn)
	if err != nil {
		return nil, err
	}
	meta := tracebridge.MetadataOf(fn, id)

	// Pure indirection of unconstrained arity. Its own shape is derived from
	// the original's identity so the rewrite memo can recognize it.
	indirection := rewrite.Body{
		Fn: func(args ...any) (any, error) {
			return target(args...)
		},
		Name: meta.Name,
		Tag:  rewrite.DeriveTag(id),
	}

	body, err := f.rewriter.Rewrite(indirection, rewrite.Noop)
	if err != nil {
		return nil, err
	}

	Logger().Debug("built wrapper",
		zap.String("name", meta.Name),
		zap.Uint64("code_id", uint64(id)),
		zap.Stringer("tag", body.Tag),
	)

	return &Wrapper{body: body, meta: meta}, nil
}
