package rewrite

import (
	"encoding/binary"

	"github.com/google/uuid"

	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/errors"
)

// Tag is the synthetic identity of a body. Fresh tags never collide with
// each other or with any code pointer, which is the whole point: the tracer
// distinguishes traceable units by tag.
type Tag = uuid.UUID

// Body is one executable unit of work plus the identity it is distinguished
// by.
type Body struct {
	Fn   tracebridge.Func
	Name string
	Tag  Tag
}

// Transform is the instruction-visitor stand-in handed to a Rewriter. It may
// replace the executable form of a body. Even a no-op transform forces
// allocation of a fresh tag.
type Transform func(fn tracebridge.Func) tracebridge.Func

// Noop is the semantics-preserving transform used for identity-only
// rewrites.
func Noop(fn tracebridge.Func) tracebridge.Func { return fn }

// Rewriter produces a behaviorally equivalent Body with a distinct identity.
// Implementations must never reuse a tag and must propagate failure without
// recovery.
type Rewriter interface {
	Rewrite(b Body, t Transform) (Body, error)
}

// Tagger is the default Rewriter. It applies the transform and re-tags the
// body with a freshly allocated tag.
type Tagger struct{}

// NewTagger creates the default rewriting engine.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Rewrite validates b, applies t, and allocates a fresh tag.
func (*Tagger) Rewrite(b Body, t Transform) (Body, error) {
	if b.Fn == nil {
		return Body{}, errors.RewriteFailed("body has no executable form")
	}
	fn := b.Fn
	if t != nil {
		fn = t(fn)
		if fn == nil {
			return Body{}, errors.RewriteFailed("transform produced an empty body")
		}
	}
	return Body{Fn: fn, Name: b.Name, Tag: uuid.New()}, nil
}

// tagNamespace scopes derived tags away from freshly allocated ones.
var tagNamespace = uuid.MustParse("8f1f5c1e-6b0a-4d2e-9c41-2a4fd0a1b7c3")

// DeriveTag deterministically derives the pre-rewrite tag of an indirection
// body from the code identity it forwards to. Structurally identical
// indirections get equal tags, which is what makes memoizing the rewrite
// step effective.
func DeriveTag(id tracebridge.CodeID) Tag {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return uuid.NewSHA1(tagNamespace, buf[:])
}
