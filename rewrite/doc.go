// Package rewrite is the boundary to the code-rewriting engine: given an
// executable body and a semantics-preserving transform, produce a new body
// with identical observable behavior and a distinct identity.
//
// In a metaprogrammable runtime this would be a bytecode pass. Here a body
// is an opaque unit of compiled work, so "rewriting" means re-tagging: the
// default engine (Tagger) applies the transform and stamps the result with a
// freshly allocated synthetic tag. The tag, not the code pointer, is what
// the tracer keys its caches on, so a re-tagged body is a genuinely new
// traceable unit.
//
// Usage:
//
//	eng := rewrite.NewMemo(rewrite.NewTagger())
//
//	out, err := eng.Rewrite(rewrite.Body{
//	    Fn:   fn,
//	    Name: "inner",
//	    Tag:  rewrite.DeriveTag(id),
//	}, rewrite.Noop)
//
// Memo caches rewritten bodies by input shape, so a caller loop that keeps
// constructing structurally identical indirections pays for the rewrite
// once. The cache grows monotonically for the process lifetime; entry count
// is bounded by distinct shapes encountered, not call volume.
package rewrite
