// Package tracebridge provides the helper functions a tracing JIT compiler
// frontend uses to bridge between code it traces and code it intentionally
// leaves opaque (user callbacks, autograd hooks, array-library interop).
//
// The centerpiece is the re-wrapping mechanism in the inline package: given an
// arbitrary callable, produce a new, behaviorally identical callable whose
// executable body carries a fresh identity, so the tracer treats it as a
// distinct traceable unit instead of reusing a trace keyed by the original
// body. Wrapping is memoized per tracing session, and sessions are fully
// isolated from each other.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	tracebridge/         Root package with callable identity, metadata and
//	                     tensor boundary interfaces
//	├── inline/          Session-scoped wrapper cache and wrapper factory
//	├── rewrite/         Body re-tagging: the code-rewriter boundary and its
//	                     default implementation
//	├── hooks/           Autograd hook invocation conventions
//	├── interop/         Tensor <-> array adapter with graceful degradation
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Wrap a function so the tracer sees a fresh frame:
//
//	sess := inline.NewSession()
//
//	w, err := sess.WrapInline(fn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := w.Call(10, 20) // same result as fn(10, 20)
//
// Wrapping the same function twice in one session returns the identical
// wrapper, so downstream caches keyed on wrapper identity stay warm:
//
//	w2, _ := sess.WrapInline(fn)
//	// w2 == w
//
// # Callable Identity
//
// A callable's identity is the identity of its executable body (CodeID), not
// of the callable value itself. Two closures produced by the same func
// literal, and method values of different receivers of one type, share a
// body and therefore share a wrapper within a session. A stateful object
// that implements Forwarder is identified by the body of its Forward method.
//
// # Thread Safety
//
// A Session belongs to exactly one tracing context and is NOT safe for
// concurrent use. Contexts that trace concurrently each own a Session;
// nothing is shared between them, so no locking is needed on the wrapper
// cache. Process-wide registries (compiler runtime, interop bridge, the
// rewrite memo) are mutex-guarded and safe for concurrent use.
//
// # Failure Model
//
// This package performs no retries and swallows no errors. A value that is
// neither invocable nor a Forwarder fails with an invalid_callable error; a
// rewrite failure propagates to the caller unmodified. The only tolerated
// absence is the array library: interop.WrapNumpy degrades to the identity
// transform when no bridge is registered.
package tracebridge
