// Package hooks implements the autograd hook invocation conventions the
// compiled backward pass relies on.
//
// Three conventions live here:
//
//   - CallHook: a hook returning nil did not override, so the first argument
//     propagates unchanged.
//   - CallBackward: backward callbacks receive a BackwardContext carrying
//     only materialized saved tensors, and their result is normalized to a
//     gradient sequence.
//   - Backward state dispatch: hooks and modules are looked up by name on an
//     opaque State at call time, and module hook lists run strictly in
//     stored order, each non-nil return replacing the threaded result.
//
// Nothing here retries or recovers. A name that does not resolve surfaces as
// a hook not_found error to the caller, which decides whether to fall back
// to uncompiled execution.
package hooks
