// Package errors provides structured error types for the trace-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go type name,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrap, errors.KindInvalidCallable).
//		GoType("int").
//		Detail("value is not invocable").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidCallable(value)
//	err := errors.HookNotFound("hook", "pre_backward")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
