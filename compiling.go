package tracebridge

import "sync"

// CompilerRuntime is the read-only boundary to the tracer. The compiler
// frontend registers its runtime once at startup; this module only queries
// it.
type CompilerRuntime interface {
	IsCompiling() bool
}

var (
	compilerMu sync.RWMutex
	compiler   CompilerRuntime
)

// SetCompilerRuntime installs the runtime queried by IsCompiling.
func SetCompilerRuntime(rt CompilerRuntime) {
	compilerMu.Lock()
	compiler = rt
	compilerMu.Unlock()
}

// IsCompiling reports whether the current execution is being traced or
// compiled. It returns false when no compiler runtime is registered.
func IsCompiling() bool {
	compilerMu.RLock()
	rt := compiler
	compilerMu.RUnlock()
	return rt != nil && rt.IsCompiling()
}
