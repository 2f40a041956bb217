package interop

import (
	"sync"

	tracebridge "github.com/wippyai/trace-bridge"
)

// Bridge converts between the module's tensor representation and the array
// library's. FromTensor and ToTensor report false for values outside the
// bridged type set; such values pass through WrapNumpy unconverted.
type Bridge interface {
	FromTensor(t tracebridge.Tensor) (any, bool)
	ToTensor(v any) (tracebridge.Tensor, bool)
}

var (
	bridgeMu sync.RWMutex
	bridge   Bridge
)

// Register installs the array bridge used by WrapNumpy. Registering nil
// uninstalls it.
func Register(b Bridge) {
	bridgeMu.Lock()
	bridge = b
	bridgeMu.Unlock()
}

// Registered returns the currently installed bridge, or nil when the array
// library is absent.
func Registered() Bridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return bridge
}

// WrapNumpy turns a function from arrays to arrays into a function from
// tensors to tensors: tensor-typed arguments convert before the call and
// array-typed results convert back after.
//
// When no bridge is registered the array library is absent; that is not an
// error, and f is returned unmodified.
func WrapNumpy(f tracebridge.Func) tracebridge.Func {
	b := Registered()
	if b == nil {
		return f
	}
	return func(args ...any) (any, error) {
		conv := make([]any, len(args))
		for i, a := range args {
			conv[i] = a
			if t, ok := a.(tracebridge.Tensor); ok {
				if arr, ok := b.FromTensor(t); ok {
					conv[i] = arr
				}
			}
		}
		out, err := f(conv...)
		if err != nil {
			return nil, err
		}
		return convertResult(b, out), nil
	}
}

// convertResult maps array-typed results back to tensors, descending one
// level into result sequences.
func convertResult(b Bridge, out any) any {
	if seq, ok := out.([]any); ok {
		mapped := make([]any, len(seq))
		for i, v := range seq {
			mapped[i] = convertOne(b, v)
		}
		return mapped
	}
	return convertOne(b, out)
}

func convertOne(b Bridge, v any) any {
	if t, ok := b.ToTensor(v); ok {
		return t
	}
	return v
}
