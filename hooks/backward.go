package hooks

import (
	tracebridge "github.com/wippyai/trace-bridge"
)

// BackwardContext is the lightweight stand-in handed to a backward-compute
// callback. It carries only previously materialized saved tensors; there is
// no live computation-graph binding behind it.
type BackwardContext struct {
	saved []tracebridge.Tensor
}

// SavedTensors returns the tensors materialized for this backward call.
func (c *BackwardContext) SavedTensors() []tracebridge.Tensor {
	return c.saved
}

// BackwardFunc computes gradients from a context and upstream gradients.
type BackwardFunc func(ctx *BackwardContext, grads ...any) (any, error)

// CallBackward invokes fn with a context built from saved and normalizes the
// result to a gradient sequence: a single non-sequence value v becomes
// []any{v}, a sequence passes through unchanged.
func CallBackward(fn BackwardFunc, saved []tracebridge.Tensor, grads ...any) ([]any, error) {
	out, err := fn(&BackwardContext{saved: saved}, grads...)
	if err != nil {
		return nil, err
	}
	if seq, ok := out.([]any); ok {
		return seq, nil
	}
	return []any{out}, nil
}
