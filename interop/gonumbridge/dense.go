package gonumbridge

import (
	tracebridge "github.com/wippyai/trace-bridge"
)

// Dense is a row-major float64 tensor. It is the concrete tensor type the
// bridge produces and the one the package's tests compute with.
type Dense struct {
	shape []int
	vals  []float64
}

var _ tracebridge.Tensor = (*Dense)(nil)

// NewDense creates a tensor with the given shape over vals. It panics if
// vals does not hold exactly one value per element, mirroring gonum's
// constructor contracts.
func NewDense(shape []int, vals []float64) *Dense {
	n := 1
	for _, d := range shape {
		n *= d
	}
	if n != len(vals) {
		panic("gonumbridge: shape does not match value count")
	}
	return &Dense{shape: shape, vals: vals}
}

// Shape returns the tensor's dimensions.
func (d *Dense) Shape() []int {
	return d.shape
}

// Values returns the backing values in row-major order.
func (d *Dense) Values() []float64 {
	return d.vals
}

// UntypedStorage exposes the byte-level backing allocation.
func (d *Dense) UntypedStorage() tracebridge.Storage {
	return storage(len(d.vals) * 8)
}

type storage int64

func (s storage) Size() int64 {
	return int64(s)
}
