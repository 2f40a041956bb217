package gonumbridge

import (
	"gonum.org/v1/gonum/mat"

	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/interop"
)

// Bridge converts rank-1 tensors to *mat.VecDense and rank-2 tensors to
// *mat.Dense. Higher ranks are not bridged; such tensors pass through the
// adapter unconverted.
type Bridge struct{}

var _ interop.Bridge = (*Bridge)(nil)

// New creates the gonum-backed array bridge.
func New() *Bridge {
	return &Bridge{}
}

// FromTensor copies t's values into the matching gonum type.
func (*Bridge) FromTensor(t tracebridge.Tensor) (any, bool) {
	shape := t.Shape()
	switch len(shape) {
	case 1:
		return mat.NewVecDense(shape[0], append([]float64(nil), t.Values()...)), true
	case 2:
		return mat.NewDense(shape[0], shape[1], append([]float64(nil), t.Values()...)), true
	}
	return nil, false
}

// ToTensor copies a gonum vector or matrix into a dense tensor.
func (*Bridge) ToTensor(v any) (tracebridge.Tensor, bool) {
	switch a := v.(type) {
	case *mat.VecDense:
		vals := make([]float64, a.Len())
		for i := range vals {
			vals[i] = a.AtVec(i)
		}
		return NewDense([]int{a.Len()}, vals), true
	case *mat.Dense:
		r, c := a.Dims()
		vals := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				vals = append(vals, a.At(i, j))
			}
		}
		return NewDense([]int{r, c}, vals), true
	}
	return nil, false
}
