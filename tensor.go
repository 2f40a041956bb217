package tracebridge

// Tensor is the minimal surface of the tensor library this module bridges
// to. Only dense float64 values cross the boundary; everything else stays on
// the tensor library's side.
type Tensor interface {
	Shape() []int
	Values() []float64
	UntypedStorage() Storage
}

// Storage is the byte-level backing allocation of a tensor.
type Storage interface {
	Size() int64
}

// UntypedStorageSize reports the byte size of t's backing storage. Pure
// forwarding query: no caching, no side effects.
func UntypedStorageSize(t Tensor) int64 {
	return t.UntypedStorage().Size()
}
