// Package interop adapts array-based functions to the tensor calling
// convention the compiler frontend uses.
//
// WrapNumpy is decorator-shaped: given a function that computes on the array
// library's types, it returns a function that accepts and produces tensors,
// converting at the boundary in both directions through a registered Bridge.
//
// The array library is optional. When no bridge is registered, WrapNumpy
// degrades to the identity transform and returns the original function
// value, so callers can adopt the adapter unconditionally.
//
// The gonumbridge subpackage provides a Bridge backed by gonum's mat types:
//
//	interop.Register(gonumbridge.New())
//
//	f := interop.WrapNumpy(func(args ...any) (any, error) {
//	    m := args[0].(*mat.Dense)
//	    var out mat.Dense
//	    out.Scale(2, m)
//	    return &out, nil
//	})
package interop
