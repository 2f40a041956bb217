package tracebridge

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/wippyai/trace-bridge/errors"
)

// CodeID identifies a callable's executable body. It is the code pointer of
// the underlying function, so callable values that share a body (closures
// produced by one func literal, method values of different receivers of one
// type) share a CodeID. Stable for the lifetime of the process.
type CodeID uintptr

var errType = reflect.TypeOf((*error)(nil)).Elem()

// CodeIDOf extracts the body identity of fn.
//
// Resolution order mirrors dispatch: a Forwarder is identified by the body
// of its Forward method, a Callable by the body of its Call method, and any
// func value by its own code pointer. Anything else is not a callable.
func CodeIDOf(fn any) (CodeID, error) {
	switch c := fn.(type) {
	case Forwarder:
		return CodeID(reflect.ValueOf(c.Forward).Pointer()), nil
	case Callable:
		return CodeID(reflect.ValueOf(c.Call).Pointer()), nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0, errors.InvalidCallable(fn)
	}
	return CodeID(v.Pointer()), nil
}

// FuncOf returns fn as a canonical Func. Forwarders dispatch through
// Forward, Callables through Call, Funcs are returned as-is, and typed
// functions are bridged through reflection with a trailing error result
// split off.
func FuncOf(fn any) (Func, error) {
	switch c := fn.(type) {
	case Forwarder:
		return c.Forward, nil
	case Callable:
		return c.Call, nil
	case Func:
		if c == nil {
			return nil, errors.InvalidCallable(fn)
		}
		return c, nil
	case func(...any) (any, error):
		if c == nil {
			return nil, errors.InvalidCallable(fn)
		}
		return c, nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.InvalidCallable(fn)
	}
	return reflectFunc(v), nil
}

// MetadataOf returns fn's metadata: its own if it is Annotated, otherwise a
// bag synthesized from the body's symbol name.
func MetadataOf(fn any, id CodeID) Metadata {
	if a, ok := fn.(Annotated); ok {
		return a.Metadata().Clone()
	}
	return Metadata{Name: FuncName(id)}
}

// FuncName resolves a CodeID back to its symbol's base name, e.g.
// "github.com/acme/app.Process" becomes "Process". Method value wrappers
// keep their receiver: "(*Model).Forward". Unknown IDs resolve to "".
func FuncName(id CodeID) string {
	f := runtime.FuncForPC(uintptr(id))
	if f == nil {
		return ""
	}
	name := path.Base(f.Name())
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// reflectFunc bridges a typed function to the canonical calling convention.
// Arity and argument type mismatches surface as the same panics a direct
// call through reflection would produce.
func reflectFunc(v reflect.Value) Func {
	t := v.Type()
	return func(args ...any) (any, error) {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			if a == nil {
				in[i] = reflect.Zero(paramType(t, i))
			} else {
				in[i] = reflect.ValueOf(a)
			}
		}
		return splitResults(v.Call(in))
	}
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

// splitResults converts reflect call results to the canonical (value, error)
// pair. Multiple non-error results collapse into a []any.
func splitResults(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		vals := make([]any, len(out))
		for i, o := range out {
			vals[i] = o.Interface()
		}
		return vals, err
	}
}
