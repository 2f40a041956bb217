package interop

import (
	"reflect"
	"testing"

	tracebridge "github.com/wippyai/trace-bridge"
)

type testStorage int64

func (s testStorage) Size() int64 { return int64(s) }

type testTensor struct {
	vals []float64
}

func (f *testTensor) Shape() []int      { return []int{len(f.vals)} }
func (f *testTensor) Values() []float64 { return f.vals }

func (f *testTensor) UntypedStorage() tracebridge.Storage {
	return testStorage(len(f.vals) * 8)
}

// testArray is the fake "array library" type for these tests.
type testArray struct {
	vals []float64
}

type testBridge struct{}

func (testBridge) FromTensor(t tracebridge.Tensor) (any, bool) {
	return &testArray{vals: append([]float64(nil), t.Values()...)}, true
}

func (testBridge) ToTensor(v any) (tracebridge.Tensor, bool) {
	if a, ok := v.(*testArray); ok {
		return &testTensor{vals: a.vals}, true
	}
	return nil, false
}

func TestWrapNumpy_NoBridgeIsIdentity(t *testing.T) {
	Register(nil)

	f := tracebridge.Func(func(args ...any) (any, error) { return nil, nil })
	wrapped := WrapNumpy(f)

	if reflect.ValueOf(wrapped).Pointer() != reflect.ValueOf(f).Pointer() {
		t.Error("expected the original function value when no bridge is registered")
	}
}

func TestWrapNumpy_ConvertsAtBoundary(t *testing.T) {
	Register(testBridge{})
	t.Cleanup(func() { Register(nil) })

	double := tracebridge.Func(func(args ...any) (any, error) {
		in := args[0].(*testArray)
		out := make([]float64, len(in.vals))
		for i, v := range in.vals {
			out[i] = 2 * v
		}
		return &testArray{vals: out}, nil
	})

	wrapped := WrapNumpy(double)

	out, err := wrapped(&testTensor{vals: []float64{1, 2, 3}})
	if err != nil {
		t.Fatalf("wrapped call failed: %v", err)
	}

	tensor, ok := out.(tracebridge.Tensor)
	if !ok {
		t.Fatalf("result is %T, want a tensor", out)
	}
	want := []float64{2, 4, 6}
	got := tensor.Values()
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestWrapNumpy_NonTensorArgsPassThrough(t *testing.T) {
	Register(testBridge{})
	t.Cleanup(func() { Register(nil) })

	f := tracebridge.Func(func(args ...any) (any, error) {
		if args[1] != "scale" {
			t.Errorf("args[1] = %v, want untouched non-tensor argument", args[1])
		}
		return args[1], nil
	})

	out, err := WrapNumpy(f)(&testTensor{vals: []float64{1}}, "scale")
	if err != nil {
		t.Fatalf("wrapped call failed: %v", err)
	}
	if out != "scale" {
		t.Errorf("result = %v, want scale", out)
	}
}

func TestWrapNumpy_SequenceResults(t *testing.T) {
	Register(testBridge{})
	t.Cleanup(func() { Register(nil) })

	f := tracebridge.Func(func(args ...any) (any, error) {
		return []any{&testArray{vals: []float64{1}}, "meta"}, nil
	})

	out, err := WrapNumpy(f)()
	if err != nil {
		t.Fatalf("wrapped call failed: %v", err)
	}

	seq, ok := out.([]any)
	if !ok || len(seq) != 2 {
		t.Fatalf("result = %v, want two-element sequence", out)
	}
	if _, ok := seq[0].(tracebridge.Tensor); !ok {
		t.Errorf("seq[0] is %T, want a tensor", seq[0])
	}
	if seq[1] != "meta" {
		t.Errorf("seq[1] = %v, want meta", seq[1])
	}
}
