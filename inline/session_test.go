package inline

import (
	stderrors "errors"
	"testing"

	tracebridge "github.com/wippyai/trace-bridge"
	"github.com/wippyai/trace-bridge/errors"
)

func add(args ...any) (any, error) {
	return args[0].(int) + args[1].(int), nil
}

func TestSession_WrapInlineIdempotent(t *testing.T) {
	sess := NewSession()

	a, err := sess.WrapInline(tracebridge.Func(add))
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}
	b, err := sess.WrapInline(tracebridge.Func(add))
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	if a != b {
		t.Error("expected the identical wrapper for repeated wrapping")
	}
	if sess.Len() != 1 {
		t.Errorf("cache size = %d, want 1", sess.Len())
	}
}

func TestSession_CrossSessionIndependence(t *testing.T) {
	s1 := NewSession()
	s2 := NewSession()

	a, err := s1.WrapInline(tracebridge.Func(add))
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}
	b, err := s2.WrapInline(tracebridge.Func(add))
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	if a == b {
		t.Error("expected independent wrappers across sessions")
	}
	if a.Tag() == b.Tag() {
		t.Error("expected distinct body tags across sessions")
	}

	for _, w := range []*Wrapper{a, b} {
		out, err := w.Call(2, 3)
		if err != nil {
			t.Fatalf("Call failed: %v", err)
		}
		if out != 5 {
			t.Errorf("Call returned %v, want 5", out)
		}
	}
}

func TestSession_BehavioralEquivalence(t *testing.T) {
	sess := NewSession()
	sentinel := stderrors.New("inner failure")

	fn := tracebridge.Func(func(args ...any) (any, error) {
		if len(args) == 0 {
			return nil, sentinel
		}
		return args[len(args)-1], nil
	})

	w, err := sess.WrapInline(fn)
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	out, err := w.Call("x", "y", "z")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if out != "z" {
		t.Errorf("Call returned %v, want z", out)
	}

	if _, err := w.Call(); err != sentinel {
		t.Errorf("Call error = %v, want the original error value", err)
	}
}

func TestSession_IdentityDistinctness(t *testing.T) {
	sess := NewSession()

	first := tracebridge.Func(func(args ...any) (any, error) { return 1, nil })
	second := tracebridge.Func(func(args ...any) (any, error) { return 2, nil })

	a, err := sess.WrapInline(first)
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}
	b, err := sess.WrapInline(second)
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	if a == b {
		t.Error("expected distinct wrappers for distinct functions")
	}
	if a.Tag() == b.Tag() {
		t.Error("expected distinct body tags for distinct functions")
	}
	if sess.Len() != 2 {
		t.Errorf("cache size = %d, want 2", sess.Len())
	}
}

type model struct {
	bias int
}

func (m *model) Forward(args ...any) (any, error) {
	return args[0].(int) + m.bias, nil
}

func TestSession_SharedBodyCallables(t *testing.T) {
	sess := NewSession()

	m1 := &model{bias: 10}
	m2 := &model{bias: 99}

	a, err := sess.WrapInline(m1)
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}
	b, err := sess.WrapInline(m2)
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	// Method values of one type share a body, so the cache treats both
	// instances as one identity and keeps the first wrapper.
	if a != b {
		t.Error("expected shared wrapper for callables sharing a body")
	}

	out, err := a.Call(1)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if out != 11 {
		t.Errorf("Call returned %v, want 11", out)
	}
}

func TestSession_TypedFunction(t *testing.T) {
	sess := NewSession()

	w, err := sess.WrapInline(func(a, b int) int { return a * b })
	if err != nil {
		t.Fatalf("WrapInline failed: %v", err)
	}

	out, err := w.Call(6, 7)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if out != 42 {
		t.Errorf("Call returned %v, want 42", out)
	}
}

func TestSession_InvalidCallable(t *testing.T) {
	sess := NewSession()

	_, err := sess.WrapInline(42)
	if err == nil {
		t.Fatal("expected error for non-callable input")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseWrap, Kind: errors.KindInvalidCallable}) {
		t.Errorf("unexpected error: %v", err)
	}

	var nilFn tracebridge.Func
	if _, err := sess.WrapInline(nilFn); err == nil {
		t.Fatal("expected error for nil function")
	}
}
