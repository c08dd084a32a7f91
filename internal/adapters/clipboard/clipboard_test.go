package clipboard_test

import (
	"errors"
	"testing"

	"invoice-builder/internal/adapters/clipboard"
)

type fakeStrategy struct {
	name   string
	err    error
	copied []string
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func TestService_FirstStrategyWins(t *testing.T) {
	first := &fakeStrategy{name: "first"}
	second := &fakeStrategy{name: "second"}
	svc := clipboard.NewServiceWith(nil, first, second)

	if !svc.Copy("hello") {
		t.Fatal("copy should be automatic when the first strategy succeeds")
	}
	if len(first.copied) != 1 || first.copied[0] != "hello" {
		t.Error("first strategy should receive the text")
	}
	if len(second.copied) != 0 {
		t.Error("later strategies must not run after a success")
	}
}

func TestService_FallsThroughInOrder(t *testing.T) {
	first := &fakeStrategy{name: "first", err: errors.New("denied")}
	second := &fakeStrategy{name: "second"}
	svc := clipboard.NewServiceWith(nil, first, second)

	if !svc.Copy("hello") {
		t.Fatal("copy should succeed via the second strategy")
	}
	if len(second.copied) != 1 {
		t.Error("second strategy should receive the text after the first fails")
	}
}

func TestService_ManualFallbackAlwaysOffersThePath(t *testing.T) {
	first := &fakeStrategy{name: "first", err: errors.New("denied")}
	second := &fakeStrategy{name: "second", err: errors.New("also denied")}

	var prompted string
	svc := clipboard.NewServiceWith(func(text string) { prompted = text }, first, second)

	if svc.Copy("tracking-123") {
		t.Error("copy should report non-automatic when every strategy fails")
	}
	if prompted != "tracking-123" {
		t.Errorf("fallback prompt got %q, want the original text", prompted)
	}
}

func TestService_NoStrategies(t *testing.T) {
	var prompted bool
	svc := clipboard.NewServiceWith(func(string) { prompted = true })
	if svc.Copy("x") {
		t.Error("copy with no strategies cannot be automatic")
	}
	if !prompted {
		t.Error("fallback should still run")
	}
}
