package lang

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	derived := ErrTypeMismatch.
		Wrapf("Number(1) + String(%q)", "a").
		With(slog.String("operator", "+"))

	if !errors.Is(derived, ErrTypeMismatch) {
		t.Error("derived error does not match its sentinel")
	}

	if errors.Is(derived, ErrSyntax) {
		t.Error("derived error matches an unrelated sentinel")
	}

	want := `type mismatch: Number(1) + String("a")`
	if derived.Error() != want {
		t.Errorf("Error() = %q, want %q", derived.Error(), want)
	}
}

func TestError_WrapCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrReadInput.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable")
	}

	if !errors.Is(err, ErrReadInput) {
		t.Error("sentinel not matched")
	}
}

func TestError_WithIsImmutable(t *testing.T) {
	base := ErrSyntax.With(slog.String("a", "1"))
	one := base.With(slog.String("b", "2"))
	two := base.With(slog.String("c", "3"))

	if len(base.Attrs()) != 1 || len(one.Attrs()) != 2 || len(two.Attrs()) != 2 {
		t.Fatalf("attr counts = %d %d %d", len(base.Attrs()), len(one.Attrs()), len(two.Attrs()))
	}

	if one.Attrs()[1].Key != "b" || two.Attrs()[1].Key != "c" {
		t.Error("With shared backing storage between derived errors")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrDivisionByZero.Wrapf("1 / 0").With(slog.String("operator", "/"))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue kind = %v, want group", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	if got["error"] != "division by zero" || got["cause"] != "1 / 0" || got["operator"] != "/" {
		t.Errorf("LogValue attrs = %v", got)
	}
}

func TestWrapError(t *testing.T) {
	plain := errors.New("plain")

	wrapped := WrapError(plain)
	if wrapped.Error() != "plain" {
		t.Errorf("Error() = %q", wrapped.Error())
	}

	if IsSyntaxError(wrapped) || IsRuntimeError(wrapped) {
		t.Error("plain error classified")
	}

	same := WrapError(ErrSyntax)
	if same != ErrSyntax {
		t.Error("WrapError should return an existing *Error unchanged")
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"int", 42, NewNumber(42)},
		{"int64 min", int64(-2147483648), NewNumber(-2147483648)},
		{"uint8", uint8(7), NewNumber(7)},
		{"integral float", 3.0, NewNumber(3)},
		{"string", "s", NewString("s")},
		{"bool", true, NewBoolean(true)},
		{"value", NewString("v"), NewString("v")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("ValueOf(%v) error: %v", tt.in, err)
			}

			if got.Describe() != tt.want.Describe() {
				t.Errorf("ValueOf(%v) = %s, want %s", tt.in, got.Describe(), tt.want.Describe())
			}
		})
	}

	for _, bad := range []any{nil, 2147483648, uint64(1 << 40), 1.5, []int{1}, map[string]any{}} {
		if _, err := ValueOf(bad); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ValueOf(%v) error = %v, want ErrInvalidValue", bad, err)
		}
	}
}
