package lang

import (
	"log/slog"
	"math"
	"reflect"
)

// NewNumber returns a Number value.
func NewNumber(n int32) *Number { return &Number{Value: n} }

// NewString returns a String value.
func NewString(s string) *String { return &String{Value: s} }

// NewBoolean returns a Boolean value.
func NewBoolean(b bool) *Boolean { return &Boolean{Value: b} }

// ValueOf converts a host Go value into a runtime [Value].
//
// Integers and integral floats within the 32-bit signed range become
// Numbers, strings become Strings and bools become Booleans. A Value is
// returned unchanged. Anything else yields [ErrInvalidValue].
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return NewString(v), nil
	case bool:
		return NewBoolean(v), nil
	}

	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return NewNumber(int32(n)), nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n <= math.MaxInt32 {
			return NewNumber(int32(n)), nil
		}

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return NewNumber(int32(f)), nil
		}
	}

	return nil, ErrInvalidValue.
		Wrapf("cannot convert %s", hostTypeName(x)).
		With(slog.String("type", hostTypeName(x)))
}
