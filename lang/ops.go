package lang

import (
	"log/slog"
	"math"
)

// binary applies an infix operator to two evaluated operands.
func binary(op Kind, left, right Value) (Value, error) {
	switch op {
	case KindPlus:
		if l, r, ok := strings2(left, right); ok {
			return &String{Value: l + r}, nil
		}

		return arithmetic(op, left, right, func(l, r int64) int64 { return l + r })

	case KindMinus:
		return arithmetic(op, left, right, func(l, r int64) int64 { return l - r })

	case KindStar:
		return arithmetic(op, left, right, func(l, r int64) int64 { return l * r })

	case KindSlash, KindPercent:
		l, r, ok := numbers2(left, right)
		if !ok {
			return nil, mismatch(op, left, right)
		}

		if r == 0 {
			return nil, ErrDivisionByZero.
				Wrapf("%s %s %s", left.Describe(), op, right.Describe()).
				With(slog.String("operator", op.String()))
		}

		if op == KindPercent {
			return &Number{Value: int32(l % r)}, nil
		}

		return checked(op, left, right, l/r)

	case KindEqual, KindAssign, KindNotEqual:
		eq, ok := sameVariant(left, right)
		if !ok {
			return nil, mismatch(op, left, right)
		}

		return &Boolean{Value: eq == (op != KindNotEqual)}, nil

	case KindLess, KindGreater, KindLessEqual, KindGreaterEqual:
		l, r, ok := numbers2(left, right)
		if !ok {
			return nil, mismatch(op, left, right)
		}

		var result bool

		switch op {
		case KindLess:
			result = l < r
		case KindGreater:
			result = l > r
		case KindLessEqual:
			result = l <= r
		default:
			result = l >= r
		}

		return &Boolean{Value: result}, nil

	case KindAnd, KindOr:
		l, lok := left.(*Boolean)
		r, rok := right.(*Boolean)

		if !lok || !rok {
			return nil, mismatch(op, left, right)
		}

		if op == KindAnd {
			return &Boolean{Value: l.Value && r.Value}, nil
		}

		return &Boolean{Value: l.Value || r.Value}, nil

	default:
		return nil, mismatch(op, left, right)
	}
}

// unary applies a prefix operator to an evaluated operand.
func unary(op Kind, operand Value) (Value, error) {
	switch op {
	case KindMinus:
		n, ok := operand.(*Number)
		if !ok {
			break
		}

		if n.Value == math.MinInt32 {
			return nil, ErrArithmeticOverflow.
				Wrapf("-%s", operand.Describe()).
				With(slog.String("operator", op.String()))
		}

		return &Number{Value: -n.Value}, nil

	case KindBang:
		b, ok := operand.(*Boolean)
		if !ok {
			break
		}

		return &Boolean{Value: !b.Value}, nil
	}

	return nil, ErrTypeMismatch.
		Wrapf("%s%s", op, operand.Describe()).
		With(
			slog.String("operator", op.String()),
			slog.String("operand", operand.Describe()),
		)
}

// arithmetic applies fn to two Number operands in 64-bit precision and
// rejects results outside the 32-bit range.
func arithmetic(
	op Kind,
	left, right Value,
	fn func(l, r int64) int64,
) (Value, error) {
	l, r, ok := numbers2(left, right)
	if !ok {
		return nil, mismatch(op, left, right)
	}

	return checked(op, left, right, fn(l, r))
}

func checked(op Kind, left, right Value, result int64) (Value, error) {
	if result < math.MinInt32 || result > math.MaxInt32 {
		return nil, ErrArithmeticOverflow.
			Wrapf("%s %s %s", left.Describe(), op, right.Describe()).
			With(slog.String("operator", op.String()))
	}

	return &Number{Value: int32(result)}, nil
}

// sameVariant compares two values of the same variant. Identifier operands
// compare by name.
func sameVariant(left, right Node) (equal, ok bool) {
	if l, is := left.(*Boolean); is {
		if r, is := right.(*Boolean); is {
			return l.Value == r.Value, true
		}

		return false, false
	}

	return Equal(left, right)
}

func numbers2(left, right Value) (l, r int64, ok bool) {
	ln, lok := left.(*Number)
	rn, rok := right.(*Number)

	if !lok || !rok {
		return 0, 0, false
	}

	return int64(ln.Value), int64(rn.Value), true
}

func strings2(left, right Value) (l, r string, ok bool) {
	ls, lok := left.(*String)
	rs, rok := right.(*String)

	if !lok || !rok {
		return "", "", false
	}

	return ls.Value, rs.Value, true
}

func mismatch(op Kind, left, right Value) error {
	return ErrTypeMismatch.
		Wrapf("%s %s %s", left.Describe(), op, right.Describe()).
		With(
			slog.String("operator", op.String()),
			slog.String("left", left.Describe()),
			slog.String("right", right.Describe()),
		)
}
