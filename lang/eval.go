package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/brief/log"
)

// execBlock executes statements in order, stopping at the first error.
func (in *Interpreter) execBlock(ctx context.Context, stmts []Node) error {
	for _, stmt := range stmts {
		if err := in.exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// exec executes a single statement.
func (in *Interpreter) exec(ctx context.Context, stmt Node) error {
	switch s := stmt.(type) {
	case *Program:
		return in.execBlock(ctx, s.Statements)

	case *VariableDeclaration:
		v, err := in.eval(ctx, s.Value)
		if err != nil {
			return err
		}

		in.env.Declare(s.Name, v)

		return nil

	case *VariableAssignment:
		v, err := in.eval(ctx, s.Value)
		if err != nil {
			return err
		}

		return in.env.Assign(s.Name, v)

	case *FunctionDeclaration:
		in.env.Declare(s.Name, s)

		return nil

	case *FunctionCall:
		return in.call(ctx, s.Name)

	case *Print:
		v, err := in.eval(ctx, s.Value)
		if err != nil {
			return err
		}

		_, err = io.WriteString(in.out, v.String()+"\n")

		return err

	case *If:
		ok, err := in.condition(ctx, "if", s.Condition)
		if err != nil || !ok {
			return err
		}

		return in.execBlock(ctx, s.Body)

	case *While:
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			ok, err := in.condition(ctx, "while", s.Condition)
			if err != nil || !ok {
				return err
			}

			if err := in.execBlock(ctx, s.Body); err != nil {
				return err
			}
		}

	default:
		return ErrTypeMismatch.
			Wrapf("%s is not a statement", NodeName(stmt)).
			With(slog.String("node", NodeName(stmt)))
	}
}

// call runs the body of the function bound to name in the shared
// environment.
func (in *Interpreter) call(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node, ok := in.env.Lookup(name)
	if !ok {
		return ErrUndefinedFunction.
			Wrapf("%s", name).
			With(slog.String("name", name))
	}

	fn, ok := node.(*FunctionDeclaration)
	if !ok {
		return ErrNotCallable.
			Wrapf("%s is bound to %s", name, NodeName(node)).
			With(slog.String("name", name))
	}

	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return ErrMaxDepthExceeded.
			Wrapf("%s", name).
			With(
				slog.String("name", name),
				slog.Int("max_depth", in.maxDepth),
			)
	}

	in.depth++
	defer func() { in.depth-- }()

	// Calls are hot in recursive scripts; skip building attrs when unused.
	if in.logger.Enabled(ctx, log.LevelTrace) {
		in.logger.TraceContext(ctx, "call",
			slog.String("name", name),
			slog.Int("depth", in.depth),
		)
	}

	return in.execBlock(ctx, fn.Body)
}

// condition evaluates the condition of an if or while statement, which must
// be a Boolean.
func (in *Interpreter) condition(
	ctx context.Context,
	keyword string,
	cond Node,
) (bool, error) {
	v, err := in.eval(ctx, cond)
	if err != nil {
		return false, err
	}

	b, ok := v.(*Boolean)
	if !ok {
		return false, ErrTypeMismatch.
			Wrapf("%s condition must be Boolean, got %s", keyword, v.Describe()).
			With(
				slog.String("statement", keyword),
				slog.String("operand", v.Describe()),
			)
	}

	return b.Value, nil
}

// eval reduces an expression to a value.
func (in *Interpreter) eval(ctx context.Context, expr Node) (Value, error) {
	switch e := expr.(type) {
	case *Number:
		return e, nil

	case *String:
		return e, nil

	case *Boolean:
		return e, nil

	case *Identifier:
		return in.resolve(e.Name)

	case *Binary:
		// Both operands are always evaluated, including for && and ||.
		left, err := in.eval(ctx, e.Left)
		if err != nil {
			return nil, err
		}

		right, err := in.eval(ctx, e.Right)
		if err != nil {
			return nil, err
		}

		return binary(e.Operator, left, right)

	case *Unary:
		operand, err := in.eval(ctx, e.Operand)
		if err != nil {
			return nil, err
		}

		return unary(e.Operator, operand)

	default:
		return nil, ErrTypeMismatch.
			Wrapf("%s is not an expression", NodeName(expr)).
			With(slog.String("node", NodeName(expr)))
	}
}

// resolve returns the value bound to name.
func (in *Interpreter) resolve(name string) (Value, error) {
	node, ok := in.env.Lookup(name)
	if !ok {
		return nil, ErrUndefinedVariable.
			Wrapf("%s", name).
			With(slog.String("name", name))
	}

	v, ok := node.(Value)
	if !ok {
		return nil, ErrTypeMismatch.
			Wrapf("%s is bound to %s, not a value", name, NodeName(node)).
			With(slog.String("name", name))
	}

	return v, nil
}
