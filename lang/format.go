package lang

import (
	"fmt"
	"io"
	"strings"
)

// Format writes prog as canonical source using the long keyword spellings.
//
// Every operand that is itself an operator expression is parenthesized, so
// the output parses back to the same tree regardless of the flat operator
// tier. String values containing a double quote cannot be represented.
func Format(w io.Writer, prog *Program, indent int) error {
	f := &formatter{w: w, indent: indent}

	for _, stmt := range prog.Statements {
		f.statement(stmt, 0)
	}

	return f.err
}

// FormatString returns the canonical source of prog.
func FormatString(prog *Program, indent int) string {
	var sb strings.Builder

	_ = Format(&sb, prog, indent)

	return sb.String()
}

// formatter accumulates the first write error.
type formatter struct {
	w      io.Writer
	indent int
	err    error
}

func (f *formatter) printf(format string, args ...any) {
	if f.err != nil {
		return
	}

	_, f.err = fmt.Fprintf(f.w, format, args...)
}

func (f *formatter) line(depth int, format string, args ...any) {
	f.printf("%s"+format+"\n",
		append([]any{strings.Repeat(" ", depth*f.indent)}, args...)...)
}

func (f *formatter) statement(stmt Node, depth int) {
	switch s := stmt.(type) {
	case *VariableDeclaration:
		f.line(depth, "declare %s = %s", s.Name, expression(s.Value))

	case *VariableAssignment:
		f.line(depth, "%s = %s", s.Name, expression(s.Value))

	case *FunctionCall:
		f.line(depth, "%s!", s.Name)

	case *FunctionDeclaration:
		f.block(depth, "func "+s.Name, s.Body)

	case *If:
		f.block(depth, "if "+expression(s.Condition), s.Body)

	case *While:
		f.block(depth, "while "+expression(s.Condition), s.Body)

	case *Print:
		f.line(depth, "print %s", expression(s.Value))

	case *Program:
		for _, inner := range s.Statements {
			f.statement(inner, depth)
		}

	default:
		f.line(depth, "%s", expression(stmt))
	}
}

func (f *formatter) block(depth int, head string, body []Node) {
	if len(body) == 0 {
		f.line(depth, "%s {}", head)

		return
	}

	f.line(depth, "%s {", head)

	for _, stmt := range body {
		f.statement(stmt, depth+1)
	}

	f.line(depth, "}")
}

// expression renders an expression node.
func expression(n Node) string {
	switch e := n.(type) {
	case *Number, *Boolean:
		return e.(Value).String()

	case *String:
		return `"` + e.Value + `"`

	case *Identifier:
		return e.Name

	case *Binary:
		return operand(e.Left) + " " + e.Operator.String() + " " + operand(e.Right)

	case *Unary:
		return e.Operator.String() + operand(e.Operand)

	default:
		return "<" + NodeName(n) + ">"
	}
}

// operand renders a nested expression, parenthesizing operator expressions.
func operand(n Node) string {
	switch n.(type) {
	case *Binary, *Unary:
		return "(" + expression(n) + ")"
	default:
		return expression(n)
	}
}
