package lang

import (
	"cmp"
	"strconv"
)

// Node is a node of the abstract syntax tree.
//
// The set of implementations is closed; every variant is declared in this
// file.
type Node interface {
	node()
}

// Value is a runtime value. Only [*Number], [*String] and [*Boolean]
// implement it.
type Value interface {
	Node
	value()

	// Describe renders the value with its variant name, e.g. Number(5).
	Describe() string

	// String renders the value as print writes it.
	String() string
}

type (
	// Program is the root of a parsed script.
	Program struct {
		Statements []Node
	}

	// Number is a 32-bit signed integer literal or value.
	Number struct {
		Value int32
	}

	// String is a text literal or value.
	String struct {
		Value string
	}

	// Boolean is a true/false literal or value.
	Boolean struct {
		Value bool
	}

	// Identifier is a reference to a named binding.
	Identifier struct {
		Name string
	}

	// VariableDeclaration introduces (or replaces) a binding.
	VariableDeclaration struct {
		Name  string
		Value Node
	}

	// VariableAssignment overwrites an existing binding.
	VariableAssignment struct {
		Name  string
		Value Node
	}

	// FunctionCall runs the body of a declared function.
	FunctionCall struct {
		Name string
	}

	// FunctionDeclaration binds a name to a statement list.
	FunctionDeclaration struct {
		Name string
		Body []Node
	}

	// If runs Body once when Condition is true.
	If struct {
		Condition Node
		Body      []Node
	}

	// While runs Body for as long as Condition is true.
	While struct {
		Condition Node
		Body      []Node
	}

	// Print writes the textual form of Value.
	Print struct {
		Value Node
	}

	// Binary applies an infix operator.
	Binary struct {
		Left     Node
		Operator Kind
		Right    Node
	}

	// Unary applies a prefix operator.
	Unary struct {
		Operator Kind
		Operand  Node
	}
)

func (*Program) node()             {}
func (*Number) node()              {}
func (*String) node()              {}
func (*Boolean) node()             {}
func (*Identifier) node()          {}
func (*VariableDeclaration) node() {}
func (*VariableAssignment) node()  {}
func (*FunctionCall) node()        {}
func (*FunctionDeclaration) node() {}
func (*If) node()                  {}
func (*While) node()               {}
func (*Print) node()               {}
func (*Binary) node()              {}
func (*Unary) node()               {}

func (*Number) value()  {}
func (*String) value()  {}
func (*Boolean) value() {}

func (n *Number) String() string  { return strconv.FormatInt(int64(n.Value), 10) }
func (s *String) String() string  { return s.Value }
func (b *Boolean) String() string { return strconv.FormatBool(b.Value) }

func (n *Number) Describe() string  { return "Number(" + n.String() + ")" }
func (s *String) Describe() string  { return "String(" + strconv.Quote(s.Value) + ")" }
func (b *Boolean) Describe() string { return "Boolean(" + b.String() + ")" }

// NodeName returns the variant name of n.
func NodeName(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *Number:
		return "Number"
	case *String:
		return "String"
	case *Boolean:
		return "Boolean"
	case *Identifier:
		return "Identifier"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *VariableAssignment:
		return "VariableAssignment"
	case *FunctionCall:
		return "FunctionCall"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *If:
		return "If"
	case *While:
		return "While"
	case *Print:
		return "Print"
	case *Binary:
		return "Binary"
	case *Unary:
		return "Unary"
	case nil:
		return "nil"
	default:
		return "Unknown"
	}
}

// Equal compares two leaf nodes. Only Number, String and Identifier pairs of
// the same variant are comparable; for any other pair ok is false.
func Equal(a, b Node) (equal, ok bool) {
	switch a := a.(type) {
	case *Number:
		if b, is := b.(*Number); is {
			return a.Value == b.Value, true
		}
	case *String:
		if b, is := b.(*String); is {
			return a.Value == b.Value, true
		}
	case *Identifier:
		if b, is := b.(*Identifier); is {
			return a.Name == b.Name, true
		}
	}

	return false, false
}

// Compare orders two Number or two String leaves, returning -1, 0 or +1.
// Any other pair is unordered and ok is false.
func Compare(a, b Node) (order int, ok bool) {
	switch a := a.(type) {
	case *Number:
		if b, is := b.(*Number); is {
			return cmp.Compare(a.Value, b.Value), true
		}
	case *String:
		if b, is := b.(*String); is {
			return cmp.Compare(a.Value, b.Value), true
		}
	}

	return 0, false
}
