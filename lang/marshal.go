package lang

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap converts an AST into plain Go maps and slices suitable for generic
// encoders. Every node becomes a map with a "type" key naming its variant.
func ToMap(n Node) any {
	switch n := n.(type) {
	case *Program:
		return node("Program", "statements", toList(n.Statements))

	case *Number:
		return node("Number", "value", n.Value)

	case *String:
		return node("String", "value", n.Value)

	case *Boolean:
		return node("Boolean", "value", n.Value)

	case *Identifier:
		return node("Identifier", "name", n.Name)

	case *VariableDeclaration:
		return node("VariableDeclaration", "name", n.Name, "value", ToMap(n.Value))

	case *VariableAssignment:
		return node("VariableAssignment", "name", n.Name, "value", ToMap(n.Value))

	case *FunctionCall:
		return node("FunctionCall", "name", n.Name)

	case *FunctionDeclaration:
		return node("FunctionDeclaration", "name", n.Name, "body", toList(n.Body))

	case *If:
		return node("If", "condition", ToMap(n.Condition), "body", toList(n.Body))

	case *While:
		return node("While", "condition", ToMap(n.Condition), "body", toList(n.Body))

	case *Print:
		return node("Print", "value", ToMap(n.Value))

	case *Binary:
		return node("Binary",
			"operator", n.Operator.String(),
			"left", ToMap(n.Left),
			"right", ToMap(n.Right),
		)

	case *Unary:
		return node("Unary",
			"operator", n.Operator.String(),
			"operand", ToMap(n.Operand),
		)

	default:
		return nil
	}
}

// node builds a map from a type name and alternating key/value pairs.
func node(typ string, kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2+1)
	m["type"] = typ

	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}

	return m
}

func toList(nodes []Node) []any {
	list := make([]any, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, ToMap(n))
	}

	return list
}

// MarshalJSON encodes an AST as JSON. A positive indent produces
// indented output.
func MarshalJSON(n Node, indent int) ([]byte, error) {
	if indent > 0 {
		return json.MarshalIndent(ToMap(n), "", strings.Repeat(" ", indent))
	}

	return json.Marshal(ToMap(n))
}

// MarshalYAML encodes an AST as YAML. A positive indent sets the block
// indentation; otherwise flow style is used.
func MarshalYAML(ctx context.Context, n Node, indent int) ([]byte, error) {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	return yaml.MarshalContext(ctx, ToMap(n), opts...)
}
