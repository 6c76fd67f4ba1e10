package lang

import (
	"log/slog"
)

// Env is the single flat namespace shared by an entire execution.
//
// Variables and functions live in the same namespace: declaring either kind
// under an existing name replaces the previous binding. Env is not safe for
// concurrent use.
type Env struct {
	bindings map[string]Node
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]Node)}
}

// Declare binds name to node, replacing any previous binding. The node is a
// [Value] for variables or a [*FunctionDeclaration] for functions.
func (e *Env) Declare(name string, node Node) {
	e.bindings[name] = node
}

// Assign overwrites the binding of an already declared name.
func (e *Env) Assign(name string, v Value) error {
	if _, ok := e.bindings[name]; !ok {
		return ErrUndefinedVariable.
			Wrapf("%s", name).
			With(slog.String("name", name))
	}

	e.bindings[name] = v

	return nil
}

// Lookup returns the node bound to name.
func (e *Env) Lookup(name string) (Node, bool) {
	node, ok := e.bindings[name]

	return node, ok
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	return sortedKeys(e.bindings)
}

// Len returns the number of bindings.
func (e *Env) Len() int { return len(e.bindings) }
