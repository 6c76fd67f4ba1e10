package lang

import (
	"context"
	"io"
	"reflect"
	"testing"
	"time"
	"unicode/utf8"
)

// FuzzTokenize checks that the lexer never panics and always terminates the
// token sequence with EndOfFile.
func FuzzTokenize(f *testing.F) {
	f.Add("declare x = 5")
	f.Add(`print "unterminated`)
	f.Add("x=x+1")
	f.Add("99999999999999999999")
	f.Add("&| !== <=>")
	f.Add("func g { g! }")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Tokenize panicked on input %q: %v", input, r)
			}
		}()

		tokens, err := Tokenize(input)
		if err != nil {
			if !IsSyntaxError(err) {
				t.Errorf("unclassified error for %q: %v", input, err)
			}

			return
		}

		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != KindEOF {
			t.Errorf("token sequence for %q does not end with EOF", input)
		}
	})
}

// FuzzFormat checks that every parsable program formats to source that
// parses back to the same tree.
func FuzzFormat(f *testing.F) {
	f.Add("print 1 + 2 * 3")
	f.Add("print -3 + 2")
	f.Add("declare x = 1 while x < 3 { x = x + 1 }")
	f.Add("print !a = b || c")
	f.Add("v a = 1 i a = 1 { p a }")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		want, err := ParseString(input)
		if err != nil {
			return
		}

		if containsQuote(want) {
			t.Skip("string literal with quote")
		}

		text := FormatString(want, 2)

		got, err := ParseString(text)
		if err != nil {
			t.Fatalf("formatted source %q does not parse: %v", text, err)
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip changed tree for %q\nformatted: %q", input, text)
		}
	})
}

// FuzzRun checks that execution never panics. Loops are bounded by a
// timeout.
func FuzzRun(f *testing.F) {
	f.Add("declare n = 0 while n < 10 { n = n + 1 } print n")
	f.Add("func g { g! } g!")
	f.Add("print 2147483647 * 2")
	f.Add(`print "a" + 1`)

	f.Fuzz(func(t *testing.T, input string) {
		ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Run panicked on input %q: %v", input, r)
			}
		}()

		_ = Run(ctx, input, WithOutput(io.Discard), WithMaxDepth(100))
	})
}

func containsQuote(n Node) bool {
	switch n := n.(type) {
	case *Program:
		return anyQuote(n.Statements)
	case *String:
		for _, r := range n.Value {
			if r == '"' {
				return true
			}
		}
	case *VariableDeclaration:
		return containsQuote(n.Value)
	case *VariableAssignment:
		return containsQuote(n.Value)
	case *FunctionDeclaration:
		return anyQuote(n.Body)
	case *If:
		return containsQuote(n.Condition) || anyQuote(n.Body)
	case *While:
		return containsQuote(n.Condition) || anyQuote(n.Body)
	case *Print:
		return containsQuote(n.Value)
	case *Binary:
		return containsQuote(n.Left) || containsQuote(n.Right)
	case *Unary:
		return containsQuote(n.Operand)
	}

	return false
}

func anyQuote(nodes []Node) bool {
	for _, n := range nodes {
		if containsQuote(n) {
			return true
		}
	}

	return false
}
