package lang

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func num(n int32) *Number { return &Number{Value: n} }
func ident(s string) *Identifier { return &Identifier{Name: s} }

func bin(l Node, op Kind, r Node) *Binary {
	return &Binary{Left: l, Operator: op, Right: r}
}

func mustParse(t *testing.T, source string) *Program {
	t.Helper()

	prog, err := ParseString(source)
	if err != nil {
		t.Fatalf("ParseString(%q) error: %v", source, err)
	}

	return prog
}

func TestParse_Expressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Node
	}{
		{
			name:  "flat tier is left to right",
			input: "print 1 + 2 * 3",
			want:  bin(bin(num(1), KindPlus, num(2)), KindStar, num(3)),
		},
		{
			name:  "prefix minus takes whole expression",
			input: "print -3 + 2",
			want: &Unary{
				Operator: KindMinus,
				Operand:  bin(num(3), KindPlus, num(2)),
			},
		},
		{
			name:  "prefix bang takes whole expression",
			input: "print !a = b",
			want: &Unary{
				Operator: KindBang,
				Operand:  bin(ident("a"), KindAssign, ident("b")),
			},
		},
		{
			name:  "parentheses group",
			input: "print 1 + (2 * 3)",
			want:  bin(num(1), KindPlus, bin(num(2), KindStar, num(3))),
		},
		{
			name:  "single equals binds tighter than plus",
			input: "print a = 1 + 2",
			want:  bin(bin(ident("a"), KindAssign, num(1)), KindPlus, num(2)),
		},
		{
			name:  "double equals is in the flat tier",
			input: "print a == 1 + 2",
			want:  bin(bin(ident("a"), KindEqual, num(1)), KindPlus, num(2)),
		},
		{
			name:  "logical operators loosest",
			input: "print a < 1 && b || c",
			want: bin(
				bin(bin(ident("a"), KindLess, num(1)), KindAnd, ident("b")),
				KindOr,
				ident("c"),
			),
		},
		{
			name:  "literals",
			input: `print "s"`,
			want:  &String{Value: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.input)

			if len(prog.Statements) != 1 {
				t.Fatalf("got %d statements, want 1", len(prog.Statements))
			}

			p, ok := prog.Statements[0].(*Print)
			if !ok {
				t.Fatalf("statement is %s, want Print", NodeName(prog.Statements[0]))
			}

			if !reflect.DeepEqual(p.Value, tt.want) {
				t.Errorf("expression = %#v, want %#v", ToMap(p.Value), ToMap(tt.want))
			}
		})
	}
}

func TestParse_Statements(t *testing.T) {
	source := `
declare x = 5
x = x + 1
func inc { x = x + 1 }
inc!
if x > 1 { print x }
while false {}
`

	want := &Program{Statements: []Node{
		&VariableDeclaration{Name: "x", Value: num(5)},
		&VariableAssignment{Name: "x", Value: bin(ident("x"), KindPlus, num(1))},
		&FunctionDeclaration{Name: "inc", Body: []Node{
			&VariableAssignment{Name: "x", Value: bin(ident("x"), KindPlus, num(1))},
		}},
		&FunctionCall{Name: "inc"},
		&If{
			Condition: bin(ident("x"), KindGreater, num(1)),
			Body:      []Node{&Print{Value: ident("x")}},
		},
		&While{Condition: &Boolean{Value: false}, Body: []Node{}},
	}}

	got := mustParse(t, source)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("program mismatch\n got: %v\nwant: %v", ToMap(got), ToMap(want))
	}
}

func TestParse_ShortKeywords(t *testing.T) {
	long := mustParse(t, `declare n = 1 func g { print n } while n < 2 { n = n + 1 } if true { g! }`)
	short := mustParse(t, `v n = 1 f g { p n } w n < 2 { n = n + 1 } i true { g! }`)

	if !reflect.DeepEqual(long, short) {
		t.Errorf("short keywords parse differently\nlong:  %v\nshort: %v",
			ToMap(long), ToMap(short))
	}
}

func TestParse_Empty(t *testing.T) {
	prog := mustParse(t, "  \n ")

	if len(prog.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Statements))
	}
}

func TestParse_MissingEOF(t *testing.T) {
	prog, err := Parse([]Token{{Kind: KindPrint}, {Kind: KindNumber, Number: 1}})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(prog.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(prog.Statements))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"declare without name", "declare = 1"},
		{"declare without equals", "declare x 1"},
		{"print without value", "print"},
		{"bare identifier", "x"},
		{"identifier with other operator", "x + 1"},
		{"if without block", "if true print 1"},
		{"unclosed block", "while true {"},
		{"unclosed paren", "print (1 + 2"},
		{"stray brace", "}"},
		{"unknown character", "print @"},
		{"reserved return", "return"},
		{"func without name", "func { }"},
		{"expression statement", "1 + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v does not match ErrSyntax", err)
			}

			if !IsSyntaxError(err) || IsRuntimeError(err) {
				t.Errorf("error %v misclassified", err)
			}
		})
	}
}

func TestParse_NestingLimit(t *testing.T) {
	blocks := func(n int) string {
		return strings.Repeat("if true { ", n) + strings.Repeat("} ", n)
	}

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"prefix at limit", "print " + strings.Repeat("-", MaxNesting-1) + "1", true},
		{"prefix past limit", "print " + strings.Repeat("-", MaxNesting) + "1", false},
		{"long prefix run", "print " + strings.Repeat("!", 4*MaxNesting) + "true", false},
		{"parentheses past limit", "print " + strings.Repeat("(", MaxNesting) + "1" + strings.Repeat(")", MaxNesting), false},
		{"shallow blocks", blocks(100), true},
		{"blocks past limit", blocks(MaxNesting + 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseString() error: %v", err)
				}

				return
			}

			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("error = %v, want ErrSyntax", err)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}

			for _, a := range e.Attrs() {
				if a.Key == "depth" && a.Value.Int64() == MaxNesting+1 {
					return
				}
			}

			t.Errorf("missing depth attribute in %v", e.Attrs())
		})
	}
}

func TestParse_ErrorAttributes(t *testing.T) {
	_, err := ParseString("print @")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *Error", err)
	}

	attrs := map[string]string{}
	for _, a := range e.Attrs() {
		attrs[a.Key] = a.Value.String()
	}

	if attrs["found"] != "Unknown('@')" {
		t.Errorf("found = %q, want %q", attrs["found"], "Unknown('@')")
	}

	if attrs["expected"] == "" {
		t.Error("missing expected attribute")
	}
}
