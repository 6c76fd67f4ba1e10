package lang

import (
	"errors"
	"slices"
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "empty",
			input: "",
			want:  []Kind{KindEOF},
		},
		{
			name:  "whitespace only",
			input: " \t\r\n ",
			want:  []Kind{KindEOF},
		},
		{
			name:  "declaration",
			input: "declare x = 5",
			want:  []Kind{KindDeclare, KindIdentifier, KindAssign, KindNumber, KindEOF},
		},
		{
			name:  "short keywords",
			input: "v w i f p r",
			want: []Kind{
				KindDeclare, KindWhile, KindIf, KindFunc, KindPrint, KindReturn,
				KindEOF,
			},
		},
		{
			name:  "two character operators",
			input: "== != <= >= && ||",
			want: []Kind{
				KindEqual, KindNotEqual, KindLessEqual, KindGreaterEqual,
				KindAnd, KindOr, KindEOF,
			},
		},
		{
			name:  "single character operators",
			input: "= ! < > + - * / %",
			want: []Kind{
				KindAssign, KindBang, KindLess, KindGreater,
				KindPlus, KindMinus, KindStar, KindSlash, KindPercent, KindEOF,
			},
		},
		{
			name:  "single ampersand and bar",
			input: "a & b | c",
			want: []Kind{
				KindIdentifier, KindAnd, KindIdentifier, KindOr, KindIdentifier,
				KindEOF,
			},
		},
		{
			name:  "punctuation",
			input: "(){},",
			want: []Kind{
				KindLParen, KindRParen, KindLBrace, KindRBrace, KindComma, KindEOF,
			},
		},
		{
			name:  "call",
			input: "inc!",
			want:  []Kind{KindIdentifier, KindBang, KindEOF},
		},
		{
			name:  "digits end identifiers",
			input: "a1",
			want:  []Kind{KindIdentifier, KindNumber, KindEOF},
		},
		{
			name:  "unknown character",
			input: "x @ y",
			want:  []Kind{KindIdentifier, KindUnknown, KindIdentifier, KindEOF},
		},
		{
			name:  "no spaces needed",
			input: "x=x+1",
			want: []Kind{
				KindIdentifier, KindAssign, KindIdentifier, KindPlus, KindNumber,
				KindEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}

			if got := kinds(tokens); !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) kinds = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_Payloads(t *testing.T) {
	tokens, err := Tokenize(`declare _név = "hi there" 2147483647 true false`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	want := []Token{
		{Kind: KindDeclare},
		{Kind: KindIdentifier, Text: "_név"},
		{Kind: KindAssign},
		{Kind: KindString, Text: "hi there"},
		{Kind: KindNumber, Number: 2147483647},
		{Kind: KindBoolean, Bool: true},
		{Kind: KindBoolean, Bool: false},
		{Kind: KindEOF},
	}

	if !slices.Equal(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", `""`, ""},
		{"verbatim backslash", `"a\nb"`, `a\nb`},
		{"keywords inside", `"print declare"`, "print declare"},
		{"unterminated", `"open`, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}

			if len(tokens) != 2 || tokens[0].Kind != KindString {
				t.Fatalf("Tokenize(%q) = %v, want one string", tt.input, tokens)
			}

			if tokens[0].Text != tt.want {
				t.Errorf("text = %q, want %q", tokens[0].Text, tt.want)
			}
		})
	}
}

func TestTokenize_NumberRange(t *testing.T) {
	_, err := Tokenize("print 2147483648")
	if !errors.Is(err, ErrNumberRange) {
		t.Fatalf("expected ErrNumberRange, got %v", err)
	}

	if !IsSyntaxError(err) {
		t.Errorf("IsSyntaxError(%v) = false, want true", err)
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KindNumber, Number: 5}, "Number(5)"},
		{Token{Kind: KindString, Text: "x"}, `String("x")`},
		{Token{Kind: KindBoolean, Bool: true}, "Boolean(true)"},
		{Token{Kind: KindIdentifier, Text: "x"}, "Identifier(x)"},
		{Token{Kind: KindUnknown, Text: "@"}, "Unknown('@')"},
		{Token{Kind: KindEOF}, "EndOfFile"},
		{Token{Kind: KindNotEqual}, "'!='"},
		{Token{Kind: KindDeclare}, "'declare'"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKind_Classes(t *testing.T) {
	if !KindReturn.IsKeyword() || KindAssign.IsKeyword() {
		t.Error("IsKeyword misclassifies keyword boundaries")
	}

	if !KindAssign.IsOperator() || !KindPercent.IsOperator() || KindLParen.IsOperator() {
		t.Error("IsOperator misclassifies operator boundaries")
	}

	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}

func TestKind_StringSpelling(t *testing.T) {
	// Keyword, operator and punctuation names are their source spelling.
	for k := KindDeclare; k <= KindComma; k++ {
		tokens, err := Tokenize(k.String())
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", k.String(), err)
		}

		if len(tokens) != 2 || tokens[0].Kind != k {
			t.Errorf("Tokenize(%q) = %v, want [%s EndOfFile]", k.String(), tokens, k)
		}
	}

	for k, want := range map[Kind]string{
		KindEOF:        "EndOfFile",
		KindUnknown:    "Unknown",
		KindNumber:     "Number",
		KindIdentifier: "Identifier",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()

	for _, want := range []string{"declare", "v", "while", "print", "true", "false"} {
		if !slices.Contains(words, want) {
			t.Errorf("Keywords() missing %q", want)
		}
	}

	if !slices.IsSorted(words) {
		t.Errorf("Keywords() not sorted: %v", words)
	}
}
