package lang

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "long keywords",
			input: "v x = 1 p x",
			want:  "declare x = 1\nprint x\n",
		},
		{
			name:  "flat tier gets parentheses",
			input: "print 1 + 2 * 3",
			want:  "print (1 + 2) * 3\n",
		},
		{
			name:  "prefix operator over expression",
			input: "print -3 + 2",
			want:  "print -(3 + 2)\n",
		},
		{
			name:  "nested blocks",
			input: `func g { if x > 1 { print "big" } } g!`,
			want:  "func g {\n  if x > 1 {\n    print \"big\"\n  }\n}\ng!\n",
		},
		{
			name:  "empty block",
			input: "while false {}",
			want:  "while false {}\n",
		},
		{
			name:  "assignment",
			input: "x = !true",
			want:  "x = !true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatString(mustParse(t, tt.input), 2); got != tt.want {
				t.Errorf("FormatString(%q) =\n%s\nwant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"print 1 + 2 * 3",
		"print -3 + 2",
		"print !a = b && c || d",
		"print a = 1 + 2",
		"print 1 + (2 * 3)",
		`declare s = "x" + "y" func g { s = s + "!" print s } g! g!`,
		"declare n = 0 while n < 10 { if n % 2 == 0 { print n } n = n + 1 }",
		"print -(-1)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want := mustParse(t, input)
			text := FormatString(want, 4)

			got, err := ParseString(text)
			if err != nil {
				t.Fatalf("reparse of %q failed: %v", text, err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip changed tree\nsource: %s\nformatted: %s", input, text)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	prog := mustParse(t, "print 1")

	got, err := MarshalJSON(prog, 0)
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}

	want := `{"statements":[{"type":"Print","value":{"type":"Number","value":1}}],"type":"Program"}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}

	indented, err := MarshalJSON(prog, 2)
	if err != nil {
		t.Fatalf("MarshalJSON indent error: %v", err)
	}

	if !strings.Contains(string(indented), "\n  \"statements\"") {
		t.Errorf("indented output not indented:\n%s", indented)
	}
}

func TestMarshalYAML(t *testing.T) {
	prog := mustParse(t, `declare x = 1 + 2 print "hi"`)

	for _, indent := range []int{0, 2} {
		data, err := MarshalYAML(t.Context(), prog, indent)
		if err != nil {
			t.Fatalf("MarshalYAML(%d) error: %v", indent, err)
		}

		var decoded map[string]any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("yaml.Unmarshal(%d) error: %v\n%s", indent, err, data)
		}

		if decoded["type"] != "Program" {
			t.Errorf("indent %d: type = %v, want Program", indent, decoded["type"])
		}

		stmts, ok := decoded["statements"].([]any)
		if !ok || len(stmts) != 2 {
			t.Fatalf("indent %d: statements = %v", indent, decoded["statements"])
		}
	}
}

func TestToMap(t *testing.T) {
	got := ToMap(&Unary{Operator: KindBang, Operand: &Boolean{Value: true}})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}

	want := `{"operand":{"type":"Boolean","value":true},"operator":"!","type":"Unary"}`
	if string(data) != want {
		t.Errorf("ToMap = %s, want %s", data, want)
	}

	if ToMap(nil) != nil {
		t.Error("ToMap(nil) should be nil")
	}
}
