package json

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/peg/parser"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"number array", "[1, 2, 3]", []any{1.0, 2.0, 3.0}},
		{"empty array", "[]", []any{}},
		{"nested array", "[[1], []]", []any{[]any{1.0}, []any{}}},
		{"integer", "42", 42.0},
		{"negative", "-7", -7.0},
		{"fraction", "3.25", 3.25},
		{"exponent", "-3.5e2", -350.0},
		{"string", `"hello"`, "hello"},
		{"escapes", `"a\nb\t\"c\""`, "a\nb\t\"c\""},
		{"unicode escape", `"\u0041\u00e9"`, "Aé"},
		{"true", "true", true},
		{"false", "false", false},
		{"empty object", "{}", map[string]any{}},
		{"object", `{"a": 1, "b": [true, null]}`, map[string]any{"a": 1.0, "b": []any{true, nil}}},
		{"nested object", `{"outer": {"inner": "x"}}`, map[string]any{"outer": map[string]any{"inner": "x"}}},
		{"surrounding whitespace", "  [1]\n", []any{1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := Decode("null")
	if err != nil {
		t.Fatalf("Decode(null) failed: %v", err)
	}
	if got != nil {
		t.Errorf("Decode(null) = %v, want nil", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []string{
		"[1 2]",
		"[1, 2",
		"{",
		`{"a" 1}`,
		`{"a": }`,
		`"unterminated`,
		"tru",
		"",
		"1 2",
		"[1,]",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Decode(input); err == nil {
				t.Errorf("Decode(%q) should fail", input)
			}
		})
	}
}

func TestValueMatchesPrefix(t *testing.T) {
	r := parser.Parse(Value(), "[1] trailing")
	if r.IsFailure() {
		t.Fatalf("unexpected failure: %s", r.Message())
	}
	if r.Position() != 4 {
		t.Errorf("Position() = %d, want 4", r.Position())
	}
}

func TestValueIsShared(t *testing.T) {
	if Value() != Value() {
		t.Error("the grammar should be built once")
	}
}
