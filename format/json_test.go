package format

import (
	"strings"
	"testing"

	"github.com/dhamidi/peg/parser"
)

func TestJSONEncoderSuccess(t *testing.T) {
	r := parser.Parse(parser.Flatten(parser.Plus(parser.Digit())), "42x")

	var b strings.Builder
	if err := NewJSONEncoder(&b).Encode(r); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `{
  "status": "success",
  "position": 2,
  "value": "42"
}`
	if b.String() != want {
		t.Errorf("output = %s, want %s", b.String(), want)
	}
}

func TestJSONEncoderFailure(t *testing.T) {
	r := parser.Parse(parser.Char('a'), "b")

	var b strings.Builder
	if err := NewJSONEncoder(&b).Encode(r); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `{
  "status": "failure",
  "position": 0,
  "message": "'a' expected"
}`
	if b.String() != want {
		t.Errorf("output = %s, want %s", b.String(), want)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Run("runes become strings", func(t *testing.T) {
		got := normalizeValue([]any{'a', 'b'})
		values := got.([]any)
		if values[0] != "a" || values[1] != "b" {
			t.Errorf("got %v, want [a b]", values)
		}
	})

	t.Run("tokens become records", func(t *testing.T) {
		r := parser.Parse(parser.NewToken(parser.Char('x')), "x")
		got := normalizeValue(r.Value()).(map[string]any)
		if got["text"] != "x" || got["start"] != 0 || got["stop"] != 1 {
			t.Errorf("got %v", got)
		}
		if got["value"] != "x" {
			t.Errorf("value = %v, want x", got["value"])
		}
	})

	t.Run("maps recurse", func(t *testing.T) {
		got := normalizeValue(map[string]any{"k": 'v'}).(map[string]any)
		if got["k"] != "v" {
			t.Errorf("got %v", got)
		}
	})
}
