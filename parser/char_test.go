package parser

import "testing"

func TestCharBuilders(t *testing.T) {
	tests := []struct {
		name    string
		parser  *CharParser
		accepts string
		rejects string
	}{
		{"char", Char('a'), "a", "b"},
		{"range", Range('b', 'd'), "bcd", "ae"},
		{"digit", Digit(), "0359", "a _"},
		{"letter", Letter(), "azAZ", "0_ "},
		{"lowercase", Lowercase(), "az", "AZ0"},
		{"uppercase", Uppercase(), "AZ", "az0"},
		{"word", Word(), "aZ0_", " -."},
		{"whitespace", Whitespace(), " \t\n\r\f", "a0_"},
		{"any", Any(), "a0_ é", ""},
		{"any of", AnyOf("xyz"), "xyz", "abc"},
		{"none of", NoneOf("xyz"), "abc", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.accepts {
				r := Parse(tt.parser, string(c))
				if r.IsFailure() {
					t.Errorf("%s should accept %q: %s", tt.name, c, r.Message())
					continue
				}
				if r.Value() != c {
					t.Errorf("Value() = %v, want %q", r.Value(), c)
				}
				if r.Position() != 1 {
					t.Errorf("Position() = %d, want 1", r.Position())
				}
			}
			for _, c := range tt.rejects {
				r := Parse(tt.parser, string(c))
				if r.IsSuccess() {
					t.Errorf("%s should reject %q", tt.name, c)
				}
				if r.Position() != 0 {
					t.Errorf("failure Position() = %d, want 0", r.Position())
				}
			}
		})
	}
}

func TestCharAtEndOfInput(t *testing.T) {
	r := Parse(Any(), "")
	if r.IsSuccess() {
		t.Fatal("any should fail on empty input")
	}
	if r.Message() != "input expected" {
		t.Errorf("Message() = %q, want input expected", r.Message())
	}
}

func TestCharArgumentConversion(t *testing.T) {
	t.Run("rune", func(t *testing.T) {
		if !Accept(Char('a'), "a") {
			t.Error("rune argument should work")
		}
	})

	t.Run("integer code", func(t *testing.T) {
		if !Accept(Char(97), "a") {
			t.Error("integer code argument should work")
		}
	})

	t.Run("one-rune string", func(t *testing.T) {
		if !Accept(Char("a"), "a") {
			t.Error("one-rune string argument should work")
		}
	})

	invalid := []struct {
		name string
		arg  any
	}{
		{"long string", "ab"},
		{"empty string", ""},
		{"bool", true},
		{"float", 1.5},
		{"negative code", -1},
	}
	for _, tt := range invalid {
		t.Run(tt.name+" panics", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Char(%v) should panic", tt.arg)
				}
			}()
			Char(tt.arg)
		})
	}
}

func TestNegatedChar(t *testing.T) {
	digit := Digit()
	notDigit := digit.Negated("no digit expected")

	if Accept(notDigit, "5") {
		t.Error("negated digit should reject 5")
	}
	if !Accept(notDigit, "x") {
		t.Error("negated digit should accept x")
	}
}

func TestDoubleNegationYieldsOriginal(t *testing.T) {
	tests := []struct {
		name   string
		parser *CharParser
	}{
		{"digit", Digit()},
		{"char", Char('a')},
		{"word", Word()},
		{"any of", AnyOf("xyz")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := tt.parser.Negated("n").Negated("nn")
			if !back.Predicate().Equivalent(tt.parser.Predicate()) {
				t.Error("double negation should yield the original predicate")
			}
		})
	}
}

func TestPredicateEquivalence(t *testing.T) {
	tests := []struct {
		name string
		a, b *CharParser
		want bool
	}{
		{"same char", Char('a'), Char('a'), true},
		{"different char", Char('a'), Char('b'), false},
		{"same range", Range('a', 'z'), Range('a', 'z'), true},
		{"different range", Range('a', 'z'), Range('a', 'y'), false},
		{"same alternatives", AnyOf("abc"), AnyOf("abc"), true},
		{"reordered alternatives", AnyOf("abc"), AnyOf("cba"), false},
		{"char vs range", Char('a'), Range('a', 'a'), false},
		{"digit vs digit", Digit(), Digit(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Predicate().Equivalent(tt.b.Predicate())
			if got != tt.want {
				t.Errorf("Equivalent() = %v, want %v", got, tt.want)
			}
		})
	}
}
