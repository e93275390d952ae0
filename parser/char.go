package parser

import (
	"fmt"
	"strconv"
)

// CharParser consumes exactly one rune accepted by its predicate.
type CharParser struct {
	leaf
	predicate CharPredicate
	message   string
}

// NewCharParser creates a single-rune parser from a predicate and failure
// message. The predicate-specific builders below cover the common classes.
func NewCharParser(predicate CharPredicate, message string) *CharParser {
	return &CharParser{predicate: predicate, message: message}
}

func (p *CharParser) ParseOn(ctx Context) Result {
	if ctx.position < len(ctx.buffer) {
		if c := ctx.buffer[ctx.position]; p.predicate.Matches(c) {
			return ctx.Success(c, ctx.position+1)
		}
	}
	return ctx.Failure(p.message)
}

func (p *CharParser) Copy() Parser {
	c := *p
	return &c
}

func (p *CharParser) String() string {
	return "char " + quote(p.message)
}

// Predicate returns the character class this parser consumes.
func (p *CharParser) Predicate() CharPredicate {
	return p.predicate
}

// Negated returns a parser accepting exactly the runes this parser rejects.
func (p *CharParser) Negated(message string) *CharParser {
	return NewCharParser(Negate(p.predicate), message)
}

func (p *CharParser) equalProperties(other Parser) bool {
	o, ok := other.(*CharParser)
	return ok && p.message == o.message && p.predicate.Equivalent(o.predicate)
}

// Char creates a parser for one specific character. The argument is either a
// rune, an integer code point, or a string holding exactly one rune; any
// other argument is a construction error and panics.
func Char(c any) *CharParser {
	r := runeOf(c)
	return NewCharParser(singleChar(r), quoteRune(r)+" expected")
}

// Range creates a parser for one character in [lo, hi], inclusive.
func Range(lo, hi rune) *CharParser {
	return NewCharParser(charSpan{lo, hi}, quoteRune(lo)+".."+quoteRune(hi)+" expected")
}

// Digit creates a parser for one decimal digit.
func Digit() *CharParser {
	return NewCharParser(digitPredicate(), "digit expected")
}

// Letter creates a parser for one ASCII letter.
func Letter() *CharParser {
	return NewCharParser(letterPredicate(), "letter expected")
}

// Lowercase creates a parser for one lowercase ASCII letter.
func Lowercase() *CharParser {
	return NewCharParser(charSpan{'a', 'z'}, "lowercase letter expected")
}

// Uppercase creates a parser for one uppercase ASCII letter.
func Uppercase() *CharParser {
	return NewCharParser(charSpan{'A', 'Z'}, "uppercase letter expected")
}

// Word creates a parser for one letter, digit or underscore.
func Word() *CharParser {
	return NewCharParser(wordPredicate(), "letter or digit expected")
}

// Whitespace creates a parser for one whitespace character.
func Whitespace() *CharParser {
	return NewCharParser(whitespacePredicate(), "whitespace expected")
}

// Any creates a parser consuming one arbitrary character; it fails only at
// the end of the input.
func Any() *CharParser {
	return NewCharParser(anyChar{}, "input expected")
}

// AnyOf creates a parser for one character out of chars.
func AnyOf(chars string) *CharParser {
	return NewCharParser(alternativesOf(chars), "any of "+strconv.Quote(chars)+" expected")
}

// NoneOf creates a parser for one character not in chars.
func NoneOf(chars string) *CharParser {
	return NewCharParser(Negate(alternativesOf(chars)), "none of "+strconv.Quote(chars)+" expected")
}

func alternativesOf(chars string) CharPredicate {
	runes := []rune(chars)
	if len(runes) == 1 {
		return singleChar(runes[0])
	}
	alts := make(charAlternatives, len(runes))
	for i, r := range runes {
		alts[i] = singleChar(r)
	}
	return alts
}

// runeOf converts a user-supplied character argument to a rune. Accepts a
// rune, an integer code point, or a one-rune string.
func runeOf(v any) rune {
	switch c := v.(type) {
	case rune:
		return c
	case int:
		if c < 0 || c > 0x10FFFF {
			panic(fmt.Sprintf("parser: character code out of range: %d", c))
		}
		return rune(c)
	case string:
		runes := []rune(c)
		if len(runes) != 1 {
			panic(fmt.Sprintf("parser: not a single character: %q", c))
		}
		return runes[0]
	default:
		panic(fmt.Sprintf("parser: not a character: %v (%T)", v, v))
	}
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}

func quote(s string) string {
	return strconv.Quote(s)
}
