// Package json implements a JSON value grammar on top of the combinator
// library. It exists as a realistic consumer of the public parser contract;
// it decodes into the usual Go shapes (map[string]any, []any, float64,
// string, bool, nil). It is more lenient than encoding/json about number
// forms such as leading zeros.
package json

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dhamidi/peg/parser"
)

var grammar = sync.OnceValue(build)

var document = sync.OnceValue(func() parser.Parser {
	return parser.End(grammar(), "end of input expected")
})

// Value returns the parser for a single JSON value, surrounded by optional
// whitespace. The returned graph is shared; do not mutate it.
func Value() parser.Parser {
	return grammar()
}

// Decode parses input as one complete JSON document.
func Decode(input string) (any, error) {
	r := parser.Parse(document(), input)
	if r.IsFailure() {
		return nil, fmt.Errorf("json: %s at offset %d", r.Message(), r.Position())
	}
	return r.Value(), nil
}

func build() parser.Parser {
	value := parser.Undefined()

	token := func(s string) parser.Parser {
		return parser.Trim(parser.String(s))
	}

	jNull := parser.Map(token("null"), func(any) any { return nil })
	jTrue := parser.Map(token("true"), func(any) any { return true })
	jFalse := parser.Map(token("false"), func(any) any { return false })

	digits := parser.Plus(parser.Digit())
	integer := parser.Seq(parser.Optional(parser.Char('-')), digits)
	fraction := parser.Optional(parser.Seq(parser.Char('.'), digits))
	exponent := parser.Optional(parser.Seq(parser.AnyOf("eE"), parser.Optional(parser.AnyOf("+-")), digits))
	number := parser.Map(parser.Trim(parser.Flatten(parser.Seq(integer, fraction, exponent))), parseNumber)

	hex := parser.MustPattern("0-9a-fA-F")
	unicodeEscape := parser.Map(
		parser.Pick(parser.Seq(parser.String(`\u`), parser.Flatten(parser.Times(hex, 4))), 1),
		decodeUnicodeEscape)
	simpleEscape := parser.Map(
		parser.Pick(parser.Seq(parser.Char('\\'), parser.AnyOf(`"\/bfnrt`)), 1),
		decodeSimpleEscape)
	plain := parser.NoneOf("\"\\")
	stringBody := parser.Star(parser.Choice(unicodeEscape, simpleEscape, plain))
	jString := parser.Trim(parser.Map(
		parser.Pick(parser.Seq(parser.Char('"'), stringBody, parser.Char('"')), 1),
		joinRunes))

	comma := token(",")

	elements := parser.OptionalWith(parser.Separated(value, comma), []any{})
	jArray := parser.Pick(parser.Seq(token("["), elements, token("]")), 1)

	member := parser.Seq(jString, token(":"), value)
	members := parser.OptionalWith(parser.Separated(member, comma), []any{})
	jObject := parser.Map(parser.Pick(parser.Seq(token("{"), members, token("}")), 1), buildObject)

	value.Set(parser.Choice(jString, number, jObject, jArray, jTrue, jFalse, jNull))
	return value
}

func parseNumber(value any) any {
	n, _ := strconv.ParseFloat(value.(string), 64)
	return n
}

func decodeUnicodeEscape(value any) any {
	n, _ := strconv.ParseUint(value.(string), 16, 32)
	return rune(n)
}

func decodeSimpleEscape(value any) any {
	switch c := value.(rune); c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}

func joinRunes(value any) any {
	runes := value.([]any)
	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r.(rune))
	}
	return b.String()
}

func buildObject(value any) any {
	members := value.([]any)
	object := make(map[string]any, len(members))
	for _, m := range members {
		member := m.([]any)
		object[member[0].(string)] = member[2]
	}
	return object
}
