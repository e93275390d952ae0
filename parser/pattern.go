package parser

import (
	"fmt"
	"sync"
)

// patternParser compiles the character-class mini-language:
//
//	pattern := '^'? item+
//	item    := any '-' any   (range)
//	         | any           (single character)
//
// It is built from the combinators themselves and published once on first
// use.
var patternParser = sync.OnceValue(buildPatternParser)

func buildPatternParser() Parser {
	rangeItem := Map(Seq(Any(), Char('-'), Any()), func(value any) any {
		seq := value.([]any)
		return CharPredicate(charSpan{lo: seq[0].(rune), hi: seq[2].(rune)})
	})
	singleItem := Map(Any(), func(value any) any {
		return CharPredicate(singleChar(value.(rune)))
	})
	items := Map(Plus(Choice(rangeItem, singleItem)), func(value any) any {
		parts := value.([]any)
		if len(parts) == 1 {
			return parts[0]
		}
		alternatives := make(charAlternatives, len(parts))
		for i, part := range parts {
			alternatives[i] = part.(CharPredicate)
		}
		return CharPredicate(alternatives)
	})
	pattern := Map(Seq(Optional(Char('^')), items), func(value any) any {
		seq := value.([]any)
		predicate := seq[1].(CharPredicate)
		if seq[0] != nil {
			predicate = Negate(predicate)
		}
		return predicate
	})
	return End(pattern, "pattern expected")
}

// PatternGrammar returns the parser for the character-class mini-language
// itself. The graph is shared across callers; do not mutate it.
func PatternGrammar() Parser {
	return patternParser()
}

// Pattern compiles a regex-like character class such as "a-zA-Z0-9_" into a
// single-character parser. A leading '^' negates the class. An empty or
// malformed pattern is reported as an error.
func Pattern(pattern string) (*CharParser, error) {
	r := Parse(patternParser(), pattern)
	if r.IsFailure() {
		return nil, fmt.Errorf("parser: invalid character pattern %q at %d: %s", pattern, r.Position(), r.Message())
	}
	predicate := r.Value().(CharPredicate)
	return NewCharParser(predicate, "["+pattern+"] expected"), nil
}

// MustPattern is like Pattern but panics on a malformed pattern. Intended
// for patterns fixed at compile time.
func MustPattern(pattern string) *CharParser {
	p, err := Pattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}
