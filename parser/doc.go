// Package parser is a combinator library for building top-down,
// recursive-descent recognizers.
//
// # Overview
//
// A parser is assembled declaratively from single-character primitives
// (Char, Range, Digit, Pattern, ...) and higher-order combinators (Seq,
// Choice, Star, Optional, And, Not, End, Map, ...), then run against an
// input string:
//
//	digits := parser.Flatten(parser.Plus(parser.Digit()))
//	r := parser.Parse(digits, "2024")
//	r.IsSuccess() // true
//	r.Value()     // "2024"
//
// Recognition is strict PEG-style: choices are ordered and commit to the
// first matching alternative, repetitions are greedy, and failures backtrack
// on position only. A Result is either a success carrying a semantic value
// or a failure carrying a message; both record a position.
//
// # Parser graphs
//
// Parsers form a directed, possibly cyclic graph. Recursive grammars tie
// their cycles through a SettableParser:
//
//	expr := parser.Undefined()
//	expr.Set(parser.Choice(
//		parser.Digit(),
//		parser.Pick(parser.Seq(parser.Char('('), expr, parser.Char(')')), 1),
//	))
//
// The graph is uniformly traversable (AllParsers), copyable (DeepCopy),
// rewritable (Transform, ReplaceAll) and comparable (EqualParsers); all four
// are cycle-safe.
//
// # Purity and concurrency
//
// Recognition never mutates the graph, so independent Parse calls may run
// concurrently on the same parsers. Graph mutation (Set, Replace, ReplaceAll)
// must not interleave with an in-flight Parse on the same graph; no locking
// is provided.
//
// # Errors
//
// Malformed construction arguments (invalid character arguments, bad
// repetition bounds, a second Set on a settable parser) are programmer
// errors and panic. An input that does not match is reported as a failure
// Result, never as a panic. A panic inside a Map action, or a Pick or Permute
// applied to a value that is not a sequence, propagates to the Parse caller.
package parser
