package parser

// CharPredicate decides whether a single rune belongs to a character class.
// Predicates are plain values; Equivalent compares them structurally so that
// two classes built the same way compare equal.
type CharPredicate interface {
	// Matches reports whether c belongs to the class.
	Matches(c rune) bool

	// Equivalent reports whether other denotes the same class, compared
	// structurally.
	Equivalent(other CharPredicate) bool
}

// Negate returns the complement of p. Negating a negation returns the
// original inner predicate instead of wrapping twice.
func Negate(p CharPredicate) CharPredicate {
	if n, ok := p.(negatedPredicate); ok {
		return n.inner
	}
	return negatedPredicate{inner: p}
}

type singleChar rune

func (p singleChar) Matches(c rune) bool {
	return rune(p) == c
}

func (p singleChar) Equivalent(other CharPredicate) bool {
	o, ok := other.(singleChar)
	return ok && p == o
}

type charSpan struct {
	lo, hi rune
}

func (p charSpan) Matches(c rune) bool {
	return p.lo <= c && c <= p.hi
}

func (p charSpan) Equivalent(other CharPredicate) bool {
	o, ok := other.(charSpan)
	return ok && p == o
}

type anyChar struct{}

func (anyChar) Matches(rune) bool {
	return true
}

func (anyChar) Equivalent(other CharPredicate) bool {
	_, ok := other.(anyChar)
	return ok
}

type charAlternatives []CharPredicate

func (p charAlternatives) Matches(c rune) bool {
	for _, alt := range p {
		if alt.Matches(c) {
			return true
		}
	}
	return false
}

func (p charAlternatives) Equivalent(other CharPredicate) bool {
	o, ok := other.(charAlternatives)
	if !ok || len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equivalent(o[i]) {
			return false
		}
	}
	return true
}

type negatedPredicate struct {
	inner CharPredicate
}

func (p negatedPredicate) Matches(c rune) bool {
	return !p.inner.Matches(c)
}

func (p negatedPredicate) Equivalent(other CharPredicate) bool {
	o, ok := other.(negatedPredicate)
	return ok && p.inner.Equivalent(o.inner)
}

func digitPredicate() CharPredicate {
	return charSpan{'0', '9'}
}

func letterPredicate() CharPredicate {
	return charAlternatives{charSpan{'A', 'Z'}, charSpan{'a', 'z'}}
}

func wordPredicate() CharPredicate {
	return charAlternatives{charSpan{'A', 'Z'}, charSpan{'a', 'z'}, charSpan{'0', '9'}, singleChar('_')}
}

func whitespacePredicate() CharPredicate {
	return charAlternatives{
		singleChar('\t'),
		singleChar('\n'),
		singleChar('\f'),
		singleChar('\r'),
		singleChar(' '),
	}
}
