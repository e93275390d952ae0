package parser

import "fmt"

// TrimParser skips a trimmer parser (whitespace by default) before and after
// its child, yielding the child's value.
type TrimParser struct {
	child   Parser
	trimmer Parser
}

// Trim wraps p so that whitespace around the match is consumed and
// discarded.
func Trim(p Parser) *TrimParser {
	return TrimWith(p, Whitespace())
}

// TrimWith wraps p so that trimmer matches around it are consumed and
// discarded.
func TrimWith(p, trimmer Parser) *TrimParser {
	return &TrimParser{child: p, trimmer: trimmer}
}

func (p *TrimParser) ParseOn(ctx Context) Result {
	current := p.skip(ctx)
	r := p.child.ParseOn(current)
	if r.IsFailure() {
		return r
	}
	after := p.skip(r.context())
	return after.Success(r.Value())
}

func (p *TrimParser) skip(ctx Context) Context {
	for {
		r := p.trimmer.ParseOn(ctx)
		if r.IsFailure() || r.Position() == ctx.position {
			return ctx
		}
		ctx = r.context()
	}
}

func (p *TrimParser) Children() []Parser {
	return []Parser{p.child, p.trimmer}
}

func (p *TrimParser) Replace(old, with Parser) {
	if p.child == old {
		p.child = with
	}
	if p.trimmer == old {
		p.trimmer = with
	}
}

func (p *TrimParser) Copy() Parser {
	c := *p
	return &c
}

func (p *TrimParser) String() string {
	return "trim"
}

func (p *TrimParser) equalProperties(other Parser) bool {
	_, ok := other.(*TrimParser)
	return ok
}

// PickParser projects a single element out of a sequence value.
type PickParser struct {
	unary
	index int
}

// Pick wraps a sequence-valued parser so that a success yields only the
// element at index. A negative index counts from the end, -1 being the last
// element.
func Pick(p Parser, index int) *PickParser {
	return &PickParser{unary: unary{child: p}, index: index}
}

func (p *PickParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	values, ok := r.Value().([]any)
	if !ok {
		panic(fmt.Sprintf("parser: pick applied to non-sequence value %T", r.Value()))
	}
	index := p.index
	if index < 0 {
		index += len(values)
	}
	return ctx.Success(values[index], r.Position())
}

func (p *PickParser) Copy() Parser {
	c := *p
	return &c
}

func (p *PickParser) String() string {
	return fmt.Sprintf("pick %d", p.index)
}

func (p *PickParser) equalProperties(other Parser) bool {
	o, ok := other.(*PickParser)
	return ok && p.index == o.index
}

// PermuteParser reorders the elements of a sequence value.
type PermuteParser struct {
	unary
	indexes []int
}

// Permute wraps a sequence-valued parser so that a success yields the
// elements at indexes, in that order. Negative indexes count from the end.
func Permute(p Parser, indexes ...int) *PermuteParser {
	return &PermuteParser{unary: unary{child: p}, indexes: indexes}
}

func (p *PermuteParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	values, ok := r.Value().([]any)
	if !ok {
		panic(fmt.Sprintf("parser: permute applied to non-sequence value %T", r.Value()))
	}
	picked := make([]any, len(p.indexes))
	for i, index := range p.indexes {
		if index < 0 {
			index += len(values)
		}
		picked[i] = values[index]
	}
	return ctx.Success(picked, r.Position())
}

func (p *PermuteParser) Copy() Parser {
	c := *p
	indexes := make([]int, len(p.indexes))
	copy(indexes, p.indexes)
	c.indexes = indexes
	return &c
}

func (p *PermuteParser) String() string {
	return fmt.Sprintf("permute %v", p.indexes)
}

func (p *PermuteParser) equalProperties(other Parser) bool {
	o, ok := other.(*PermuteParser)
	if !ok || len(p.indexes) != len(o.indexes) {
		return false
	}
	for i := range p.indexes {
		if p.indexes[i] != o.indexes[i] {
			return false
		}
	}
	return true
}

// Separated matches one or more elements separated by separator and yields
// the element values only.
func Separated(element, separator Parser) Parser {
	rest := Star(Pick(Seq(separator, element), 1))
	return Map(Seq(element, rest), func(value any) any {
		pair := value.([]any)
		values := []any{pair[0]}
		return append(values, pair[1].([]any)...)
	})
}
