package parser

// ChoiceParser tries its children in order and returns the first success.
type ChoiceParser struct {
	children []Parser
}

// Choice creates an ordered choice over ps. The first matching child wins;
// when every child fails the last failure is returned. At least one child is
// required.
func Choice(ps ...Parser) *ChoiceParser {
	if len(ps) == 0 {
		panic("parser: choice of no alternatives")
	}
	children := make([]Parser, len(ps))
	copy(children, ps)
	return &ChoiceParser{children: children}
}

// Or returns a new choice trying p's alternatives first and extra last. A
// non-choice p becomes the first alternative.
func Or(p Parser, extra Parser) *ChoiceParser {
	if c, ok := p.(*ChoiceParser); ok {
		return Choice(append(c.Children(), extra)...)
	}
	return Choice(p, extra)
}

func (p *ChoiceParser) ParseOn(ctx Context) Result {
	var r Result
	for _, child := range p.children {
		r = child.ParseOn(ctx)
		if r.IsSuccess() {
			return r
		}
	}
	return r
}

func (p *ChoiceParser) Children() []Parser {
	children := make([]Parser, len(p.children))
	copy(children, p.children)
	return children
}

func (p *ChoiceParser) Replace(old, with Parser) {
	for i, child := range p.children {
		if child == old {
			p.children[i] = with
		}
	}
}

func (p *ChoiceParser) Copy() Parser {
	children := make([]Parser, len(p.children))
	copy(children, p.children)
	return &ChoiceParser{children: children}
}

func (p *ChoiceParser) String() string {
	return "choice"
}

func (p *ChoiceParser) equalProperties(other Parser) bool {
	_, ok := other.(*ChoiceParser)
	return ok
}

// SequenceParser matches its children one after another.
type SequenceParser struct {
	children []Parser
}

// Seq creates a sequence over ps. A success yields the ordered list of child
// values; the first child failure is returned as is. At least one child is
// required.
func Seq(ps ...Parser) *SequenceParser {
	if len(ps) == 0 {
		panic("parser: sequence of no parsers")
	}
	children := make([]Parser, len(ps))
	copy(children, ps)
	return &SequenceParser{children: children}
}

// Then returns a new sequence matching p's elements first and extra last. A
// non-sequence p becomes the first element.
func Then(p Parser, extra Parser) *SequenceParser {
	if s, ok := p.(*SequenceParser); ok {
		return Seq(append(s.Children(), extra)...)
	}
	return Seq(p, extra)
}

func (p *SequenceParser) ParseOn(ctx Context) Result {
	current := ctx
	values := make([]any, 0, len(p.children))
	for _, child := range p.children {
		r := child.ParseOn(current)
		if r.IsFailure() {
			return r
		}
		values = append(values, r.Value())
		current = r.context()
	}
	return current.Success(values)
}

func (p *SequenceParser) Children() []Parser {
	children := make([]Parser, len(p.children))
	copy(children, p.children)
	return children
}

func (p *SequenceParser) Replace(old, with Parser) {
	for i, child := range p.children {
		if child == old {
			p.children[i] = with
		}
	}
}

func (p *SequenceParser) Copy() Parser {
	children := make([]Parser, len(p.children))
	copy(children, p.children)
	return &SequenceParser{children: children}
}

func (p *SequenceParser) String() string {
	return "sequence"
}

func (p *SequenceParser) equalProperties(other Parser) bool {
	_, ok := other.(*SequenceParser)
	return ok
}
