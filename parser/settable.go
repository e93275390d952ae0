package parser

// SettableParser forwards recognition to a delegate that can be assigned
// once after construction. It exists to tie the knot in recursive grammars:
// create it undefined, refer to it while building the surrounding rules,
// then Set the real rule, closing the cycle.
type SettableParser struct {
	unary
	defined bool
}

// Undefined creates a settable parser whose delegate is not assigned yet.
// Parsing before Set fails with "undefined parser".
func Undefined() *SettableParser {
	return &SettableParser{unary: unary{child: Fail("undefined parser")}}
}

// Settable creates a settable parser already delegating to p.
func Settable(p Parser) *SettableParser {
	return &SettableParser{unary: unary{child: p}, defined: true}
}

// Set assigns the delegate. Assigning twice is a construction error and
// panics.
func (p *SettableParser) Set(inner Parser) {
	if p.defined {
		panic("parser: settable parser assigned twice")
	}
	p.child = inner
	p.defined = true
}

func (p *SettableParser) ParseOn(ctx Context) Result {
	return p.child.ParseOn(ctx)
}

func (p *SettableParser) Copy() Parser {
	c := *p
	return &c
}

func (p *SettableParser) String() string {
	return "settable"
}

func (p *SettableParser) equalProperties(other Parser) bool {
	_, ok := other.(*SettableParser)
	return ok
}
