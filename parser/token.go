package parser

import "fmt"

// FlattenParser discards the child's value and yields the covered substring
// instead.
type FlattenParser struct {
	unary
}

// Flatten wraps p so that a success yields the literal input text covered by
// the match.
func Flatten(p Parser) *FlattenParser {
	return &FlattenParser{unary: unary{child: p}}
}

func (p *FlattenParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	return ctx.Success(string(ctx.buffer[ctx.position:r.Position()]), r.Position())
}

func (p *FlattenParser) Copy() Parser {
	c := *p
	return &c
}

func (p *FlattenParser) String() string {
	return "flatten"
}

func (p *FlattenParser) equalProperties(other Parser) bool {
	_, ok := other.(*FlattenParser)
	return ok
}

// Token carries a semantic value together with the input span it came from.
type Token struct {
	buffer []rune
	start  int
	stop   int
	value  any
}

// Start returns the rune index where the match began.
func (t Token) Start() int {
	return t.start
}

// Stop returns the rune index just past the match.
func (t Token) Stop() int {
	return t.stop
}

// Value returns the semantic value produced by the wrapped parser.
func (t Token) Value() any {
	return t.value
}

// Text returns the input text covered by the match.
func (t Token) Text() string {
	return string(t.buffer[t.start:t.stop])
}

// Line returns the 1-based line of the match start.
func (t Token) Line() int {
	line := 1
	for _, c := range t.buffer[:t.start] {
		if c == '\n' {
			line++
		}
	}
	return line
}

// Column returns the 1-based column of the match start.
func (t Token) Column() int {
	column := 1
	for _, c := range t.buffer[:t.start] {
		if c == '\n' {
			column = 1
		} else {
			column++
		}
	}
	return column
}

func (t Token) String() string {
	return fmt.Sprintf("Token[%d..%d]%q", t.start, t.stop, t.Text())
}

// TokenParser wraps the child's success value in a Token recording the
// matched span.
type TokenParser struct {
	unary
}

// NewToken wraps p so that a success yields a Token carrying p's value and
// the [start, stop) span of the match.
func NewToken(p Parser) *TokenParser {
	return &TokenParser{unary: unary{child: p}}
}

func (p *TokenParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	token := Token{buffer: ctx.buffer, start: ctx.position, stop: r.Position(), value: r.Value()}
	return ctx.Success(token, r.Position())
}

func (p *TokenParser) Copy() Parser {
	c := *p
	return &c
}

func (p *TokenParser) String() string {
	return "token"
}

func (p *TokenParser) equalProperties(other Parser) bool {
	_, ok := other.(*TokenParser)
	return ok
}
