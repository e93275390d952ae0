package parser

import "reflect"

// EndParser runs its child and demands that the match reaches the end of the
// input.
type EndParser struct {
	unary
	message string
}

// End wraps p so that a success must consume the input through its end;
// otherwise the result is a failure with message at the stopping position.
func End(p Parser, message string) *EndParser {
	return &EndParser{unary: unary{child: p}, message: message}
}

func (p *EndParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() || r.Position() == len(ctx.buffer) {
		return r
	}
	return ctx.Failure(p.message, r.Position())
}

func (p *EndParser) Copy() Parser {
	c := *p
	return &c
}

func (p *EndParser) String() string {
	return "end " + quote(p.message)
}

func (p *EndParser) equalProperties(other Parser) bool {
	o, ok := other.(*EndParser)
	return ok && p.message == o.message
}

// AndParser is a positive lookahead: it matches what its child matches but
// consumes nothing.
type AndParser struct {
	unary
}

// And wraps p as a positive lookahead. On success the result carries p's
// value at the original position.
func And(p Parser) *AndParser {
	return &AndParser{unary: unary{child: p}}
}

func (p *AndParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	return ctx.Success(r.Value())
}

func (p *AndParser) Copy() Parser {
	c := *p
	return &c
}

func (p *AndParser) String() string {
	return "and"
}

func (p *AndParser) equalProperties(other Parser) bool {
	_, ok := other.(*AndParser)
	return ok
}

// NotParser is a negative lookahead: it succeeds exactly when its child
// fails, consuming nothing either way.
type NotParser struct {
	unary
	message string
}

// Not wraps p as a negative lookahead failing with message when p succeeds.
// A success carries a nil value at the original position.
func Not(p Parser, message string) *NotParser {
	return &NotParser{unary: unary{child: p}, message: message}
}

func (p *NotParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return ctx.Success(nil)
	}
	return ctx.Failure(p.message)
}

func (p *NotParser) Copy() Parser {
	c := *p
	return &c
}

func (p *NotParser) String() string {
	return "not " + quote(p.message)
}

func (p *NotParser) equalProperties(other Parser) bool {
	o, ok := other.(*NotParser)
	return ok && p.message == o.message
}

// OptionalParser turns a child failure into a success with a fallback value.
type OptionalParser struct {
	unary
	otherwise any
}

// Optional wraps p so that a failure becomes a success with a nil value at
// the original position.
func Optional(p Parser) *OptionalParser {
	return &OptionalParser{unary: unary{child: p}}
}

// OptionalWith wraps p so that a failure becomes a success with otherwise.
func OptionalWith(p Parser, otherwise any) *OptionalParser {
	return &OptionalParser{unary: unary{child: p}, otherwise: otherwise}
}

func (p *OptionalParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsSuccess() {
		return r
	}
	return ctx.Success(p.otherwise)
}

func (p *OptionalParser) Copy() Parser {
	c := *p
	return &c
}

func (p *OptionalParser) String() string {
	return "optional"
}

func (p *OptionalParser) equalProperties(other Parser) bool {
	o, ok := other.(*OptionalParser)
	return ok && p.otherwise == o.otherwise
}

// Action is a pure function applied to a success value by Map. It must not
// inspect buffer or position; a panic inside it propagates to the Parse
// caller.
type Action func(value any) any

// ActionParser applies a user function to the child's success value.
type ActionParser struct {
	unary
	action Action
}

// Map wraps p so that a success value v becomes action(v). Failures pass
// through unchanged.
func Map(p Parser, action Action) *ActionParser {
	return &ActionParser{unary: unary{child: p}, action: action}
}

func (p *ActionParser) ParseOn(ctx Context) Result {
	r := p.child.ParseOn(ctx)
	if r.IsFailure() {
		return r
	}
	return ctx.Success(p.action(r.Value()), r.Position())
}

func (p *ActionParser) Copy() Parser {
	c := *p
	return &c
}

func (p *ActionParser) String() string {
	return "map"
}

// Actions compare by function identity: two parsers with distinct closures
// are structurally different even when the closures behave the same.
func (p *ActionParser) equalProperties(other Parser) bool {
	o, ok := other.(*ActionParser)
	return ok && reflect.ValueOf(p.action).Pointer() == reflect.ValueOf(o.action).Pointer()
}
