package format

import (
	"encoding"

	"github.com/dhamidi/peg/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(r parser.Result) error
}
