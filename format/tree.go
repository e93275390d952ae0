package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/peg/parser"
)

// TreeEncoder renders a parser graph as an indented tree, one node per line.
// Every node gets a numeric label on first visit; a node reached again (a
// shared subparser or a grammar cycle) prints as a back reference to its
// label instead of recursing.
type TreeEncoder struct {
	w    io.Writer
	root parser.Parser
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(root parser.Parser) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	labels := make(map[parser.Parser]int)
	e.writeNode(&b, e.root, 0, labels)
	return []byte(b.String()), nil
}

func (e *TreeEncoder) writeNode(b *strings.Builder, p parser.Parser, indent int, labels map[parser.Parser]int) {
	prefix := strings.Repeat("  ", indent)
	if label, seen := labels[p]; seen {
		fmt.Fprintf(b, "%s-> #%d\n", prefix, label)
		return
	}
	label := len(labels) + 1
	labels[p] = label
	fmt.Fprintf(b, "%s#%d %s\n", prefix, label, p.String())
	for _, child := range p.Children() {
		e.writeNode(b, child, indent+1, labels)
	}
}
