package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/peg/parser"
)

// JSONEncoder renders a parse result as indented JSON. Semantic values are
// normalized first: runes become one-character strings and tokens become
// records with their text and span.
type JSONEncoder struct {
	w      io.Writer
	result parser.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r parser.Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildResultData(), "", "  ")
}

type jsonResult struct {
	Status   string `json:"status"`
	Position int    `json:"position"`
	Value    any    `json:"value,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	if e.result.IsFailure() {
		return jsonResult{
			Status:   "failure",
			Position: e.result.Position(),
			Message:  e.result.Message(),
		}
	}
	return jsonResult{
		Status:   "success",
		Position: e.result.Position(),
		Value:    normalizeValue(e.result.Value()),
	}
}

func normalizeValue(v any) any {
	switch v := v.(type) {
	case rune:
		return string(v)
	case []any:
		values := make([]any, len(v))
		for i, elem := range v {
			values[i] = normalizeValue(elem)
		}
		return values
	case map[string]any:
		values := make(map[string]any, len(v))
		for key, elem := range v {
			values[key] = normalizeValue(elem)
		}
		return values
	case parser.Token:
		return map[string]any{
			"text":  v.Text(),
			"start": v.Start(),
			"stop":  v.Stop(),
			"value": normalizeValue(v.Value()),
		}
	default:
		return v
	}
}
