package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/auvred/regsyntax"
)

// JSONEncoder writes trees as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root regsyntax.Node) error {
	return write(e.w, e, root)
}

// MarshalNode returns the JSON document followed by a newline.
// Characters such as < and > are written as is.
func (e *JSONEncoder) MarshalNode(root regsyntax.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Project(root)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
