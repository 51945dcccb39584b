// Package format renders regsyntax trees as JSON or YAML documents.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/auvred/regsyntax"
)

// Encoder writes a tree to an underlying writer.
type Encoder interface {
	Encode(root regsyntax.Node) error
	MarshalNode(root regsyntax.Node) ([]byte, error)
}

// Formats lists the names accepted by NewEncoder.
var Formats = []string{"json", "yaml"}

// NewEncoder returns the Encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// Document binds a tree to an Encoder so it can be passed wherever an
// encoding.TextMarshaler is expected.
type Document struct {
	Root    regsyntax.Node
	Encoder Encoder
}

var _ encoding.TextMarshaler = Document{}

func (d Document) MarshalText() ([]byte, error) {
	return d.Encoder.MarshalNode(d.Root)
}

func write(w io.Writer, enc Encoder, root regsyntax.Node) error {
	data, err := enc.MarshalNode(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
