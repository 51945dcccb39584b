package format

import (
	"io"

	"github.com/auvred/regsyntax"
	"gopkg.in/yaml.v2"
)

// YAMLEncoder writes trees as YAML.
type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(root regsyntax.Node) error {
	return write(e.w, e, root)
}

func (e *YAMLEncoder) MarshalNode(root regsyntax.Node) ([]byte, error) {
	return yaml.Marshal(Project(root))
}
