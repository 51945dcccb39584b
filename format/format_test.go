package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/auvred/regsyntax"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

func parse(t *testing.T, source string) *regsyntax.RegExpLiteral {
	t.Helper()
	literal, err := regsyntax.ParseRegExpLiteral(source, nil)
	assert.NilError(t, err)
	return literal
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, NewJSONEncoder(&buf).Encode(parse(t, "/a{2,}?/")))
	assert.Equal(t, buf.String(), `{
  "type": "RegExpLiteral",
  "start": 0,
  "end": 8,
  "raw": "/a{2,}?/",
  "children": [
    {
      "type": "Pattern",
      "start": 1,
      "end": 7,
      "raw": "a{2,}?",
      "children": [
        {
          "type": "Alternative",
          "start": 1,
          "end": 7,
          "raw": "a{2,}?",
          "children": [
            {
              "type": "Quantifier",
              "start": 1,
              "end": 7,
              "raw": "a{2,}?",
              "min": 2,
              "greedy": false,
              "children": [
                {
                  "type": "Character",
                  "start": 1,
                  "end": 2,
                  "raw": "a",
                  "value": 97
                }
              ]
            }
          ]
        }
      ]
    },
    {
      "type": "Flags",
      "start": 8,
      "end": 8,
      "raw": ""
    }
  ]
}
`)
}

func TestJSONEncoderFields(t *testing.T) {
	data, err := NewJSONEncoder(nil).MarshalNode(parse(t, `/(?<n>[^\p{Script=Greek}])\k<n>/giu`))
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(data, []byte(`"raw": "(?<n>[^\\p{Script=Greek}])"`)), string(data))

	var root Node
	assert.NilError(t, json.Unmarshal(data, &root))
	alt := root.Children[0].Children[0]
	group, ref := alt.Children[0], alt.Children[1]
	assert.Equal(t, group.Name, "n")
	class := group.Children[0].Children[0]
	assert.Equal(t, class.Type, "CharacterClass")
	assert.Assert(t, class.Negate)
	set := class.Children[0]
	assert.Equal(t, set.Kind, "property")
	assert.Equal(t, set.Key, "Script")
	assert.Equal(t, set.PropertyValue, "Greek")
	assert.Equal(t, ref.Ref, "n")
	assert.Equal(t, *ref.Resolved, group.Start)
	assert.Equal(t, root.Children[1].Flags, "giu")
}

func TestYAMLEncoder(t *testing.T) {
	for _, source := range []string{
		`/a+|(b)*?\1/`,
		`/[\q{ab|c}--[a-z]]{0,3}/v`,
		`/(?<!x)\B./s`,
	} {
		t.Run(source, func(t *testing.T) {
			literal := parse(t, source)
			var buf bytes.Buffer
			assert.NilError(t, NewYAMLEncoder(&buf).Encode(literal))

			var decoded Node
			assert.NilError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
			if diff := cmp.Diff(Project(literal), &decoded); diff != "" {
				t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectUnbounded(t *testing.T) {
	q := Project(parse(t, "/a*/")).Children[0].Children[0].Children[0]
	assert.Equal(t, q.Type, "Quantifier")
	assert.Equal(t, *q.Min, 0)
	assert.Assert(t, q.Max == nil)
	assert.Assert(t, *q.Greedy)
}

func TestProjectSubtree(t *testing.T) {
	pattern, err := regsyntax.NewParser(nil).ParsePattern("a|b", regsyntax.PatternFlags{})
	assert.NilError(t, err)
	p := Project(pattern)
	assert.Equal(t, p.Type, "Pattern")
	assert.Equal(t, len(p.Children), 2)
	assert.Assert(t, Project(nil) == nil)
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Formats {
		enc, err := NewEncoder(name, nil)
		assert.NilError(t, err)
		text, err := Document{Root: parse(t, "/x/"), Encoder: enc}.MarshalText()
		assert.NilError(t, err)
		assert.Assert(t, bytes.Contains(text, []byte("RegExpLiteral")))
	}
	_, err := NewEncoder("xml", nil)
	assert.Error(t, err, "unknown format: xml")
}
