package regsyntax

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

func hook[T Node](enter, leave func(Node)) (func(T), func(T)) {
	return func(n T) { enter(n) }, func(n T) { leave(n) }
}

// everyNode returns a Visitor calling enter and leave for all node types.
func everyNode(enter, leave func(Node)) *Visitor {
	v := &Visitor{}
	v.OnAlternativeEnter, v.OnAlternativeLeave = hook[*Alternative](enter, leave)
	v.OnAssertionEnter, v.OnAssertionLeave = hook[*Assertion](enter, leave)
	v.OnBackreferenceEnter, v.OnBackreferenceLeave = hook[*Backreference](enter, leave)
	v.OnCapturingGroupEnter, v.OnCapturingGroupLeave = hook[*CapturingGroup](enter, leave)
	v.OnCharacterEnter, v.OnCharacterLeave = hook[*Character](enter, leave)
	v.OnCharacterClassEnter, v.OnCharacterClassLeave = hook[*CharacterClass](enter, leave)
	v.OnCharacterClassRangeEnter, v.OnCharacterClassRangeLeave = hook[*CharacterClassRange](enter, leave)
	v.OnCharacterSetEnter, v.OnCharacterSetLeave = hook[*CharacterSet](enter, leave)
	v.OnClassIntersectionEnter, v.OnClassIntersectionLeave = hook[*ClassIntersection](enter, leave)
	v.OnClassStringDisjunctionEnter, v.OnClassStringDisjunctionLeave = hook[*ClassStringDisjunction](enter, leave)
	v.OnClassSubtractionEnter, v.OnClassSubtractionLeave = hook[*ClassSubtraction](enter, leave)
	v.OnExpressionCharacterClassEnter, v.OnExpressionCharacterClassLeave = hook[*ExpressionCharacterClass](enter, leave)
	v.OnFlagsEnter, v.OnFlagsLeave = hook[*Flags](enter, leave)
	v.OnGroupEnter, v.OnGroupLeave = hook[*Group](enter, leave)
	v.OnPatternEnter, v.OnPatternLeave = hook[*Pattern](enter, leave)
	v.OnQuantifierEnter, v.OnQuantifierLeave = hook[*Quantifier](enter, leave)
	v.OnRegExpLiteralEnter, v.OnRegExpLiteralLeave = hook[*RegExpLiteral](enter, leave)
	v.OnStringAlternativeEnter, v.OnStringAlternativeLeave = hook[*StringAlternative](enter, leave)
	return v
}

func history(root Node) []string {
	var h []string
	Visit(root, everyNode(
		func(n Node) { h = append(h, "enter:"+n.Type().String()+":"+n.Base().Raw) },
		func(n Node) { h = append(h, "leave:"+n.Type().String()+":"+n.Base().Raw) },
	))
	return h
}

type visitorFixture struct {
	Source  string   `yaml:"source"`
	History []string `yaml:"history"`
}

func TestVisitor(t *testing.T) {
	data, err := os.ReadFile("testdata/visitor.yaml")
	assert.NilError(t, err)
	var fixtures []visitorFixture
	assert.NilError(t, yaml.Unmarshal(data, &fixtures))
	assert.Assert(t, len(fixtures) > 0)

	for _, f := range fixtures {
		f := f
		t.Run(f.Source, func(t *testing.T) {
			t.Parallel()
			literal, err := ParseRegExpLiteral(f.Source, nil)
			assert.NilError(t, err)
			if diff := cmp.Diff(f.History, history(literal)); diff != "" {
				t.Errorf("history mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisitorPartial(t *testing.T) {
	literal := MustParseRegExpLiteral(`/(a)|[b\d]/`, nil)
	var chars []rune
	var groups int
	Visit(literal, &Visitor{
		OnCharacterEnter:      func(c *Character) { chars = append(chars, c.Value) },
		OnCapturingGroupLeave: func(*CapturingGroup) { groups++ },
	})
	assert.DeepEqual(t, chars, []rune{'a', 'b'})
	assert.Equal(t, groups, 1)
}

func TestVisitorSubtree(t *testing.T) {
	pattern, err := NewParser(nil).ParsePattern(`x(?:y)`, PatternFlags{})
	assert.NilError(t, err)
	group := pattern.Alternatives[0].Elements[1]
	assert.DeepEqual(t, history(group), []string{
		"enter:Group:(?:y)",
		"enter:Alternative:y",
		"enter:Character:y",
		"leave:Character:y",
		"leave:Alternative:y",
		"leave:Group:(?:y)",
	})
}
