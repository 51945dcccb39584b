package format

import (
	"github.com/auvred/regsyntax"
)

// Node is the parent-free projection of a regsyntax node that the encoders
// write. Children appear in source order.
type Node struct {
	Type  string `json:"type" yaml:"type"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Raw   string `json:"raw" yaml:"raw"`

	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind          string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Negate        bool   `json:"negate,omitempty" yaml:"negate,omitempty"`
	Value         *rune  `json:"value,omitempty" yaml:"value,omitempty"`
	Key           string `json:"key,omitempty" yaml:"key,omitempty"`
	PropertyValue string `json:"propertyValue,omitempty" yaml:"propertyValue,omitempty"`
	Strings       bool   `json:"strings,omitempty" yaml:"strings,omitempty"`
	UnicodeSets   bool   `json:"unicodeSets,omitempty" yaml:"unicodeSets,omitempty"`
	Min           *int   `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is omitted for unbounded quantifiers.
	Max      *int   `json:"max,omitempty" yaml:"max,omitempty"`
	Greedy   *bool  `json:"greedy,omitempty" yaml:"greedy,omitempty"`
	Ref      string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Resolved *int   `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Flags    string `json:"flags,omitempty" yaml:"flags,omitempty"`

	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Project builds the projection of the tree rooted at root.
func Project(root regsyntax.Node) *Node {
	if root == nil {
		return nil
	}
	var (
		top   *Node
		stack []*Node
	)
	enter := func(n regsyntax.Node) {
		p := newNode(n)
		if len(stack) == 0 {
			top = p
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, p)
		}
		stack = append(stack, p)
	}
	leave := func(regsyntax.Node) {
		stack = stack[:len(stack)-1]
	}
	regsyntax.Visit(root, &regsyntax.Visitor{
		OnAlternativeEnter:              on[*regsyntax.Alternative](enter),
		OnAlternativeLeave:              on[*regsyntax.Alternative](leave),
		OnAssertionEnter:                on[*regsyntax.Assertion](enter),
		OnAssertionLeave:                on[*regsyntax.Assertion](leave),
		OnBackreferenceEnter:            on[*regsyntax.Backreference](enter),
		OnBackreferenceLeave:            on[*regsyntax.Backreference](leave),
		OnCapturingGroupEnter:           on[*regsyntax.CapturingGroup](enter),
		OnCapturingGroupLeave:           on[*regsyntax.CapturingGroup](leave),
		OnCharacterEnter:                on[*regsyntax.Character](enter),
		OnCharacterLeave:                on[*regsyntax.Character](leave),
		OnCharacterClassEnter:           on[*regsyntax.CharacterClass](enter),
		OnCharacterClassLeave:           on[*regsyntax.CharacterClass](leave),
		OnCharacterClassRangeEnter:      on[*regsyntax.CharacterClassRange](enter),
		OnCharacterClassRangeLeave:      on[*regsyntax.CharacterClassRange](leave),
		OnCharacterSetEnter:             on[*regsyntax.CharacterSet](enter),
		OnCharacterSetLeave:             on[*regsyntax.CharacterSet](leave),
		OnClassIntersectionEnter:        on[*regsyntax.ClassIntersection](enter),
		OnClassIntersectionLeave:        on[*regsyntax.ClassIntersection](leave),
		OnClassStringDisjunctionEnter:   on[*regsyntax.ClassStringDisjunction](enter),
		OnClassStringDisjunctionLeave:   on[*regsyntax.ClassStringDisjunction](leave),
		OnClassSubtractionEnter:         on[*regsyntax.ClassSubtraction](enter),
		OnClassSubtractionLeave:         on[*regsyntax.ClassSubtraction](leave),
		OnExpressionCharacterClassEnter: on[*regsyntax.ExpressionCharacterClass](enter),
		OnExpressionCharacterClassLeave: on[*regsyntax.ExpressionCharacterClass](leave),
		OnFlagsEnter:                    on[*regsyntax.Flags](enter),
		OnFlagsLeave:                    on[*regsyntax.Flags](leave),
		OnGroupEnter:                    on[*regsyntax.Group](enter),
		OnGroupLeave:                    on[*regsyntax.Group](leave),
		OnPatternEnter:                  on[*regsyntax.Pattern](enter),
		OnPatternLeave:                  on[*regsyntax.Pattern](leave),
		OnQuantifierEnter:               on[*regsyntax.Quantifier](enter),
		OnQuantifierLeave:               on[*regsyntax.Quantifier](leave),
		OnRegExpLiteralEnter:            on[*regsyntax.RegExpLiteral](enter),
		OnRegExpLiteralLeave:            on[*regsyntax.RegExpLiteral](leave),
		OnStringAlternativeEnter:        on[*regsyntax.StringAlternative](enter),
		OnStringAlternativeLeave:        on[*regsyntax.StringAlternative](leave),
	})
	return top
}

func on[T regsyntax.Node](f func(regsyntax.Node)) func(T) {
	return func(n T) { f(n) }
}

func ptr[T any](v T) *T { return &v }

func newNode(n regsyntax.Node) *Node {
	b := n.Base()
	p := &Node{Type: n.Type().String(), Start: b.Start, End: b.End, Raw: b.Raw}
	switch n := n.(type) {
	case *regsyntax.CapturingGroup:
		p.Name = n.Name
	case *regsyntax.Assertion:
		p.Kind = n.Kind.String()
		p.Negate = n.Negate
	case *regsyntax.Quantifier:
		p.Min = ptr(n.Min)
		if n.Max != regsyntax.Unbounded {
			p.Max = ptr(n.Max)
		}
		p.Greedy = ptr(n.Greedy)
	case *regsyntax.CharacterClass:
		p.Negate = n.Negate
		p.UnicodeSets = n.UnicodeSets
	case *regsyntax.ExpressionCharacterClass:
		p.Negate = n.Negate
	case *regsyntax.Character:
		p.Value = ptr(n.Value)
	case *regsyntax.CharacterSet:
		p.Kind = n.Kind.String()
		p.Negate = n.Negate
		p.Key = n.Key
		p.PropertyValue = n.Value
		p.Strings = n.Strings
	case *regsyntax.Backreference:
		p.Ref = n.Ref.String()
		if n.Resolved != nil {
			p.Resolved = ptr(n.Resolved.Start)
		}
	case *regsyntax.Flags:
		p.Flags = n.String()
	}
	return p
}
