package regsyntax

import (
	"math"
	"strconv"
)

// NodeType tags the 18 node variants.
type NodeType uint8

const (
	NodeAlternative NodeType = iota + 1
	NodeAssertion
	NodeBackreference
	NodeCapturingGroup
	NodeCharacter
	NodeCharacterClass
	NodeCharacterClassRange
	NodeCharacterSet
	NodeClassIntersection
	NodeClassStringDisjunction
	NodeClassSubtraction
	NodeExpressionCharacterClass
	NodeFlags
	NodeGroup
	NodePattern
	NodeQuantifier
	NodeRegExpLiteral
	NodeStringAlternative
)

var nodeTypeNames = [...]string{
	NodeAlternative:              "Alternative",
	NodeAssertion:                "Assertion",
	NodeBackreference:            "Backreference",
	NodeCapturingGroup:           "CapturingGroup",
	NodeCharacter:                "Character",
	NodeCharacterClass:           "CharacterClass",
	NodeCharacterClassRange:      "CharacterClassRange",
	NodeCharacterSet:             "CharacterSet",
	NodeClassIntersection:        "ClassIntersection",
	NodeClassStringDisjunction:   "ClassStringDisjunction",
	NodeClassSubtraction:         "ClassSubtraction",
	NodeExpressionCharacterClass: "ExpressionCharacterClass",
	NodeFlags:                    "Flags",
	NodeGroup:                    "Group",
	NodePattern:                  "Pattern",
	NodeQuantifier:               "Quantifier",
	NodeRegExpLiteral:            "RegExpLiteral",
	NodeStringAlternative:        "StringAlternative",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

// Unbounded is the Max of *, + and {n,} quantifiers.
const Unbounded = math.MaxInt

// NodeBase holds the fields shared by every node.
type NodeBase struct {
	// Parent is nil for the root of a parse.
	// It never owns the node it is reached from.
	Parent Node
	// Start and End are UTF-16 code-unit offsets into the parsed source.
	Start int
	End   int
	// Raw is the source text between Start and End.
	Raw string
}

func (b *NodeBase) Base() *NodeBase { return b }
func (b *NodeBase) node()           {}

// Node is implemented by the 18 node types of this package only.
type Node interface {
	Type() NodeType
	Base() *NodeBase
	node()
}

// Element is anything an Alternative holds:
// Assertion, Backreference, CapturingGroup, Character, CharacterClass,
// CharacterSet, ExpressionCharacterClass, Group or Quantifier.
type Element interface {
	Node
	element()
}

// QuantifiableElement is an Element a Quantifier may wrap.
// Among assertions only lookaheads are quantifiable, and only outside
// strict mode.
type QuantifiableElement interface {
	Element
	quantifiable()
}

// CharacterClassElement is anything a CharacterClass holds:
// Character, CharacterClassRange, CharacterSet, and in unicodeSets classes
// also CharacterClass, ClassStringDisjunction and ExpressionCharacterClass.
type CharacterClassElement interface {
	Node
	classElement()
}

// ClassSetOperand is an operand of a ClassIntersection or ClassSubtraction:
// Character, CharacterClass, CharacterSet, ClassStringDisjunction or
// ExpressionCharacterClass.
type ClassSetOperand interface {
	CharacterClassElement
	classSetOperand()
}

// ClassSetExpression is either a ClassIntersection or a ClassSubtraction.
type ClassSetExpression interface {
	Node
	classSetExpression()
}

// RegExpLiteral is the root of a parsed /pattern/flags literal.
type RegExpLiteral struct {
	NodeBase
	Pattern *Pattern
	Flags   *Flags
}

// Pattern is a disjunction of alternatives.
// Its Parent is the enclosing RegExpLiteral, or nil when it was parsed on
// its own.
type Pattern struct {
	NodeBase
	Alternatives []*Alternative
}

type Alternative struct {
	NodeBase
	Elements []Element
}

// Group is a non-capturing group (?:...).
type Group struct {
	NodeBase
	Alternatives []*Alternative
}

type CapturingGroup struct {
	NodeBase
	// Name is empty for unnamed groups.
	Name         string
	Alternatives []*Alternative
	// References lists the backreferences that resolved to this group, in
	// source order. They are owned by their own alternatives.
	References []*Backreference
}

// AssertionKind distinguishes the assertion variants.
type AssertionKind uint8

const (
	AssertionStart AssertionKind = iota + 1 // ^
	AssertionEnd                            // $
	AssertionWord                           // \b, \B
	AssertionLookahead
	AssertionLookbehind
)

func (k AssertionKind) String() string {
	switch k {
	case AssertionStart:
		return "start"
	case AssertionEnd:
		return "end"
	case AssertionWord:
		return "word"
	case AssertionLookahead:
		return "lookahead"
	case AssertionLookbehind:
		return "lookbehind"
	}
	return "AssertionKind(" + strconv.Itoa(int(k)) + ")"
}

// IsLookaround reports whether k has alternatives.
func (k AssertionKind) IsLookaround() bool {
	return k == AssertionLookahead || k == AssertionLookbehind
}

// Assertion covers ^, $, \b, \B and the four lookaround forms.
type Assertion struct {
	NodeBase
	Kind AssertionKind
	// Negate is set for \B, (?!...) and (?<!...).
	Negate bool
	// Alternatives is only set for lookahead and lookbehind.
	Alternatives []*Alternative
}

type Quantifier struct {
	NodeBase
	Min int
	// Max is Unbounded for *, + and {n,}.
	Max     int
	Greedy  bool
	Element QuantifiableElement
}

type CharacterClass struct {
	NodeBase
	// UnicodeSets is set for classes parsed in v mode.
	UnicodeSets bool
	Negate      bool
	Elements    []CharacterClassElement
}

type CharacterClassRange struct {
	NodeBase
	Min *Character
	Max *Character
}

// ExpressionCharacterClass is a v-mode class whose contents are a single
// intersection or subtraction, e.g. [\w--\d].
type ExpressionCharacterClass struct {
	NodeBase
	Negate     bool
	Expression ClassSetExpression
}

type ClassIntersection struct {
	NodeBase
	// Left is a ClassIntersection or a ClassSetOperand.
	Left  Node
	Right ClassSetOperand
}

type ClassSubtraction struct {
	NodeBase
	// Left is a ClassSubtraction or a ClassSetOperand.
	Left  Node
	Right ClassSetOperand
}

// ClassStringDisjunction is \q{...}.
type ClassStringDisjunction struct {
	NodeBase
	Alternatives []*StringAlternative
}

type StringAlternative struct {
	NodeBase
	Elements []*Character
}

type Character struct {
	NodeBase
	// Value is a code point. Outside unicode mode each surrogate is a
	// Character of its own.
	Value rune
}

// CharacterSetKind distinguishes the character set variants.
type CharacterSetKind uint8

const (
	CharacterSetAny      CharacterSetKind = iota + 1 // .
	CharacterSetDigit                                // \d, \D
	CharacterSetSpace                                // \s, \S
	CharacterSetWord                                 // \w, \W
	CharacterSetProperty                             // \p{...}, \P{...}
)

func (k CharacterSetKind) String() string {
	switch k {
	case CharacterSetAny:
		return "any"
	case CharacterSetDigit:
		return "digit"
	case CharacterSetSpace:
		return "space"
	case CharacterSetWord:
		return "word"
	case CharacterSetProperty:
		return "property"
	}
	return "CharacterSetKind(" + strconv.Itoa(int(k)) + ")"
}

type CharacterSet struct {
	NodeBase
	Kind   CharacterSetKind
	Negate bool
	// Key and Value are only set for CharacterSetProperty.
	// Value is empty for lone properties, e.g. \p{ASCII}; a lone general
	// category value such as \p{Lu} has Key "General_Category".
	Key   string
	Value string
	// Strings is set for properties of strings, e.g. \p{RGI_Emoji}.
	Strings bool
}

// Ref is the target of a Backreference: either a 1-based group number or a
// group name.
type Ref struct {
	Number int
	Name   string
}

// IsNamed reports whether the reference is \k<name>.
func (r Ref) IsNamed() bool {
	return r.Name != ""
}

func (r Ref) String() string {
	if r.IsNamed() {
		return r.Name
	}
	return strconv.Itoa(r.Number)
}

type Backreference struct {
	NodeBase
	Ref Ref
	// Resolved is the group the reference points at. It is not owned.
	Resolved *CapturingGroup
}

type Flags struct {
	NodeBase
	DotAll      bool
	Global      bool
	HasIndices  bool
	IgnoreCase  bool
	Multiline   bool
	Sticky      bool
	Unicode     bool
	UnicodeSets bool
}

// String returns the flags in canonical order.
func (f *Flags) String() string {
	var b []byte
	for _, x := range [...]struct {
		set    bool
		letter byte
	}{
		{f.HasIndices, 'd'},
		{f.Global, 'g'},
		{f.IgnoreCase, 'i'},
		{f.Multiline, 'm'},
		{f.DotAll, 's'},
		{f.Unicode, 'u'},
		{f.UnicodeSets, 'v'},
		{f.Sticky, 'y'},
	} {
		if x.set {
			b = append(b, x.letter)
		}
	}
	return string(b)
}

func (*RegExpLiteral) Type() NodeType            { return NodeRegExpLiteral }
func (*Pattern) Type() NodeType                  { return NodePattern }
func (*Alternative) Type() NodeType              { return NodeAlternative }
func (*Group) Type() NodeType                    { return NodeGroup }
func (*CapturingGroup) Type() NodeType           { return NodeCapturingGroup }
func (*Assertion) Type() NodeType                { return NodeAssertion }
func (*Quantifier) Type() NodeType               { return NodeQuantifier }
func (*CharacterClass) Type() NodeType           { return NodeCharacterClass }
func (*CharacterClassRange) Type() NodeType      { return NodeCharacterClassRange }
func (*ExpressionCharacterClass) Type() NodeType { return NodeExpressionCharacterClass }
func (*ClassIntersection) Type() NodeType        { return NodeClassIntersection }
func (*ClassSubtraction) Type() NodeType         { return NodeClassSubtraction }
func (*ClassStringDisjunction) Type() NodeType   { return NodeClassStringDisjunction }
func (*StringAlternative) Type() NodeType        { return NodeStringAlternative }
func (*Character) Type() NodeType                { return NodeCharacter }
func (*CharacterSet) Type() NodeType             { return NodeCharacterSet }
func (*Backreference) Type() NodeType            { return NodeBackreference }
func (*Flags) Type() NodeType                    { return NodeFlags }

func (*Assertion) element()                {}
func (*Backreference) element()            {}
func (*CapturingGroup) element()           {}
func (*Character) element()                {}
func (*CharacterClass) element()           {}
func (*CharacterSet) element()             {}
func (*ExpressionCharacterClass) element() {}
func (*Group) element()                    {}
func (*Quantifier) element()               {}

func (*Assertion) quantifiable()                {}
func (*Backreference) quantifiable()            {}
func (*CapturingGroup) quantifiable()           {}
func (*Character) quantifiable()                {}
func (*CharacterClass) quantifiable()           {}
func (*CharacterSet) quantifiable()             {}
func (*ExpressionCharacterClass) quantifiable() {}
func (*Group) quantifiable()                    {}

func (*Character) classElement()                {}
func (*CharacterClass) classElement()           {}
func (*CharacterClassRange) classElement()      {}
func (*CharacterSet) classElement()             {}
func (*ClassStringDisjunction) classElement()   {}
func (*ExpressionCharacterClass) classElement() {}

func (*Character) classSetOperand()                {}
func (*CharacterClass) classSetOperand()           {}
func (*CharacterSet) classSetOperand()             {}
func (*ClassStringDisjunction) classSetOperand()   {}
func (*ExpressionCharacterClass) classSetOperand() {}

func (*ClassIntersection) classSetExpression() {}
func (*ClassSubtraction) classSetExpression()  {}
