package regsyntax

// ParserOptions configures a Parser.
type ParserOptions struct {
	// Strict disables the Annex B grammar.
	Strict bool
	// EcmaVersion defaults to LatestEcmaVersion.
	EcmaVersion EcmaVersion
}

// Parser builds an AST from regular expression source text.
// A Parser may be reused but must not be used from several goroutines at
// once.
type Parser struct {
	state     *parserState
	validator *Validator
}

// NewParser returns a Parser configured by opts. A nil opts is the same as
// &ParserOptions{}.
func NewParser(opts *ParserOptions) *Parser {
	if opts == nil {
		opts = &ParserOptions{}
	}
	state := &parserState{}
	return &Parser{
		state: state,
		validator: NewValidator(&Options{
			Strict:      opts.Strict,
			EcmaVersion: opts.EcmaVersion,
			Handler:     state,
		}),
	}
}

// ParseLiteral parses a regular expression literal such as /a+/gu.
// The returned error, if any, is a SyntaxError.
func (p *Parser) ParseLiteral(source string) (*RegExpLiteral, error) {
	u := encode(source)
	return p.ParseLiteralUtf16(u, 0, len(u))
}

// ParseLiteralUtf16 parses the literal in source[start:end]. Node offsets
// are relative to source.
func (p *Parser) ParseLiteralUtf16(source []uint16, start, end int) (*RegExpLiteral, error) {
	p.state.source = source
	defer p.state.reset()
	if err := p.validator.ValidateLiteralUtf16(source, start, end); err != nil {
		return nil, err
	}
	literal := &RegExpLiteral{
		NodeBase: NodeBase{Start: start, End: end, Raw: slice(source, start, end)},
		Pattern:  p.state.pattern,
		Flags:    p.state.flags,
	}
	literal.Pattern.Parent = literal
	literal.Flags.Parent = literal
	return literal, nil
}

// ParsePattern parses the body of a regular expression, without the
// surrounding slashes. The returned Pattern has no parent.
func (p *Parser) ParsePattern(source string, flags PatternFlags) (*Pattern, error) {
	u := encode(source)
	return p.ParsePatternUtf16(u, 0, len(u), flags)
}

// ParsePatternUtf16 parses the pattern in source[start:end].
func (p *Parser) ParsePatternUtf16(source []uint16, start, end int, flags PatternFlags) (*Pattern, error) {
	p.state.source = source
	defer p.state.reset()
	if err := p.validator.ValidatePatternUtf16(source, start, end, flags); err != nil {
		return nil, err
	}
	return p.state.pattern, nil
}

// ParseFlags parses the flags section of a literal, e.g. "gimsuy".
func (p *Parser) ParseFlags(source string) (*Flags, error) {
	u := encode(source)
	return p.ParseFlagsUtf16(u, 0, len(u))
}

// ParseFlagsUtf16 parses the flags in source[start:end].
func (p *Parser) ParseFlagsUtf16(source []uint16, start, end int) (*Flags, error) {
	p.state.source = source
	defer p.state.reset()
	if err := p.validator.ValidateFlagsUtf16(source, start, end); err != nil {
		return nil, err
	}
	return p.state.flags, nil
}

// parserState turns the event stream of a Validator into a tree.
//
// Most events append a child to the current node. Three constructs are only
// recognised after their operands were emitted, so the builder repairs the
// tree in place: a quantifier wraps the last element, a range absorbs the
// characters before it, and an intersection or subtraction collects operands
// in a side table until its class is closed.
type parserState struct {
	source []uint16

	node    Node
	pattern *Pattern
	flags   *Flags

	backreferences  []*Backreference
	capturingGroups []*CapturingGroup
	expressions     map[*CharacterClass]ClassSetExpression
}

var _ Handler = (*parserState)(nil)

func (s *parserState) reset() {
	s.source = nil
	s.node = nil
	s.pattern = nil
	s.flags = nil
	s.backreferences = nil
	s.capturingGroups = nil
	s.expressions = nil
}

func unknownError() {
	panic("regsyntax: unknown error")
}

func pop[T any](s *[]T) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v, true
}

func (s *parserState) base(parent Node, start, end int) NodeBase {
	return NodeBase{Parent: parent, Start: start, End: end, Raw: slice(s.source, start, end)}
}

func (s *parserState) finish(n Node, end int) {
	b := n.Base()
	b.End = end
	b.Raw = slice(s.source, b.Start, end)
	s.node = b.Parent
}

func (s *parserState) alternative() *Alternative {
	alt, ok := s.node.(*Alternative)
	if !ok {
		unknownError()
	}
	return alt
}

// appendElement adds a leaf to the current alternative, class or string
// alternative.
func (s *parserState) appendElement(n Node) {
	switch parent := s.node.(type) {
	case *Alternative:
		e, ok := n.(Element)
		if !ok {
			unknownError()
		}
		parent.Elements = append(parent.Elements, e)
	case *CharacterClass:
		e, ok := n.(CharacterClassElement)
		if !ok {
			unknownError()
		}
		parent.Elements = append(parent.Elements, e)
	case *StringAlternative:
		c, ok := n.(*Character)
		if !ok {
			unknownError()
		}
		parent.Elements = append(parent.Elements, c)
	default:
		unknownError()
	}
}

func (s *parserState) OnLiteralEnter(int)          {}
func (s *parserState) OnLiteralLeave(int, int)     {}
func (s *parserState) OnDisjunctionEnter(int)      {}
func (s *parserState) OnDisjunctionLeave(int, int) {}

func (s *parserState) OnRegExpFlags(start, end int, flags FlagSet) {
	s.flags = &Flags{
		NodeBase:    s.base(nil, start, end),
		DotAll:      flags.DotAll,
		Global:      flags.Global,
		HasIndices:  flags.HasIndices,
		IgnoreCase:  flags.IgnoreCase,
		Multiline:   flags.Multiline,
		Sticky:      flags.Sticky,
		Unicode:     flags.Unicode,
		UnicodeSets: flags.UnicodeSets,
	}
}

func (s *parserState) OnPatternEnter(start int) {
	s.pattern = &Pattern{NodeBase: s.base(nil, start, start)}
	s.node = s.pattern
	s.backreferences = s.backreferences[:0]
	s.capturingGroups = s.capturingGroups[:0]
	s.expressions = map[*CharacterClass]ClassSetExpression{}
}

func (s *parserState) OnPatternLeave(start, end int) {
	pattern, ok := s.node.(*Pattern)
	if !ok {
		unknownError()
	}
	s.finish(pattern, end)

	for _, ref := range s.backreferences {
		var group *CapturingGroup
		if ref.Ref.IsNamed() {
			for _, g := range s.capturingGroups {
				if g.Name == ref.Ref.Name {
					group = g
					break
				}
			}
		} else if n := ref.Ref.Number; n >= 1 && n <= len(s.capturingGroups) {
			group = s.capturingGroups[n-1]
		}
		if group == nil {
			unknownError()
		}
		ref.Resolved = group
		group.References = append(group.References, ref)
	}
}

func (s *parserState) OnAlternativeEnter(start, index int) {
	alt := &Alternative{NodeBase: s.base(s.node, start, start)}
	switch parent := s.node.(type) {
	case *Pattern:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *Group:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *CapturingGroup:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *Assertion:
		if !parent.Kind.IsLookaround() {
			unknownError()
		}
		parent.Alternatives = append(parent.Alternatives, alt)
	default:
		unknownError()
	}
	s.node = alt
}

func (s *parserState) OnAlternativeLeave(start, end, index int) {
	s.finish(s.alternative(), end)
}

func (s *parserState) OnGroupEnter(start int) {
	parent := s.alternative()
	g := &Group{NodeBase: s.base(parent, start, start)}
	parent.Elements = append(parent.Elements, g)
	s.node = g
}

func (s *parserState) OnGroupLeave(start, end int) {
	g, ok := s.node.(*Group)
	if !ok {
		unknownError()
	}
	s.finish(g, end)
}

func (s *parserState) OnCapturingGroupEnter(start int, name string) {
	parent := s.alternative()
	g := &CapturingGroup{NodeBase: s.base(parent, start, start), Name: name}
	parent.Elements = append(parent.Elements, g)
	s.capturingGroups = append(s.capturingGroups, g)
	s.node = g
}

func (s *parserState) OnCapturingGroupLeave(start, end int, name string) {
	g, ok := s.node.(*CapturingGroup)
	if !ok {
		unknownError()
	}
	s.finish(g, end)
}

func (s *parserState) OnQuantifier(start, end, min, max int, greedy bool) {
	parent := s.alternative()
	last, ok := pop(&parent.Elements)
	if !ok {
		unknownError()
	}
	element, ok := last.(QuantifiableElement)
	if !ok {
		unknownError()
	}
	if a, isAssertion := element.(*Assertion); isAssertion && a.Kind != AssertionLookahead {
		unknownError()
	}
	q := &Quantifier{
		NodeBase: s.base(parent, element.Base().Start, end),
		Min:      min,
		Max:      max,
		Greedy:   greedy,
		Element:  element,
	}
	element.Base().Parent = q
	parent.Elements = append(parent.Elements, q)
}

func (s *parserState) OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool) {
	if !kind.IsLookaround() {
		unknownError()
	}
	parent := s.alternative()
	a := &Assertion{NodeBase: s.base(parent, start, start), Kind: kind, Negate: negate}
	parent.Elements = append(parent.Elements, a)
	s.node = a
}

func (s *parserState) OnLookaroundAssertionLeave(start, end int, kind AssertionKind, negate bool) {
	a, ok := s.node.(*Assertion)
	if !ok {
		unknownError()
	}
	s.finish(a, end)
}

func (s *parserState) OnEdgeAssertion(start, end int, kind AssertionKind) {
	parent := s.alternative()
	parent.Elements = append(parent.Elements, &Assertion{NodeBase: s.base(parent, start, end), Kind: kind})
}

func (s *parserState) OnWordBoundaryAssertion(start, end int, negate bool) {
	parent := s.alternative()
	parent.Elements = append(parent.Elements, &Assertion{
		NodeBase: s.base(parent, start, end),
		Kind:     AssertionWord,
		Negate:   negate,
	})
}

func (s *parserState) OnAnyCharacterSet(start, end int) {
	parent := s.alternative()
	parent.Elements = append(parent.Elements, &CharacterSet{NodeBase: s.base(parent, start, end), Kind: CharacterSetAny})
}

func (s *parserState) OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool) {
	s.appendElement(&CharacterSet{NodeBase: s.base(s.node, start, end), Kind: kind, Negate: negate})
}

func (s *parserState) OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool) {
	if strings {
		if class, ok := s.node.(*CharacterClass); (ok && !class.UnicodeSets) || negate || value != "" {
			unknownError()
		}
	}
	s.appendElement(&CharacterSet{
		NodeBase: s.base(s.node, start, end),
		Kind:     CharacterSetProperty,
		Negate:   negate,
		Key:      key,
		Value:    value,
		Strings:  strings,
	})
}

func (s *parserState) OnCharacter(start, end int, value rune) {
	s.appendElement(&Character{NodeBase: s.base(s.node, start, end), Value: value})
}

func (s *parserState) OnBackreference(start, end int, ref Ref) {
	parent := s.alternative()
	b := &Backreference{NodeBase: s.base(parent, start, end), Ref: ref}
	parent.Elements = append(parent.Elements, b)
	s.backreferences = append(s.backreferences, b)
}

func (s *parserState) OnCharacterClassEnter(start int, negate, unicodeSets bool) {
	class := &CharacterClass{NodeBase: s.base(s.node, start, start), UnicodeSets: unicodeSets, Negate: negate}
	switch parent := s.node.(type) {
	case *Alternative:
		parent.Elements = append(parent.Elements, class)
	case *CharacterClass:
		if !parent.UnicodeSets || !unicodeSets {
			unknownError()
		}
		parent.Elements = append(parent.Elements, class)
	default:
		unknownError()
	}
	s.node = class
}

func (s *parserState) OnCharacterClassLeave(start, end int, negate bool) {
	class, ok := s.node.(*CharacterClass)
	if !ok {
		unknownError()
	}
	s.finish(class, end)

	expression, ok := s.expressions[class]
	if !ok {
		return
	}
	if len(class.Elements) > 0 {
		unknownError()
	}
	delete(s.expressions, class)

	// The class turned out to hold a set expression; swap in its replacement
	// where the class was appended.
	replacement := &ExpressionCharacterClass{
		NodeBase:   class.NodeBase,
		Negate:     class.Negate,
		Expression: expression,
	}
	expression.Base().Parent = replacement
	switch parent := class.Parent.(type) {
	case *Alternative:
		if last, ok := pop(&parent.Elements); !ok || last != Element(class) {
			unknownError()
		}
		parent.Elements = append(parent.Elements, replacement)
	case *CharacterClass:
		if last, ok := pop(&parent.Elements); !ok || last != CharacterClassElement(class) {
			unknownError()
		}
		parent.Elements = append(parent.Elements, replacement)
	default:
		unknownError()
	}
}

func (s *parserState) OnCharacterClassRange(start, end int, min, max rune) {
	parent, ok := s.node.(*CharacterClass)
	if !ok {
		unknownError()
	}
	popCharacter := func() *Character {
		e, _ := pop(&parent.Elements)
		c, ok := e.(*Character)
		if !ok {
			unknownError()
		}
		return c
	}
	maxChar := popCharacter()
	if !parent.UnicodeSets {
		if hyphen := popCharacter(); hyphen.Value != '-' {
			unknownError()
		}
	}
	minChar := popCharacter()

	r := &CharacterClassRange{NodeBase: s.base(parent, start, end), Min: minChar, Max: maxChar}
	minChar.Parent = r
	maxChar.Parent = r
	parent.Elements = append(parent.Elements, r)
}

// setOperands pops the right operand of a set operation and finds its left
// one: either the expression built so far for the class, or the element
// before the right operand.
func (s *parserState) setOperands() (*CharacterClass, Node, ClassSetOperand) {
	parent, ok := s.node.(*CharacterClass)
	if !ok || !parent.UnicodeSets {
		unknownError()
	}
	last, _ := pop(&parent.Elements)
	right, ok := last.(ClassSetOperand)
	if !ok {
		unknownError()
	}
	if left, ok := s.expressions[parent]; ok {
		return parent, left, right
	}
	first, _ := pop(&parent.Elements)
	left, ok := first.(ClassSetOperand)
	if !ok {
		unknownError()
	}
	return parent, left, right
}

func (s *parserState) OnClassIntersection(start, end int) {
	parent, left, right := s.setOperands()
	if _, ok := left.(*ClassSubtraction); ok {
		unknownError()
	}
	n := &ClassIntersection{NodeBase: s.base(parent, start, end), Left: left, Right: right}
	left.Base().Parent = n
	right.Base().Parent = n
	s.expressions[parent] = n
}

func (s *parserState) OnClassSubtraction(start, end int) {
	parent, left, right := s.setOperands()
	if _, ok := left.(*ClassIntersection); ok {
		unknownError()
	}
	n := &ClassSubtraction{NodeBase: s.base(parent, start, end), Left: left, Right: right}
	left.Base().Parent = n
	right.Base().Parent = n
	s.expressions[parent] = n
}

func (s *parserState) OnClassStringDisjunctionEnter(start int) {
	parent, ok := s.node.(*CharacterClass)
	if !ok || !parent.UnicodeSets {
		unknownError()
	}
	d := &ClassStringDisjunction{NodeBase: s.base(parent, start, start)}
	parent.Elements = append(parent.Elements, d)
	s.node = d
}

func (s *parserState) OnClassStringDisjunctionLeave(start, end int) {
	d, ok := s.node.(*ClassStringDisjunction)
	if !ok {
		unknownError()
	}
	s.finish(d, end)
}

func (s *parserState) OnStringAlternativeEnter(start, index int) {
	parent, ok := s.node.(*ClassStringDisjunction)
	if !ok {
		unknownError()
	}
	alt := &StringAlternative{NodeBase: s.base(parent, start, start)}
	parent.Alternatives = append(parent.Alternatives, alt)
	s.node = alt
}

func (s *parserState) OnStringAlternativeLeave(start, end, index int) {
	alt, ok := s.node.(*StringAlternative)
	if !ok {
		unknownError()
	}
	s.finish(alt, end)
}
