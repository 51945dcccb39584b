package regsyntax

// FlagSet is the decoded flags section of a literal.
type FlagSet struct {
	Global      bool // g
	IgnoreCase  bool // i
	Multiline   bool // m
	Unicode     bool // u
	Sticky      bool // y
	DotAll      bool // s
	HasIndices  bool // d
	UnicodeSets bool // v
}

// Handler receives the structural events of a validation run, in source
// order. Branching constructs get an Enter/Leave pair, leaves get a single
// event. All offsets are UTF-16 code-unit indices.
//
// A pattern that declares named groups is scanned twice when the flags did
// not already enable named references, so a Handler may observe
// OnPatternEnter more than once for a single call. Only the last pass is
// complete.
//
// Embed NopHandler to implement only the events of interest.
type Handler interface {
	OnLiteralEnter(start int)
	OnLiteralLeave(start, end int)
	OnRegExpFlags(start, end int, flags FlagSet)
	OnPatternEnter(start int)
	OnPatternLeave(start, end int)
	OnDisjunctionEnter(start int)
	OnDisjunctionLeave(start, end int)
	OnAlternativeEnter(start, index int)
	OnAlternativeLeave(start, end, index int)
	OnGroupEnter(start int)
	OnGroupLeave(start, end int)
	// name is empty for unnamed groups.
	OnCapturingGroupEnter(start int, name string)
	OnCapturingGroupLeave(start, end int, name string)
	// max is Unbounded for *, + and {n,}.
	OnQuantifier(start, end, min, max int, greedy bool)
	OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool)
	OnLookaroundAssertionLeave(start, end int, kind AssertionKind, negate bool)
	OnEdgeAssertion(start, end int, kind AssertionKind)
	OnWordBoundaryAssertion(start, end int, negate bool)
	OnAnyCharacterSet(start, end int)
	OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool)
	// value is empty for lone properties such as \p{ASCII}.
	OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool)
	OnCharacter(start, end int, value rune)
	OnBackreference(start, end int, ref Ref)
	OnCharacterClassEnter(start int, negate, unicodeSets bool)
	OnCharacterClassLeave(start, end int, negate bool)
	OnCharacterClassRange(start, end int, min, max rune)
	OnClassIntersection(start, end int)
	OnClassSubtraction(start, end int)
	OnClassStringDisjunctionEnter(start int)
	OnClassStringDisjunctionLeave(start, end int)
	OnStringAlternativeEnter(start, index int)
	OnStringAlternativeLeave(start, end, index int)
}

// NopHandler implements every Handler method as a no-op.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnLiteralEnter(int)                                                 {}
func (NopHandler) OnLiteralLeave(int, int)                                            {}
func (NopHandler) OnRegExpFlags(int, int, FlagSet)                                    {}
func (NopHandler) OnPatternEnter(int)                                                 {}
func (NopHandler) OnPatternLeave(int, int)                                            {}
func (NopHandler) OnDisjunctionEnter(int)                                             {}
func (NopHandler) OnDisjunctionLeave(int, int)                                        {}
func (NopHandler) OnAlternativeEnter(int, int)                                        {}
func (NopHandler) OnAlternativeLeave(int, int, int)                                   {}
func (NopHandler) OnGroupEnter(int)                                                   {}
func (NopHandler) OnGroupLeave(int, int)                                              {}
func (NopHandler) OnCapturingGroupEnter(int, string)                                  {}
func (NopHandler) OnCapturingGroupLeave(int, int, string)                             {}
func (NopHandler) OnQuantifier(int, int, int, int, bool)                              {}
func (NopHandler) OnLookaroundAssertionEnter(int, AssertionKind, bool)                {}
func (NopHandler) OnLookaroundAssertionLeave(int, int, AssertionKind, bool)           {}
func (NopHandler) OnEdgeAssertion(int, int, AssertionKind)                            {}
func (NopHandler) OnWordBoundaryAssertion(int, int, bool)                             {}
func (NopHandler) OnAnyCharacterSet(int, int)                                         {}
func (NopHandler) OnEscapeCharacterSet(int, int, CharacterSetKind, bool)              {}
func (NopHandler) OnUnicodePropertyCharacterSet(int, int, string, string, bool, bool) {}
func (NopHandler) OnCharacter(int, int, rune)                                         {}
func (NopHandler) OnBackreference(int, int, Ref)                                      {}
func (NopHandler) OnCharacterClassEnter(int, bool, bool)                              {}
func (NopHandler) OnCharacterClassLeave(int, int, bool)                               {}
func (NopHandler) OnCharacterClassRange(int, int, rune, rune)                         {}
func (NopHandler) OnClassIntersection(int, int)                                       {}
func (NopHandler) OnClassSubtraction(int, int)                                        {}
func (NopHandler) OnClassStringDisjunctionEnter(int)                                  {}
func (NopHandler) OnClassStringDisjunctionLeave(int, int)                             {}
func (NopHandler) OnStringAlternativeEnter(int, int)                                  {}
func (NopHandler) OnStringAlternativeLeave(int, int, int)                             {}
