package regsyntax

import (
	"fmt"
	"unicode/utf16"
)

// Options configures a Validator.
type Options struct {
	// Strict disables the Annex B grammar.
	Strict bool
	// EcmaVersion defaults to LatestEcmaVersion.
	EcmaVersion EcmaVersion
	// Handler receives the structural events. It may be nil.
	Handler Handler
}

// PatternFlags are the flags that change how a bare pattern is read.
type PatternFlags struct {
	Unicode     bool
	UnicodeSets bool
}

// Validator checks regular expression source text against the ECMAScript
// grammar, reporting structural events to its Handler as it goes.
// A Validator may be reused but must not be used from several goroutines at
// once.
type Validator struct {
	strict      bool
	ecmaVersion EcmaVersion
	h           Handler

	r      reader
	srcCtx sourceContext

	unicodeMode     bool
	unicodeSetsMode bool
	nFlag           bool

	lastIntValue rune
	lastNumber   int
	lastRange    struct{ min, max int }
	lastStrValue string

	lastAssertionIsQuantifiable bool
	numCapturingParens          int
	groupNames                  map[string]struct{}
	backreferenceNames          map[string]struct{}
}

// NewValidator returns a Validator configured by opts. A nil opts is the
// same as &Options{}.
func NewValidator(opts *Options) *Validator {
	if opts == nil {
		opts = &Options{}
	}
	v := &Validator{
		strict:             opts.Strict,
		ecmaVersion:        opts.EcmaVersion.orLatest(),
		h:                  opts.Handler,
		groupNames:         map[string]struct{}{},
		backreferenceNames: map[string]struct{}{},
	}
	if v.h == nil {
		v.h = NopHandler{}
	}
	return v
}

func encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// ValidateLiteral validates a regular expression literal such as /a+/gu.
// The returned error, if any, is a SyntaxError.
func (v *Validator) ValidateLiteral(source string) error {
	u := encode(source)
	return v.ValidateLiteralUtf16(u, 0, len(u))
}

// ValidateLiteralUtf16 validates the literal in source[start:end].
// Offsets in events and errors are relative to source.
func (v *Validator) ValidateLiteralUtf16(source []uint16, start, end int) error {
	v.srcCtx = sourceContext{source: source, start: start, end: end, kind: sourceKindLiteral}
	v.unicodeMode, v.unicodeSetsMode, v.nFlag = false, false, false
	v.r.reset(source, start, end, false)

	v.h.OnLiteralEnter(start)
	if v.r.eat('/') {
		ok, err := v.eatRegExpBody()
		if err != nil {
			return err
		}
		if ok && v.r.eat('/') {
			flagStart := v.r.index()
			flags := PatternFlags{
				Unicode:     containsCodeUnit(source[flagStart:end], 'u'),
				UnicodeSets: containsCodeUnit(source[flagStart:end], 'v'),
			}
			if err := v.validateFlags(source, flagStart, end); err != nil {
				return err
			}
			if err := v.validatePattern(source, start+1, flagStart-1, flags); err != nil {
				return err
			}
			v.h.OnLiteralLeave(start, end)
			return nil
		}
	}
	if start >= end {
		return v.raise("Empty")
	}
	return v.raise(fmt.Sprintf("Unexpected character '%c'", v.r.current()))
}

// ValidateFlags validates the flags section of a literal, e.g. "gimsuy".
func (v *Validator) ValidateFlags(source string) error {
	u := encode(source)
	return v.ValidateFlagsUtf16(u, 0, len(u))
}

// ValidateFlagsUtf16 validates the flags in source[start:end].
func (v *Validator) ValidateFlagsUtf16(source []uint16, start, end int) error {
	v.srcCtx = sourceContext{source: source, start: start, end: end, kind: sourceKindFlags}
	return v.validateFlags(source, start, end)
}

// ValidatePattern validates the body of a regular expression, without the
// surrounding slashes.
func (v *Validator) ValidatePattern(source string, flags PatternFlags) error {
	u := encode(source)
	return v.ValidatePatternUtf16(u, 0, len(u), flags)
}

// ValidatePatternUtf16 validates the pattern in source[start:end].
func (v *Validator) ValidatePatternUtf16(source []uint16, start, end int, flags PatternFlags) error {
	v.srcCtx = sourceContext{source: source, start: start, end: end, kind: sourceKindPattern}
	return v.validatePattern(source, start, end, flags)
}

func containsCodeUnit(s []uint16, c uint16) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

func (v *Validator) validatePattern(source []uint16, start, end int, flags PatternFlags) error {
	if err := v.setMode(flags, end); err != nil {
		return err
	}
	v.r.reset(source, start, end, v.unicodeMode)
	if err := v.consumePattern(); err != nil {
		return err
	}

	// \k is an identity escape until a named group shows up, so scan again.
	if !v.nFlag && v.ecmaVersion >= EcmaVersion2018 && len(v.groupNames) > 0 {
		v.nFlag = true
		v.r.rewind(start)
		return v.consumePattern()
	}
	return nil
}

func (v *Validator) setMode(flags PatternFlags, end int) error {
	unicode := flags.Unicode && v.ecmaVersion >= EcmaVersion2015
	unicodeSets := flags.UnicodeSets && v.ecmaVersion >= EcmaVersion2024
	if unicode && unicodeSets {
		return newSyntaxError(v.srcCtx, true, true, end+1, "Invalid regular expression flags")
	}
	v.unicodeMode = unicode || unicodeSets
	v.unicodeSetsMode = unicodeSets
	v.nFlag = (unicode && v.ecmaVersion >= EcmaVersion2018) ||
		unicodeSets ||
		(v.strict && v.ecmaVersion >= EcmaVersion2023)
	return nil
}

func (v *Validator) validateFlags(source []uint16, start, end int) error {
	var flags FlagSet
	seen := map[uint16]struct{}{}
	for i := start; i < end; i++ {
		flag := source[i]
		if _, ok := seen[flag]; ok {
			return v.raiseAt(fmt.Sprintf("Duplicated flag '%c'", rune(flag)), start)
		}
		seen[flag] = struct{}{}

		switch {
		case flag == 'g':
			flags.Global = true
		case flag == 'i':
			flags.IgnoreCase = true
		case flag == 'm':
			flags.Multiline = true
		case flag == 'u' && v.ecmaVersion >= EcmaVersion2015:
			flags.Unicode = true
		case flag == 'y' && v.ecmaVersion >= EcmaVersion2015:
			flags.Sticky = true
		case flag == 's' && v.ecmaVersion >= EcmaVersion2018:
			flags.DotAll = true
		case flag == 'd' && v.ecmaVersion >= EcmaVersion2022:
			flags.HasIndices = true
		case flag == 'v' && v.ecmaVersion >= EcmaVersion2024:
			flags.UnicodeSets = true
		default:
			return v.raiseAt(fmt.Sprintf("Invalid flag '%c'", rune(flag)), start)
		}
	}
	v.h.OnRegExpFlags(start, end, flags)
	return nil
}

func (v *Validator) isStrict() bool {
	return v.strict || v.unicodeMode
}

func (v *Validator) raise(reason string) error {
	return v.raiseAt(reason, v.r.index())
}

func (v *Validator) raiseAt(reason string, index int) error {
	return newSyntaxError(v.srcCtx, v.unicodeMode && !v.unicodeSetsMode, v.unicodeSetsMode, index, reason)
}

// eatRegExpBody finds the closing slash of a literal.
func (v *Validator) eatRegExpBody() (bool, error) {
	start := v.r.index()
	inClass := false
	escaped := false
	for {
		cp := v.r.current()
		if cp == -1 || isLineTerminator(cp) {
			if inClass {
				return false, v.raise("Unterminated character class")
			}
			return false, v.raise("Unterminated regular expression")
		}
		if escaped {
			escaped = false
		} else if cp == '\\' {
			escaped = true
		} else if cp == '[' {
			inClass = true
		} else if cp == ']' {
			inClass = false
		} else if (cp == '/' && !inClass) || (cp == '*' && v.r.index() == start) {
			break
		}
		v.r.advance()
	}
	return v.r.index() != start, nil
}

func (v *Validator) consumePattern() error {
	start := v.r.index()
	v.numCapturingParens = v.countCapturingParens()
	clear(v.groupNames)
	clear(v.backreferenceNames)

	v.h.OnPatternEnter(start)
	if err := v.consumeDisjunction(); err != nil {
		return err
	}

	if cp := v.r.current(); cp != -1 {
		switch cp {
		case ')':
			return v.raise("Unmatched ')'")
		case '\\':
			return v.raise("\\ at end of pattern")
		case ']', '}':
			return v.raise("Lone quantifier brackets")
		}
		return v.raise(fmt.Sprintf("Unexpected character '%c'", cp))
	}
	for name := range v.backreferenceNames {
		if _, ok := v.groupNames[name]; !ok {
			return v.raise("Invalid named capture referenced")
		}
	}
	v.h.OnPatternLeave(start, v.r.index())
	return nil
}

// countCapturingParens counts the capturing groups of the whole pattern
// ahead of time, so that \N can be told apart from a legacy octal escape.
func (v *Validator) countCapturingParens() int {
	start := v.r.index()
	inClass := false
	escaped := false
	count := 0
	for cp := v.r.current(); cp != -1; cp = v.r.current() {
		if escaped {
			escaped = false
		} else if cp == '\\' {
			escaped = true
		} else if cp == '[' {
			inClass = true
		} else if cp == ']' {
			inClass = false
		} else if cp == '(' && !inClass &&
			(v.r.next() != '?' ||
				(v.r.next2() == '<' && v.r.next3() != '=' && v.r.next3() != '!')) {
			count++
		}
		v.r.advance()
	}
	v.r.rewind(start)
	return count
}

func (v *Validator) consumeDisjunction() error {
	start := v.r.index()
	v.h.OnDisjunctionEnter(start)
	for i := 0; ; i++ {
		if err := v.consumeAlternative(i); err != nil {
			return err
		}
		if !v.r.eat('|') {
			break
		}
	}

	if ok, err := v.consumeQuantifier(true); err != nil {
		return err
	} else if ok {
		return v.raise("Nothing to repeat")
	}
	if v.r.eat('{') {
		return v.raise("Lone quantifier brackets")
	}
	v.h.OnDisjunctionLeave(start, v.r.index())
	return nil
}

func (v *Validator) consumeAlternative(i int) error {
	start := v.r.index()
	v.h.OnAlternativeEnter(start, i)
	for v.r.current() != -1 {
		ok, err := v.consumeTerm()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	v.h.OnAlternativeLeave(start, v.r.index(), i)
	return nil
}

func (v *Validator) consumeTerm() (bool, error) {
	if v.isStrict() {
		if ok, err := v.consumeAssertion(); err != nil || ok {
			return ok, err
		}
		if ok, err := v.consumeAtom(); err != nil || !ok {
			return ok, err
		}
		return v.consumeOptionalQuantifier()
	}

	ok, err := v.consumeAssertion()
	if err != nil {
		return false, err
	}
	if ok {
		if !v.lastAssertionIsQuantifiable {
			return true, nil
		}
		return v.consumeOptionalQuantifier()
	}
	if ok, err := v.consumeExtendedAtom(); err != nil || !ok {
		return ok, err
	}
	return v.consumeOptionalQuantifier()
}

func (v *Validator) consumeOptionalQuantifier() (bool, error) {
	_, err := v.consumeQuantifier(false)
	return err == nil, err
}

func (v *Validator) consumeAssertion() (bool, error) {
	start := v.r.index()
	v.lastAssertionIsQuantifiable = false

	switch {
	case v.r.eat('^'):
		v.h.OnEdgeAssertion(start, v.r.index(), AssertionStart)
		return true, nil
	case v.r.eat('$'):
		v.h.OnEdgeAssertion(start, v.r.index(), AssertionEnd)
		return true, nil
	case v.r.eat2('\\', 'B'):
		v.h.OnWordBoundaryAssertion(start, v.r.index(), true)
		return true, nil
	case v.r.eat2('\\', 'b'):
		v.h.OnWordBoundaryAssertion(start, v.r.index(), false)
		return true, nil
	}

	if v.r.eat2('(', '?') {
		lookbehind := v.ecmaVersion >= EcmaVersion2018 && v.r.eat('<')
		negate := false
		ok := v.r.eat('=')
		if !ok {
			negate = v.r.eat('!')
			ok = negate
		}
		if ok {
			kind := AssertionLookahead
			if lookbehind {
				kind = AssertionLookbehind
			}
			v.h.OnLookaroundAssertionEnter(start, kind, negate)
			if err := v.consumeDisjunction(); err != nil {
				return false, err
			}
			if !v.r.eat(')') {
				return false, v.raise("Unterminated group")
			}
			v.lastAssertionIsQuantifiable = !lookbehind && !v.isStrict()
			v.h.OnLookaroundAssertionLeave(start, v.r.index(), kind, negate)
			return true, nil
		}
		v.r.rewind(start)
	}
	return false, nil
}

func (v *Validator) consumeQuantifier(noConsume bool) (bool, error) {
	start := v.r.index()
	var min, max int
	switch {
	case v.r.eat('*'):
		min, max = 0, Unbounded
	case v.r.eat('+'):
		min, max = 1, Unbounded
	case v.r.eat('?'):
		min, max = 0, 1
	default:
		ok, err := v.eatBracedQuantifier(noConsume)
		if err != nil || !ok {
			return false, err
		}
		min, max = v.lastRange.min, v.lastRange.max
	}
	greedy := !v.r.eat('?')
	if !noConsume {
		v.h.OnQuantifier(start, v.r.index(), min, max, greedy)
	}
	return true, nil
}

func (v *Validator) eatBracedQuantifier(noError bool) (bool, error) {
	start := v.r.index()
	if !v.r.eat('{') {
		return false, nil
	}
	if v.eatDecimalDigits() {
		min := v.lastNumber
		max := min
		if v.r.eat(',') {
			if v.eatDecimalDigits() {
				max = v.lastNumber
			} else {
				max = Unbounded
			}
		}
		if v.r.eat('}') {
			if !noError && max < min {
				return false, v.raise("numbers out of order in {} quantifier")
			}
			v.lastRange.min, v.lastRange.max = min, max
			return true, nil
		}
	}
	if !noError && v.isStrict() {
		return false, v.raise("Incomplete quantifier")
	}
	v.r.rewind(start)
	return false, nil
}

func (v *Validator) consumeAtom() (bool, error) {
	if v.consumePatternCharacter() || v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); err != nil || ok {
		return ok, err
	}
	if ok, _, err := v.consumeCharacterClass(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); err != nil || ok {
		return ok, err
	}
	return v.consumeCapturingGroup()
}

func (v *Validator) consumeExtendedAtom() (bool, error) {
	if v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); err != nil || ok {
		return ok, err
	}
	if v.consumeReverseSolidusFollowedByC() {
		return true, nil
	}
	if ok, _, err := v.consumeCharacterClass(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeCapturingGroup(); err != nil || ok {
		return ok, err
	}
	if err := v.consumeInvalidBracedQuantifier(); err != nil {
		return false, err
	}
	return v.consumeExtendedPatternCharacter(), nil
}

func (v *Validator) consumeDot() bool {
	if v.r.eat('.') {
		v.h.OnAnyCharacterSet(v.r.index()-1, v.r.index())
		return true
	}
	return false
}

func (v *Validator) consumeReverseSolidusAtomEscape() (bool, error) {
	start := v.r.index()
	if v.r.eat('\\') {
		ok, err := v.consumeAtomEscape()
		if err != nil || ok {
			return ok, err
		}
		v.r.rewind(start)
	}
	return false, nil
}

// consumeReverseSolidusFollowedByC reads the \ of an Annex B \c that is not
// followed by a control letter as a literal backslash.
func (v *Validator) consumeReverseSolidusFollowedByC() bool {
	start := v.r.index()
	if v.r.current() == '\\' && v.r.next() == 'c' {
		v.lastIntValue = '\\'
		v.r.advance()
		v.h.OnCharacter(start, v.r.index(), '\\')
		return true
	}
	return false
}

func (v *Validator) consumeInvalidBracedQuantifier() error {
	if ok, _ := v.eatBracedQuantifier(true); ok {
		return v.raise("Nothing to repeat")
	}
	return nil
}

func (v *Validator) consumePatternCharacter() bool {
	start := v.r.index()
	cp := v.r.current()
	if cp != -1 && !isSyntaxCharacter(cp) {
		v.r.advance()
		v.h.OnCharacter(start, v.r.index(), cp)
		return true
	}
	return false
}

func (v *Validator) consumeExtendedPatternCharacter() bool {
	start := v.r.index()
	cp := v.r.current()
	switch cp {
	case -1, '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', '|':
		return false
	}
	v.r.advance()
	v.h.OnCharacter(start, v.r.index(), cp)
	return true
}

func (v *Validator) consumeUncapturingGroup() (bool, error) {
	start := v.r.index()
	if !v.r.eat3('(', '?', ':') {
		return false, nil
	}
	v.h.OnGroupEnter(start)
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise("Unterminated group")
	}
	v.h.OnGroupLeave(start, v.r.index())
	return true, nil
}

func (v *Validator) consumeCapturingGroup() (bool, error) {
	start := v.r.index()
	if !v.r.eat('(') {
		return false, nil
	}
	name := ""
	if v.ecmaVersion >= EcmaVersion2018 {
		ok, err := v.consumeGroupSpecifier()
		if err != nil {
			return false, err
		}
		if ok {
			name = v.lastStrValue
		}
	} else if v.r.current() == '?' {
		return false, v.raise("Invalid group")
	}

	v.h.OnCapturingGroupEnter(start, name)
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise("Unterminated group")
	}
	v.h.OnCapturingGroupLeave(start, v.r.index(), name)
	return true, nil
}

func (v *Validator) consumeGroupSpecifier() (bool, error) {
	if !v.r.eat('?') {
		return false, nil
	}
	ok, err := v.eatGroupName()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, v.raise("Invalid group")
	}
	if _, dup := v.groupNames[v.lastStrValue]; dup {
		return false, v.raise("Duplicate capture group name")
	}
	v.groupNames[v.lastStrValue] = struct{}{}
	return true, nil
}

func (v *Validator) consumeAtomEscape() (bool, error) {
	if ok, err := v.consumeBackreference(); err != nil || ok {
		return ok, err
	}
	if ok, _, err := v.consumeCharacterClassEscape(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeCharacterEscape(); err != nil || ok {
		return ok, err
	}
	if v.nFlag {
		if ok, err := v.consumeKGroupName(); err != nil || ok {
			return ok, err
		}
	}
	if v.isStrict() {
		return false, v.raise("Invalid escape")
	}
	return false, nil
}

func (v *Validator) consumeBackreference() (bool, error) {
	start := v.r.index()
	if !v.eatDecimalEscape() {
		return false, nil
	}
	n := v.lastNumber
	if n <= v.numCapturingParens {
		v.h.OnBackreference(start-1, v.r.index(), Ref{Number: n})
		return true, nil
	}
	if v.isStrict() {
		return false, v.raise("Invalid escape")
	}
	v.r.rewind(start)
	return false, nil
}

func (v *Validator) consumeKGroupName() (bool, error) {
	start := v.r.index()
	if !v.r.eat('k') {
		return false, nil
	}
	ok, err := v.eatGroupName()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, v.raise("Invalid named reference")
	}
	name := v.lastStrValue
	v.backreferenceNames[name] = struct{}{}
	v.h.OnBackreference(start-1, v.r.index(), Ref{Name: name})
	return true, nil
}
