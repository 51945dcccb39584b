package regsyntax

import (
	"strings"

	"github.com/auvred/regsyntax/ucd"
)

const maxDecimal = Unbounded - 1

func (v *Validator) consumeCharacterClassEscape() (ok, mayContainStrings bool, err error) {
	start := v.r.index()

	var kind CharacterSetKind
	negate := false
	switch {
	case v.r.eat('d'):
		kind = CharacterSetDigit
	case v.r.eat('D'):
		kind, negate = CharacterSetDigit, true
	case v.r.eat('s'):
		kind = CharacterSetSpace
	case v.r.eat('S'):
		kind, negate = CharacterSetSpace, true
	case v.r.eat('w'):
		kind = CharacterSetWord
	case v.r.eat('W'):
		kind, negate = CharacterSetWord, true
	}
	if kind != 0 {
		v.lastIntValue = -1
		v.h.OnEscapeCharacterSet(start-1, v.r.index(), kind, negate)
		return true, false, nil
	}

	if !v.unicodeMode || v.ecmaVersion < EcmaVersion2018 {
		return false, false, nil
	}
	if v.r.eat('p') {
		negate = false
	} else if v.r.eat('P') {
		negate = true
	} else {
		return false, false, nil
	}
	v.lastIntValue = -1
	if v.r.eat('{') {
		prop, ok, err := v.eatUnicodePropertyValueExpression()
		if err != nil {
			return false, false, err
		}
		if ok && v.r.eat('}') {
			if negate && prop.strings {
				return false, false, v.raise("Invalid property name")
			}
			v.h.OnUnicodePropertyCharacterSet(start-1, v.r.index(), prop.key, prop.value, negate, prop.strings)
			return true, prop.strings, nil
		}
	}
	return false, false, v.raise("Invalid property name")
}

func (v *Validator) consumeCharacterEscape() (bool, error) {
	start := v.r.index()
	ok := v.eatControlEscape() || v.eatCControlLetter() || v.eatZero()
	if !ok {
		var err error
		if ok, err = v.eatHexEscapeSequence(); err != nil {
			return false, err
		}
	}
	if !ok {
		var err error
		if ok, err = v.eatRegExpUnicodeEscapeSequence(false); err != nil {
			return false, err
		}
	}
	if !ok && !v.isStrict() {
		ok = v.eatLegacyOctalEscapeSequence()
	}
	if !ok {
		ok = v.eatIdentityEscape()
	}
	if !ok {
		return false, nil
	}
	v.h.OnCharacter(start-1, v.r.index(), v.lastIntValue)
	return true, nil
}

func (v *Validator) eatGroupName() (bool, error) {
	if !v.r.eat('<') {
		return false, nil
	}
	ok, err := v.eatRegExpIdentifierName()
	if err != nil {
		return false, err
	}
	if ok && v.r.eat('>') {
		return true, nil
	}
	return false, v.raise("Invalid capture group name")
}

func (v *Validator) eatRegExpIdentifierName() (bool, error) {
	ok, err := v.eatRegExpIdentifierStart()
	if err != nil || !ok {
		return false, err
	}
	var b strings.Builder
	b.WriteRune(v.lastIntValue)
	for {
		ok, err := v.eatRegExpIdentifierPart()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		b.WriteRune(v.lastIntValue)
	}
	v.lastStrValue = b.String()
	return true, nil
}

func (v *Validator) eatRegExpIdentifierStart() (bool, error) {
	return v.eatRegExpIdentifierChar(isIdentifierStartChar)
}

func (v *Validator) eatRegExpIdentifierPart() (bool, error) {
	return v.eatRegExpIdentifierChar(isIdentifierPartChar)
}

// eatRegExpIdentifierChar reads one code point of a group name. Since
// ES2020 group names are read as code points even outside unicode mode.
func (v *Validator) eatRegExpIdentifierChar(valid func(rune) bool) (bool, error) {
	start := v.r.index()
	forceUFlag := !v.unicodeMode && v.ecmaVersion >= EcmaVersion2020
	cp := v.r.current()
	v.r.advance()

	escaped := false
	if cp == '\\' {
		ok, err := v.eatRegExpUnicodeEscapeSequence(forceUFlag)
		if err != nil {
			return false, err
		}
		if ok {
			cp = v.lastIntValue
			escaped = true
		}
	}
	if !escaped && forceUFlag && isHighSurrogate(cp) && isLowSurrogate(v.r.current()) {
		cp = combineSurrogatePair(cp, v.r.current())
		v.r.advance()
	}

	if valid(cp) {
		v.lastIntValue = cp
		return true, nil
	}
	if v.r.index() != start {
		v.r.rewind(start)
	}
	return false, nil
}

func (v *Validator) eatCControlLetter() bool {
	start := v.r.index()
	if v.r.eat('c') {
		if v.eatControlLetter() {
			return true
		}
		v.r.rewind(start)
	}
	return false
}

func (v *Validator) eatZero() bool {
	if v.r.current() == '0' && !isDigit(v.r.next()) {
		v.lastIntValue = 0
		v.r.advance()
		return true
	}
	return false
}

func (v *Validator) eatControlEscape() bool {
	var value rune
	switch v.r.current() {
	case 'f':
		value = '\f'
	case 'n':
		value = '\n'
	case 'r':
		value = '\r'
	case 't':
		value = '\t'
	case 'v':
		value = '\v'
	default:
		return false
	}
	v.lastIntValue = value
	v.r.advance()
	return true
}

func (v *Validator) eatControlLetter() bool {
	cp := v.r.current()
	if isLatinLetter(cp) {
		v.r.advance()
		v.lastIntValue = cp % 0x20
		return true
	}
	return false
}

func (v *Validator) eatRegExpUnicodeEscapeSequence(forceUFlag bool) (bool, error) {
	start := v.r.index()
	uFlag := forceUFlag || v.unicodeMode
	if !v.r.eat('u') {
		return false, nil
	}
	if (uFlag && v.eatRegExpUnicodeSurrogatePairEscape()) ||
		v.eatFixedHexDigits(4) ||
		(uFlag && v.eatRegExpUnicodeCodePointEscape()) {
		return true, nil
	}
	if v.isStrict() || uFlag {
		return false, v.raise("Invalid unicode escape")
	}
	v.r.rewind(start)
	return false, nil
}

// eatRegExpUnicodeSurrogatePairEscape reads an escaped surrogate pair such as
// \uD83D\uDE00 as a single code point.
func (v *Validator) eatRegExpUnicodeSurrogatePairEscape() bool {
	start := v.r.index()
	if v.eatFixedHexDigits(4) {
		lead := v.lastIntValue
		if isHighSurrogate(lead) && v.r.eat2('\\', 'u') && v.eatFixedHexDigits(4) {
			if trail := v.lastIntValue; isLowSurrogate(trail) {
				v.lastIntValue = combineSurrogatePair(lead, trail)
				return true
			}
		}
		v.r.rewind(start)
	}
	return false
}

func (v *Validator) eatRegExpUnicodeCodePointEscape() bool {
	start := v.r.index()
	if v.r.eat('{') && v.eatHexDigits() && v.r.eat('}') && isValidUnicode(v.lastIntValue) {
		return true
	}
	v.r.rewind(start)
	return false
}

func (v *Validator) eatIdentityEscape() bool {
	cp := v.r.current()
	if v.isValidIdentityEscape(cp) {
		v.lastIntValue = cp
		v.r.advance()
		return true
	}
	return false
}

func (v *Validator) isValidIdentityEscape(cp rune) bool {
	switch {
	case cp == -1:
		return false
	case v.unicodeMode:
		return isSyntaxCharacter(cp) || cp == '/'
	case v.isStrict():
		return !ucd.IsIDContinue(cp)
	case v.nFlag:
		return cp != 'c' && cp != 'k'
	}
	return cp != 'c'
}

func (v *Validator) eatDecimalEscape() bool {
	cp := v.r.current()
	if cp < '1' || cp > '9' {
		return false
	}
	n := 0
	for isDigit(cp) {
		n = addDecimalDigit(n, cp)
		v.r.advance()
		cp = v.r.current()
	}
	v.lastNumber = n
	return true
}

type unicodeProperty struct {
	key     string
	value   string
	strings bool
}

func (v *Validator) eatUnicodePropertyValueExpression() (unicodeProperty, bool, error) {
	start := v.r.index()
	version := int(v.ecmaVersion)

	if v.eatUnicodePropertyName() && v.r.eat('=') {
		key := v.lastStrValue
		if v.eatUnicodePropertyValue() {
			value := v.lastStrValue
			if ucd.IsValidUnicodeProperty(version, key, value) {
				return unicodeProperty{key: key, value: value}, true, nil
			}
			return unicodeProperty{}, false, v.raise("Invalid property name")
		}
	}
	v.r.rewind(start)

	if v.eatLoneUnicodePropertyNameOrValue() {
		nameOrValue := v.lastStrValue
		if ucd.IsValidUnicodeProperty(version, "General_Category", nameOrValue) {
			return unicodeProperty{key: "General_Category", value: nameOrValue}, true, nil
		}
		if ucd.IsValidLoneUnicodeProperty(version, nameOrValue) {
			return unicodeProperty{key: nameOrValue}, true, nil
		}
		if v.unicodeSetsMode && ucd.IsValidLoneUnicodePropertyOfString(version, nameOrValue) {
			return unicodeProperty{key: nameOrValue, strings: true}, true, nil
		}
		return unicodeProperty{}, false, v.raise("Invalid property name")
	}
	return unicodeProperty{}, false, nil
}

func (v *Validator) eatUnicodePropertyName() bool {
	return v.eatWhile(isUnicodePropertyNameCharacter)
}

func (v *Validator) eatUnicodePropertyValue() bool {
	return v.eatWhile(isUnicodePropertyValueCharacter)
}

func (v *Validator) eatLoneUnicodePropertyNameOrValue() bool {
	return v.eatUnicodePropertyValue()
}

// eatWhile stores the longest run of code points satisfying f in
// lastStrValue and reports whether it is non-empty.
func (v *Validator) eatWhile(f func(rune) bool) bool {
	var b strings.Builder
	for cp := v.r.current(); f(cp); cp = v.r.current() {
		b.WriteRune(cp)
		v.r.advance()
	}
	v.lastStrValue = b.String()
	return b.Len() > 0
}

func (v *Validator) eatHexEscapeSequence() (bool, error) {
	start := v.r.index()
	if !v.r.eat('x') {
		return false, nil
	}
	if v.eatFixedHexDigits(2) {
		return true, nil
	}
	if v.isStrict() {
		return false, v.raise("Invalid escape")
	}
	v.r.rewind(start)
	return false, nil
}

func (v *Validator) eatDecimalDigits() bool {
	start := v.r.index()
	n := 0
	for cp := v.r.current(); isDigit(cp); cp = v.r.current() {
		n = addDecimalDigit(n, cp)
		v.r.advance()
	}
	v.lastNumber = n
	return v.r.index() != start
}

// addDecimalDigit saturates at maxDecimal, which keeps {n,huge} apart from
// {n,}.
func addDecimalDigit(n int, digit rune) int {
	d := int(digit - '0')
	if n > (maxDecimal-d)/10 {
		return maxDecimal
	}
	return n*10 + d
}

// eatHexDigits saturates just above the last code point, so an oversized
// \u{...} is still rejected.
func (v *Validator) eatHexDigits() bool {
	start := v.r.index()
	var n rune
	for cp := v.r.current(); isHexDigit(cp); cp = v.r.current() {
		n = n*16 + parseHexDigit(cp)
		if n > 0x10ffff {
			n = 0x110000
		}
		v.r.advance()
	}
	v.lastIntValue = n
	return v.r.index() != start
}

// eatLegacyOctalEscapeSequence reads up to three octal digits, the value
// staying below 0o400.
func (v *Validator) eatLegacyOctalEscapeSequence() bool {
	if !v.eatOctalDigit() {
		return false
	}
	n1 := v.lastIntValue
	if v.eatOctalDigit() {
		n2 := v.lastIntValue
		if n1 <= 3 && v.eatOctalDigit() {
			v.lastIntValue = n1*64 + n2*8 + v.lastIntValue
		} else {
			v.lastIntValue = n1*8 + n2
		}
	} else {
		v.lastIntValue = n1
	}
	return true
}

func (v *Validator) eatOctalDigit() bool {
	cp := v.r.current()
	if isOctalDigit(cp) {
		v.r.advance()
		v.lastIntValue = cp - '0'
		return true
	}
	v.lastIntValue = 0
	return false
}

func (v *Validator) eatFixedHexDigits(length int) bool {
	start := v.r.index()
	v.lastIntValue = 0
	for i := 0; i < length; i++ {
		cp := v.r.current()
		if !isHexDigit(cp) {
			v.r.rewind(start)
			return false
		}
		v.lastIntValue = 16*v.lastIntValue + parseHexDigit(cp)
		v.r.advance()
	}
	return true
}
