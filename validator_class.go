package regsyntax

// Character classes. Outside v mode a class is a flat list of atoms and
// ranges; in v mode it is a ClassSetExpression: a union, or a chain of
// intersections or subtractions, over operands that may be nested classes.
//
// The mayContainStrings results track whether a v-mode operand can match a
// string of more than one code point, which negation forbids.

func (v *Validator) consumeCharacterClass() (ok, mayContainStrings bool, err error) {
	start := v.r.index()
	if !v.r.eat('[') {
		return false, false, nil
	}
	negate := v.r.eat('^')
	v.h.OnCharacterClassEnter(start, negate, v.unicodeSetsMode)
	mayContainStrings, err = v.consumeClassContents()
	if err != nil {
		return false, false, err
	}
	if !v.r.eat(']') {
		if v.r.current() == -1 {
			return false, false, v.raise("Unterminated character class")
		}
		return false, false, v.raise("Invalid character in character class")
	}
	if negate && mayContainStrings {
		return false, false, v.raise("Negated character class may contain strings")
	}
	v.h.OnCharacterClassLeave(start, v.r.index(), negate)
	return true, mayContainStrings, nil
}

func (v *Validator) consumeClassContents() (bool, error) {
	if v.unicodeSetsMode {
		if v.r.current() == ']' {
			return false, nil
		}
		return v.consumeClassSetExpression()
	}

	strict := v.isStrict()
	for {
		rangeStart := v.r.index()
		ok, err := v.consumeClassAtom()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		min := v.lastIntValue

		if !v.r.eat('-') {
			continue
		}
		v.h.OnCharacter(v.r.index()-1, v.r.index(), '-')

		ok, err = v.consumeClassAtom()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		max := v.lastIntValue

		if min == -1 || max == -1 {
			if strict {
				return false, v.raise("Invalid character class")
			}
			continue
		}
		if min > max {
			return false, v.raise("Range out of order in character class")
		}
		v.h.OnCharacterClassRange(rangeStart, v.r.index(), min, max)
	}
	return false, nil
}

func (v *Validator) consumeClassAtom() (bool, error) {
	start := v.r.index()
	cp := v.r.current()
	if cp != -1 && cp != '\\' && cp != ']' {
		v.r.advance()
		v.lastIntValue = cp
		v.h.OnCharacter(start, v.r.index(), cp)
		return true, nil
	}

	if v.r.eat('\\') {
		if ok, err := v.consumeClassEscape(); err != nil || ok {
			return ok, err
		}
		if !v.isStrict() && v.r.current() == 'c' {
			v.lastIntValue = '\\'
			v.h.OnCharacter(start, v.r.index(), '\\')
			return true, nil
		}
		if v.isStrict() {
			return false, v.raise("Invalid escape")
		}
		v.r.rewind(start)
	}
	return false, nil
}

func (v *Validator) consumeClassEscape() (bool, error) {
	start := v.r.index()

	if v.r.eat('b') {
		v.lastIntValue = backspace
		v.h.OnCharacter(start-1, v.r.index(), backspace)
		return true, nil
	}

	if v.unicodeMode && v.r.eat('-') {
		v.lastIntValue = '-'
		v.h.OnCharacter(start-1, v.r.index(), '-')
		return true, nil
	}

	// Annex B: [\c0] and [\c_].
	if !v.isStrict() && v.r.current() == 'c' {
		if cp := v.r.next(); isDigit(cp) || cp == '_' {
			v.r.advance()
			v.r.advance()
			v.lastIntValue = cp % 0x20
			v.h.OnCharacter(start-1, v.r.index(), v.lastIntValue)
			return true, nil
		}
	}

	if ok, _, err := v.consumeCharacterClassEscape(); err != nil || ok {
		return ok, err
	}
	return v.consumeCharacterEscape()
}

func (v *Validator) consumeClassSetExpression() (bool, error) {
	start := v.r.index()
	mayContainStrings := false

	ok, err := v.consumeClassSetCharacter()
	if err != nil {
		return false, err
	}
	if ok {
		ranged, err := v.consumeClassSetRangeFromOperator(start)
		if err != nil {
			return false, err
		}
		if ranged {
			return v.consumeClassUnionRight(false)
		}
	} else {
		ok, m, err := v.consumeClassSetOperand()
		if err != nil {
			return false, err
		}
		if !ok {
			cp := v.r.current()
			if cp == '\\' {
				v.r.advance()
				return false, v.raise("Invalid escape")
			}
			if cp == v.r.next() && isClassSetReservedDoublePunctuatorCharacter(cp) {
				return false, v.raise("Invalid set operation in character class")
			}
			return false, v.raise("Invalid character in character class")
		}
		mayContainStrings = m
	}

	if v.r.eat2('&', '&') {
		for v.r.current() != '&' {
			ok, m, err := v.consumeClassSetOperand()
			if err != nil {
				return false, err
			}
			if !ok {
				break
			}
			v.h.OnClassIntersection(start, v.r.index())
			if !m {
				mayContainStrings = false
			}
			if !v.r.eat2('&', '&') {
				return mayContainStrings, nil
			}
		}
		return false, v.raise("Invalid character in character class")
	}

	if v.r.eat2('-', '-') {
		for {
			ok, _, err := v.consumeClassSetOperand()
			if err != nil {
				return false, err
			}
			if !ok {
				break
			}
			v.h.OnClassSubtraction(start, v.r.index())
			if !v.r.eat2('-', '-') {
				return mayContainStrings, nil
			}
		}
		return false, v.raise("Invalid character in character class")
	}

	return v.consumeClassUnionRight(mayContainStrings)
}

func (v *Validator) consumeClassUnionRight(mayContainStrings bool) (bool, error) {
	for {
		start := v.r.index()
		ok, err := v.consumeClassSetCharacter()
		if err != nil {
			return false, err
		}
		if ok {
			if _, err := v.consumeClassSetRangeFromOperator(start); err != nil {
				return false, err
			}
			continue
		}
		ok, m, err := v.consumeClassSetOperand()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		if m {
			mayContainStrings = true
		}
	}
	// A following && or -- is left for the caller to reject.
	return mayContainStrings, nil
}

func (v *Validator) consumeClassSetRangeFromOperator(start int) (bool, error) {
	currentStart := v.r.index()
	min := v.lastIntValue
	if !v.r.eat('-') {
		return false, nil
	}
	ok, err := v.consumeClassSetCharacter()
	if err != nil {
		return false, err
	}
	if !ok {
		v.r.rewind(currentStart)
		return false, nil
	}
	max := v.lastIntValue
	if min == -1 || max == -1 {
		return false, v.raise("Invalid character class")
	}
	if min > max {
		return false, v.raise("Range out of order in character class")
	}
	v.h.OnCharacterClassRange(start, v.r.index(), min, max)
	return true, nil
}

func (v *Validator) consumeClassSetOperand() (ok, mayContainStrings bool, err error) {
	if ok, m, err := v.consumeNestedClass(); err != nil || ok {
		return ok, m, err
	}
	if ok, m, err := v.consumeClassStringDisjunction(); err != nil || ok {
		return ok, m, err
	}
	ok, err = v.consumeClassSetCharacter()
	return ok, false, err
}

func (v *Validator) consumeNestedClass() (ok, mayContainStrings bool, err error) {
	start := v.r.index()
	if v.r.eat('[') {
		negate := v.r.eat('^')
		v.h.OnCharacterClassEnter(start, negate, true)
		mayContainStrings, err = v.consumeClassContents()
		if err != nil {
			return false, false, err
		}
		if !v.r.eat(']') {
			return false, false, v.raise("Unterminated character class")
		}
		if negate && mayContainStrings {
			return false, false, v.raise("Negated character class may contain strings")
		}
		v.h.OnCharacterClassLeave(start, v.r.index(), negate)
		return true, mayContainStrings, nil
	}
	if v.r.eat('\\') {
		ok, m, err := v.consumeCharacterClassEscape()
		if err != nil || ok {
			return ok, m, err
		}
		v.r.rewind(start)
	}
	return false, false, nil
}

func (v *Validator) consumeClassStringDisjunction() (ok, mayContainStrings bool, err error) {
	start := v.r.index()
	if !v.r.eat3('\\', 'q', '{') {
		return false, false, nil
	}
	v.h.OnClassStringDisjunctionEnter(start)
	for i := 0; ; i++ {
		m, err := v.consumeClassString(i)
		if err != nil {
			return false, false, err
		}
		if m {
			mayContainStrings = true
		}
		if !v.r.eat('|') {
			break
		}
	}
	if !v.r.eat('}') {
		return false, false, v.raise("Unterminated class string disjunction")
	}
	v.h.OnClassStringDisjunctionLeave(start, v.r.index())
	return true, mayContainStrings, nil
}

// consumeClassString reads one alternative of \q{...}. Anything but a single
// code point counts as a string, the empty alternative included.
func (v *Validator) consumeClassString(i int) (bool, error) {
	start := v.r.index()
	count := 0
	v.h.OnStringAlternativeEnter(start, i)
	for v.r.current() != -1 {
		ok, err := v.consumeClassSetCharacter()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		count++
	}
	v.h.OnStringAlternativeLeave(start, v.r.index(), i)
	return count != 1, nil
}

func (v *Validator) consumeClassSetCharacter() (bool, error) {
	start := v.r.index()
	cp := v.r.current()
	if cp != v.r.next() || !isClassSetReservedDoublePunctuatorCharacter(cp) {
		if cp != -1 && !isClassSetSyntaxCharacter(cp) {
			v.lastIntValue = cp
			v.r.advance()
			v.h.OnCharacter(start, v.r.index(), cp)
			return true, nil
		}
	}

	if v.r.eat('\\') {
		if ok, err := v.consumeCharacterEscape(); err != nil || ok {
			return ok, err
		}
		if cp := v.r.current(); isClassSetReservedPunctuator(cp) {
			v.lastIntValue = cp
			v.r.advance()
			v.h.OnCharacter(start, v.r.index(), cp)
			return true, nil
		}
		if v.r.eat('b') {
			v.lastIntValue = backspace
			v.h.OnCharacter(start, v.r.index(), backspace)
			return true, nil
		}
		v.r.rewind(start)
	}
	return false, nil
}
