package regsyntax

import (
	"unicode/utf16"
)

// reader walks a UTF-16 source as a sequence of code points, keeping four
// code points of lookahead.
// In unicode mode a surrogate pair lying entirely before end is read as one
// code point; otherwise every code unit is a code point of its own.
type reader struct {
	source  []uint16
	end     int
	unicode bool
	pos     int

	// cp[0] is the current code point, -1 past the end.
	cp [4]rune
	// w[i] is the number of code units cp[i] occupies.
	w [4]int
}

func (r *reader) reset(source []uint16, start, end int, unicode bool) {
	r.source = source
	r.end = end
	r.unicode = unicode
	r.rewind(start)
}

// rewind moves the cursor to an arbitrary index.
func (r *reader) rewind(index int) {
	r.pos = index
	for i := range r.cp {
		r.cp[i] = r.at(index)
		r.w[i] = width(r.cp[i])
		index += r.w[i]
	}
}

func (r *reader) advance() {
	if r.cp[0] == -1 {
		return
	}
	r.pos += r.w[0]
	copy(r.cp[:], r.cp[1:])
	copy(r.w[:], r.w[1:])
	index := r.pos + r.w[0] + r.w[1] + r.w[2]
	r.cp[3] = r.at(index)
	r.w[3] = width(r.cp[3])
}

func (r *reader) eat(cp rune) bool {
	if r.cp[0] == cp {
		r.advance()
		return true
	}
	return false
}

func (r *reader) eat2(cp1, cp2 rune) bool {
	if r.cp[0] == cp1 && r.cp[1] == cp2 {
		r.advance()
		r.advance()
		return true
	}
	return false
}

func (r *reader) eat3(cp1, cp2, cp3 rune) bool {
	if r.cp[0] == cp1 && r.cp[1] == cp2 && r.cp[2] == cp3 {
		r.advance()
		r.advance()
		r.advance()
		return true
	}
	return false
}

func (r *reader) index() int   { return r.pos }
func (r *reader) current() rune { return r.cp[0] }
func (r *reader) next() rune    { return r.cp[1] }
func (r *reader) next2() rune   { return r.cp[2] }
func (r *reader) next3() rune   { return r.cp[3] }

func (r *reader) at(i int) rune {
	if i >= r.end {
		return -1
	}
	c := rune(r.source[i])
	if r.unicode && isHighSurrogate(c) && i+1 < r.end {
		if lo := rune(r.source[i+1]); isLowSurrogate(lo) {
			return utf16.DecodeRune(c, lo)
		}
	}
	return c
}

func width(cp rune) int {
	if cp > 0xffff {
		return 2
	}
	return 1
}

// slice decodes source[start:end] into a Go string.
// Lone surrogates become U+FFFD.
func slice(source []uint16, start, end int) string {
	return string(utf16.Decode(source[start:end]))
}
