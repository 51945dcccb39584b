package regsyntax

import (
	"unicode/utf16"

	"github.com/auvred/regsyntax/ucd"
)

const (
	backspace = 0x08
	zwnj      = 0x200c
	zwj       = 0x200d
)

func isHighSurrogate(r rune) bool {
	return (r >> 10) == (0xd800 >> 10)
}
func isLowSurrogate(r rune) bool {
	return (r >> 10) == (0xdc00 >> 10)
}

func combineSurrogatePair(hi, lo rune) rune {
	return utf16.DecodeRune(hi, lo)
}

func lowerASCII(c rune) rune {
	return c | ('a' - 'A')
}

func isDigit(c rune) bool {
	return uint32(c-'0') <= 9
}

func isOctalDigit(c rune) bool {
	return uint32(c-'0') <= 7
}

func isHexDigit(c rune) bool {
	return isDigit(c) || uint32(lowerASCII(c)-'a') <= 'f'-'a'
}

func isLatinLetter(c rune) bool {
	return uint32(lowerASCII(c)-'a') <= 'z'-'a'
}

// parseHexDigit expects c to satisfy isHexDigit.
func parseHexDigit(c rune) rune {
	return (c & 0b1111) + (c>>6)*9
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

func isValidUnicode(c rune) bool {
	return c >= 0 && c <= 0x10ffff
}

func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func isClassSetReservedDoublePunctuatorCharacter(c rune) bool {
	switch c {
	case '&', '!', '#', '$', '%', '*', '+', ',', '.', ':', ';', '<', '=', '>', '?', '@', '^', '`', '~':
		return true
	}
	return false
}

func isClassSetSyntaxCharacter(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', '/', '-', '\\', '|':
		return true
	}
	return false
}

func isClassSetReservedPunctuator(c rune) bool {
	switch c {
	case '&', '-', '!', '#', '%', ',', ':', ';', '<', '=', '>', '@', '`', '~':
		return true
	}
	return false
}

func isIdentifierStartChar(c rune) bool {
	return c == '$' || c == '_' || ucd.IsIDStart(c)
}

func isIdentifierPartChar(c rune) bool {
	return c == '$' || c == zwnj || c == zwj || ucd.IsIDContinue(c)
}

func isUnicodePropertyNameCharacter(c rune) bool {
	return isLatinLetter(c) || c == '_'
}

func isUnicodePropertyValueCharacter(c rune) bool {
	return isUnicodePropertyNameCharacter(c) || isDigit(c)
}
