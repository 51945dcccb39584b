// Package ucd answers the Unicode questions an ECMAScript regular
// expression grammar asks: identifier membership for group names and the
// per-edition validity of \p{...} property names and values.
package ucd

import "unicode"

var idStartTables = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
}

var idContinueTables = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
	unicode.Other_ID_Continue,
}

func isPatternSyntaxOrSpace(r rune) bool {
	return unicode.Is(unicode.Pattern_Syntax, r) || unicode.Is(unicode.Pattern_White_Space, r)
}

// IsIDStart reports whether r has the ID_Start derived core property.
func IsIDStart(r rune) bool {
	if r < 0x80 {
		return 'a' <= r|0x20 && r|0x20 <= 'z'
	}
	return unicode.IsOneOf(idStartTables, r) && !isPatternSyntaxOrSpace(r)
}

// IsIDContinue reports whether r has the ID_Continue derived core property.
func IsIDContinue(r rune) bool {
	if r < 0x80 {
		return 'a' <= r|0x20 && r|0x20 <= 'z' || '0' <= r && r <= '9' || r == '_'
	}
	return unicode.IsOneOf(idContinueTables, r) && !isPatternSyntaxOrSpace(r)
}
