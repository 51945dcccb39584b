package regsyntax

import (
	"unicode/utf16"
)

// SyntaxError reports the first grammar violation found in a regular
// expression.
type SyntaxError struct {
	// Message is the full text, e.g.
	// "Invalid regular expression: /[z-a]/: Range out of order in character class".
	Message string
	// Index is the UTF-16 offset into the source where the violation was found.
	Index int
}

func (e SyntaxError) Error() string {
	return e.Message
}

var _ error = (*SyntaxError)(nil)

type sourceKind uint8

const (
	sourceKindFlags sourceKind = iota
	sourceKindLiteral
	sourceKindPattern
)

type sourceContext struct {
	source []uint16
	start  int
	end    int
	kind   sourceKind
}

func newSyntaxError(ctx sourceContext, unicode, unicodeSets bool, index int, reason string) SyntaxError {
	snippet := ""
	switch ctx.kind {
	case sourceKindLiteral:
		if literal := ctx.source[ctx.start:ctx.end]; len(literal) > 0 {
			snippet = ": " + string(utf16.Decode(literal))
		}
	case sourceKindPattern:
		flags := ""
		if unicode {
			flags += "u"
		}
		if unicodeSets {
			flags += "v"
		}
		snippet = ": /" + string(utf16.Decode(ctx.source[ctx.start:ctx.end])) + "/" + flags
	}
	return SyntaxError{
		Message: "Invalid regular expression" + snippet + ": " + reason,
		Index:   index,
	}
}
