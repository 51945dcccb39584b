// Package regsyntax validates and parses ECMAScript regular expressions.
//
// It checks /pattern/flags literals, bare patterns and flag strings against
// the grammar of a chosen ECMAScript edition, from ES5 through ES2024,
// including the Annex B web-compatibility grammar, the u and v modes, named
// groups, lookbehind and v-mode set operations. A Validator reports each
// construct it recognises to a Handler; a Parser uses those events to build
// an AST whose nodes carry UTF-16 offsets into the source.
//
// Syntax errors are returned as SyntaxError values with the same messages
// and offsets a JavaScript engine's parser front end would report.
package regsyntax

// ParseRegExpLiteral parses a /pattern/flags literal.
// The returned error, if any, is a SyntaxError.
func ParseRegExpLiteral(source string, opts *ParserOptions) (*RegExpLiteral, error) {
	return NewParser(opts).ParseLiteral(source)
}

// MustParseRegExpLiteral is like [ParseRegExpLiteral] but panics if the
// literal is invalid.
// It simplifies safe initialization of global variables holding parsed
// literals.
func MustParseRegExpLiteral(source string, opts *ParserOptions) *RegExpLiteral {
	literal, err := ParseRegExpLiteral(source, opts)
	if err != nil {
		panic("regsyntax: MustParseRegExpLiteral: " + err.Error())
	}
	return literal
}

// ValidateRegExpLiteral checks a /pattern/flags literal, reporting events to
// opts.Handler if it is set.
func ValidateRegExpLiteral(source string, opts *Options) error {
	return NewValidator(opts).ValidateLiteral(source)
}
