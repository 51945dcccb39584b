package regsyntax

import (
	"errors"
	"fmt"
	"strings"
)

func Example() {
	literal := MustParseRegExpLiteral(`/(?<y>\d{4})-\k<y>/u`, nil)
	Visit(literal, &Visitor{
		OnCapturingGroupEnter: func(g *CapturingGroup) {
			fmt.Printf("group %q at [%d,%d)\n", g.Name, g.Start, g.End)
		},
		OnQuantifierEnter: func(q *Quantifier) {
			fmt.Printf("quantifier %s {%d,%d}\n", q.Raw, q.Min, q.Max)
		},
		OnBackreferenceEnter: func(b *Backreference) {
			fmt.Printf("backreference %s -> %s\n", b.Raw, b.Resolved.Raw)
		},
	})
	fmt.Println("flags:", literal.Flags)

	// Output:
	//
	// group "y" at [1,12)
	// quantifier \d{4} {4,4}
	// backreference \k<y> -> (?<y>\d{4})
	// flags: u
}

func ExampleValidateRegExpLiteral() {
	err := ValidateRegExpLiteral(`/[z-a]/`, nil)
	var se SyntaxError
	if errors.As(err, &se) {
		fmt.Println(se.Index, se.Message)
	}

	// Output:
	// 5 Invalid regular expression: /[z-a]/: Range out of order in character class
}

// The U+1F431 CAT FACE.
// Without 'u' each surrogate code unit is a Character of its own; with 'u'
// the pair is one code point spanning two code units.
func Example_utf16() {
	for _, source := range []string{"/\U0001F431/", "/\U0001F431/u"} {
		var chars []string
		for _, e := range MustParseRegExpLiteral(source, nil).Pattern.Alternatives[0].Elements {
			c := e.(*Character)
			chars = append(chars, fmt.Sprintf("%#x [%d,%d)", c.Value, c.Start, c.End))
		}
		fmt.Println(strings.Join(chars, " "))
	}

	// Output:
	//
	// 0xd83d [1,2) 0xdc31 [2,3)
	// 0x1f431 [1,3)
}

func ExampleNewValidator() {
	v := NewValidator(&Options{EcmaVersion: EcmaVersion2017})
	fmt.Println(v.ValidateLiteral(`/(?<=a)b/`))
	fmt.Println(v.ValidatePattern(`\p{L}`, PatternFlags{Unicode: true}))
	fmt.Println(v.ValidateFlags("gimuy"))

	// Output:
	//
	// Invalid regular expression: /(?<=a)b/: Invalid group
	// Invalid regular expression: /\p{L}/u: Invalid escape
	// <nil>
}
