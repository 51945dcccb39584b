package lint

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/auvred/regsyntax"
	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestCheck(t *testing.T) {
	f, err := os.Open("testdata/sample.regex")
	assert.NilError(t, err)
	defer f.Close()

	diags, err := Check(f, Config{})
	assert.NilError(t, err)
	want := []Diagnostic{
		{
			Line:    4,
			Column:  7,
			Literal: "/[z-a]/",
			Message: "Invalid regular expression: /[z-a]/: Range out of order in character class",
		},
		{
			Line:    6,
			Column:  2,
			Literal: "/(?<a>x)/",
			Message: "Invalid regular expression: /(?<a>x)/: Invalid group",
		},
		{
			Line:    8,
			Column:  3,
			Literal: "/a{/",
			Message: "Invalid regular expression: /a{/: Incomplete quantifier",
		},
		{
			Line:    11,
			Column:  0,
			Literal: "#regsyntax: bogus",
			Message: `invalid directive: unknown setting "bogus"`,
		},
		{
			Line:    12,
			Column:  1,
			Literal: "#regsyntax: ecmaVersion=1999",
			Message: `invalid directive: unsupported ecmaVersion "1999"`,
		},
	}
	if diff := cmp.Diff(want, diags); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckConfig(t *testing.T) {
	src := "/\\p{L}/u\n/(?<=a)b/\n"
	diags, err := Check(strings.NewReader(src), Config{})
	assert.NilError(t, err)
	assert.Equal(t, len(diags), 0)

	diags, err = Check(strings.NewReader(src), Config{EcmaVersion: regsyntax.EcmaVersion2017})
	assert.NilError(t, err)
	assert.Equal(t, len(diags), 2)
	assert.Equal(t, diags[0].Line, 1)
	assert.Equal(t, diags[1].Line, 2)
	assert.Equal(t, diags[1].String(), "2:2: Invalid regular expression: /(?<=a)b/: Invalid group")
}

func TestCheckUTF16Column(t *testing.T) {
	// The cat face takes two UTF-16 code units.
	diags, err := Check(strings.NewReader("/\U0001F431[z-a]/\r\n"), Config{})
	assert.NilError(t, err)
	assert.Equal(t, len(diags), 1)
	assert.Equal(t, diags[0].Column, 7)
	assert.Equal(t, diags[0].Literal, "/\U0001F431[z-a]/")
}

func TestDirective(t *testing.T) {
	for _, c := range []struct {
		text string
		want Config
		err  string
	}{
		{text: " ecmaVersion=2015", want: Config{EcmaVersion: regsyntax.EcmaVersion2015}},
		{text: " ecmaVersion=latest strict", want: Config{EcmaVersion: regsyntax.EcmaVersion2024, Strict: true}},
		{text: "strict=true strict=false", want: Config{}},
		{text: "", want: Config{}},
		{text: " ecmaVersion", err: "ecmaVersion needs a value"},
		{text: " strict=maybe", err: "invalid directive: strict=maybe"},
		{text: " =2018", err: "invalid directive"},
	} {
		t.Run(c.text, func(t *testing.T) {
			got, err := Config{}.apply(c.text)
			if c.err != "" {
				assert.ErrorContains(t, err, c.err)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, c.want)
		})
	}
}

func TestCheckReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("/[z-a]/\n"), iotest.ErrReader(boom))
	diags, err := Check(r, Config{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, len(diags), 1)
}
