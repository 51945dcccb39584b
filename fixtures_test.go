package regsyntax

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

type fixtureError struct {
	Message string `yaml:"message"`
	Index   int    `yaml:"index"`
}

type fixtureCase struct {
	Source string        `yaml:"source"`
	Error  *fixtureError `yaml:"error"`
}

type literalFixture struct {
	Options struct {
		Strict      bool `yaml:"strict"`
		EcmaVersion int  `yaml:"ecmaVersion"`
	} `yaml:"options"`
	Patterns []fixtureCase `yaml:"patterns"`
}

// literalProbe records where a literal's pattern lies and whether
// validation got as far as the pattern.
type literalProbe struct {
	NopHandler
	flagsStart int
	entered    bool
}

func (p *literalProbe) OnRegExpFlags(start, _ int, _ FlagSet) { p.flagsStart = start }
func (p *literalProbe) OnPatternEnter(int)                    { p.entered = true }

func TestFixtures(t *testing.T) {
	root := filepath.Join("testdata", "literal")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".yaml" {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var fixture literalFixture
		if err := yaml.Unmarshal(content, &fixture); err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := ParserOptions{
				Strict:      fixture.Options.Strict,
				EcmaVersion: EcmaVersion(fixture.Options.EcmaVersion),
			}
			for _, c := range fixture.Patterns {
				t.Run(c.Source, func(t *testing.T) {
					runFixture(t, opts, c)
				})
			}
		})
		return nil
	})
	assert.NilError(t, err)
}

func runFixture(t *testing.T, opts ParserOptions, c fixtureCase) {
	literal, err := NewParser(&opts).ParseLiteral(c.Source)
	if c.Error == nil {
		assert.NilError(t, err)
		checkTree(t, literal, encode(c.Source))
		return
	}
	assertSyntaxError(t, err, c.Error.Message, c.Error.Index)

	// The same error must come out of the pattern API, shifted by the
	// leading slash and with only the u and v flags in the message.
	probe := &literalProbe{}
	v := NewValidator(&Options{Strict: opts.Strict, EcmaVersion: opts.EcmaVersion, Handler: probe})
	assert.Assert(t, v.ValidateLiteral(c.Source) != nil)
	if !probe.entered {
		return
	}
	source := encode(c.Source)
	pattern := source[1 : probe.flagsStart-1]
	flags := string(utf16.Decode(source[probe.flagsStart:]))
	pf := PatternFlags{
		Unicode:     strings.ContainsRune(flags, 'u'),
		UnicodeSets: strings.ContainsRune(flags, 'v'),
	}
	mode := ""
	if pf.Unicode {
		mode = "u"
	} else if pf.UnicodeSets {
		mode = "v"
	}
	message := strings.Replace(c.Error.Message,
		c.Source+": ",
		"/"+string(utf16.Decode(pattern))+"/"+mode+": ", 1)

	err = NewValidator(&Options{Strict: opts.Strict, EcmaVersion: opts.EcmaVersion}).
		ValidatePatternUtf16(pattern, 0, len(pattern), pf)
	var se SyntaxError
	assert.Assert(t, errors.As(err, &se), "pattern API accepted %s", c.Source)
	assert.Equal(t, se.Message, message)
	assert.Equal(t, se.Index, c.Error.Index-1)
}
