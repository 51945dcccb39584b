package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "/a|b/g")
	assert.NilError(t, err)
	var root struct {
		Type     string
		Children []struct {
			Type  string
			Flags string
		}
	}
	assert.NilError(t, json.Unmarshal([]byte(out), &root))
	assert.Equal(t, root.Type, "RegExpLiteral")
	assert.Equal(t, root.Children[1].Flags, "g")

	out, err = run(t, "parse", "--format", "yaml", "/a/")
	assert.NilError(t, err)
	assert.Assert(t, strings.HasPrefix(out, "type: RegExpLiteral\n"), out)

	_, err = run(t, "parse", "-f", "xml", "/a/")
	assert.Error(t, err, "unknown format: xml")

	_, err = run(t, "parse", "/(/")
	assert.Error(t, err, "Invalid regular expression: /(/: Unterminated group")
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", "/a/", "/b/u")
	assert.NilError(t, err)
	assert.Equal(t, out, "/a/: ok\n/b/u: ok\n")

	out, err = run(t, "validate", "/a/", "/[z-a]/", "/b/")
	assert.Error(t, err, "Invalid regular expression: /[z-a]/: Range out of order in character class")
	assert.Equal(t, out, "/a/: ok\n")

	_, err = run(t, "--ecma-version", "2017", "validate", "/(?<=a)/")
	assert.Error(t, err, "Invalid regular expression: /(?<=a)/: Invalid group")

	_, err = run(t, "--ecma-version", "1999", "validate", "/a/")
	assert.Error(t, err, `unsupported ecmaVersion "1999"`)
}

func TestPatternCmd(t *testing.T) {
	out, err := run(t, "pattern", `\p{L}`, "--unicode")
	assert.NilError(t, err)
	assert.Equal(t, out, "ok\n")

	_, err = run(t, "pattern", `[a&&b]`, "--unicode-sets")
	assert.NilError(t, err)

	_, err = run(t, "--strict", "pattern", `a{`)
	assert.ErrorContains(t, err, "Incomplete quantifier")

	_, err = run(t, "pattern", "a", "--unicode", "--unicode-sets")
	assert.ErrorContains(t, err, "unicode")
}

func TestFlagsCmd(t *testing.T) {
	out, err := run(t, "flags", "ymgd")
	assert.NilError(t, err)
	assert.Equal(t, out, "dgmy\n")

	_, err = run(t, "flags", "gg")
	assert.ErrorContains(t, err, "Duplicated flag 'g'")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.regex")
	bad := filepath.Join(dir, "bad.regex")
	assert.NilError(t, os.WriteFile(good, []byte("# fine\n/a+/\n"), 0o644))
	assert.NilError(t, os.WriteFile(bad, []byte("/a/\n/[z-a]/\n"), 0o644))

	out, err := run(t, "check", good)
	assert.NilError(t, err)
	assert.Equal(t, out, "")

	out, err = run(t, "check", good, bad)
	assert.Error(t, err, "1 problems")
	assert.Equal(t, out, bad+":2:5: Invalid regular expression: /[z-a]/: Range out of order in character class\n")

	_, err = run(t, "check", filepath.Join(dir, "missing.regex"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
