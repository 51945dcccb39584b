// Package lint checks files holding one regular expression literal per
// line.
//
// Blank lines and lines starting with # are skipped. A comment of the form
//
//	#regsyntax: ecmaVersion=2018 strict=false
//
// changes the configuration used for the lines that follow it.
package lint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/auvred/regsyntax"
)

// Config is the configuration a check starts with.
type Config struct {
	EcmaVersion regsyntax.EcmaVersion
	Strict      bool
}

// Diagnostic is a problem found on one line.
type Diagnostic struct {
	// Line is 1-based.
	Line int
	// Column is the 0-based UTF-16 offset into the line.
	Column  int
	Literal string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

const maxLineSize = 1 << 20

// Check reads r and returns the diagnostics for every invalid literal and
// malformed directive, in line order. The error is only set when r cannot
// be read.
func Check(r io.Reader, opts Config) ([]Diagnostic, error) {
	var (
		diags []Diagnostic
		cfg   = opts
		v     = newValidator(cfg)
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(text) - len(trimmed)
		if rest, ok := strings.CutPrefix(trimmed, directivePrefix); ok {
			next, err := cfg.apply(rest)
			if err != nil {
				diags = append(diags, Diagnostic{Line: line, Column: indent, Literal: trimmed, Message: err.Error()})
				continue
			}
			cfg = next
			v = newValidator(cfg)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		literal := strings.TrimRight(trimmed, " \t")
		if d, ok := checkLiteral(v, literal); ok {
			d.Line = line
			d.Column += indent
			diags = append(diags, d)
		}
	}
	if err := sc.Err(); err != nil {
		return diags, err
	}
	return diags, nil
}

func newValidator(cfg Config) *regsyntax.Validator {
	return regsyntax.NewValidator(&regsyntax.Options{
		Strict:      cfg.Strict,
		EcmaVersion: cfg.EcmaVersion,
	})
}

func checkLiteral(v *regsyntax.Validator, literal string) (Diagnostic, bool) {
	err := v.ValidateLiteral(literal)
	if err == nil {
		return Diagnostic{}, false
	}
	d := Diagnostic{Literal: literal, Message: err.Error()}
	var se regsyntax.SyntaxError
	if errors.As(err, &se) {
		d.Column = se.Index
	}
	return d, true
}
