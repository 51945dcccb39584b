package lint

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/auvred/regsyntax"
)

// directivePrefix starts a comment line that changes the configuration of
// the lines after it, e.g.
//
//	#regsyntax: ecmaVersion=2018 strict
const directivePrefix = "#regsyntax:"

type directive struct {
	Settings []*setting `parser:"@@*"`
}

type setting struct {
	Key   string  `parser:"@Ident"`
	Value *string `parser:"( '=' @( Ident | Int ) )?"`
}

var directiveParser = participle.MustBuild[directive]()

// apply returns cfg with the settings of the directive text applied.
func (cfg Config) apply(text string) (Config, error) {
	d, err := directiveParser.ParseString("", text)
	if err != nil {
		return cfg, fmt.Errorf("invalid directive: %w", err)
	}
	for _, s := range d.Settings {
		switch s.Key {
		case "ecmaVersion":
			if s.Value == nil {
				return cfg, fmt.Errorf("invalid directive: ecmaVersion needs a value")
			}
			v, err := regsyntax.ParseEcmaVersion(*s.Value)
			if err != nil {
				return cfg, fmt.Errorf("invalid directive: %w", err)
			}
			cfg.EcmaVersion = v
		case "strict":
			strict := true
			if s.Value != nil {
				if strict, err = strconv.ParseBool(*s.Value); err != nil {
					return cfg, fmt.Errorf("invalid directive: strict=%s", *s.Value)
				}
			}
			cfg.Strict = strict
		default:
			return cfg, fmt.Errorf("invalid directive: unknown setting %q", s.Key)
		}
	}
	return cfg, nil
}
