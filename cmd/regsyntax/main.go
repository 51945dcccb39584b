package main

import (
	"fmt"
	"os"

	"github.com/auvred/regsyntax"
	"github.com/auvred/regsyntax/lint"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("regsyntax.cmd")

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	ecmaVersion string
	strict      bool
	verbose     int
	logPath     string

	edition regsyntax.EcmaVersion
}

func (g *globalOptions) parserOptions() *regsyntax.ParserOptions {
	return &regsyntax.ParserOptions{Strict: g.strict, EcmaVersion: g.edition}
}

func (g *globalOptions) validatorOptions() *regsyntax.Options {
	return &regsyntax.Options{Strict: g.strict, EcmaVersion: g.edition}
}

func (g *globalOptions) lintConfig() lint.Config {
	return lint.Config{Strict: g.strict, EcmaVersion: g.edition}
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "regsyntax",
		Short:         "Validate and parse ECMAScript regular expressions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var path *string
			if g.logPath != "" {
				path = &g.logPath
			}
			commonlog.Configure(g.verbose, path)

			v, err := regsyntax.ParseEcmaVersion(g.ecmaVersion)
			if err != nil {
				return err
			}
			g.edition = v
			log.Debugf("ecmaVersion %s, strict %t", g.edition, g.strict)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.ecmaVersion, "ecma-version", "latest", "ECMAScript edition (5, 2015-2024 or latest)")
	flags.BoolVar(&g.strict, "strict", false, "disable the Annex B grammar")
	flags.CountVarP(&g.verbose, "verbose", "v", "add a -v for more log output")
	flags.StringVar(&g.logPath, "log", "", "write the log to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newValidateCmd(g))
	rootCmd.AddCommand(newPatternCmd(g))
	rootCmd.AddCommand(newFlagsCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newLSPCmd(g))

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
