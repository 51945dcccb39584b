package main

import (
	"fmt"
	"os"

	"github.com/auvred/regsyntax/lint"
	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files holding one regular expression literal per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := 0
			for _, name := range args {
				diags, err := checkFile(name, g.lintConfig())
				if err != nil {
					return err
				}
				for _, d := range diags {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", name, d)
				}
				problems += len(diags)
			}
			log.Infof("checked %d files, %d problems", len(args), problems)
			if problems > 0 {
				return fmt.Errorf("%d problems", problems)
			}
			return nil
		},
	}
}

func checkFile(name string, cfg lint.Config) ([]lint.Diagnostic, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	diags, err := lint.Check(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return diags, nil
}
