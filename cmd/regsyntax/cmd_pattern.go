package main

import (
	"fmt"

	"github.com/auvred/regsyntax"
	"github.com/spf13/cobra"
)

func newPatternCmd(g *globalOptions) *cobra.Command {
	var flags regsyntax.PatternFlags

	cmd := &cobra.Command{
		Use:   "pattern <pattern>",
		Short: "Validate a bare pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := regsyntax.NewValidator(g.validatorOptions())
			if err := v.ValidatePattern(args[0], flags); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.Unicode, "unicode", "u", false, "read the pattern in unicode mode")
	cmd.Flags().BoolVar(&flags.UnicodeSets, "unicode-sets", false, "read the pattern in unicodeSets mode")
	cmd.MarkFlagsMutuallyExclusive("unicode", "unicode-sets")

	return cmd
}
