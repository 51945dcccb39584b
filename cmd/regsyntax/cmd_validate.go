package main

import (
	"fmt"

	"github.com/auvred/regsyntax"
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <literal>...",
		Short: "Validate /pattern/flags literals",
		Long:  "Validate each literal in turn, stopping at the first invalid one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := regsyntax.NewValidator(g.validatorOptions())
			for _, literal := range args {
				if err := v.ValidateLiteral(literal); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", literal)
			}
			return nil
		},
	}
}
