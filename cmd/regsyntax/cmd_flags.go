package main

import (
	"fmt"

	"github.com/auvred/regsyntax"
	"github.com/spf13/cobra"
)

func newFlagsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flags <flags>",
		Short: "Parse a flags string and print it in canonical order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := regsyntax.NewParser(g.parserOptions()).ParseFlags(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), flags.String())
			return nil
		},
	}
}
