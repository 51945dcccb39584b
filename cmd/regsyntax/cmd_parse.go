package main

import (
	"fmt"
	"strings"

	"github.com/auvred/regsyntax"
	"github.com/auvred/regsyntax/format"
	"github.com/spf13/cobra"
)

func newParseCmd(g *globalOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <literal>",
		Short: "Parse a /pattern/flags literal and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			literal, err := regsyntax.NewParser(g.parserOptions()).ParseLiteral(args[0])
			if err != nil {
				return err
			}
			log.Debugf("parsed %s", literal.Raw)
			if err := encoder.Encode(literal); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json",
		"output format ("+strings.Join(format.Formats, ", ")+")")

	return cmd
}
