package main

import (
	"github.com/auvred/regsyntax/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, g.lintConfig())
			return server.RunStdio()
		},
	}
}
