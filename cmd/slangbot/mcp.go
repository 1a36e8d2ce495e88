package main

import (
	"github.com/spf13/cobra"

	"github.com/kdduha/slangbot/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve explain and generate as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.session(cmd.Context())
		if err != nil {
			return err
		}
		return mcp.Run(s, a.history, version)
	},
}
