package cmd

import (
	"github.com/placardhq/placard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Placard MCP server",
	Long:  `Launch an MCP server that lets AI agents grade scores, compare jurisdictions and score locations via standard tools.`,
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the protocol, so nothing else may print there.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, engine, historyManager)
	},
}
