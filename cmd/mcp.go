package cmd

import (
	"github.com/spf13/cobra"
	"github.com/usagelab/telesnap/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Telesnap MCP server",
	Long:  `Launch an MCP server that allows AI agents to fetch snapshots and inspect run history via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Progress output is suppressed per request when running in MCP
		// mode to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
