package main

import (
	"github.com/aretw0/taskboard/internal/cli"
	"github.com/spf13/cobra"
)

var mcpSSEAddr string

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the board to AI agents as MCP tools (get_board, add_list, add_task,
move_list, set_dragged_item, dispatch) and the taskboard://board resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Pass --sse <addr> to serve Server-Sent Events over HTTP instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ServeMCP(cfg, mcpSSEAddr)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpSSEAddr, "sse", "", "Serve over SSE on this address (e.g. :8081) instead of stdio")
}
