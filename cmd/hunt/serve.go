// Package main provides the entry point for the hunt CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	huntmcp "github.com/specfirst/hunt/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run hunt as a Model Context Protocol (MCP) server over stdio.

This exposes workflow operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "hunt": {
        "command": "hunt",
        "args": ["serve"]
      }
    }
  }

Available tools: analyze, status, roster, start_hunt, handoff`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := huntmcp.NewServer(buildVersion(), managerFor(cmd))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
