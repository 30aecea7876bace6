// Package mcp provides a Model Context Protocol server for hunt.
// It exposes workflow operations as MCP tools that any MCP-capable agent
// environment can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specfirst/hunt/internal/config"
)

// NewServer creates an MCP server with all hunt tools registered.
func NewServer(version string, manager *config.Manager) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hunt",
		Version: version,
	}, nil)
	registerTools(server, manager)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all hunt tools to the server.
func registerTools(server *mcp.Server, manager *config.Manager) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Score a task description for complexity. Returns the level (simple/moderate/complex), task type, effort bucket, and whether a spec-first path is recommended.",
		Annotations: readOnlyAnnotations(),
	}, handleAnalyze())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show the project's workflow state: mode, team size, board columns, and active hunts with their current phases.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roster",
		Description: "List team members, their roles, and which board column each member owns.",
		Annotations: readOnlyAnnotations(),
	}, handleRoster(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_hunt",
		Description: "Create a new hunt (unit of feature work) in the requirements phase and persist it to the project document.",
		Annotations: writeAnnotations(),
	}, handleStartHunt(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "handoff",
		Description: "Hand a hunt off to the next role in the sequence. Validates the transition and records it in the hunt's phase history.",
		Annotations: writeAnnotations(),
	}, handleHandoff(manager))
}
