// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/usagelab/telesnap/internal"
	"github.com/usagelab/telesnap/internal/contract"
)

// NewMCPServer initializes and configures the Telesnap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager, fetcher contract.Fetcher) *server.MCPServer {
	s := server.NewMCPServer(
		"Telesnap Pipeline Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
		fetcher: fetcher,
	}

	// --- 1. Tool: fetch_snapshot ---
	s.AddTool(mcp.NewTool("fetch_snapshot",
		mcp.WithDescription("Fetch the telemetry export and build the dashboard snapshot in memory, without writing it to disk."),
		mcp.WithString("source_url", mcp.Description("Export endpoint to fetch (defaults to the configured source URL).")),
	), h.handleFetchSnapshot)

	// --- 2. Tool: get_usage_stats ---
	s.AddTool(mcp.NewTool("get_usage_stats",
		mcp.WithDescription("Fetch the telemetry export and summarize accepted records by platform, backend and database."),
		mcp.WithString("source_url", mcp.Description("Export endpoint to fetch (defaults to the configured source URL).")),
	), h.handleGetUsageStats)

	// --- 3. Tool: get_run_history ---
	s.AddTool(mcp.NewTool("get_run_history",
		mcp.WithDescription("Report the status of the pipeline run history store."),
	), h.handleGetRunHistory)

	return s
}

// StartMCPServer starts the Telesnap MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr, internal.NewHTTPFetcher())
	return server.ServeStdio(s)
}
