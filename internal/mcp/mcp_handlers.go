package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/usagelab/telesnap/core"
	"github.com/usagelab/telesnap/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
	fetcher contract.Fetcher
}

func (h *toolHandler) handleFetchSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.DryRun = true
	if u := request.GetString("source_url", ""); u != "" {
		cfg.SourceURL = u
	}

	summary, err := core.ExecuteRun(core.WithQuiet(ctx), cfg, h.fetcher, nil, h.mgr.GetHistoryStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pipeline run failed: %v", err)), nil
	}

	jsonData, err := core.MarshalSnapshot(summary.Snapshot)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("snapshot serialization failed: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetUsageStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if u := request.GetString("source_url", ""); u != "" {
		cfg.SourceURL = u
	}

	breakdown, err := core.ExecuteStats(core.WithQuiet(ctx), cfg, h.fetcher)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(breakdown, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunHistory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := h.mgr.GetHistoryStore().GetStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history status failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
