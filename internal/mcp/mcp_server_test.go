package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/usagelab/telesnap/internal/contract"
	mcp_internal "github.com/usagelab/telesnap/internal/mcp"
	"github.com/usagelab/telesnap/schema"
)

const exportCSV = "timestamp,platform,backend\n" +
	"2024-03-15T08:30:00Z,darwin,hono\n" +
	"2024-03-16T09:00:00Z,linux,express\n"

func baseConfig() *contract.Config {
	return &contract.Config{
		SourceURL:  "https://telemetry.example.com/export.csv",
		OutputFile: "dashboard/data.json",
	}
}

func quietManager() *contract.MockHistoryManager {
	store := &contract.MockHistoryStore{}
	store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), nil)

	mgr := &contract.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)
	return mgr
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServer_FetchSnapshot(t *testing.T) {
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchCSV", mock.Anything, "https://telemetry.example.com/export.csv").Return([]byte(exportCSV), nil)

	s := mcp_internal.NewMCPServer(baseConfig(), quietManager(), fetcher)
	res := callTool(t, s, "fetch_snapshot", nil)

	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"totalRecords": 2`)
	assert.Contains(t, text, `"platform": "darwin"`)
}

func TestMCPServer_FetchSnapshot_SourceOverride(t *testing.T) {
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchCSV", mock.Anything, "https://other.example.com/export.csv").Return([]byte(exportCSV), nil)

	s := mcp_internal.NewMCPServer(baseConfig(), quietManager(), fetcher)
	res := callTool(t, s, "fetch_snapshot", map[string]any{
		"source_url": "https://other.example.com/export.csv",
	})

	require.False(t, res.IsError)
	fetcher.AssertExpectations(t)
}

func TestMCPServer_FetchSnapshot_FetchFailure(t *testing.T) {
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchCSV", mock.Anything, mock.Anything).Return(nil, errors.New("endpoint down"))

	s := mcp_internal.NewMCPServer(baseConfig(), quietManager(), fetcher)
	res := callTool(t, s, "fetch_snapshot", nil)

	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "pipeline run failed")
}

func TestMCPServer_GetUsageStats(t *testing.T) {
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchCSV", mock.Anything, mock.Anything).Return([]byte(exportCSV), nil)

	s := mcp_internal.NewMCPServer(baseConfig(), quietManager(), fetcher)
	res := callTool(t, s, "get_usage_stats", nil)

	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"total": 2`)
	assert.Contains(t, text, `"darwin": 1`)
}

func TestMCPServer_GetRunHistory(t *testing.T) {
	store := &contract.MockHistoryStore{}
	store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true, TotalRuns: 4}, nil)

	mgr := &contract.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)

	s := mcp_internal.NewMCPServer(baseConfig(), mgr, &contract.MockFetcher{})
	res := callTool(t, s, "get_run_history", nil)

	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"Backend": "sqlite"`)
	assert.Contains(t, text, `"TotalRuns": 4`)
}
