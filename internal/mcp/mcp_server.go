// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/franchops/storesense/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the storesense MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Store Assessment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_inspection ---
	s.AddTool(mcp.NewTool("score_inspection",
		mcp.WithDescription("Score QSC inspection answer sets against a checklist template."),
		mcp.WithString("template_file", mcp.Description("Path to the checklist template JSON file."), mcp.Required()),
		mcp.WithString("answers_file", mcp.Description("Path to the inspection answers JSON file (single record or array)."), mcp.Required()),
	), h.handleScoreInspection)

	// --- 2. Tool: assess_store_risk ---
	s.AddTool(mcp.NewTool("assess_store_risk",
		mcp.WithDescription("Assess composite store risk from QSC, sales and operational signals."),
		mcp.WithString("signals_file", mcp.Description("Path to the per-store risk signals JSON file."), mcp.Required()),
		mcp.WithString("store_id", mcp.Description("Restrict assessment to one store.")),
	), h.handleAssessStoreRisk)

	// --- 3. Tool: get_store_trend ---
	s.AddTool(mcp.NewTool("get_store_trend",
		mcp.WithDescription("Compute a monthly score trend from scored events or persisted snapshots."),
		mcp.WithString("events_file", mcp.Description("Path to a scored events JSON file (omit to read the snapshot store).")),
		mcp.WithString("store_id", mcp.Description("Restrict the series to one store.")),
		mcp.WithNumber("months", mcp.Description("Number of most recent months to keep.")),
	), h.handleGetStoreTrend)

	// --- 4. Tool: get_store_rankings ---
	s.AddTool(mcp.NewTool("get_store_rankings",
		mcp.WithDescription("Rank stores by a metric, top or bottom first."),
		mcp.WithString("scores_file", mcp.Description("Path to a store scores JSON file (omit to rank the latest persisted risk scores).")),
		mcp.WithString("direction", mcp.Description("Ranking direction. Defaults to 'top'."), mcp.Enum("top", "bottom")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of entries returned.")),
	), h.handleGetStoreRankings)

	return s
}

// StartMCPServer starts the storesense MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
