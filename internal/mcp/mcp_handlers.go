package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleScoreInspection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.TemplateFile = request.GetString("template_file", "")
	cfg.AnswersFile = request.GetString("answers_file", "")

	results, warnings, err := core.GetScoreResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	payload := struct {
		Results  []*schema.InspectionResult `json:"results"`
		Warnings []string                   `json:"warnings,omitempty"`
	}{Results: results, Warnings: warnings}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAssessStoreRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SignalsFile = request.GetString("signals_file", "")
	cfg.StoreID = request.GetString("store_id", "")

	profiles, err := core.GetRiskResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("risk assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(profiles, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStoreTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("events_file", ""); f != "" {
		cfg.EventsFile = f
	}
	cfg.StoreID = request.GetString("store_id", "")
	if m := request.GetInt("months", 0); m > 0 {
		cfg.Months = m
	}

	result, err := core.GetTrendResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStoreRankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("scores_file", ""); f != "" {
		cfg.ScoresFile = f
	}
	if d := request.GetString("direction", ""); d != "" {
		cfg.Direction = schema.RankDirection(d)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	entries, err := core.GetRankResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
