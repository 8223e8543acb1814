package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/placardhq/placard/core"
	"github.com/placardhq/placard/core/algo"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
	mgr     contract.HistoryManager
}

// unassignedLocation is returned for a location with no jurisdiction yet.
type unassignedLocation struct {
	LocationID string `json:"location_id"`
	Score      *int   `json:"score"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func requireScore(request mcp.CallToolRequest) (float64, error) {
	score, err := request.RequireFloat("score")
	if err != nil {
		return 0, err
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("score must be a finite number")
	}
	return score, nil
}

func (h *toolHandler) handleGradeScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score, err := requireScore(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid grade parameters: %v", err)), nil
	}
	id := request.GetString("jurisdiction_id", h.baseCfg.JurisdictionID)
	return jsonResult(h.engine.GradeScore(score, id))
}

func (h *toolHandler) handleCompareJurisdictions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score, err := requireScore(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}
	pillar, err := contract.ParsePillar(request.GetString("pillar", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}
	limit := h.baseCfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = min(l, contract.MaxResultLimit)
	}

	rows := h.engine.Compare(score, pillar)
	return jsonResult(algo.RankComparison(rows, limit))
}

func (h *toolHandler) handleScoreLocation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("location_id")
	if err != nil || id == "" {
		return mcp.NewToolResultError("location_id is required"), nil
	}

	results := core.ScoreLocations(ctx, h.engine, h.mgr, []string{id})
	if len(results) == 0 {
		return jsonResult(unassignedLocation{LocationID: id})
	}
	return jsonResult(results[0])
}

func (h *toolHandler) handleListJurisdictions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pillar, err := contract.ParsePillar(request.GetString("pillar", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid pillar: %v", err)), nil
	}
	summaries := h.engine.Summaries()
	if pillar == "" {
		return jsonResult(summaries)
	}
	filtered := make([]schema.JurisdictionSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Pillar == pillar {
			filtered = append(filtered, s)
		}
	}
	return jsonResult(filtered)
}
