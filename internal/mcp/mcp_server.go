// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/placardhq/placard/core"
	"github.com/placardhq/placard/internal/contract"
)

// NewMCPServer initializes and configures the Placard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, engine *core.Engine, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Placard Grading Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  engine,
		mgr:     mgr,
	}

	// --- 1. Tool: grade_score ---
	s.AddTool(mcp.NewTool("grade_score",
		mcp.WithDescription("Grade a normalized 0-100 inspection score under one jurisdiction's rules. Unknown jurisdictions fall back to the first catalog entry."),
		mcp.WithNumber("score", mcp.Description("Normalized score, usually 0-100."), mcp.Required()),
		mcp.WithString("jurisdiction_id", mcp.Description("Catalog id of the jurisdiction, e.g. 'riverside'.")),
	), h.handleGradeScore)

	// --- 2. Tool: compare_jurisdictions ---
	s.AddTool(mcp.NewTool("compare_jurisdictions",
		mcp.WithDescription("Grade one score against every jurisdiction in the catalog, failing outcomes first."),
		mcp.WithNumber("score", mcp.Description("Normalized score, usually 0-100."), mcp.Required()),
		mcp.WithString("pillar", mcp.Description("Only compare jurisdictions of this pillar."), mcp.Enum("food_safety", "fire_safety")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleCompareJurisdictions)

	// --- 3. Tool: score_location ---
	s.AddTool(mcp.NewTool("score_location",
		mcp.WithDescription("Grade every authority of a location separately: food safety, fire safety and any federal overlays."),
		mcp.WithString("location_id", mcp.Description("The location to score."), mcp.Required()),
	), h.handleScoreLocation)

	// --- 4. Tool: list_jurisdictions ---
	s.AddTool(mcp.NewTool("list_jurisdictions",
		mcp.WithDescription("List catalog jurisdictions with their grading type and effective thresholds."),
		mcp.WithString("pillar", mcp.Description("Only list jurisdictions of this pillar."), mcp.Enum("food_safety", "fire_safety")),
	), h.handleListJurisdictions)

	return s
}

// StartMCPServer starts the Placard MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, engine *core.Engine, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, engine, mgr)
	return server.ServeStdio(s)
}
