// Package mcp exposes explanation and generation as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kdduha/slangbot/internal/models"
)

const (
	ToolExplain  = "explain_slang"
	ToolGenerate = "generate_slang"
	ToolHistory  = "list_history"
)

type submitter interface {
	SubmitExplanation(ctx context.Context, input string, params models.ExplanationParameters) (models.ExplainResponse, error)
	SubmitGeneration(ctx context.Context, seed string, params models.GenerationParameters) (models.GenerateResponse, error)
}

type historyLister interface {
	List(ctx context.Context, query string) []models.HistoryEntry
}

var (
	explainToolDef = mcp.NewTool(ToolExplain,
		mcp.WithDescription("Explain a slang term or phrase. Successful explanations are saved to history."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Slang term, phrase or question to explain")),
		mcp.WithObject("tuningOptions", mcp.Description("Tone, format, verbosity, complexity, persona, negativePrompt and language. Defaults apply when omitted.")),
	)

	generateToolDef = mcp.NewTool(ToolGenerate,
		mcp.WithDescription("Invent a new slang word or saying from a seed concept."),
		mcp.WithString("seedConcept", mcp.Required(), mcp.Description("Concept the new slang should capture")),
		mcp.WithObject("generationOptions", mcp.Description("Era, wordStyle, formality, creativity, humor, language and generationType. Defaults apply when omitted.")),
	)

	historyToolDef = mcp.NewTool(ToolHistory,
		mcp.WithDescription("List past explanations, newest first."),
		mcp.WithString("query", mcp.Description("Case-insensitive search in the explained input")),
	)
)

func NewServer(session submitter, history historyLister, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"slangbot",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(session, history)
	s.AddTool(explainToolDef, h.HandleExplain)
	s.AddTool(generateToolDef, h.HandleGenerate)
	s.AddTool(historyToolDef, h.HandleHistory)
	return s
}

// Run serves the tools on stdin and stdout until the input closes.
func Run(session submitter, history historyLister, version string) error {
	return server.ServeStdio(NewServer(session, history, version))
}
