package mcp

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

type Handlers struct {
	session submitter
	history historyLister
}

func NewHandlers(session submitter, history historyLister) *Handlers {
	return &Handlers{session: session, history: history}
}

type historyRequest struct {
	Query string `json:"query,omitempty"`
}

func (h *Handlers) HandleExplain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[models.ExplainRequest](req)
	if err != nil {
		return errorResult(apperrors.NewValidation(err.Error())), nil
	}

	resp, err := h.session.SubmitExplanation(ctx, input.Input, input.Params())
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[models.GenerateRequest](req)
	if err != nil {
		return errorResult(apperrors.NewValidation(err.Error())), nil
	}

	resp, err := h.session.SubmitGeneration(ctx, input.SeedConcept, input.Params())
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[historyRequest](req)
	if err != nil {
		return errorResult(apperrors.NewValidation(err.Error())), nil
	}
	return mcp.NewToolResultJSON(map[string]any{
		"entries": h.history.List(ctx, input.Query),
	})
}

// decode maps tool arguments onto a request type.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := sonic.Marshal(req.GetArguments())
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := sonic.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

// errorResult reports a failure with IsError set so clients surface it.
func errorResult(err error) *mcp.CallToolResult {
	payload := models.ErrorResponse{Code: "INTERNAL", Message: "an internal error occurred"}
	if e, ok := apperrors.As(err); ok {
		payload = models.ErrorResponse{Code: string(e.Kind), Message: e.Message}
	}

	content, _ := sonic.MarshalString(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: content}},
		IsError: true,
	}
}
