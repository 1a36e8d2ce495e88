package mcp

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kdduha/slangbot/internal/history"
	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/session"
)

type scriptedGateway struct {
	replies map[models.ResponseMode]string
}

func (g scriptedGateway) Invoke(_ context.Context, req models.CompletionRequest) (string, error) {
	return g.replies[req.Mode], nil
}

func testHandlers(t *testing.T) *Handlers {
	t.Helper()
	gw := scriptedGateway{replies: map[models.ResponseMode]string{
		models.ResponseText: "Bussin means really good.",
		models.ResponseJSON: `{"term":"snackcident","definition":"eating by accident","example":"a total snackcident","origin":"snack + accident"}`,
	}}
	log := history.New(kv.NewMemoryStore(), zap.NewNop())
	return NewHandlers(session.New(gw, log, zap.NewNop()), log)
}

func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleExplain(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	res, err := h.HandleExplain(ctx, makeRequest(map[string]any{
		"input": "bussin",
		"tuningOptions": map[string]any{
			"tone": "Scholarly", "format": "Paragraph", "verbosity": 2, "complexity": 9,
			"persona": "A History Professor", "negativePrompt": "", "language": "🇩🇪 German",
		},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out models.ExplainResponse
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	assert.Equal(t, "Bussin means really good.", out.Artifact.Text)
	require.NotNil(t, out.HistoryEntry)
	assert.Equal(t, models.ToneScholarly, out.HistoryEntry.TuningOptions.Tone)

	res, err = h.HandleHistory(ctx, makeRequest(map[string]any{"query": "BUSS"}))
	require.NoError(t, err)
	var listed struct {
		Entries []models.HistoryEntry `json:"entries"`
	}
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &listed))
	assert.Len(t, listed.Entries, 1)
}

func TestHandleExplain_BlankInput(t *testing.T) {
	res, err := testHandlers(t).HandleExplain(context.Background(), makeRequest(map[string]any{"input": " "}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var out models.ErrorResponse
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestHandleGenerate(t *testing.T) {
	res, err := testHandlers(t).HandleGenerate(context.Background(), makeRequest(map[string]any{
		"seedConcept": "eating chips without noticing",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out models.GenerateResponse
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	require.NotNil(t, out.Artifact.Slang)
	assert.Equal(t, "snackcident", out.Artifact.Slang.Term)
	assert.Contains(t, out.CopyText, "Word: snackcident")
}

func TestHandleGenerate_BadArguments(t *testing.T) {
	res, err := testHandlers(t).HandleGenerate(context.Background(), makeRequest(map[string]any{
		"seedConcept":       "x",
		"generationOptions": "not an object",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNewServer_RegistersTools(t *testing.T) {
	h := testHandlers(t)
	s := NewServer(h.session, h.history, "test")

	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := sonic.MarshalString(resp)
	require.NoError(t, err)
	for _, name := range []string{ToolExplain, ToolGenerate, ToolHistory} {
		assert.Contains(t, raw, `"`+name+`"`)
	}
}
