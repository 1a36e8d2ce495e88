package gateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/kdduha/slangbot/internal/config"
	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

const jsonMIMEType = "application/json"

// Gemini talks to the Gemini API through the genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.NewGateway("Gemini API key not found, set GEMINI_API_KEY", nil)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, apperrors.NewGateway("failed to create Gemini client", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (g *Gemini) Name() string {
	return config.ProviderGemini
}

func (g *Gemini) Invoke(ctx context.Context, req models.CompletionRequest) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Content), g.buildConfig(req))
	if err != nil {
		return "", apperrors.NewGateway(fmt.Sprintf("Gemini API error (model %s)", g.model), err)
	}
	text := resp.Text()
	if text == "" {
		return "", emptyPayload()
	}
	return text, nil
}

func (g *Gemini) buildConfig(req models.CompletionRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Sampling.Temperature)),
		TopP:              genai.Ptr(float32(req.Sampling.TopP)),
		TopK:              genai.Ptr(float32(req.Sampling.TopK)),
	}
	if req.Mode == models.ResponseJSON {
		cfg.ResponseMIMEType = jsonMIMEType
	}
	return cfg
}
