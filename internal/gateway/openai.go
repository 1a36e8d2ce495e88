package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/kdduha/slangbot/internal/config"
	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

// OpenAI talks to any OpenAI-compatible chat completions endpoint. TopK has
// no equivalent there and is dropped.
type OpenAI struct {
	client    openai.Client
	modelName string
}

func NewOpenAI(cfg config.OpenAIConfig, opts ...option.RequestOption) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.NewGateway("OpenAI API key not found, set OPENAI_API_KEY", nil)
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}, opts...)
	return &OpenAI{
		client:    openai.NewClient(opts...),
		modelName: cfg.Model,
	}, nil
}

func (o *OpenAI) Name() string {
	return config.ProviderOpenAI
}

func (o *OpenAI) Invoke(ctx context.Context, req models.CompletionRequest) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.buildParams(req))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", apperrors.NewGateway(fmt.Sprintf("OpenAI API error (status %d)", apiErr.StatusCode), err)
		}
		return "", apperrors.NewGateway("OpenAI client error", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", emptyPayload()
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) buildParams(req models.CompletionRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.Content),
		},
		Temperature: openai.Float(req.Sampling.Temperature),
		TopP:        openai.Float(req.Sampling.TopP),
	}
	if req.Mode == models.ResponseJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}
