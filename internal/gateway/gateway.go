// Package gateway is the boundary to the upstream generative language API.
// A Gateway performs exactly one round trip per call and never retries.
package gateway

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kdduha/slangbot/internal/config"
	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/metrics"
	"github.com/kdduha/slangbot/internal/models"
)

const msgEmptyPayload = "the language model returned an empty payload"

// Gateway submits a system instruction and user content and returns raw text.
// Failures are reported as apperrors.KindGateway.
type Gateway interface {
	Name() string
	Invoke(ctx context.Context, req models.CompletionRequest) (string, error)
}

// New builds the gateway for the configured provider. Construction fails
// fast when credentials are missing so the error surfaces once at startup.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Gateway, error) {
	var (
		gw  Gateway
		err error
	)
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		gw, err = NewGemini(ctx, cfg.Gemini)
	case config.ProviderOpenAI:
		gw, err = NewOpenAI(cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(gw, logger), nil
}

type instrumented struct {
	next   Gateway
	logger *zap.Logger
}

// Instrument wraps a gateway with metrics and debug logging.
func Instrument(next Gateway, logger *zap.Logger) Gateway {
	return &instrumented{next: next, logger: logger.Named("gateway")}
}

func (g *instrumented) Name() string {
	return g.next.Name()
}

func (g *instrumented) Invoke(ctx context.Context, req models.CompletionRequest) (string, error) {
	start := time.Now()
	g.logger.Debug("invoke",
		zap.String("provider", g.next.Name()),
		zap.String("mode", string(req.Mode)),
		zap.Int("system_len", len(req.SystemInstruction)),
		zap.Int("content_len", len(req.Content)),
	)

	text, err := g.next.Invoke(ctx, req)

	status := "ok"
	if err != nil {
		status = "error"
		g.logger.Warn("invoke failed", zap.String("provider", g.next.Name()), zap.Error(err))
	}
	metrics.GatewayRequest(g.next.Name(), string(req.Mode), status, time.Since(start))
	return text, err
}

func emptyPayload() error {
	return apperrors.NewGateway(msgEmptyPayload, nil)
}
