// Package session drives a single explain-or-generate conversation.
//
// A Controller owns the inputs, the last artifact and the submission state
// machine (idle, submitting, success, failed). One submission runs at a time;
// a second one arriving while the first is in flight is rejected as busy.
// Each submission compiles the prompt, calls the gateway once and normalizes
// the answer, strictly in that order.
package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kdduha/slangbot/internal/cache"
	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/history"
	"github.com/kdduha/slangbot/internal/metrics"
	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/normalize"
	"github.com/kdduha/slangbot/internal/prompt"
	"github.com/kdduha/slangbot/internal/recipe"
)

const (
	msgBlankInput = "Spit it out! Enter some slang to define."
	msgBlankSeed  = "Gimme a spark! Enter a concept to generate slang from."
	msgNoShare    = "Nothing to share yet. Get a result in this mode first."

	prefixExplain  = "Failed to get the 4-1-1: "
	prefixGenerate = "The invention engine misfired: "
)

const (
	outcomeSuccess  = "success"
	outcomeFailed   = "failed"
	outcomeRejected = "rejected"
)

// Completer is the part of a gateway the controller needs.
type Completer interface {
	Invoke(ctx context.Context, req models.CompletionRequest) (string, error)
}

type Controller struct {
	gateway   Completer
	history   *history.Log
	cache     *cache.Explanations
	publicURL string
	logger    *zap.Logger

	mu                sync.Mutex
	state             models.State
	mode              models.Mode
	input             string
	tuningOptions     models.ExplanationParameters
	seedConcept       string
	generationOptions models.GenerationParameters
	artifact          *models.Artifact
	errMsg            string
}

type Option func(*Controller)

// WithCache serves repeated explanations from c.
func WithCache(c *cache.Explanations) Option {
	return func(s *Controller) {
		s.cache = c
	}
}

// WithPublicURL sets the base of share links.
func WithPublicURL(u string) Option {
	return func(s *Controller) {
		s.publicURL = u
	}
}

func New(gateway Completer, log *history.Log, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		gateway:           gateway,
		history:           log,
		publicURL:         "http://localhost:8080/",
		logger:            logger.Named("session"),
		state:             models.StateIdle,
		mode:              models.ModeExplain,
		tuningOptions:     models.DefaultExplanationParameters(),
		generationOptions: models.DefaultGenerationParameters(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitExplanation explains input and records the result in history.
func (c *Controller) SubmitExplanation(ctx context.Context, input string, params models.ExplanationParameters) (models.ExplainResponse, error) {
	if err := c.begin(models.ModeExplain, func() error {
		if strings.TrimSpace(input) == "" {
			return apperrors.NewValidation(msgBlankInput)
		}
		if err := params.Validate(); err != nil {
			return apperrors.NewValidation(err.Error())
		}
		c.input = input
		c.tuningOptions = params
		return nil
	}); err != nil {
		return models.ExplainResponse{}, err
	}

	text, err := c.explain(ctx, input, params)
	if err != nil {
		return models.ExplainResponse{}, c.fail(models.ModeExplain, prefixExplain, err)
	}

	resp := models.ExplainResponse{Artifact: models.TextArtifact(text)}
	entry, err := c.history.Append(ctx, input, params, text)
	if err != nil {
		c.logger.Warn("failed to record history entry", zap.Error(err))
	} else {
		resp.HistoryEntry = &entry
	}

	c.succeed(models.ModeExplain, resp.Artifact)
	return resp, nil
}

func (c *Controller) explain(ctx context.Context, input string, params models.ExplanationParameters) (string, error) {
	if c.cache != nil {
		text, found, err := c.cache.Get(ctx, input, params)
		if err != nil {
			c.logger.Warn("cache get error", zap.Error(err))
		}
		if found {
			c.logger.Debug("served from cache")
			return text, nil
		}
	}

	raw, err := c.gateway.Invoke(ctx, prompt.Explanation(input, params))
	if err != nil {
		return "", err
	}
	text, err := normalize.Text(raw)
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, input, params, text); err != nil {
			c.logger.Warn("failed to set cache", zap.Error(err))
		}
	}
	return text, nil
}

// SubmitGeneration invents a term from seed. Generations are not recorded in
// history.
func (c *Controller) SubmitGeneration(ctx context.Context, seed string, params models.GenerationParameters) (models.GenerateResponse, error) {
	if err := c.begin(models.ModeGenerate, func() error {
		if strings.TrimSpace(seed) == "" {
			return apperrors.NewValidation(msgBlankSeed)
		}
		if err := params.Validate(); err != nil {
			return apperrors.NewValidation(err.Error())
		}
		c.seedConcept = seed
		c.generationOptions = params
		return nil
	}); err != nil {
		return models.GenerateResponse{}, err
	}

	raw, err := c.gateway.Invoke(ctx, prompt.Generation(seed, params))
	if err != nil {
		return models.GenerateResponse{}, c.fail(models.ModeGenerate, prefixGenerate, err)
	}
	result, err := normalize.JSON(raw)
	if err != nil {
		return models.GenerateResponse{}, c.fail(models.ModeGenerate, prefixGenerate, err)
	}

	artifact := models.SlangArtifact(result)
	c.succeed(models.ModeGenerate, artifact)
	return models.GenerateResponse{
		Artifact: artifact,
		CopyText: artifact.CopyText(params.GenerationType),
	}, nil
}

// begin moves the controller into Submitting. accept runs under the lock and
// may reject the submission before any state changes.
func (c *Controller) begin(mode models.Mode, accept func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateSubmitting {
		metrics.Submission(string(mode), outcomeRejected)
		return apperrors.NewBusy()
	}
	if err := accept(); err != nil {
		c.errMsg = err.Error()
		metrics.Submission(string(mode), outcomeRejected)
		return err
	}

	c.mode = mode
	c.state = models.StateSubmitting
	c.artifact = nil
	c.errMsg = ""
	return nil
}

func (c *Controller) succeed(mode models.Mode, artifact models.Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = models.StateSuccess
	c.artifact = &artifact
	metrics.Submission(string(mode), outcomeSuccess)
}

func (c *Controller) fail(mode models.Mode, prefix string, err error) error {
	wrapped := apperrors.WithPrefix(prefix, err)
	c.logger.Warn("submission failed", zap.String("mode", string(mode)), zap.Error(err))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = models.StateFailed
	c.errMsg = wrapped.Message
	metrics.Submission(string(mode), outcomeFailed)
	return wrapped
}

func (c *Controller) Snapshot() models.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() models.SessionSnapshot {
	s := models.SessionSnapshot{
		State:             c.state,
		Mode:              c.mode,
		Input:             c.input,
		TuningOptions:     c.tuningOptions,
		SeedConcept:       c.seedConcept,
		GenerationOptions: c.generationOptions,
		Error:             c.errMsg,
	}
	if c.artifact != nil {
		a := *c.artifact
		s.Artifact = &a
	}
	return s
}

// SetMode switches the active mode. Inputs and the last artifact are kept.
func (c *Controller) SetMode(mode models.Mode) (models.SessionSnapshot, error) {
	if mode != models.ModeExplain && mode != models.ModeGenerate {
		return models.SessionSnapshot{}, apperrors.NewValidation(fmt.Sprintf("unknown mode %q", mode))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateSubmitting {
		return models.SessionSnapshot{}, apperrors.NewBusy()
	}
	c.mode = mode
	c.state = models.StateIdle
	return c.snapshot(), nil
}

// LoadFromHistory restores a past explanation as the current result.
func (c *Controller) LoadFromHistory(ctx context.Context, id int64) (models.SessionSnapshot, error) {
	entry, found := c.history.Get(ctx, id)
	if !found {
		return models.SessionSnapshot{}, apperrors.NewNotFound(fmt.Sprintf("history entry %d not found", id))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateSubmitting {
		return models.SessionSnapshot{}, apperrors.NewBusy()
	}
	artifact := models.TextArtifact(entry.GeneratedPrompt)
	c.mode = models.ModeExplain
	c.input = entry.UserInput
	c.tuningOptions = entry.TuningOptions
	c.artifact = &artifact
	c.errMsg = ""
	c.state = models.StateSuccess
	return c.snapshot(), nil
}

// ApplyLink fills the inputs from a share link and switches to its mode. The
// previous artifact and error are cleared.
func (c *Controller) ApplyLink(link recipe.Link) (models.SessionSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateSubmitting {
		return models.SessionSnapshot{}, apperrors.NewBusy()
	}
	switch {
	case link.Explain != nil:
		c.input = link.Explain.UserInput
		c.tuningOptions = link.Explain.TuningOptions
	case link.Generation != nil:
		c.seedConcept = link.Generation.SeedConcept
		c.generationOptions = link.Generation.GenerationOptions
	default:
		return models.SessionSnapshot{}, apperrors.NewDecode("share link carries no recipe", nil)
	}
	c.mode = link.Mode
	c.artifact = nil
	c.errMsg = ""
	c.state = models.StateIdle
	return c.snapshot(), nil
}

// ConsumeQuery applies the share link in query, if any. A bad token is
// logged and leaves the session untouched.
func (c *Controller) ConsumeQuery(query url.Values) (models.SessionSnapshot, bool, error) {
	link, found, err := recipe.ParseQuery(query)
	if err != nil {
		c.logger.Warn("failed to decode share link", zap.Error(err))
		return c.Snapshot(), found, err
	}
	if !found {
		return c.Snapshot(), false, nil
	}
	snap, err := c.ApplyLink(link)
	return snap, true, err
}

// Share builds a link reproducing the current result. Only a result that
// belongs to the active mode can be shared.
func (c *Controller) Share() (models.ShareResponse, error) {
	c.mu.Lock()
	mode, artifact := c.mode, c.artifact
	input, tuning := c.input, c.tuningOptions
	seed, generation := c.seedConcept, c.generationOptions
	c.mu.Unlock()

	var (
		param, token string
		err          error
	)
	switch {
	case mode == models.ModeExplain && artifact != nil && artifact.Kind == models.ArtifactText:
		param = recipe.ParamSlang
		token, err = recipe.Encode(models.SharedRecipe{UserInput: input, TuningOptions: tuning})
	case mode == models.ModeGenerate && artifact != nil && artifact.Kind == models.ArtifactSlang:
		param = recipe.ParamRecipe
		token, err = recipe.EncodeGeneration(models.SharedGenerationRecipe{SeedConcept: seed, GenerationOptions: generation})
	default:
		return models.ShareResponse{}, apperrors.NewValidation(msgNoShare)
	}
	if err != nil {
		return models.ShareResponse{}, fmt.Errorf("encode share token: %w", err)
	}

	link, err := recipe.URL(c.publicURL, param, token)
	if err != nil {
		return models.ShareResponse{}, fmt.Errorf("build share url: %w", err)
	}
	return models.ShareResponse{URL: link, Param: param, Token: token}, nil
}

// CopyText is the clipboard rendering of the current artifact.
func (c *Controller) CopyText() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.artifact == nil {
		return "", false
	}
	return c.artifact.CopyText(c.generationOptions.GenerationType), true
}
