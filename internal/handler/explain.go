package handler

import (
	"context"
	"net/http"

	"github.com/kdduha/slangbot/internal/models"
)

type submitter interface {
	SubmitExplanation(ctx context.Context, input string, params models.ExplanationParameters) (models.ExplainResponse, error)
	SubmitGeneration(ctx context.Context, seed string, params models.GenerationParameters) (models.GenerateResponse, error)
}

type ExplainHandler struct {
	session submitter
}

func NewExplainHandler(session submitter) *ExplainHandler {
	return &ExplainHandler{
		session: session,
	}
}

// Explain godoc
// @Summary Explain slang
// @Description Explain a slang term or phrase. The result is recorded in history.
// @Tags explain
// @Accept json
// @Produce json
// @Param request body models.ExplainRequest true "Explain request"
// @Success 200 {object} models.ExplainResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /explain [post]
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.session.SubmitExplanation(r.Context(), req.Input, req.Params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Generate godoc
// @Summary Invent slang
// @Description Invent a new word or saying from a seed concept.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generate request"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate [post]
func (h *ExplainHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.session.SubmitGeneration(r.Context(), req.SeedConcept, req.Params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
