package handler

import (
	"net/http"

	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/prompt"
)

// PromptExplain godoc
// @Summary Preview explanation prompt
// @Description Compile the system instruction without calling the model.
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body models.ExplainRequest true "Explain request"
// @Success 200 {object} models.PromptResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /prompt/explain [post]
func PromptExplain(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writePrompt(w, prompt.Explanation(req.Input, req.Params()))
}

// PromptGenerate godoc
// @Summary Preview generation prompt
// @Description Compile the system instruction without calling the model.
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generate request"
// @Success 200 {object} models.PromptResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /prompt/generate [post]
func PromptGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writePrompt(w, prompt.Generation(req.SeedConcept, req.Params()))
}

func writePrompt(w http.ResponseWriter, req models.CompletionRequest) {
	writeJSON(w, http.StatusOK, models.PromptResponse{
		SystemInstruction: req.SystemInstruction,
		ResponseMode:      string(req.Mode),
	})
}

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
