package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

type historyLog interface {
	List(ctx context.Context, query string) []models.HistoryEntry
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
	SoundEnabled(ctx context.Context) bool
	SetSoundEnabled(ctx context.Context, enabled bool) error
}

type historyLoader interface {
	LoadFromHistory(ctx context.Context, id int64) (models.SessionSnapshot, error)
}

type HistoryHandler struct {
	log    historyLog
	loader historyLoader
}

func NewHistoryHandler(log historyLog, loader historyLoader) *HistoryHandler {
	return &HistoryHandler{log: log, loader: loader}
}

// List godoc
// @Summary List history
// @Description Past explanations, newest first.
// @Tags history
// @Produce json
// @Param q query string false "Case-insensitive search in user input"
// @Success 200 {array} models.HistoryEntry
// @Router /history [get]
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.log.List(r.Context(), r.URL.Query().Get("q")))
}

// Delete godoc
// @Summary Delete history entry
// @Tags history
// @Param id path int true "Entry id"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /history/{id} [delete]
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.log.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear godoc
// @Summary Clear history
// @Tags history
// @Success 204
// @Failure 500 {object} models.ErrorResponse
// @Router /history [delete]
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.log.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Load godoc
// @Summary Load history entry
// @Description Restore a past explanation as the current session result.
// @Tags history
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} models.SessionSnapshot
// @Failure 404 {object} models.ErrorResponse
// @Router /history/{id}/load [post]
func (h *HistoryHandler) Load(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.loader.LoadFromHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GetSound godoc
// @Summary Sound preference
// @Tags preferences
// @Produce json
// @Success 200 {object} models.SoundPreference
// @Router /preferences/sound [get]
func (h *HistoryHandler) GetSound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SoundPreference{Enabled: h.log.SoundEnabled(r.Context())})
}

// SetSound godoc
// @Summary Update sound preference
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body models.SoundPreference true "Preference"
// @Success 200 {object} models.SoundPreference
// @Failure 400 {object} models.ErrorResponse
// @Router /preferences/sound [put]
func (h *HistoryHandler) SetSound(w http.ResponseWriter, r *http.Request) {
	var req models.SoundPreference
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.log.SetSoundEnabled(r.Context(), req.Enabled); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func entryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("history id must be an integer")
	}
	return id, nil
}
