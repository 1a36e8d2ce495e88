package handler

import (
	"net/http"
	"net/url"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

type sessionService interface {
	Snapshot() models.SessionSnapshot
	SetMode(mode models.Mode) (models.SessionSnapshot, error)
	Share() (models.ShareResponse, error)
	ConsumeQuery(query url.Values) (models.SessionSnapshot, bool, error)
}

type SessionHandler struct {
	session sessionService
}

func NewSessionHandler(session sessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// Get godoc
// @Summary Session state
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Router /session [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// SetMode godoc
// @Summary Switch mode
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.ModeRequest true "Mode"
// @Success 200 {object} models.SessionSnapshot
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /session/mode [put]
func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req models.ModeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	snap, err := h.session.SetMode(req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Share godoc
// @Summary Share link
// @Description Build a link that reproduces the current result.
// @Tags share
// @Produce json
// @Success 200 {object} models.ShareResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /share [post]
func (h *SessionHandler) Share(w http.ResponseWriter, r *http.Request) {
	resp, err := h.session.Share()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ConsumeShare godoc
// @Summary Open share link
// @Description Apply a slang or recipe token to the session. slang wins when both are given.
// @Tags share
// @Produce json
// @Param slang query string false "Explanation token"
// @Param recipe query string false "Generation token"
// @Success 200 {object} models.SessionSnapshot
// @Failure 400 {object} models.ErrorResponse
// @Router /share/consume [post]
func (h *SessionHandler) ConsumeShare(w http.ResponseWriter, r *http.Request) {
	snap, found, err := h.session.ConsumeQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		writeError(w, apperrors.NewValidation("expected a slang or recipe query parameter"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
