package handler

import (
	"net/http"

	"github.com/bytedance/sonic"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

func decodeJSON(r *http.Request, v any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidation("invalid JSON: " + err.Error())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError renders err as an ErrorResponse. Unclassified errors are
// reported as internal.
func writeError(w http.ResponseWriter, err error) {
	if e, ok := apperrors.As(err); ok {
		writeJSON(w, e.Status(), models.ErrorResponse{Code: string(e.Kind), Message: e.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
