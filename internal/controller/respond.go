// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/adspark/adspark-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy onto HTTP status codes and emits the
// structured error payload.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError

	var (
		validation   *appErrors.ErrValidation
		invalidArg   *appErrors.ErrInvalidArgument
		unauthorized *appErrors.ErrUnauthorized
		forbidden    *appErrors.ErrForbidden
		campaignMiss *appErrors.ErrCampaignNotFound
		notFound     *appErrors.ErrNotFound
		generation   *appErrors.ErrGenerationFailed
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalidArg):
		code = http.StatusBadRequest
	case errors.As(err, &unauthorized):
		code = http.StatusUnauthorized
	case errors.As(err, &forbidden):
		code = http.StatusForbidden
	case errors.As(err, &campaignMiss), errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &generation):
		code = http.StatusInternalServerError
	}

	writeJSON(w, code, map[string]string{"error": err.Error()})
}
