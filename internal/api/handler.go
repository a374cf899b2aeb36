// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nautiquiz/backend/internal/dataset"
	"github.com/nautiquiz/backend/internal/service"
	"github.com/nautiquiz/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.SessionService
	progress *service.ProgressService
	catalog  service.Catalog
	logger   *slog.Logger

	validate *validator.Validate
	trans    ut.Translator
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(sessions *service.SessionService, progress *service.ProgressService, catalog service.Catalog, logger *slog.Logger) (*Handler, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, err
	}
	return &Handler{
		sessions: sessions,
		progress: progress,
		catalog:  catalog,
		logger:   logger,
		validate: validate,
		trans:    trans,
	}, nil
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg} with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// handleError maps service and store errors onto HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, dataset.ErrNoData):
		respondError(w, http.StatusNotFound, "no data available")
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrUnknownMode):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionFinished),
		errors.Is(err, service.ErrQuestionNotInSession),
		errors.Is(err, service.ErrLastQuestion):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		h.logger.Warn("store unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "history store unavailable")
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
