package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/session"
)

// Handler serves the JSON API over a single session. Every command responds
// with the session snapshot taken after it ran.
type Handler struct {
	session *session.Session
	logger  *slog.Logger
}

func New(sess *session.Session, logger *slog.Logger) *Handler {
	return &Handler{session: sess, logger: logger}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) writeState(w http.ResponseWriter, status int) {
	writeJSON(w, status, h.session.Snapshot())
}

// writeError maps domain errors to status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, market.ErrListNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
	case errors.Is(err, session.ErrNoListSelected):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no list selected"})
	case errors.Is(err, market.ErrEmptyName),
		errors.Is(err, market.ErrInvalidQuantity),
		errors.Is(err, market.ErrInvalidUnit):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
