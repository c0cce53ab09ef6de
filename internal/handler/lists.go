package handler

import (
	"net/http"

	"github.com/dukerupert/mercado/internal/market"
)

func (h *Handler) Lists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Lists())
}

func (h *Handler) DuplicateList(w http.ResponseWriter, r *http.Request) {
	if _, err := h.session.Duplicate(r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusCreated)
}

func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if !h.session.Delete(r.PathValue("id")) {
		h.writeError(w, market.ErrListNotFound)
		return
	}
	h.writeState(w, http.StatusOK)
}

// ResetAll drops every saved list.
func (h *Handler) ResetAll(w http.ResponseWriter, r *http.Request) {
	h.session.ResetAll()
	h.writeState(w, http.StatusOK)
}

// ExportList responds with the plain-text rendering of a list. The current
// list is exported when the route has no id.
func (h *Handler) ExportList(w http.ResponseWriter, r *http.Request) {
	text, err := h.session.ExportText(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
