package handler

import (
	"net/http"

	"github.com/dukerupert/mercado/internal/model"
)

type navRequest struct {
	ListID string `json:"listId"`
}

// Navigate switches screens. The view and edit screens need a listId.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	mode := model.Mode(r.PathValue("mode"))

	req, ok := decode[navRequest](w, r, true)
	if !ok {
		return
	}

	switch mode {
	case model.ModeHome:
		h.session.GoHome()
	case model.ModeCreate:
		h.session.GoCreate()
	case model.ModeView, model.ModeEdit:
		if req.ListID == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": map[string]string{"listId": "This field is required"},
			})
			return
		}
		if mode == model.ModeView {
			h.session.GoView(req.ListID)
		} else {
			h.session.GoEdit(req.ListID)
		}
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown mode"})
		return
	}
	h.writeState(w, http.StatusOK)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.session.ToggleTheme()
	h.writeState(w, http.StatusOK)
}
