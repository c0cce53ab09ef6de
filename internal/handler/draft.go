package handler

import (
	"net/http"
	"strings"

	"github.com/dukerupert/mercado/internal/model"
	"github.com/dukerupert/mercado/internal/suggest"
)

type itemRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit" validate:"omitempty,oneof=un kg"`
}

// unit picks the requested unit, falling back to the catalogue's usual unit
// for the name and then to unit-count.
func (req *itemRequest) unit() model.Unit {
	if req.Unit != "" {
		return model.Unit(req.Unit)
	}
	if u, ok := suggest.UnitFor(req.Name); ok {
		return u
	}
	return model.UnitCount
}

type draftNameRequest struct {
	Name string `json:"name" validate:"max=120"`
}

func (h *Handler) AddDraftItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[itemRequest](w, r, false)
	if !ok {
		return
	}
	if _, err := h.session.AddDraftItem(req.Name, req.Quantity, req.unit()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusCreated)
}

func (h *Handler) SetDraftName(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[draftNameRequest](w, r, false)
	if !ok {
		return
	}
	h.session.SetDraftName(strings.TrimSpace(req.Name))
	h.writeState(w, http.StatusOK)
}

// FinalizeDraft saves the draft as a new list and opens it.
func (h *Handler) FinalizeDraft(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.session.FinalizeDraft(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "draft has no items"})
		return
	}
	h.writeState(w, http.StatusCreated)
}
