package handler

import (
	"net/http"
	"strings"

	"github.com/dukerupert/mercado/internal/session"
)

type quantityRequest struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type priceRequest struct {
	UnitPrice *float64 `json:"unitPrice" validate:"required,gte=0"`
}

type renameRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type addingRequest struct {
	Open bool `json:"open"`
}

// current runs a command against the open list. Commands that find nothing
// to change still answer with the state; only a missing selection is an
// error.
func (h *Handler) current(w http.ResponseWriter, cmd func()) {
	if h.session.CurrentListID() == "" {
		h.writeError(w, session.ErrNoListSelected)
		return
	}
	cmd()
	h.writeState(w, http.StatusOK)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[itemRequest](w, r, false)
	if !ok {
		return
	}
	if _, err := h.session.AddItem(req.Name, req.Quantity, req.unit()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeState(w, http.StatusCreated)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.current(w, func() { h.session.RemoveItem(id) })
}

func (h *Handler) ToggleAcquired(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.current(w, func() { h.session.ToggleAcquired(id) })
}

func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[quantityRequest](w, r, false)
	if !ok {
		return
	}
	id := r.PathValue("id")
	h.current(w, func() { h.session.SetQuantity(id, req.Quantity) })
}

func (h *Handler) SetUnitPrice(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[priceRequest](w, r, false)
	if !ok {
		return
	}
	id := r.PathValue("id")
	h.current(w, func() { h.session.SetUnitPrice(id, *req.UnitPrice) })
}

func (h *Handler) MarkAllAcquired(w http.ResponseWriter, r *http.Request) {
	h.current(w, func() { h.session.MarkAllAcquired() })
}

func (h *Handler) ClearAcquired(w http.ResponseWriter, r *http.Request) {
	h.current(w, func() { h.session.ClearAcquired() })
}

func (h *Handler) SortPendingFirst(w http.ResponseWriter, r *http.Request) {
	h.current(w, func() { h.session.SortPendingFirst() })
}

func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[renameRequest](w, r, false)
	if !ok {
		return
	}
	name := strings.TrimSpace(req.Name)
	h.current(w, func() { h.session.Rename(name) })
}

// SetAddingItem opens or closes the add-item form on the view screen.
func (h *Handler) SetAddingItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[addingRequest](w, r, false)
	if !ok {
		return
	}
	h.session.SetAddingItem(req.Open)
	h.writeState(w, http.StatusOK)
}
