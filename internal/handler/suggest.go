package handler

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/mercado/internal/model"
	"github.com/dukerupert/mercado/internal/suggest"
)

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	limit := suggest.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	results := suggest.Filter(r.URL.Query().Get("q"), limit)
	if results == nil {
		results = []model.Suggestion{}
	}
	writeJSON(w, http.StatusOK, results)
}
