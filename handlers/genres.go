package handlers

import (
	"log"
	"net/http"

	"github.com/bookhaven/backend/models"
	"github.com/bookhaven/backend/store"
)

type GenresHandler struct {
	DB       *store.DB
	PageSize int
}

// List serves GET /api/genres?page&limit&search.
func (h *GenresHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := intParam(q.Get("limit"), h.PageSize)
	if limit < 1 {
		limit = 24
	}

	genres, total, err := h.DB.ListGenres(r.Context(), q.Get("search"), int64(page-1)*int64(limit), int64(limit))
	if err != nil {
		log.Printf("list genres: %v", err)
		http.Error(w, `{"error":"failed to fetch genres"}`, http.StatusInternalServerError)
		return
	}
	if genres == nil {
		genres = []models.Genre{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"genres":     genres,
		"pagination": buildListMeta(page, limit, total),
	})
}
