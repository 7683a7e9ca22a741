package handlers

import (
	"log"
	"net/http"

	"github.com/bookhaven/backend/models"
	"github.com/bookhaven/backend/store"
)

type AuthorsHandler struct {
	DB       *store.DB
	PageSize int
}

type listMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

func buildListMeta(page, limit int, total int64) listMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return listMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
	}
}

// List serves GET /api/authors?page&limit&search.
func (h *AuthorsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := intParam(q.Get("limit"), h.PageSize)
	if limit < 1 {
		limit = 24
	}

	authors, total, err := h.DB.ListAuthors(r.Context(), q.Get("search"), int64(page-1)*int64(limit), int64(limit))
	if err != nil {
		log.Printf("list authors: %v", err)
		http.Error(w, `{"error":"failed to fetch authors"}`, http.StatusInternalServerError)
		return
	}
	if authors == nil {
		authors = []models.Author{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authors":    authors,
		"pagination": buildListMeta(page, limit, total),
	})
}
