package handlers

import (
	"log"
	"net/http"

	"github.com/bookhaven/backend/catalog"
	"github.com/bookhaven/backend/models"
)

type SearchHandler struct {
	Aggregator *catalog.Aggregator
}

type SearchResponse struct {
	Results    SearchResults `json:"results"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}

type SearchResults struct {
	Books   []models.Book   `json:"books"`
	Authors []models.Author `json:"authors"`
	Genres  []models.Genre  `json:"genres"`
}

// Search serves GET /api/search?q&type&page&limit.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	typ := q.Get("type")
	if typ == "" {
		typ = "all"
	}
	page := intParam(q.Get("page"), 1)
	limit := intParam(q.Get("limit"), 10)
	if limit > 50 {
		limit = 50
	}

	result, err := h.Aggregator.Search(r.Context(), q.Get("q"), typ, page, limit)
	if err != nil {
		log.Printf("search: %v", err)
		http.Error(w, `{"error":"search failed"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Results: SearchResults{
			Books:   result.Books,
			Authors: result.Authors,
			Genres:  result.Genres,
		},
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}
