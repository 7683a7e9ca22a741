package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bookhaven/backend/models"
)

// SearchStore is the slice of the persistence layer the aggregator
// needs. *store.DB satisfies it.
type SearchStore interface {
	SearchBooks(ctx context.Context, query string, skip, limit int64) ([]models.Book, error)
	CountBookMatches(ctx context.Context, query string) (int64, error)
	SearchAuthors(ctx context.Context, query string, limit int64) ([]models.Author, error)
	SearchGenres(ctx context.Context, query string, limit int64) ([]models.Genre, error)
}

// SearchResult is the federated search envelope. Total and TotalPages
// are computed from the books branch; author and genre branches are
// capped at the limit but not counted.
type SearchResult struct {
	Books      []models.Book   `json:"books"`
	Authors    []models.Author `json:"authors"`
	Genres     []models.Genre  `json:"genres"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// Aggregator runs filtered searches across books, authors and genres.
type Aggregator struct {
	Store SearchStore
}

// Search runs the branches selected by typ ("all", "books", "authors"
// or "genres"; anything else selects nothing). Branches run
// concurrently, as do the books count and fetch. A blank query
// short-circuits to an empty result without touching the store.
func (a *Aggregator) Search(ctx context.Context, query, typ string, page, limit int) (*SearchResult, error) {
	result := &SearchResult{
		Books:      []models.Book{},
		Authors:    []models.Author{},
		Genres:     []models.Genre{},
		TotalPages: 1,
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return result, nil
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	g, gctx := errgroup.WithContext(ctx)

	if typ == "all" || typ == "books" {
		skip := int64(page-1) * int64(limit)
		g.Go(func() error {
			books, err := a.Store.SearchBooks(gctx, query, skip, int64(limit))
			if err != nil {
				return err
			}
			result.Books = books
			return nil
		})
		g.Go(func() error {
			total, err := a.Store.CountBookMatches(gctx, query)
			if err != nil {
				return err
			}
			result.Total = total
			return nil
		})
	}
	if typ == "all" || typ == "authors" {
		g.Go(func() error {
			authors, err := a.Store.SearchAuthors(gctx, query, int64(limit))
			if err != nil {
				return err
			}
			result.Authors = authors
			return nil
		})
	}
	if typ == "all" || typ == "genres" {
		g.Go(func() error {
			genres, err := a.Store.SearchGenres(gctx, query, int64(limit))
			if err != nil {
				return err
			}
			result.Genres = genres
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if result.Total > 0 {
		result.TotalPages = int((result.Total + int64(limit) - 1) / int64(limit))
	}
	if result.Books == nil {
		result.Books = []models.Book{}
	}
	if result.Authors == nil {
		result.Authors = []models.Author{}
	}
	if result.Genres == nil {
		result.Genres = []models.Genre{}
	}
	return result, nil
}
