package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/bookhaven/backend/catalog"
	"github.com/bookhaven/backend/models"
)

// BookStore is the slice of the persistence layer the book endpoints
// need. *store.DB satisfies it.
type BookStore interface {
	ListBooks(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Book, error)
	CountBooks(ctx context.Context, filter bson.M) (int64, error)
	BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	RawBookByID(ctx context.Context, id primitive.ObjectID) (*models.RawBook, error)
	TopRatedBooks(ctx context.Context) ([]models.Book, error)
	SetBookCover(ctx context.Context, id primitive.ObjectID, key string) (string, error)
}

// CoverStorage is the object-storage surface for cover images.
// *service.CoverStore satisfies it.
type CoverStorage interface {
	Put(ctx context.Context, originalFilename string, body io.Reader, contentType string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

type BooksHandler struct {
	DB     BookStore
	Covers CoverStorage // nil when object storage is not configured
	// PageSize is the default limit when the request does not set one.
	PageSize int
	// MaxUpload bounds cover upload size in bytes.
	MaxUpload int64
}

// Pagination is the metadata block of a book listing response.
type Pagination struct {
	CurrentPage         int         `json:"currentPage"`
	TotalPages          int         `json:"totalPages"`
	TotalBooks          int64       `json:"totalBooks"`
	HasNextPage         bool        `json:"hasNextPage"`
	HasPrevPage         bool        `json:"hasPrevPage"`
	Limit               int         `json:"limit"`
	Batch               int         `json:"batch"`
	ShouldLoadNextBatch bool        `json:"shouldLoadNextBatch"`
	MaxPagesInBatch     int         `json:"maxPagesInBatch"`
	Nav                 catalog.Nav `json:"nav"`
}

type ListBooksResponse struct {
	Books      []models.Book `json:"books"`
	Pagination Pagination    `json:"pagination"`
}

// List serves GET /api/books. Without an explicit batch parameter,
// page is the global page number and is decomposed into batch
// coordinates; with batch set, page is the page within that batch.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := intParam(q.Get("limit"), h.PageSize)
	if limit < 1 {
		limit = 24
	}
	if limit > 100 {
		limit = 100
	}

	page := intParam(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	var coords catalog.Coords
	if q.Get("batch") == "" {
		coords = catalog.SplitPage(page, limit)
	} else {
		coords = catalog.Coords{Batch: intParam(q.Get("batch"), 1), Page: page}
		if coords.Batch < 1 {
			coords.Batch = 1
		}
	}

	filter, sort := catalog.BuildQuery(catalog.ListParams{
		Search:    q.Get("search"),
		Genre:     q.Get("genre"),
		Author:    q.Get("author"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})

	var (
		books []models.Book
		total int64
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		books, err = h.DB.ListBooks(ctx, filter, sort, catalog.Skip(coords.Batch, coords.Page, limit), int64(limit))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.DB.CountBooks(ctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("list books: %v", err)
		http.Error(w, `{"error":"failed to fetch books"}`, http.StatusInternalServerError)
		return
	}

	pr := catalog.Paginate(coords.Batch, coords.Page, limit, total)
	if coords.Page > pr.TotalPagesInBatch {
		// Past the end of the batch; never an error.
		books = []models.Book{}
	}
	if books == nil {
		books = []models.Book{}
	}

	writeJSON(w, http.StatusOK, ListBooksResponse{
		Books: books,
		Pagination: Pagination{
			CurrentPage:         coords.Page,
			TotalPages:          pr.TotalPagesInBatch,
			TotalBooks:          pr.BatchTotal,
			HasNextPage:         coords.Page < pr.TotalPagesInBatch,
			HasPrevPage:         coords.Page > 1,
			Limit:               limit,
			Batch:               coords.Batch,
			ShouldLoadNextBatch: pr.ShouldLoadNextBatch,
			MaxPagesInBatch:     pr.MaxPagesInBatch,
			Nav:                 catalog.BuildNav(coords.Page, pr.TotalPagesInBatch, pr.MaxPagesInBatch),
		},
	})
}

// Get serves GET /api/books/{id}.
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"invalid book id"}`, http.StatusBadRequest)
		return
	}
	book, err := h.DB.BookByID(r.Context(), id)
	if err != nil {
		log.Printf("get book %s: %v", id.Hex(), err)
		http.Error(w, `{"error":"failed to fetch book"}`, http.StatusInternalServerError)
		return
	}
	if book == nil {
		http.Error(w, `{"error":"book not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"book": book})
}

// TopRated serves GET /api/books/top-rated: the ten highest-rated books.
func (h *BooksHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	books, err := h.DB.TopRatedBooks(r.Context())
	if err != nil {
		log.Printf("top rated books: %v", err)
		http.Error(w, `{"error":"failed to fetch top rated books"}`, http.StatusInternalServerError)
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

// Cover streams an uploaded cover image. GET /api/books/{id}/cover
// (public so img src works).
func (h *BooksHandler) Cover(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"invalid book id"}`, http.StatusBadRequest)
		return
	}
	raw, err := h.DB.RawBookByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"failed to fetch book"}`, http.StatusInternalServerError)
		return
	}
	if raw == nil || raw.CoverKey == "" || h.Covers == nil {
		http.Error(w, `{"error":"no cover"}`, http.StatusNotFound)
		return
	}
	body, contentType, err := h.Covers.Get(r.Context(), raw.CoverKey)
	if err != nil {
		log.Printf("cover %s: %v", id.Hex(), err)
		http.Error(w, `{"error":"failed to load cover"}`, http.StatusInternalServerError)
		return
	}
	defer body.Close()
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	io.Copy(w, body)
}

// UploadCover attaches a cover image to a book. POST /api/books/{id}/cover,
// multipart field "cover".
func (h *BooksHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	if h.Covers == nil {
		http.Error(w, `{"error":"cover storage not configured"}`, http.StatusServiceUnavailable)
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"invalid book id"}`, http.StatusBadRequest)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	file, header, err := r.FormFile("cover")
	if err != nil {
		http.Error(w, `{"error":"cover file required"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	key, err := h.Covers.Put(r.Context(), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("upload cover %s: %v", id.Hex(), err)
		http.Error(w, `{"error":"failed to store cover"}`, http.StatusInternalServerError)
		return
	}
	prevKey, err := h.DB.SetBookCover(r.Context(), id, key)
	if err != nil {
		_ = h.Covers.Delete(r.Context(), key)
		if err == mongo.ErrNoDocuments {
			http.Error(w, `{"error":"book not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("set cover %s: %v", id.Hex(), err)
		http.Error(w, `{"error":"failed to store cover"}`, http.StatusInternalServerError)
		return
	}
	if prevKey != "" {
		_ = h.Covers.Delete(r.Context(), prevKey)
	}
	writeJSON(w, http.StatusOK, map[string]string{"coverUrl": "/api/books/" + id.Hex() + "/cover"})
}

func intParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
