package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookhaven/backend/middleware"
	"github.com/bookhaven/backend/models"
	"github.com/bookhaven/backend/store"
)

// ReviewStore is the slice of the persistence layer the review
// endpoints need. *store.DB satisfies it.
type ReviewStore interface {
	ReviewsForBook(ctx context.Context, bookID string) ([]models.Review, error)
	ReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)
	ReviewByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error
	DeleteReview(ctx context.Context, id primitive.ObjectID) error
}

type ReviewsHandler struct {
	DB ReviewStore
}

type CreateReviewRequest struct {
	BookID   string `json:"bookId"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type UpdateReviewRequest struct {
	ReviewID string `json:"reviewId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// List serves GET /api/reviews?bookId=, a book's reviews newest first.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.DB.ReviewsForBook(r.Context(), r.URL.Query().Get("bookId"))
	if err != nil {
		log.Printf("list reviews: %v", err)
		http.Error(w, `{"error":"failed to fetch reviews"}`, http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

// ListMine serves GET /api/reviews/user (behind auth middleware): the
// caller's own reviews, newest first.
func (h *ReviewsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	reviews, err := h.DB.ReviewsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("list user reviews: %v", err)
		http.Error(w, `{"error":"failed to fetch reviews"}`, http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

// Create serves POST /api/reviews (behind auth middleware). One review
// per user per book, enforced by the store's unique compound index.
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.BookID == "" || req.Rating == 0 || req.Comment == "" {
		http.Error(w, `{"error":"book ID, rating, and comment are required"}`, http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		http.Error(w, `{"error":"rating must be between 1 and 5"}`, http.StatusBadRequest)
		return
	}

	userName := req.Username
	if userName == "" {
		userName = claims.Name
	}
	review := &models.Review{
		BookID:    req.BookID,
		UserID:    claims.UserID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	id, err := h.DB.CreateReview(r.Context(), review)
	if err != nil {
		if store.IsDuplicateReview(err) {
			http.Error(w, `{"error":"you have already reviewed this book"}`, http.StatusBadRequest)
			return
		}
		log.Printf("create review: %v", err)
		http.Error(w, `{"error":"failed to submit review"}`, http.StatusInternalServerError)
		return
	}
	review.ID = id

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Review submitted successfully",
		"review":  review,
	})
}

// Update serves PUT /api/reviews (behind auth middleware): edits the
// rating and/or comment of the caller's own review.
func (h *ReviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	var req UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ReviewID)
	if err != nil {
		http.Error(w, `{"error":"invalid review id"}`, http.StatusBadRequest)
		return
	}
	if req.Rating == 0 && req.Comment == "" {
		http.Error(w, `{"error":"rating or comment is required"}`, http.StatusBadRequest)
		return
	}
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		http.Error(w, `{"error":"rating must be between 1 and 5"}`, http.StatusBadRequest)
		return
	}

	review, err := h.DB.ReviewByID(r.Context(), id)
	if err != nil {
		log.Printf("update review: %v", err)
		http.Error(w, `{"error":"failed to update review"}`, http.StatusInternalServerError)
		return
	}
	if review == nil {
		http.Error(w, `{"error":"review not found"}`, http.StatusNotFound)
		return
	}
	if review.UserID != claims.UserID {
		http.Error(w, `{"error":"you can only edit your own reviews"}`, http.StatusForbidden)
		return
	}

	if err := h.DB.UpdateReview(r.Context(), id, req.Rating, req.Comment); err != nil {
		log.Printf("update review: %v", err)
		http.Error(w, `{"error":"failed to update review"}`, http.StatusInternalServerError)
		return
	}
	if req.Rating != 0 {
		review.Rating = req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// Delete serves DELETE /api/reviews?reviewId= (behind auth middleware):
// removes the caller's own review.
func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	id, err := primitive.ObjectIDFromHex(r.URL.Query().Get("reviewId"))
	if err != nil {
		http.Error(w, `{"error":"invalid review id"}`, http.StatusBadRequest)
		return
	}

	review, err := h.DB.ReviewByID(r.Context(), id)
	if err != nil {
		log.Printf("delete review: %v", err)
		http.Error(w, `{"error":"failed to delete review"}`, http.StatusInternalServerError)
		return
	}
	if review == nil {
		http.Error(w, `{"error":"review not found"}`, http.StatusNotFound)
		return
	}
	if review.UserID != claims.UserID {
		http.Error(w, `{"error":"you can only delete your own reviews"}`, http.StatusForbidden)
		return
	}

	if err := h.DB.DeleteReview(r.Context(), id); err != nil {
		log.Printf("delete review: %v", err)
		http.Error(w, `{"error":"failed to delete review"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Review deleted successfully"})
}
