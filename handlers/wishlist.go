package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bookhaven/backend/middleware"
	"github.com/bookhaven/backend/store"
)

type WishlistHandler struct {
	DB *store.DB
}

type WishlistUpdateRequest struct {
	BookID string `json:"bookId"`
	Action string `json:"action"` // add, remove, or empty for toggle
}

type WishlistUpdateResponse struct {
	Success    bool   `json:"success"`
	InWishlist bool   `json:"inWishlist"`
	Message    string `json:"message"`
}

// List serves GET /api/wishlist: the caller's wishlisted book ids.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	user, err := h.DB.UserByID(r.Context(), userID)
	if err != nil {
		log.Printf("wishlist: %v", err)
		http.Error(w, `{"error":"failed to fetch wishlist"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
		return
	}
	wishlist := user.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlist": wishlist})
}

// Update serves POST /api/wishlist: add, remove, or (default) toggle a
// book. Mutations are atomic $addToSet/$pull updates, so a repeated add
// never duplicates an entry.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	var req WishlistUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.BookID == "" {
		http.Error(w, `{"error":"book ID is required"}`, http.StatusBadRequest)
		return
	}

	inWishlist, err := h.DB.InWishlist(r.Context(), userID, req.BookID)
	if err != nil {
		log.Printf("wishlist update: %v", err)
		http.Error(w, `{"error":"failed to update wishlist"}`, http.StatusInternalServerError)
		return
	}

	add := false
	switch req.Action {
	case "add":
		add = true
	case "remove":
		add = false
	default:
		add = !inWishlist
	}

	if add {
		err = h.DB.AddToWishlist(r.Context(), userID, req.BookID)
	} else {
		err = h.DB.RemoveFromWishlist(r.Context(), userID, req.BookID)
	}
	if err != nil {
		log.Printf("wishlist update: %v", err)
		http.Error(w, `{"error":"failed to update wishlist"}`, http.StatusInternalServerError)
		return
	}

	message := "Book removed from wishlist"
	if add {
		message = "Book added to wishlist"
	}
	writeJSON(w, http.StatusOK, WishlistUpdateResponse{
		Success:    true,
		InWishlist: add,
		Message:    message,
	})
}

// Remove serves DELETE /api/wishlist?bookId=.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	bookID := r.URL.Query().Get("bookId")
	if bookID == "" {
		http.Error(w, `{"error":"book ID is required"}`, http.StatusBadRequest)
		return
	}
	if err := h.DB.RemoveFromWishlist(r.Context(), userID, bookID); err != nil {
		log.Printf("wishlist remove: %v", err)
		http.Error(w, `{"error":"failed to update wishlist"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, WishlistUpdateResponse{
		Success:    true,
		InWishlist: false,
		Message:    "Book removed from wishlist",
	})
}

// Check serves GET /api/wishlist/check?bookId=.
func (h *WishlistHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	bookID := r.URL.Query().Get("bookId")
	if bookID == "" {
		http.Error(w, `{"error":"book ID is required"}`, http.StatusBadRequest)
		return
	}
	inWishlist, err := h.DB.InWishlist(r.Context(), userID, bookID)
	if err != nil {
		log.Printf("wishlist check: %v", err)
		http.Error(w, `{"error":"failed to check wishlist"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"inWishlist": inWishlist})
}
