package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookhaven/backend/middleware"
	"github.com/bookhaven/backend/models"
)

type fakeReviewStore struct {
	byBook  []models.Review
	byUser  []models.Review
	review  *models.Review
	err     error
	updated bool
	deleted bool
}

func (f *fakeReviewStore) ReviewsForBook(ctx context.Context, bookID string) ([]models.Review, error) {
	return f.byBook, f.err
}

func (f *fakeReviewStore) ReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return f.byUser, f.err
}

func (f *fakeReviewStore) ReviewByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	return f.review, f.err
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeReviewStore) UpdateReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error {
	f.updated = true
	return f.err
}

func (f *fakeReviewStore) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	f.deleted = true
	return f.err
}

func authedRequest(method, target string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	claims := &middleware.Claims{UserID: userID, Name: "Test User", Email: "test@example.com"}
	return req.WithContext(middleware.WithClaims(req.Context(), claims))
}

func TestUpdateReview(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeReviewStore{
		review: &models.Review{ID: id, BookID: "b1", UserID: "u1", Rating: 3, Comment: "fine"},
	}
	h := &ReviewsHandler{DB: store}

	body, _ := json.Marshal(UpdateReviewRequest{ReviewID: id.Hex(), Rating: 5, Comment: "loved it after a reread"})
	rec := httptest.NewRecorder()
	h.Update(rec, authedRequest(http.MethodPut, "/api/reviews", body, "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.updated)

	var resp struct {
		Review models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Review.Rating)
	assert.Equal(t, "loved it after a reread", resp.Review.Comment)
}

func TestUpdateReviewNotFound(t *testing.T) {
	store := &fakeReviewStore{}
	h := &ReviewsHandler{DB: store}

	body, _ := json.Marshal(UpdateReviewRequest{ReviewID: primitive.NewObjectID().Hex(), Rating: 4})
	rec := httptest.NewRecorder()
	h.Update(rec, authedRequest(http.MethodPut, "/api/reviews", body, "u1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, store.updated)
}

func TestUpdateReviewOtherUsersReview(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeReviewStore{
		review: &models.Review{ID: id, BookID: "b1", UserID: "someone-else", Rating: 3, Comment: "fine"},
	}
	h := &ReviewsHandler{DB: store}

	body, _ := json.Marshal(UpdateReviewRequest{ReviewID: id.Hex(), Rating: 1})
	rec := httptest.NewRecorder()
	h.Update(rec, authedRequest(http.MethodPut, "/api/reviews", body, "u1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, store.updated)
}

func TestUpdateReviewValidation(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	tests := []struct {
		name string
		req  UpdateReviewRequest
	}{
		{"invalid id", UpdateReviewRequest{ReviewID: "nope", Rating: 4}},
		{"nothing to change", UpdateReviewRequest{ReviewID: id}},
		{"rating too high", UpdateReviewRequest{ReviewID: id, Rating: 9}},
		{"rating negative", UpdateReviewRequest{ReviewID: id, Rating: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReviewStore{review: &models.Review{UserID: "u1"}}
			h := &ReviewsHandler{DB: store}
			body, _ := json.Marshal(tt.req)
			rec := httptest.NewRecorder()
			h.Update(rec, authedRequest(http.MethodPut, "/api/reviews", body, "u1"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, store.updated)
		})
	}
}

func TestDeleteReview(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeReviewStore{
		review: &models.Review{ID: id, BookID: "b1", UserID: "u1"},
	}
	h := &ReviewsHandler{DB: store}

	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/reviews?reviewId="+id.Hex(), nil, "u1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.deleted)
}

func TestDeleteReviewOtherUsersReview(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeReviewStore{
		review: &models.Review{ID: id, BookID: "b1", UserID: "someone-else"},
	}
	h := &ReviewsHandler{DB: store}

	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/reviews?reviewId="+id.Hex(), nil, "u1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, store.deleted)
}

func TestDeleteReviewNotFound(t *testing.T) {
	store := &fakeReviewStore{}
	h := &ReviewsHandler{DB: store}

	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/reviews?reviewId="+primitive.NewObjectID().Hex(), nil, "u1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, store.deleted)
}

func TestDeleteReviewMissingID(t *testing.T) {
	h := &ReviewsHandler{DB: &fakeReviewStore{}}
	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/reviews", nil, "u1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMine(t *testing.T) {
	store := &fakeReviewStore{
		byUser: []models.Review{
			{BookID: "b1", UserID: "u1", Rating: 5, Comment: "great"},
			{BookID: "b2", UserID: "u1", Rating: 2, Comment: "not for me"},
		},
	}
	h := &ReviewsHandler{DB: store}

	rec := httptest.NewRecorder()
	h.ListMine(rec, authedRequest(http.MethodGet, "/api/reviews/user", nil, "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reviews, 2)
}

func TestListMineEmpty(t *testing.T) {
	h := &ReviewsHandler{DB: &fakeReviewStore{}}
	rec := httptest.NewRecorder()
	h.ListMine(rec, authedRequest(http.MethodGet, "/api/reviews/user", nil, "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviews":[]}`, rec.Body.String())
}
