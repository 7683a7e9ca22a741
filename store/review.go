package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/backend/models"
)

// ReviewsForBook returns a book's reviews, newest first. An empty
// bookID returns all reviews.
func (db *DB) ReviewsForBook(ctx context.Context, bookID string) ([]models.Review, error) {
	filter := bson.M{}
	if bookID != "" {
		filter["bookId"] = bookID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := db.Reviews().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewsByUser returns every review written by the user, newest
// first.
func (db *DB) ReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := db.Reviews().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewByID fetches one review. Returns (nil, nil) when it does not
// exist.
func (db *DB) ReviewByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := db.Reviews().FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateReview inserts a review. The unique (bookId, userId) index
// rejects a second review from the same user for the same book; the
// caller checks mongo.IsDuplicateKeyError on the returned error.
func (db *DB) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	res, err := db.Reviews().InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateReview applies the non-zero fields to the review. Ownership is
// the caller's responsibility.
func (db *DB) UpdateReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error {
	set := bson.M{}
	if rating != 0 {
		set["rating"] = rating
	}
	if comment != "" {
		set["comment"] = comment
	}
	if len(set) == 0 {
		return nil
	}
	_, err := db.Reviews().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// DeleteReview removes the review. Deleting an absent review is not an
// error; callers check existence first when they need a 404.
func (db *DB) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.Reviews().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IsDuplicateReview reports whether err is the unique-index violation
// from CreateReview.
func IsDuplicateReview(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
