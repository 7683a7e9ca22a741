package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/backend/catalog"
	"github.com/bookhaven/backend/models"
)

// ListBooks returns one page of canonical books matching the filter.
// The matching count comes from CountBooks so the caller can issue
// both queries concurrently.
func (db *DB) ListBooks(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Book, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cur, err := db.Books().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var raws []models.RawBook
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	books := make([]models.Book, 0, len(raws))
	for _, raw := range raws {
		books = append(books, catalog.Normalize(raw))
	}
	return books, nil
}

// CountBooks counts documents matching the filter.
func (db *DB) CountBooks(ctx context.Context, filter bson.M) (int64, error) {
	return db.Books().CountDocuments(ctx, filter)
}

// BookByID fetches and normalizes one book. Returns (nil, nil) when the
// book does not exist.
func (db *DB) BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var raw models.RawBook
	err := db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	book := catalog.Normalize(raw)
	return &book, nil
}

// RawBookByID fetches one book without normalization (used by the cover
// endpoints, which need the stored object key).
func (db *DB) RawBookByID(ctx context.Context, id primitive.ObjectID) (*models.RawBook, error) {
	var raw models.RawBook
	err := db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

// TopRatedBooks returns the ten highest-rated books with a rating of at
// least 4.0.
func (db *DB) TopRatedBooks(ctx context.Context) ([]models.Book, error) {
	filter := bson.M{"rating": bson.M{"$gte": 4.0}}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(10)
	cur, err := db.Books().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var raws []models.RawBook
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	books := make([]models.Book, 0, len(raws))
	for _, raw := range raws {
		books = append(books, catalog.Normalize(raw))
	}
	return books, nil
}

// SetBookCover records the object-storage key of an uploaded cover and
// returns the previous key, if any, so the caller can delete it.
func (db *DB) SetBookCover(ctx context.Context, id primitive.ObjectID, key string) (string, error) {
	var prev models.RawBook
	err := db.Books().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"coverKey": key}},
	).Decode(&prev)
	if err != nil {
		return "", err
	}
	return prev.CoverKey, nil
}

func bookSearchFilter(query string) bson.M {
	regex := bson.M{"$regex": query, "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": regex},
		bson.M{"author": regex},
		bson.M{"summary": regex},
	}}
}

// SearchBooks is the books branch of federated search.
func (db *DB) SearchBooks(ctx context.Context, query string, skip, limit int64) ([]models.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := db.Books().Find(ctx, bookSearchFilter(query), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var raws []models.RawBook
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	books := make([]models.Book, 0, len(raws))
	for _, raw := range raws {
		books = append(books, catalog.Normalize(raw))
	}
	return books, nil
}

// CountBookMatches counts the books branch of federated search.
func (db *DB) CountBookMatches(ctx context.Context, query string) (int64, error) {
	return db.Books().CountDocuments(ctx, bookSearchFilter(query))
}
