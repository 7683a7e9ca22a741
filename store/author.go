package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/backend/models"
)

// ListAuthors returns one page of authors, best-rated and most-published
// first, optionally filtered by a case-insensitive name match.
func (db *DB) ListAuthors(ctx context.Context, search string, skip, limit int64) ([]models.Author, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	total, err := db.Authors().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}, {Key: "totalBooks", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := db.Authors().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	var authors []models.Author
	if err := cur.All(ctx, &authors); err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// SearchAuthors is the authors branch of federated search: capped at
// limit, not paginated.
func (db *DB) SearchAuthors(ctx context.Context, query string, limit int64) ([]models.Author, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	cur, err := db.Authors().Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var authors []models.Author
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}
