package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/backend/models"
)

// ListGenres returns one page of genres, most popular first, optionally
// filtered by a case-insensitive name match.
func (db *DB) ListGenres(ctx context.Context, search string, skip, limit int64) ([]models.Genre, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	total, err := db.Genres().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}, {Key: "totalBooks", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := db.Genres().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	var genres []models.Genre
	if err := cur.All(ctx, &genres); err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

// SearchGenres is the genres branch of federated search: capped at
// limit, not paginated.
func (db *DB) SearchGenres(ctx context.Context, query string, limit int64) ([]models.Genre, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	cur, err := db.Genres().Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var genres []models.Genre
	if err := cur.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}
