package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/backend/models"
)

func (db *DB) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *DB) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *DB) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := db.Users().InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// AddToWishlist adds a book id to the user's wishlist. $addToSet makes
// repeated adds a no-op instead of a duplicate.
func (db *DB) AddToWishlist(ctx context.Context, userID primitive.ObjectID, bookID string) error {
	_, err := db.Users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"wishlist": bookID}},
	)
	return err
}

// RemoveFromWishlist removes a book id from the user's wishlist.
func (db *DB) RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, bookID string) error {
	_, err := db.Users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"wishlist": bookID}},
	)
	return err
}

// InWishlist reports whether the user's wishlist contains the book.
func (db *DB) InWishlist(ctx context.Context, userID primitive.ObjectID, bookID string) (bool, error) {
	n, err := db.Users().CountDocuments(ctx, bson.M{"_id": userID, "wishlist": bookID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
