package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Author struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Bio           string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Nationality   string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	TotalBooks    int                `bson:"totalBooks" json:"totalBooks"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
