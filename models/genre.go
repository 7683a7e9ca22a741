package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	TotalBooks    int                `bson:"totalBooks" json:"totalBooks"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	Popularity    int                `bson:"popularity" json:"popularity"`
}
