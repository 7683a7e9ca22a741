package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ListParams are the recognized query parameters for listing books.
type ListParams struct {
	Search    string
	Genre     string
	Author    string
	SortBy    string // title, author, rating; anything else sorts by _id
	SortOrder string // asc or desc, default desc
}

// BuildQuery translates list parameters into a Mongo filter and sort
// document. Pure: no I/O, identical input gives identical output.
// Absent parameters impose no constraint.
func BuildQuery(p ListParams) (bson.M, bson.D) {
	filter := bson.M{}

	if p.Search != "" {
		regex := bson.M{"$regex": p.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"author": regex},
			bson.M{"summary": regex},
		}
	}
	if p.Genre != "" {
		filter["genres"] = bson.M{"$regex": p.Genre, "$options": "i"}
	}
	if p.Author != "" {
		filter["author"] = bson.M{"$regex": p.Author, "$options": "i"}
	}

	order := -1
	if p.SortOrder == "asc" {
		order = 1
	}
	var sort bson.D
	switch p.SortBy {
	case "title":
		sort = bson.D{{Key: "title", Value: order}}
	case "author":
		sort = bson.D{{Key: "author", Value: order}}
	case "rating":
		sort = bson.D{{Key: "rating", Value: order}}
	default:
		// Insertion order; _id keeps repeated queries deterministic.
		sort = bson.D{{Key: "_id", Value: order}}
	}
	return filter, sort
}
