package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RawBook is a book document exactly as it sits in MongoDB. The
// collection was assembled from several imports, so the same logical
// field shows up under different names (book_title vs title, Category
// vs genres, ...). RawBook carries every variant; catalog.Normalize is
// the only place that coalesces them into the canonical Book.
type RawBook struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	Title     string `bson:"title,omitempty"`
	BookTitle string `bson:"book_title,omitempty"`

	Author     string `bson:"author,omitempty"`
	BookAuthor string `bson:"book_author,omitempty"`

	Summary     string `bson:"summary,omitempty"`
	SummaryAlt  string `bson:"Summary,omitempty"`
	Description string `bson:"description,omitempty"`

	ImgL       string `bson:"img_l,omitempty"`
	CoverImage string `bson:"coverImage,omitempty"`
	Image      string `bson:"image,omitempty"`

	Rating float64 `bson:"rating,omitempty"`

	Year              int `bson:"year,omitempty"`
	YearOfPublication int `bson:"year_of_publication,omitempty"`
	PublishedYear     int `bson:"publishedYear,omitempty"`

	// genres can be an array of strings, a comma-joined string or a
	// JSON-ish list with single quotes; Category is an older import's
	// name for the same field.
	Genres   any `bson:"genres,omitempty"`
	Category any `bson:"Category,omitempty"`

	// isbn is a string in most records but a bare number in some.
	ISBN any `bson:"isbn,omitempty"`

	Pages int `bson:"pages,omitempty"`

	Language    string `bson:"language,omitempty"`
	LanguageAlt string `bson:"Language,omitempty"`

	// CoverKey is set when a cover image was uploaded to object storage.
	CoverKey string `bson:"coverKey,omitempty"`
}

// Book is the canonical, field-complete shape returned by the API.
// Produced only by catalog.Normalize.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
	Rating        float64  `json:"rating"`
	Unrated       bool     `json:"unrated,omitempty"`
	PublishedYear int      `json:"publishedYear"`
	Genre         []string `json:"genre"`
	ISBN          string   `json:"isbn"`
	Pages         int      `json:"pages,omitempty"`
	Language      string   `json:"language"`
}
