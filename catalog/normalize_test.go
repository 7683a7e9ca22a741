package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookhaven/backend/models"
)

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"comma separated", "Fiction, Drama", []string{"Fiction", "Drama"}},
		{"string array", []string{"Sci-Fi"}, []string{"Sci-Fi"}},
		{"any array", []any{"Horror", 42, "Thriller"}, []string{"Horror", "Thriller"}},
		{"bson array", primitive.A{"Horror", "Thriller"}, []string{"Horror", "Thriller"}},
		{"empty string", "", []string{"General"}},
		{"nil", nil, []string{"General"}},
		{"empty array", []any{}, []string{"General"}},
		{"single quoted json list", "['Fantasy','War']", []string{"Fantasy", "War"}},
		{"double quoted json list", `["Mystery","Crime"]`, []string{"Mystery", "Crime"}},
		{"bare json string", "'Romance'", []string{"Romance"}},
		{"plain string", "Poetry", []string{"Poetry"}},
		{"comma with empties", "Fiction, , Drama,", []string{"Fiction", "Drama"}},
		{"json list of non-strings", "[1, 2]", []string{"General"}},
		{"unparseable bracket soup", "[Fantasy, War", []string{"[Fantasy", "War"}},
		{"non-string non-array", 7, []string{"General"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGenres(tt.raw))
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	id := primitive.NewObjectID()
	book := Normalize(models.RawBook{ID: id})

	assert.Equal(t, id.Hex(), book.ID)
	assert.Equal(t, "Untitled", book.Title)
	assert.Equal(t, "Unknown Author", book.Author)
	assert.Equal(t, "No description available.", book.Description)
	assert.Equal(t, "/placeholder.svg", book.CoverImage)
	assert.Equal(t, 2000, book.PublishedYear)
	assert.Equal(t, []string{"General"}, book.Genre)
	assert.Equal(t, "N/A", book.ISBN)
	assert.Equal(t, "English", book.Language)
	assert.Zero(t, book.Rating)
	assert.True(t, book.Unrated)
	assert.Zero(t, book.Pages)
}

func TestNormalizeFieldCoalescing(t *testing.T) {
	raw := models.RawBook{
		ID:                primitive.NewObjectID(),
		BookTitle:         "The Left Hand of Darkness",
		Title:             "ignored",
		BookAuthor:        "Ursula K. Le Guin",
		SummaryAlt:        "A story of Gethen.",
		ImgL:              "http://img.example/lhod-l.jpg",
		Rating:            4.3,
		YearOfPublication: 1969,
		Genres:            "Science Fiction",
		ISBN:              int64(441478123),
		Pages:             304,
		LanguageAlt:       "English",
	}
	book := Normalize(raw)

	assert.Equal(t, "The Left Hand of Darkness", book.Title)
	assert.Equal(t, "Ursula K. Le Guin", book.Author)
	assert.Equal(t, "A story of Gethen.", book.Description)
	assert.Equal(t, "http://img.example/lhod-l.jpg", book.CoverImage)
	assert.Equal(t, 4.3, book.Rating)
	assert.False(t, book.Unrated)
	assert.Equal(t, 1969, book.PublishedYear)
	assert.Equal(t, []string{"Science Fiction"}, book.Genre)
	assert.Equal(t, "441478123", book.ISBN)
	assert.Equal(t, 304, book.Pages)
}

func TestNormalizeRatingBounds(t *testing.T) {
	over := Normalize(models.RawBook{Rating: 7.5})
	assert.Equal(t, 5.0, over.Rating)
	assert.False(t, over.Unrated)

	under := Normalize(models.RawBook{Rating: -1})
	assert.Zero(t, under.Rating)
	assert.True(t, under.Unrated)
}

func TestNormalizeISBNNumber(t *testing.T) {
	// Some imports stored isbn as a raw number; bson decodes it float64.
	book := Normalize(models.RawBook{ISBN: float64(9780441478125)})
	assert.Equal(t, "9780441478125", book.ISBN)
}
