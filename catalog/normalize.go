// Package catalog holds the read path of the book catalog: record
// normalization, filter/sort construction, batch pagination and the
// federated search aggregator.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookhaven/backend/models"
)

// Defaults used when a stored record is missing a field.
const (
	DefaultTitle       = "Untitled"
	DefaultAuthor      = "Unknown Author"
	DefaultDescription = "No description available."
	DefaultCoverImage  = "/placeholder.svg"
	DefaultYear        = 2000
	DefaultISBN        = "N/A"
	DefaultLanguage    = "English"
	DefaultGenre       = "General"
)

// Normalize maps a raw stored record onto the canonical Book. It never
// fails: absent fields take the documented defaults and malformed genre
// values degrade to a single-element or default list. A record with no
// rating is reported as unrated rather than given a made-up value.
func Normalize(raw models.RawBook) models.Book {
	book := models.Book{
		ID:            raw.ID.Hex(),
		Title:         firstNonEmpty(raw.BookTitle, raw.Title, DefaultTitle),
		Author:        firstNonEmpty(raw.BookAuthor, raw.Author, DefaultAuthor),
		Description:   firstNonEmpty(raw.Summary, raw.SummaryAlt, raw.Description, DefaultDescription),
		CoverImage:    firstNonEmpty(raw.ImgL, raw.CoverImage, raw.Image, DefaultCoverImage),
		Rating:        raw.Rating,
		PublishedYear: firstPositive(raw.Year, raw.YearOfPublication, raw.PublishedYear, DefaultYear),
		Genre:         ParseGenres(coalesce(raw.Genres, raw.Category)),
		ISBN:          formatISBN(raw.ISBN),
		Pages:         raw.Pages,
		Language:      firstNonEmpty(raw.Language, raw.LanguageAlt, DefaultLanguage),
	}
	if book.Rating == 0 {
		book.Unrated = true
	}
	if book.Rating < 0 {
		book.Rating = 0
		book.Unrated = true
	}
	if book.Rating > 5 {
		book.Rating = 5
	}
	return book
}

// ParseGenres resolves the stored genre value into a non-empty list.
//
//  1. An array keeps only its string elements.
//  2. A string is first tried as JSON (after swapping single quotes for
//     double quotes, the form older imports wrote); a JSON array keeps
//     its string elements, a bare JSON string becomes a one-element
//     list.
//  3. If JSON parsing fails, a comma-joined string is split and
//     trimmed; any other string is a single genre.
//  4. Anything still empty becomes ["General"].
func ParseGenres(raw any) []string {
	var genres []string
	switch v := raw.(type) {
	case []string:
		for _, g := range v {
			if g != "" {
				genres = append(genres, g)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				genres = append(genres, s)
			}
		}
	case primitive.A: // bson decodes arrays into primitive.A, not []any
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				genres = append(genres, s)
			}
		}
	case string:
		genres = parseGenreString(v)
	}
	if len(genres) == 0 {
		genres = []string{DefaultGenre}
	}
	return genres
}

func parseGenreString(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	jsonish := strings.ReplaceAll(s, "'", `"`)
	var asList []any
	if err := json.Unmarshal([]byte(jsonish), &asList); err == nil {
		var genres []string
		for _, item := range asList {
			if str, ok := item.(string); ok && str != "" {
				genres = append(genres, str)
			}
		}
		return genres
	}
	var asString string
	if err := json.Unmarshal([]byte(jsonish), &asString); err == nil && asString != "" {
		return []string{asString}
	}
	if strings.Contains(s, ",") {
		var genres []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				genres = append(genres, p)
			}
		}
		return genres
	}
	return []string{s}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func coalesce(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func formatISBN(raw any) string {
	switch v := raw.(type) {
	case nil:
		return DefaultISBN
	case string:
		if v == "" {
			return DefaultISBN
		}
		return v
	case int32:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
