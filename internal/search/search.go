package search

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"storefront/internal/content"
	"storefront/internal/models"
)

const (
	// MaxResults caps the live-search dropdown.
	MaxResults = 8
	minQuery   = 2
	descLimit  = 100
)

// categories maps the search form's category ids to labels; "1" is "All Apparels".
var categories = map[string]string{
	"2": "men",
	"3": "women",
	"4": "kids",
}

// Result — одна строка выдачи живого поиска
type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Image string `json:"image"`
	Price string `json:"price"`
	URL   string `json:"url"`
}

// Run scans the catalog in order and returns at most MaxResults matches.
// Queries shorter than two characters return an empty, non-nil slice.
func Run(catalog *models.Catalog, query, category string) []Result {
	results := []Result{}
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minQuery {
		return results
	}
	label, filtered := categories[category]

	for _, p := range catalog.Products() {
		if filtered && !strings.Contains(strings.ToLower(p.Category), label) {
			continue
		}
		haystack := strings.ToLower(p.Name + " " + p.Desc + " " + strings.Join(p.Keywords, " "))
		if !strings.Contains(haystack, q) {
			continue
		}
		results = append(results, Result{
			ID:    p.ID,
			Name:  p.DisplayName(),
			Desc:  truncate(p.Desc, descLimit),
			Image: content.ResolveMediaURL(p.ImagePath),
			Price: p.Price.String(),
			URL:   "/shop-details?id=" + url.QueryEscape(p.ID),
		})
		if len(results) == MaxResults {
			break
		}
	}
	return results
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
