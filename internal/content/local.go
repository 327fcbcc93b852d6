// Package content loads storefront data from the CMS when it is configured
// and from local JSON files otherwise.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"storefront/internal/models"
)

// ErrMalformed wraps JSON syntax and type errors in local content files.
var ErrMalformed = errors.New("content: malformed JSON")

// readJSON decodes path into dst. A missing file leaves dst untouched and is not an error.
func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}

// LoadCatalog reads shop.json, keeping the file's key order.
func LoadCatalog(path string) (*models.Catalog, error) {
	catalog := models.NewCatalog()
	if err := readJSON(path, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadReviews reads reviews.json; reviews are passed through untouched.
func LoadReviews(path string) ([]models.Review, error) {
	var reviews []models.Review
	if err := readJSON(path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// LoadPage returns one page section of content.json, e.g. "contact.html".
func LoadPage(path, key string) (map[string]any, error) {
	var pages map[string]map[string]any
	if err := readJSON(path, &pages); err != nil {
		return nil, err
	}
	page := pages[key]
	if page == nil {
		page = map[string]any{}
	}
	return page, nil
}
