package cms

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"go.uber.org/zap"

	"storefront/internal/models"
)

// FetchProducts pages through the products collection. Records without an
// external id are skipped; a later record with the same external id replaces
// the earlier one. Any failure discards everything fetched so far.
func (c *Client) FetchProducts(ctx context.Context) (*models.Catalog, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	collection := c.cfg.ProductsCollection
	populate := url.Values{"populate[images][populate]": {"image"}}

	catalog := models.NewCatalog()
	seen := 0
	err := c.eachPage(ctx, collection, populate, func(page int, rows []any) {
		for i, row := range rows {
			entry, ok := row.(map[string]any)
			if !ok {
				continue
			}
			seen++
			p := normalizeProduct(entry, fmt.Sprintf("%d-%d", page, i+1), c.cfg.BaseURL)
			if p.ExternalID == "" {
				continue
			}
			catalog.Put(p)
		}
	})
	if err != nil {
		c.logger.Warn("products fetch failed, falling back to local catalog",
			zap.String("collection", collection), zap.Error(err))
		return nil, err
	}

	// An empty catalog is returned as-is either way; the log line is the only
	// way to tell "no products" from "products without external ids".
	if seen > 0 && catalog.Len() == 0 {
		c.logger.Warn("cms returned products but none carry an external_id",
			zap.String("collection", collection), zap.Int("records", seen))
	} else if seen == 0 {
		c.logger.Info("cms products collection is empty", zap.String("collection", collection))
	}
	return catalog, nil
}

// FetchHomepage reads the first entry of the homepage collection.
func (c *Client) FetchHomepage(ctx context.Context) (*models.HomepageContent, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	q := url.Values{
		"populate[hero_images]":      {"true"},
		"populate[common][populate]": {"image"},
		"pagination[page]":           {"1"},
		"pagination[pageSize]":       {"1"},
	}

	for _, coll := range candidates(c.cfg.HomeCollection) {
		env, err := c.get(ctx, coll, q)
		if isNotFound(err) {
			continue
		}
		if err != nil {
			c.logger.Warn("homepage fetch failed from cms", zap.String("collection", coll), zap.Error(err))
			return nil, err
		}
		rows, ok := env.Data.([]any)
		if !ok || len(rows) == 0 {
			continue
		}
		entry, ok := rows[0].(map[string]any)
		if !ok {
			entry = map[string]any{}
		}
		h := normalizeHomepage(attributes(entry), c.cfg.BaseURL)
		return &h, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, c.cfg.HomeCollection)
}

// FetchGallery returns gallery entries ordered by their sort order.
func (c *Client) FetchGallery(ctx context.Context) ([]models.GalleryImage, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	populate := url.Values{"populate": {"*"}}

	for _, coll := range candidates(c.cfg.GalleryCollection) {
		var images []models.GalleryImage
		err := c.eachPage(ctx, coll, populate, func(_ int, rows []any) {
			for _, row := range rows {
				entry, ok := row.(map[string]any)
				if !ok {
					continue
				}
				if img, ok := normalizeGalleryItem(entry, c.cfg.BaseURL); ok {
					images = append(images, img)
				}
			}
		})
		if isNotFound(err) {
			continue
		}
		if err != nil {
			c.logger.Warn("gallery fetch failed from cms", zap.String("collection", coll), zap.Error(err))
			return nil, err
		}
		sort.SliceStable(images, func(i, j int) bool { return images[i].SortOrder < images[j].SortOrder })
		return images, nil
	}

	err := fmt.Errorf("%w: %s", ErrCollectionNotFound, c.cfg.GalleryCollection)
	c.logger.Warn("gallery fetch failed from cms", zap.Error(err))
	return nil, err
}

// IsDisabled reports whether err only means the CMS is switched off.
func IsDisabled(err error) bool { return errors.Is(err, ErrDisabled) }
