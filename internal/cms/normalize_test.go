package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestNormalizeProduct_FlatRecord(t *testing.T) {
	entry := decodeRaw(t, `{
		"id": 7,
		"documentId": "doc7",
		"external_id": "000007",
		"title": "Heavy Hoodie",
		"short_description": "Warm",
		"description": [{"type":"paragraph","children":[{"type":"text","text":"Very"},{"type":"text","text":"warm"}]}],
		"price": 49.5,
		"sizes": "S, M, L",
		"tags": ["hoodie", "winter"],
		"images": [
			{"color": "Black", "image": {"url": "/uploads/black.png"}, "image_alt": "Black hoodie"},
			{"color": "Red", "image": {"data": {"attributes": {"url": "https://cdn.example.com/red.png"}}}},
			{"color": "Ghost"}
		]
	}`).(map[string]any)

	p := normalizeProduct(entry, "1-1", base)

	assert.Equal(t, "000007", p.ID)
	assert.Equal(t, "strapi", p.Source)
	assert.Equal(t, "Heavy Hoodie", p.Name)
	assert.Equal(t, "Custom", p.Category)
	assert.Equal(t, "Warm", p.Desc)
	assert.Equal(t, "Very warm", p.Description.Text)
	assert.Equal(t, "49.5", p.Price.String())
	assert.Equal(t, models.StringList{"S", "M", "L"}, p.Sizes)
	assert.Equal(t, models.StringList{"hoodie", "winter"}, p.Keywords)
	assert.Equal(t, "100 MOQ", p.ExtendedMOQ.String())
	assert.Equal(t, "72 Hours Delivery", p.DeliveryTime.String())
	assert.Equal(t, "Heavy Hoodie", p.ImageAlt)

	require.Len(t, p.Images, 2)
	assert.Equal(t, models.ProductImage{ImagePath: base + "/uploads/black.png", ImageAlt: "Black hoodie", Color: "Black"}, p.Images[0])
	assert.Equal(t, "https://cdn.example.com/red.png", p.Images[1].ImagePath)
	assert.Equal(t, "Red", p.Images[1].Color)
	assert.Equal(t, base+"/uploads/black.png", p.ImagePath, "primary image falls back to first image")
}

func TestNormalizeProduct_AttributesEnvelopeAndDefaults(t *testing.T) {
	entry := decodeRaw(t, `{"id": 3, "attributes": {"image_path": "abc_upload/p/p.png", "images": {"data": [{"id": 1, "attributes": {"url": "/uploads/u.png", "name": "Navy"}}]}}}`).(map[string]any)

	p := normalizeProduct(entry, "1-1", base)

	assert.Equal(t, "3", p.ID, "cms id used when external id is missing")
	assert.Empty(t, p.ExternalID)
	assert.Equal(t, "Product 3", p.Name)
	assert.Equal(t, "abc_upload/p/p.png", p.ImagePath)
	assert.Equal(t, "72 Hours Delivery", p.Price.String())
	require.Len(t, p.Images, 1)
	assert.Equal(t, base+"/uploads/u.png", p.Images[0].ImagePath)
	assert.Equal(t, "Navy", p.Images[0].Color)
}

func TestNormalizeProduct_DescriptionFallsBackToDesc(t *testing.T) {
	entry := decodeRaw(t, `{"external_id":"x","desc":"Short one"}`).(map[string]any)
	p := normalizeProduct(entry, "1-1", base)
	assert.Equal(t, "Short one", p.Description.Text)
}

func TestNormalizeGalleryItem(t *testing.T) {
	entry := decodeRaw(t, `{"attributes":{"title":"Blue","image":{"data":{"attributes":{"url":"/uploads/g.png"}}},"sort_order":"4"}}`).(map[string]any)
	img, ok := normalizeGalleryItem(entry, base)
	require.True(t, ok)
	assert.Equal(t, models.GalleryImage{URL: base + "/uploads/g.png", Color: "Blue", SortOrder: 4}, img)

	_, ok = normalizeGalleryItem(map[string]any{"title": "nothing"}, base)
	assert.False(t, ok)

	img, ok = normalizeGalleryItem(map[string]any{"url": "https://x.io/a.jpg", "order": "soon"}, base)
	require.True(t, ok)
	assert.Equal(t, "Gallery", img.Color)
	assert.Equal(t, 0, img.SortOrder)
}

func TestNormalizeHomepage(t *testing.T) {
	attrs := decodeRaw(t, `{
		"hero_title": "New Season",
		"banner_subtitle": "Fresh",
		"hero_images": [{"url": "/uploads/h1.png"}, {"url": "/uploads/h2.png"}],
		"common": [
			{"title": "Labels", "description": "We label", "image": {"url": "/uploads/s1.svg"}},
			"garbage"
		],
		"service_2_title": "Manufacturing",
		"garment_design_image": "/static/custom/3.svg"
	}`).(map[string]any)

	h := normalizeHomepage(attrs, base)
	def := models.DefaultHomepage()

	assert.Equal(t, "New Season", h.HeroTitle)
	assert.Equal(t, "Fresh", h.HeroSubtitle)
	assert.Equal(t, def.HeroCTALink, h.HeroCTALink)
	assert.Equal(t, []string{base + "/uploads/h1.png", base + "/uploads/h2.png"}, h.HeroImages)

	assert.Equal(t, "Labels", h.Services[0].Title)
	assert.Equal(t, "We label", h.Services[0].Description)
	assert.Equal(t, base+"/uploads/s1.svg", h.Services[0].Image)

	assert.Equal(t, "Manufacturing", h.Services[1].Title)
	assert.Equal(t, def.Services[1].Description, h.Services[1].Description)

	assert.Equal(t, def.Services[2].Title, h.Services[2].Title)
	assert.Equal(t, "/static/custom/3.svg", h.Services[2].Image)
}

func TestNormalizeHomepage_EmptyUsesDefaults(t *testing.T) {
	assert.Equal(t, models.DefaultHomepage(), normalizeHomepage(map[string]any{}, base))
}
