package cms

import (
	"strconv"
	"strings"

	"storefront/internal/models"
)

const (
	defaultDelivery = "72 Hours Delivery"
	defaultMOQ      = "100 MOQ"
)

// attributes unwraps the v4 {"id":1,"attributes":{...}} envelope; v5 records are flat.
func attributes(entry map[string]any) map[string]any {
	if attrs, ok := entry["attributes"].(map[string]any); ok {
		return attrs
	}
	return entry
}

// pick returns the value of the first present, non-null key.
func pick(attrs map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := attrs[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func text(attrs map[string]any, def string, keys ...string) string {
	if v, ok := pick(attrs, keys...); ok {
		return models.Stringify(v)
	}
	return def
}

func list(attrs map[string]any, keys ...string) models.StringList {
	v, _ := pick(attrs, keys...)
	return models.ToStringList(v)
}

func media(attrs map[string]any, keys ...string) Media {
	v, _ := pick(attrs, keys...)
	return DecodeMedia(v)
}

// normalizeProduct maps one CMS record to a Product; fallbackID is used when
// the record has neither an external id nor a CMS id.
func normalizeProduct(entry map[string]any, fallbackID, base string) models.Product {
	attrs := attributes(entry)
	externalID := strings.TrimSpace(text(attrs, "", "external_id"))
	id := externalID
	if id == "" {
		id = text(entry, "", "id", "documentId")
	}
	if id == "" {
		id = fallbackID
	}

	images := normalizeImages(attrs["images"], base)
	if len(images) == 0 {
		images = normalizeImages(attrs["gallery_images"], base)
	}
	primary := media(attrs, "image_path", "image", "thumbnail").First(base)
	if primary == "" && len(images) > 0 {
		primary = images[0].ImagePath
	}

	desc := text(attrs, "", "desc", "short_description", "summary")
	description := models.RichText{Text: desc}
	if v, ok := pick(attrs, "description", "long_description"); ok {
		description = models.RichTextFrom(v)
	}
	name := text(attrs, "Product "+id, "name", "title")

	return models.Product{
		ID:              id,
		Source:          "strapi",
		ExternalID:      externalID,
		Name:            name,
		Category:        text(attrs, "Custom", "category"),
		Keywords:        list(attrs, "keywords", "tags"),
		Desc:            desc,
		Description:     description,
		Price:           models.FlexString(text(attrs, defaultDelivery, "price", "delivery_time")),
		Sizes:           list(attrs, "Sizes", "sizes"),
		ExtendedSizes:   list(attrs, "extended_sizes", "extendedSizes"),
		ExtendedMOQ:     models.FlexString(text(attrs, defaultMOQ, "extended_moq", "extendedMoq")),
		ImagePath:       primary,
		ImageAlt:        text(attrs, text(attrs, "Product", "name", "title"), "image_alt", "alt_text"),
		Images:          images,
		Decorations:     list(attrs, "decorations"),
		Instructions:    list(attrs, "instructions"),
		ProductDetails:  list(attrs, "product_details", "productDetails"),
		DeliveryTime:    models.FlexString(text(attrs, defaultDelivery, "delivery_time")),
		Discount:        models.FlexString(text(attrs, "", "discount")),
		ColorsAvailable: models.FlexString(text(attrs, "", "colors_available", "colorsAvailable")),
		CustomColor:     models.FlexString(text(attrs, "", "custom_color", "customColor")),
	}
}

// normalizeImages accepts a relation wrapper, a list of image components or a single component.
func normalizeImages(raw any, base string) []models.ProductImage {
	var items []any
	switch t := raw.(type) {
	case []any:
		items = t
	case map[string]any:
		switch data := t["data"].(type) {
		case []any:
			items = data
		case map[string]any:
			items = []any{data}
		default:
			items = []any{t}
		}
	}

	var images []models.ProductImage
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if img, ok := normalizeImage(m, base); ok {
			images = append(images, img)
		}
	}
	return images
}

func normalizeImage(item map[string]any, base string) (models.ProductImage, bool) {
	attrs := attributes(item)
	u := media(attrs, "image_path", "image", "media", "photo").First(base)
	if u == "" {
		// the component itself may be an upload object or a relation
		u = DecodeMedia(attrs).First(base)
	}
	if u == "" {
		return models.ProductImage{}, false
	}
	return models.ProductImage{
		ImagePath: u,
		ImageAlt:  text(attrs, "", "image_alt", "alt", "alternativeText", "name"),
		Color:     text(attrs, "default", "color", "name"),
	}, true
}

func normalizeGalleryItem(entry map[string]any, base string) (models.GalleryImage, bool) {
	attrs := attributes(entry)
	u := media(attrs, "image", "file", "media", "photo").First(base)
	if u == "" {
		u = media(attrs, "url", "image_path").First(base)
	}
	if u == "" {
		return models.GalleryImage{}, false
	}
	order, err := strconv.Atoi(text(attrs, "0", "sort_order", "order"))
	if err != nil {
		order = 0
	}
	return models.GalleryImage{
		URL:       u,
		Color:     text(attrs, "Gallery", "color", "title", "name", "alt_text"),
		SortOrder: order,
	}, true
}

// normalizeHomepage fills every field from the first matching key, then the
// "common" service components, then the built-in defaults.
func normalizeHomepage(attrs map[string]any, base string) models.HomepageContent {
	def := models.DefaultHomepage()

	var hero []string
	for _, key := range []string{"hero_images", "hero_banners", "images", "banners", "hero"} {
		if hero = media(attrs, key).All(base); len(hero) > 0 {
			break
		}
	}
	if len(hero) == 0 {
		hero = media(attrs, "image", "image_path").All(base)
	}
	if len(hero) == 0 {
		hero = def.HeroImages
	}

	v, _ := pick(attrs, "common", "services", "service_cards")
	components, _ := v.([]any)

	h := models.HomepageContent{
		HeroImages:     hero,
		HeroSubtitle:   text(attrs, def.HeroSubtitle, "hero_subtitle", "banner_subtitle"),
		HeroTitle:      text(attrs, def.HeroTitle, "hero_title", "banner_title"),
		HeroPriceText:  text(attrs, def.HeroPriceText, "hero_price_text", "banner_price_text"),
		HeroPriceValue: text(attrs, def.HeroPriceValue, "hero_price_value", "banner_price_value"),
		HeroCTAText:    text(attrs, def.HeroCTAText, "hero_cta_text", "banner_cta_text"),
		HeroCTALink:    text(attrs, def.HeroCTALink, "hero_cta_link", "banner_cta_link"),
		OfferSubtitle:  text(attrs, def.OfferSubtitle, "exclusive_offer_subtitle", "offer_subtitle"),
		OfferTitle:     text(attrs, def.OfferTitle, "exclusive_offer_title", "offer_title"),
		OfferCTAText:   text(attrs, def.OfferCTAText, "exclusive_offer_cta_text", "offer_cta_text"),
		OfferCTALink:   text(attrs, def.OfferCTALink, "exclusive_offer_cta_link", "offer_cta_link"),
	}

	legacy := [3]string{"white_label", "custom_manufacturing", "garment_design"}
	for i := range h.Services {
		n := strconv.Itoa(i + 1)
		fallback := def.Services[i]
		if i < len(components) {
			if comp, ok := components[i].(map[string]any); ok {
				fallback.Title = text(comp, fallback.Title, "title", "name")
				fallback.Description = text(comp, fallback.Description, "description", "desc")
				if u := media(comp, "image", "media", "file").First(base); u != "" {
					fallback.Image = u
				}
			}
		}
		h.Services[i] = models.Service{
			Title:       text(attrs, fallback.Title, "service_"+n+"_title", legacy[i]+"_title"),
			Description: text(attrs, fallback.Description, "service_"+n+"_description", legacy[i]+"_description"),
			Image:       firstMedia(attrs, base, fallback.Image, "service_"+n+"_image", legacy[i]+"_image"),
		}
	}
	return h
}

// firstMedia checks keys one by one; a key whose value resolves to nothing does not stop the search.
func firstMedia(attrs map[string]any, base, def string, keys ...string) string {
	for _, k := range keys {
		if u := strings.TrimSpace(DecodeMedia(attrs[k]).First(base)); u != "" {
			return u
		}
	}
	return def
}
