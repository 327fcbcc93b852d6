// Package storefront assembles product records into what the pages render.
package storefront

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storefront/internal/content"
	"storefront/internal/models"
)

// DefaultColor keys images that carry no color.
const DefaultColor = "default"

var colorExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}

// SizeGroup — размерная линейка и минимальная партия
type SizeGroup struct {
	Sizes []string
	MOQ   string
}

// Detail is a product with every field a page needs filled in.
type Detail struct {
	models.Product

	ImageURL        string
	ColorImages     map[string][]string
	AvailableColors []string
	DescriptionText string
	Regular         *SizeGroup
	Extended        *SizeGroup
}

// Enrich groups a product's images by color and backfills missing fields.
// A full per-color folder under staticDir/abc_upload/<name>/<color> replaces
// the explicit image list for that color. The stored product is not changed.
func Enrich(p models.Product, staticDir string) Detail {
	d := Detail{Product: p, ColorImages: map[string][]string{}}

	for _, img := range p.Images {
		if img.ImagePath == "" {
			continue
		}
		color := img.Color
		if color == "" {
			color = DefaultColor
		}
		if _, ok := d.ColorImages[color]; !ok {
			d.AvailableColors = append(d.AvailableColors, color)
		}
		resolved := content.ResolveMediaURL(img.ImagePath)
		if !contains(d.ColorImages[color], resolved) {
			d.ColorImages[color] = append(d.ColorImages[color], resolved)
		}
	}

	for _, color := range d.AvailableColors {
		if files := colorFolder(staticDir, p.Name, color); len(files) > 0 {
			urls := make([]string, 0, len(files))
			for _, f := range files {
				urls = append(urls, content.ResolveMediaURL(content.UploadDir+"/"+p.Name+"/"+color+"/"+f))
			}
			d.ColorImages[color] = urls
		}
	}

	d.Name = p.DisplayName()
	if d.ImagePath == "" {
		d.ImagePath = content.DefaultImage
	}
	if d.ImageAlt == "" {
		d.ImageAlt = d.Name
	}
	d.ImageURL = content.ResolveMediaURL(d.ImagePath)
	if len(d.Images) == 0 {
		d.Images = []models.ProductImage{{ImagePath: d.ImagePath, ImageAlt: d.ImageAlt, Color: DefaultColor}}
	}
	if len(d.ColorImages) == 0 {
		d.ColorImages = map[string][]string{DefaultColor: {d.ImageURL}}
		d.AvailableColors = []string{DefaultColor}
	}

	d.Sizes = orEmpty(d.Sizes)
	d.Decorations = orEmpty(d.Decorations)
	d.Instructions = orEmpty(d.Instructions)
	d.ProductDetails = orEmpty(d.ProductDetails)

	d.DescriptionText = d.Description.Text
	if d.DescriptionText == "" {
		d.DescriptionText = d.Desc
	}

	if len(d.ExtendedSizes) > 0 {
		moq := d.ExtendedMOQ.String()
		if moq == "" {
			moq = "100 MOQ"
		}
		d.Regular = &SizeGroup{Sizes: d.Sizes, MOQ: "No MOQ"}
		d.Extended = &SizeGroup{Sizes: d.ExtendedSizes, MOQ: moq}
	}
	return d
}

// colorFolder lists images in a product's color folder, "<color>.png" first.
// An empty folder yields nil, so the explicit image list stays in place.
func colorFolder(staticDir, name, color string) []string {
	if staticDir == "" || !safeSegment(name) || !safeSegment(color) {
		return nil
	}
	dir := filepath.Join(staticDir, content.UploadDir, name, color)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && colorExt[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, e.Name())
		}
	}
	lead := color + ".png"
	sort.Slice(files, func(i, j int) bool {
		li, lj := strings.ToLower(files[i]) == lead, strings.ToLower(files[j]) == lead
		if li != lj {
			return li
		}
		return files[i] < files[j]
	})
	return files
}

// safeSegment отсекает имена, которые выводят за пределы abc_upload.
func safeSegment(s string) bool {
	return s != "" && s != "." && !strings.Contains(s, "..") && !strings.ContainsAny(s, `/\`)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func orEmpty(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}

// Summaries enriches a page of catalog products for listing cards.
func Summaries(products []models.Product, staticDir string) []Detail {
	out := make([]Detail, 0, len(products))
	for _, p := range products {
		out = append(out, Enrich(p, staticDir))
	}
	return out
}
