package content

import "strings"

// DefaultImage is shown whenever a product or gallery entry has no picture.
const DefaultImage = "images/logo.png"

// ResolveMediaURL turns a stored image path into a URL the browser can load:
// absolute URLs pass through, anything else is served from /static.
func ResolveMediaURL(path string) string {
	cleaned := strings.TrimSpace(path)
	if cleaned == "" {
		cleaned = DefaultImage
	}
	if strings.HasPrefix(cleaned, "http://") || strings.HasPrefix(cleaned, "https://") {
		return cleaned
	}
	return "/static/" + strings.TrimLeft(cleaned, "/")
}
