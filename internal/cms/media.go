package cms

import "strings"

// MediaKind tags the shapes a Strapi media field shows up in.
type MediaKind int

const (
	MediaNone MediaKind = iota
	// MediaString is a bare path; it is used unchanged.
	MediaString
	// MediaObject is an upload object carrying a "url".
	MediaObject
	// MediaRelation is {"data": {...}} or {"data": [...]}, optionally with "attributes".
	MediaRelation
	// MediaList is a plain JSON array of media values.
	MediaList
)

// Media is the decoded form of one media field.
type Media struct {
	Kind  MediaKind
	URL   string
	Items []Media
}

// DecodeMedia classifies a raw JSON value. Unknown shapes decode to MediaNone.
func DecodeMedia(v any) Media {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return Media{}
		}
		return Media{Kind: MediaString, URL: t}
	case []any:
		items := decodeAll(t)
		if len(items) == 0 {
			return Media{}
		}
		return Media{Kind: MediaList, Items: items}
	case map[string]any:
		if u, ok := t["url"].(string); ok && u != "" {
			return Media{Kind: MediaObject, URL: u}
		}
		switch data := t["data"].(type) {
		case map[string]any:
			item := DecodeMedia(attributes(data))
			if item.Kind == MediaNone {
				return Media{}
			}
			return Media{Kind: MediaRelation, Items: []Media{item}}
		case []any:
			items := decodeAll(data)
			if len(items) == 0 {
				return Media{}
			}
			return Media{Kind: MediaRelation, Items: items}
		}
	}
	return Media{}
}

func decodeAll(values []any) []Media {
	var items []Media
	for _, v := range values {
		if m, ok := v.(map[string]any); ok {
			v = attributes(m)
		}
		if item := DecodeMedia(v); item.Kind != MediaNone {
			items = append(items, item)
		}
	}
	return items
}

// First resolves the first usable URL; relative upload URLs are joined to base.
func (m Media) First(base string) string {
	switch m.Kind {
	case MediaString:
		return m.URL
	case MediaObject:
		return absolute(base, m.URL)
	case MediaRelation, MediaList:
		for _, item := range m.Items {
			if u := item.First(base); u != "" {
				return u
			}
		}
	}
	return ""
}

// All resolves every URL in document order.
func (m Media) All(base string) []string {
	switch m.Kind {
	case MediaString, MediaObject:
		return []string{m.First(base)}
	case MediaRelation, MediaList:
		var urls []string
		for _, item := range m.Items {
			urls = append(urls, item.All(base)...)
		}
		return urls
	}
	return nil
}

func absolute(base, u string) string {
	if isAbsoluteURL(u) {
		return u
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(u, "/")
}

func isAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
