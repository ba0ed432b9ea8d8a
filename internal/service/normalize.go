package service

import "strings"

// normalizeURL canonicalizes a user-supplied URL to an https:// form. Empty
// input stays empty, it is never turned into a bare scheme.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(raw, "http://"):
		raw = "https://" + strings.TrimPrefix(raw, "http://")
	case strings.HasPrefix(raw, "//"):
		raw = "https:" + raw
	case !strings.HasPrefix(raw, "https://"):
		raw = "https://" + raw
	}
	return strings.TrimSuffix(raw, "/")
}

func trim(s string) string { return strings.TrimSpace(s) }

