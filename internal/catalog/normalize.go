package catalog

import "strings"

// NormalizeTag canonicalizes an optional tag-like metadata value.
// The result is either nil (no usable value) or a trimmed, lowercased,
// non-empty string. Normalizing an already-normalized value is a no-op.
func NormalizeTag(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*raw))
	if v == "" {
		return nil
	}
	return &v
}

// TagEquals reports whether a normalized tag is present and equal to want.
func TagEquals(tag *string, want string) bool {
	return tag != nil && *tag == want
}
