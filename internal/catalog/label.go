package catalog

import "strings"

// FormatModelLabel converts a model slug into its user-facing label.
// Example: iphone-17-pro-max -> iPhone 17 Pro Max.
// Numeric tokens are kept as-is and a leading "iphone" keeps Apple's casing.
func FormatModelLabel(modelSlug string) string {
	normalized := strings.ToLower(strings.TrimSpace(modelSlug))
	if normalized == "" {
		return ""
	}

	var parts []string
	for _, part := range strings.Split(normalized, "-") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return normalized
	}

	words := make([]string, 0, len(parts))
	for i, part := range parts {
		switch {
		case i == 0 && part == "iphone":
			words = append(words, "iPhone")
		case isNumeric(part):
			words = append(words, part)
		default:
			words = append(words, strings.ToUpper(part[:1])+part[1:])
		}
	}
	return strings.Join(words, " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
