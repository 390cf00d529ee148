package catalog

// LegacyModelSlugs are the model slugs used by pre-existing /collections/:slug
// URLs. Those routes now redirect to the canonical /collections/models/:model
// form; the list is frozen and only shrinks.
var LegacyModelSlugs = []string{
	"iphone-17",
	"iphone-17-pro",
	"iphone-17-air",
	"iphone-17-pro-max",
}

// IsLegacyModelSlug reports whether a slug belongs to the frozen legacy set.
func IsLegacyModelSlug(value string) bool {
	for _, s := range LegacyModelSlugs {
		if s == value {
			return true
		}
	}
	return false
}
