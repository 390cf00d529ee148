package catalog

import "errors"

// SlugAccessories is the route target for the accessories bucket.
const SlugAccessories = "accessories"

// ErrUnknownTarget rejects a route target that is neither the accessories
// bucket nor a model collection known to the classifier.
var ErrUnknownTarget = errors.New("unknown collection target")

// accessoryCategories are the category tags that place a product in the
// accessories bucket.
var accessoryCategories = map[string]bool{
	"wallet":  true,
	"charger": true,
	"cable":   true,
}

// FilterTarget produces the listing for one route target: a model collection
// slug or SlugAccessories. An unrecognized target returns ErrUnknownTarget
// without producing a listing.
func FilterTarget(c Classifier, products []Product, target string) ([]Product, error) {
	if target == SlugAccessories {
		return FilterAccessories(products), nil
	}
	for _, m := range c.Models(products) {
		if m == target {
			return FilterModel(c, products, target), nil
		}
	}
	return nil, ErrUnknownTarget
}

// FilterModel returns the order-preserving subsequence of a snapshot that the
// classifier assigns to the given model collection slug.
func FilterModel(c Classifier, products []Product, model string) []Product {
	filtered := make([]Product, 0)
	for _, p := range products {
		if got, ok := c.Classify(p); ok && got == model {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterAccessories returns the order-preserving subsequence of accessory
// products. Accessory membership is always tag-based: the static title table
// only describes model collections.
func FilterAccessories(products []Product) []Product {
	filtered := make([]Product, 0)
	for _, p := range products {
		if p.Category != nil && accessoryCategories[*p.Category] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
