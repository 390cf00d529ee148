package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// CategoryCase is the category tag that marks a product as a phone case.
const CategoryCase = "case"

// Generation extracts the numeric generation from a model slug shaped like
// <family>-<number>[-<variant>], e.g. 17 from "iphone-17-pro". The second
// return is false when no purely numeric token exists.
func Generation(slug string) (int, bool) {
	for _, part := range strings.Split(slug, "-") {
		if !isNumeric(part) {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// DiscoverModels returns the distinct model slugs present among case products
// in a catalog snapshot, newest generation first. Slugs without a parseable
// generation sort after all parseable ones, reverse-lexicographically among
// themselves. Two slugs sharing a generation keep their discovery order; the
// sort deliberately leaves that tie alone.
func DiscoverModels(products []Product) []string {
	seen := make(map[string]bool)
	models := make([]string, 0)
	for _, p := range products {
		if !TagEquals(p.Category, CategoryCase) || p.Model == nil {
			continue
		}
		if seen[*p.Model] {
			continue
		}
		seen[*p.Model] = true
		models = append(models, *p.Model)
	}

	SortModelsByGeneration(models)
	return models
}

// SortModelsByGeneration orders model slugs in place by descending generation
// number, parseable generations first, then non-parseable slugs in reverse
// lexicographic order.
func SortModelsByGeneration(models []string) {
	sort.SliceStable(models, func(i, j int) bool {
		gi, oki := Generation(models[i])
		gj, okj := Generation(models[j])
		switch {
		case oki && okj:
			return gi > gj
		case oki != okj:
			return oki
		default:
			return models[i] > models[j]
		}
	})
}
