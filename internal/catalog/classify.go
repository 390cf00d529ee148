package catalog

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"
)

// Classifier decides which model collection a product belongs to.
// Absence of a match is a normal outcome, never an error.
type Classifier interface {
	// Classify returns the model collection slug for a product, if any.
	// Under every strategy a product maps to at most one collection.
	Classify(p Product) (string, bool)

	// Models returns the valid model collection slugs for a catalog snapshot,
	// newest generation first.
	Models(products []Product) []string
}

// Collection is one curated entry of the static collection table: a URL slug,
// a display label, and the lowercase phrase that identifies member products
// by title.
type Collection struct {
	Slug  string
	Label string
	Match string
}

// NewCollection derives the slug from the display label so the table stays
// single-sourced on the label.
func NewCollection(label, match string) Collection {
	return Collection{
		Slug:  slug.Make(label),
		Label: label,
		Match: match,
	}
}

// DefaultCollections is the static iPhone 17 lineup. Match phrases are
// prefixes of one another; TitleClassifier handles the resulting ambiguity.
var DefaultCollections = []Collection{
	NewCollection("iPhone 17", "iphone 17"),
	NewCollection("iPhone 17 Air", "iphone 17 air"),
	NewCollection("iPhone 17 Pro", "iphone 17 pro"),
	NewCollection("iPhone 17 Pro Max", "iphone 17 pro max"),
}

// TitleClassifier infers membership from product titles against a fixed
// collection table. Because match phrases contain one another ("iphone 17 pro
// max" contains "iphone 17 pro"), evaluation runs most-specific phrase first
// and short-circuits, so a Pro Max title can never land in the Pro bucket.
type TitleClassifier struct {
	collections []Collection
}

// NewTitleClassifier copies the table and enforces the longest-match-first
// evaluation order regardless of how the collections were configured.
func NewTitleClassifier(collections []Collection) *TitleClassifier {
	ordered := make([]Collection, len(collections))
	copy(ordered, collections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Match) > len(ordered[j].Match)
	})
	return &TitleClassifier{collections: ordered}
}

func (c *TitleClassifier) Classify(p Product) (string, bool) {
	title := strings.ToLower(p.Title)
	for _, col := range c.collections {
		if strings.Contains(title, col.Match) {
			return col.Slug, true
		}
	}
	return "", false
}

func (c *TitleClassifier) Models(_ []Product) []string {
	models := make([]string, 0, len(c.collections))
	for _, col := range c.collections {
		models = append(models, col.Slug)
	}
	SortModelsByGeneration(models)
	return models
}

// TagClassifier matches on structured tags: a product belongs to a model
// collection iff its category tag is "case" and it carries a model tag.
// Tags are normalized at ingest, so matching is exact equality.
type TagClassifier struct{}

func (TagClassifier) Classify(p Product) (string, bool) {
	if !TagEquals(p.Category, CategoryCase) || p.Model == nil {
		return "", false
	}
	return *p.Model, true
}

func (TagClassifier) Models(products []Product) []string {
	return DiscoverModels(products)
}
