package catalog

import "testing"

func TestTitleClassifierLongestMatchFirst(t *testing.T) {
	classifier := NewTitleClassifier(DefaultCollections)

	tests := []struct {
		title  string
		want   string
		wantOK bool
	}{
		{"iPhone 17 Pro Max Case - Clear", "iphone-17-pro-max", true},
		{"iPhone 17 Pro Case - Black", "iphone-17-pro", true},
		{"iPhone 17 Air Case", "iphone-17-air", true},
		{"iPhone 17 Case", "iphone-17", true},
		{"MagSafe Wallet", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := classifier.Classify(Product{Title: tt.title})
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.title, got, ok, tt.want, tt.wantOK)
		}
	}
}

// A Pro Max title must never land in the Pro bucket, whatever order the
// collection table was configured in.
func TestTitleClassifierOrderingEnforced(t *testing.T) {
	shortestFirst := []Collection{
		NewCollection("iPhone 17", "iphone 17"),
		NewCollection("iPhone 17 Pro", "iphone 17 pro"),
		NewCollection("iPhone 17 Pro Max", "iphone 17 pro max"),
	}
	classifier := NewTitleClassifier(shortestFirst)

	got, ok := classifier.Classify(Product{Title: "iPhone 17 Pro Max Case"})
	if !ok || got != "iphone-17-pro-max" {
		t.Fatalf("Classify() = (%q, %v), want iphone-17-pro-max from a shortest-first table", got, ok)
	}
}

func TestTitleClassifierModels(t *testing.T) {
	classifier := NewTitleClassifier(DefaultCollections)
	models := classifier.Models(nil)

	if len(models) != len(DefaultCollections) {
		t.Fatalf("Models() returned %d slugs, want %d", len(models), len(DefaultCollections))
	}
	for _, m := range models {
		if _, ok := Generation(m); !ok {
			t.Errorf("static slug %q has no parseable generation", m)
		}
	}
}

func TestTagClassifier(t *testing.T) {
	classifier := TagClassifier{}

	tests := []struct {
		name    string
		product Product
		want    string
		wantOK  bool
	}{
		{"case with model", caseProduct("a", "iphone-17-pro"), "iphone-17-pro", true},
		{"case without model", Product{Category: strPtr("case")}, "", false},
		{"accessory category", Product{Category: strPtr("wallet"), Model: strPtr("iphone-17")}, "", false},
		{"no tags", Product{Title: "iPhone 17 Pro Max Case"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.Classify(tt.product)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Classify() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Title matching governs under Strategy A: a Pro Max product is not part of
// the Pro collection even though its model tag would also say so.
func TestTitleStrategyProMaxScenario(t *testing.T) {
	classifier := NewTitleClassifier(DefaultCollections)
	snapshot := []Product{{
		Title:    "iPhone 17 Pro Max Case",
		Category: strPtr("case"),
		Model:    strPtr("iphone-17-pro-max"),
	}}

	filtered, err := FilterTarget(classifier, snapshot, "iphone-17-pro")
	if err != nil {
		t.Fatalf("FilterTarget() error: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("FilterTarget(iphone-17-pro) = %v, want empty list", filtered)
	}
}
