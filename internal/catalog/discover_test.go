package catalog

import (
	"reflect"
	"testing"
)

func caseProduct(handle, model string) Product {
	return Product{
		Handle:   handle,
		Title:    handle,
		Category: strPtr("case"),
		Model:    strPtr(model),
	}
}

func TestGeneration(t *testing.T) {
	tests := []struct {
		slug   string
		want   int
		wantOK bool
	}{
		{"iphone-17-pro", 17, true},
		{"iphone-16", 16, true},
		{"pixel-9-pro", 9, true},
		{"universal-stand", 0, false},
		{"", 0, false},
		{"iphone", 0, false},
	}

	for _, tt := range tests {
		got, ok := Generation(tt.slug)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Generation(%q) = (%d, %v), want (%d, %v)", tt.slug, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDiscoverModelsOrdering(t *testing.T) {
	products := []Product{
		caseProduct("a", "iphone-16"),
		caseProduct("b", "iphone-17-pro"),
		caseProduct("c", "iphone-17"),
	}

	got := DiscoverModels(products)

	if len(got) != 3 {
		t.Fatalf("DiscoverModels() = %v, want 3 entries", got)
	}
	// Generation 17 entries precede generation 16; the order between the two
	// 17s is stable discovery order.
	if got[2] != "iphone-16" {
		t.Errorf("generation 16 should sort last, got %v", got)
	}
	if got[0] != "iphone-17-pro" || got[1] != "iphone-17" {
		t.Errorf("same-generation entries should keep discovery order, got %v", got)
	}
}

func TestDiscoverModelsDeduplicates(t *testing.T) {
	products := []Product{
		caseProduct("a", "iphone-17"),
		caseProduct("b", "iphone-17"),
	}

	got := DiscoverModels(products)
	want := []string{"iphone-17"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverModels() = %v, want %v", got, want)
	}
}

func TestDiscoverModelsSkipsNonCases(t *testing.T) {
	wallet := Product{Handle: "w", Category: strPtr("wallet"), Model: strPtr("iphone-17")}
	untagged := Product{Handle: "u", Category: strPtr("case")} // no model tag
	products := []Product{wallet, untagged, caseProduct("c", "iphone-17")}

	got := DiscoverModels(products)
	want := []string{"iphone-17"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverModels() = %v, want %v", got, want)
	}
}

func TestDiscoverModelsUnparseableLast(t *testing.T) {
	products := []Product{
		caseProduct("a", "universal-stand"),
		caseProduct("b", "iphone-16"),
		caseProduct("c", "alpha-case"),
	}

	got := DiscoverModels(products)
	want := []string{"iphone-16", "universal-stand", "alpha-case"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverModels() = %v, want %v (parseable first, then reverse lexicographic)", got, want)
	}
}
