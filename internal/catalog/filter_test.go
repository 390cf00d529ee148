package catalog

import (
	"errors"
	"testing"
)

func TestFilterAccessories(t *testing.T) {
	products := []Product{
		{Handle: "wallet-1", Category: strPtr("wallet")},
		{Handle: "case-1", Category: strPtr("case"), Model: strPtr("iphone-17")},
		{Handle: "charger-1", Category: strPtr("charger")},
		{Handle: "cable-1", Category: strPtr("cable")},
		{Handle: "untagged"},
	}

	got := FilterAccessories(products)

	want := []string{"wallet-1", "charger-1", "cable-1"}
	if len(got) != len(want) {
		t.Fatalf("FilterAccessories() returned %d products, want %d", len(got), len(want))
	}
	for i, handle := range want {
		if got[i].Handle != handle {
			t.Errorf("FilterAccessories()[%d] = %q, want %q (order must be preserved)", i, got[i].Handle, handle)
		}
	}
}

func TestFilterModelPreservesOrder(t *testing.T) {
	products := []Product{
		caseProduct("first", "iphone-17"),
		caseProduct("other", "iphone-16"),
		caseProduct("second", "iphone-17"),
	}

	got := FilterModel(TagClassifier{}, products, "iphone-17")

	if len(got) != 2 || got[0].Handle != "first" || got[1].Handle != "second" {
		t.Fatalf("FilterModel() = %v, want [first second] in snapshot order", got)
	}
}

func TestFilterTargetUnknown(t *testing.T) {
	products := []Product{caseProduct("a", "iphone-17")}

	_, err := FilterTarget(TagClassifier{}, products, "iphone-99")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("FilterTarget(iphone-99) error = %v, want ErrUnknownTarget", err)
	}
}

func TestFilterTargetAccessories(t *testing.T) {
	products := []Product{
		{Handle: "wallet-1", Category: strPtr("wallet")},
		caseProduct("case-1", "iphone-17"),
	}

	got, err := FilterTarget(TagClassifier{}, products, SlugAccessories)
	if err != nil {
		t.Fatalf("FilterTarget(accessories) error: %v", err)
	}
	if len(got) != 1 || got[0].Handle != "wallet-1" {
		t.Fatalf("FilterTarget(accessories) = %v, want only wallet-1", got)
	}
}

func TestFilterTargetKnownModelEmptyResult(t *testing.T) {
	// A discovered model with no remaining matches is a valid empty listing,
	// not an error.
	products := []Product{
		caseProduct("a", "iphone-17"),
	}

	got, err := FilterTarget(TagClassifier{}, products, "iphone-17")
	if err != nil {
		t.Fatalf("FilterTarget() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FilterTarget() = %v, want the single case product", got)
	}
}
