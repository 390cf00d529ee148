package catalog

import "testing"

func strPtr(s string) *string { return &s }

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strPtr(""), nil},
		{"whitespace becomes nil", strPtr("   \t"), nil},
		{"trims and lowercases", strPtr("  Case  "), strPtr("case")},
		{"mixed case", strPtr("WALLET"), strPtr("wallet")},
		{"already normalized", strPtr("charger"), strPtr("charger")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTag(tt.raw)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("NormalizeTag() = %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Fatalf("NormalizeTag() = nil, want %q", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("NormalizeTag() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func TestNormalizeTagIdempotent(t *testing.T) {
	once := NormalizeTag(strPtr("  Case  "))
	twice := NormalizeTag(once)
	if twice == nil || *twice != *once {
		t.Fatalf("normalizing a normalized value changed it: %v -> %v", once, twice)
	}
}

func TestNormalizeTagNeverEmpty(t *testing.T) {
	for _, raw := range []string{"", " ", "\n", "  a  "} {
		if got := NormalizeTag(&raw); got != nil && *got == "" {
			t.Fatalf("NormalizeTag(%q) returned pointer to empty string", raw)
		}
	}
}
