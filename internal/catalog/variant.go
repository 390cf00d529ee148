package catalog

import (
	"fmt"
	"strings"
)

// InvalidVariantIDError reports a variant gid whose trailing segment is not
// numeric. Cart and checkout permalinks need the numeric form, so a malformed
// identifier fails loudly instead of producing a broken purchase link.
type InvalidVariantIDError struct {
	GID string
}

func (e *InvalidVariantIDError) Error() string {
	return fmt.Sprintf("invalid shopify variant gid: %s", e.GID)
}

// ToNumericVariantID converts a Shopify GraphQL global variant ID
// (gid://shopify/ProductVariant/123456) into the numeric ID required by
// cart and checkout redirect URLs.
func ToNumericVariantID(gid string) (string, error) {
	parts := strings.Split(gid, "/")
	last := parts[len(parts)-1]
	if !isNumeric(last) {
		return "", &InvalidVariantIDError{GID: gid}
	}
	return last, nil
}
