package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

// --- Responses ---

type ProductPayload struct {
	catalog.Product
	DisplayPrice string `json:"displayPrice"`
}

type VariantPayload struct {
	catalog.Variant
	DisplayPrice string `json:"displayPrice"`
	CartURL      string `json:"cartUrl"`
	CheckoutURL  string `json:"checkoutUrl"`
}

type ProductDetailPayload struct {
	Handle        string           `json:"handle"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	FeaturedImage *catalog.Image   `json:"featuredImage,omitempty"`
	Images        []catalog.Image  `json:"images"`
	Variants      []VariantPayload `json:"variants"`
}

func toProductPayloads(products []catalog.Product) []ProductPayload {
	payloads := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, ProductPayload{
			Product:      p,
			DisplayPrice: catalog.FormatPrice(p.Price),
		})
	}
	return payloads
}

// ListProducts Handler
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductPayloads(products)})
}

// GetProduct Handler
// Responds 404 when Shopify has no product for the handle. Variant purchase
// links are built server-side so a malformed variant gid fails loudly here
// instead of surfacing as a dead checkout button.
func (h *Handlers) GetProduct(c *gin.Context) {
	handle := c.Param("handle")

	detail, err := h.Catalog.GetProduct(c.Request.Context(), handle)
	if err != nil {
		h.fetchFailed(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}

	variants := make([]VariantPayload, 0, len(detail.Variants))
	for _, v := range detail.Variants {
		numericID, err := catalog.ToNumericVariantID(v.ID)
		if err != nil {
			h.Logger.Error().Err(err).Str("handle", handle).Msg("variant id not convertible")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Product variant data is invalid."})
			return
		}
		cartURL := fmt.Sprintf("https://%s/cart/%s:1", h.StoreDomain, numericID)
		variants = append(variants, VariantPayload{
			Variant:      v,
			DisplayPrice: catalog.FormatPrice(v.Price),
			CartURL:      cartURL,
			CheckoutURL:  cartURL + "?checkout",
		})
	}

	c.JSON(http.StatusOK, ProductDetailPayload{
		Handle:        detail.Handle,
		Title:         detail.Title,
		Description:   detail.Description,
		FeaturedImage: detail.FeaturedImage,
		Images:        detail.Images,
		Variants:      variants,
	})
}
