package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

// CatalogService is the read surface the handlers need from the Shopify
// client. GetProduct returns (nil, nil) for a missing handle.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, handle string) (*catalog.ProductDetail, error)
}

// Handlers holds all dependencies for our handlers.
type Handlers struct {
	Catalog     CatalogService
	Classifier  catalog.Classifier
	StoreDomain string
	Logger      zerolog.Logger
}

// fetchFailed maps any catalog fetch error (config, transport, data) to one
// generic upstream-failure response. Not-found and empty-list outcomes never
// reach this path; callers handle those before erroring.
func (h *Handlers) fetchFailed(c *gin.Context, err error) {
	h.Logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("catalog fetch failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load products from Shopify."})
}
