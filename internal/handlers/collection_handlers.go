package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

type ModelPayload struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

func toModelPayloads(models []string) []ModelPayload {
	payloads := make([]ModelPayload, 0, len(models))
	for _, m := range models {
		payloads = append(payloads, ModelPayload{Slug: m, Label: catalog.FormatModelLabel(m)})
	}
	return payloads
}

// Home Handler
// The featured grid and the model navigation need independent reads; they run
// concurrently and join before responding, neither depending on the other.
func (h *Handlers) Home(c *gin.Context) {
	var (
		products []catalog.Product
		models   []string
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		products, err = h.Catalog.ListProducts(ctx)
		return err
	})
	g.Go(func() error {
		snapshot, err := h.Catalog.ListProducts(ctx)
		if err != nil {
			return err
		}
		models = h.Classifier.Models(snapshot)
		return nil
	})
	if err := g.Wait(); err != nil {
		h.fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": toProductPayloads(products),
		"models":   toModelPayloads(models),
	})
}

// ListCollections Handler
func (h *Handlers) ListCollections(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"models": toModelPayloads(h.Classifier.Models(products)),
		"accessories": gin.H{
			"slug":  catalog.SlugAccessories,
			"label": "Wallets, Chargers, and Cables",
		},
	})
}

// ModelCollection Handler
// Only discovered models reach the listing: anything else 404s, including
// the accessories bucket, which is not a model and has its own route. A known
// model with no products is a valid empty listing.
func (h *Handlers) ModelCollection(c *gin.Context) {
	model := strings.ToLower(strings.TrimSpace(c.Param("model")))

	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.fetchFailed(c, err)
		return
	}

	known := false
	for _, m := range h.Classifier.Models(products) {
		if m == model {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found."})
		return
	}

	filtered := catalog.FilterModel(h.Classifier, products, model)

	c.JSON(http.StatusOK, gin.H{
		"model":    model,
		"label":    catalog.FormatModelLabel(model),
		"products": toProductPayloads(filtered),
	})
}

// Accessories Handler
func (h *Handlers) Accessories(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.fetchFailed(c, err)
		return
	}

	filtered, _ := catalog.FilterTarget(h.Classifier, products, catalog.SlugAccessories)
	c.JSON(http.StatusOK, gin.H{
		"label":    "Accessories",
		"products": toProductPayloads(filtered),
	})
}

// LegacyCollection Handler
// Historical /collections/:slug model URLs redirect to the canonical
// /collections/models/:model form. The legacy set is static, so an unknown
// slug is rejected without querying the catalog.
func (h *Handlers) LegacyCollection(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	if !catalog.IsLegacyModelSlug(slug) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found."})
		return
	}

	c.Redirect(http.StatusMovedPermanently, "/v1/collections/models/"+slug)
}
