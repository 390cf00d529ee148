package shopify

import (
	"encoding/json"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

// Wire shapes for the Storefront GraphQL responses. These stay private to the
// client; everything leaving this package is a normalized catalog type.

type graphQLError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type imageNode struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type metafieldNode struct {
	Value string `json:"value"`
}

type productNode struct {
	Title         string     `json:"title"`
	Handle        string     `json:"handle"`
	FeaturedImage *imageNode `json:"featuredImage"`
	PriceRange    struct {
		MinVariantPrice moneyNode `json:"minVariantPrice"`
	} `json:"priceRange"`
	Category *metafieldNode `json:"category"`
	Model    *metafieldNode `json:"model"`
}

type productsResult struct {
	Products struct {
		Edges []struct {
			Node productNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

type variantNode struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	AvailableForSale bool       `json:"availableForSale"`
	Price            moneyNode  `json:"price"`
	Image            *imageNode `json:"image"`
}

type productDetailNode struct {
	Title         string     `json:"title"`
	Handle        string     `json:"handle"`
	Description   string     `json:"description"`
	FeaturedImage *imageNode `json:"featuredImage"`
	Images        struct {
		Edges []struct {
			Node imageNode `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node variantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productByHandleResult struct {
	ProductByHandle *productDetailNode `json:"productByHandle"`
}

func (n *imageNode) toImage() *catalog.Image {
	if n == nil {
		return nil
	}
	return &catalog.Image{URL: n.URL, AltText: n.AltText}
}

func (m moneyNode) toMoney() catalog.Money {
	return catalog.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func (n *metafieldNode) toTag() *string {
	if n == nil {
		return nil
	}
	return catalog.NormalizeTag(&n.Value)
}

// toProduct shapes a list node into the normalized record. Tag normalization
// happens here so downstream classification never sees raw metafield values.
func (n productNode) toProduct() catalog.Product {
	return catalog.Product{
		Handle:        n.Handle,
		Title:         n.Title,
		FeaturedImage: n.FeaturedImage.toImage(),
		Price:         n.PriceRange.MinVariantPrice.toMoney(),
		Category:      n.Category.toTag(),
		Model:         n.Model.toTag(),
	}
}

func (n *productDetailNode) toDetail() *catalog.ProductDetail {
	detail := &catalog.ProductDetail{
		Handle:        n.Handle,
		Title:         n.Title,
		Description:   n.Description,
		FeaturedImage: n.FeaturedImage.toImage(),
		Images:        make([]catalog.Image, 0, len(n.Images.Edges)),
		Variants:      make([]catalog.Variant, 0, len(n.Variants.Edges)),
	}
	for _, edge := range n.Images.Edges {
		detail.Images = append(detail.Images, *edge.Node.toImage())
	}
	for _, edge := range n.Variants.Edges {
		v := edge.Node
		detail.Variants = append(detail.Variants, catalog.Variant{
			ID:               v.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			Price:            v.Price.toMoney(),
			Image:            v.Image.toImage(),
		})
	}
	return detail
}
