package catalog

// Money keeps the amount as the exact string Shopify returns.
// It is never parsed into a float for storage; only display formatting parses it.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Image is a product image with optional alt text.
type Image struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText,omitempty"`
}

// Product is one normalized catalog list record.
// Category and Model are nil when the product carries no usable tag
// (absent, empty, or whitespace-only upstream values all normalize to nil).
type Product struct {
	Handle        string  `json:"handle"`
	Title         string  `json:"title"`
	FeaturedImage *Image  `json:"featuredImage,omitempty"`
	Price         Money   `json:"price"`
	Category      *string `json:"category,omitempty"`
	Model         *string `json:"model,omitempty"`
}

// Variant is one purchasable option of a product.
type Variant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	AvailableForSale bool   `json:"availableForSale"`
	Price            Money  `json:"price"`
	Image            *Image `json:"image,omitempty"`
}

// ProductDetail is the full record behind a product page.
type ProductDetail struct {
	Handle        string    `json:"handle"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FeaturedImage *Image    `json:"featuredImage,omitempty"`
	Images        []Image   `json:"images"`
	Variants      []Variant `json:"variants"`
}
