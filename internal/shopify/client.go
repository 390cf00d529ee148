// Package shopify is the server-side Storefront API client. It centralizes
// GraphQL access, the revalidation cache, and error normalization for all
// product reads; the private token never leaves this process.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

// Config carries the Storefront API parameters. All three identity fields are
// required; New rejects an incomplete config before any I/O happens.
type Config struct {
	StoreDomain  string
	PrivateToken string
	APIVersion   string
	Revalidate   time.Duration
}

// Client executes Storefront GraphQL queries and shapes responses into
// normalized catalog records.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
	cache    *snapshotCache
	logger   zerolog.Logger
}

// New builds a client from explicit configuration. Returns ErrMissingConfig
// when a required parameter is blank.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.StoreDomain == "" || cfg.PrivateToken == "" || cfg.APIVersion == "" {
		return nil, ErrMissingConfig
	}

	return &Client{
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion),
		token:    cfg.PrivateToken,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		cache:    newSnapshotCache(cfg.Revalidate),
		logger:   logger.With().Str("client", "shopify").Logger(),
	}, nil
}

// execute runs one GraphQL request and decodes the data payload into out.
// It is the single request path for every query so the error taxonomy stays
// consistent: transport failures and non-success statuses become
// *TransportError, GraphQL error entries and a missing payload become
// *DataError.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Shopify-Storefront-Private-Token", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &DataError{Messages: []string{fmt.Sprintf("shopify response not decodable: %v", err)}}
	}
	if len(env.Errors) > 0 {
		messages := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			messages = append(messages, e.Message)
		}
		return &DataError{Messages: messages}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &DataError{Messages: []string{"shopify response missing data"}}
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DataError{Messages: []string{fmt.Sprintf("shopify data not decodable: %v", err)}}
	}
	return nil
}

// ListProducts fetches the catalog snapshot, serving a stale-but-valid copy
// within the revalidation window.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	if cached, ok := c.cache.get(); ok {
		return cached, nil
	}

	var result productsResult
	if err := c.execute(ctx, productsQuery, nil, &result); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(result.Products.Edges))
	for _, edge := range result.Products.Edges {
		products = append(products, edge.Node.toProduct())
	}

	c.cache.set(products)
	c.logger.Debug().Int("count", len(products)).Msg("fetched product snapshot")
	return products, nil
}

// GetProduct fetches the full detail record for one handle. A missing product
// is a normal outcome and returns (nil, nil), distinct from every error case.
func (c *Client) GetProduct(ctx context.Context, handle string) (*catalog.ProductDetail, error) {
	var result productByHandleResult
	if err := c.execute(ctx, productByHandleQuery, map[string]any{"handle": handle}, &result); err != nil {
		return nil, err
	}
	if result.ProductByHandle == nil {
		return nil, nil
	}
	return result.ProductByHandle.toDetail(), nil
}
