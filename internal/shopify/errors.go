package shopify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingConfig is returned by New before any network call when the store
// domain, private token, or API version is unset.
var ErrMissingConfig = errors.New(
	"missing shopify config: expected store domain, storefront private token, and api version")

// TransportError reports a Storefront API call that failed at the protocol
// level (non-success HTTP status).
type TransportError struct {
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shopify request failed (%s)", e.Status)
}

// DataError reports a call that completed at the protocol level but carried
// application-level GraphQL errors or was structurally missing its payload.
type DataError struct {
	Messages []string
}

func (e *DataError) Error() string {
	return strings.Join(e.Messages, "; ")
}
