package shopify

import "errors"

var (
	// ErrUnavailable indicates the Shopify API could not be reached.
	ErrUnavailable = errors.New("shopify: api unavailable")
	// ErrRequestFailed indicates the Shopify API rejected the request.
	ErrRequestFailed = errors.New("shopify: request failed")
)
