package shopify

import "fmt"

// Config holds the credentials and address components for the Shopify Admin
// REST API.
type Config struct {
	// Shop is the shop subdomain, e.g. "acme" for acme.myshopify.com.
	Shop string
	// Host is the API host suffix, e.g. "myshopify.com".
	Host string
	// Scheme is "https" (or "http" against a local stub).
	Scheme string
	// AccessToken is the Admin API access token.
	AccessToken string
	// APIVersion is the Admin API version segment, e.g. "2022-04".
	APIVersion string
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Shop == "" {
		return fmt.Errorf("shopify: shop is required")
	}
	if c.Host == "" {
		return fmt.Errorf("shopify: host is required")
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("shopify: scheme must be http or https, got %q", c.Scheme)
	}
	if c.AccessToken == "" {
		return fmt.Errorf("shopify: access token is required")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("shopify: api version is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("shopify: timeout must be positive")
	}
	return nil
}

// ProductsURL returns the product create endpoint for the configured shop.
func (c *Config) ProductsURL() string {
	return fmt.Sprintf("%s://%s.%s/admin/api/%s/products.json", c.Scheme, c.Shop, c.Host, c.APIVersion)
}
