package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopsync/backend/internal/domain/catalog"
	"github.com/shopsync/backend/internal/infrastructure/dispatch"
)

// maxResponseSize limits the response body size to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Client submits products to the Shopify Admin REST API. The submission
// outcome is opaque to callers beyond success or failure; the response
// payload is discarded.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Shopify client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Submit creates one product in Shopify.
func (c *Client) Submit(ctx context.Context, product *catalog.Product) error {
	body, err := json.Marshal(map[string]any{"product": product})
	if err != nil {
		return fmt.Errorf("shopify: failed to marshal product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ProductsURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.config.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return fmt.Errorf("shopify: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	return nil
}

// Ensure Client implements the dispatch Submitter interface
var _ dispatch.Submitter = (*Client)(nil)
