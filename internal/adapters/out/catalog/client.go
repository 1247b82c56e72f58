// Package catalog implements the read-only product catalog client that
// serves default item dimensions for package resolution. Dimensions change
// rarely, so responses are held in a TTL cache to keep rate quotes off the
// catalog's hot path.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	json "github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
)

const gatewayName = "catalog"

// Client is the HTTP implementation of ports.ProductCatalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewClient creates a catalog client. Fetched dimensions are cached for ttl;
// expired entries are swept at twice the ttl.
func NewClient(baseURL string, timeout, ttl time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(ttl, 2*ttl),
	}
}

// cacheEntry caches catalog answers including negative ones: a product the
// catalog does not know stays known=false for the TTL instead of being
// re-fetched on every quote.
type cacheEntry struct {
	dims  order.Dimensions
	known bool
}

type dimensionsResponse struct {
	Products []struct {
		ProductID string  `json:"product_id"`
		WeightKg  float64 `json:"weight_kg"`
		LengthCm  float64 `json:"length_cm"`
		WidthCm   float64 `json:"width_cm"`
		HeightCm  float64 `json:"height_cm"`
	} `json:"products"`
}

// GetDimensions returns default dimensions keyed by product ID. Products
// unknown to the catalog are absent from the result. Cached entries are
// served without a catalog round trip; only the missing products are
// fetched.
func (c *Client) GetDimensions(ctx context.Context,
	productIDs []kernel.UUID) (map[kernel.UUID]order.Dimensions, error) {
	result := make(map[kernel.UUID]order.Dimensions, len(productIDs))

	missing := make([]kernel.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if cached, found := c.cache.Get(id.String()); found {
			if entry, ok := cached.(cacheEntry); ok {
				if entry.known {
					result[id] = entry.dims
				}
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.fetch(ctx, missing)
	if err != nil {
		return nil, err
	}

	for _, id := range missing {
		dims, known := fetched[id]
		c.cache.SetDefault(id.String(), cacheEntry{dims: dims, known: known})
		if known {
			result[id] = dims
		}
	}

	return result, nil
}

func (c *Client) fetch(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]order.Dimensions, error) {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.String())
	}
	url := fmt.Sprintf("%s/products/dimensions?ids=%s", c.baseURL, strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_dimensions", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_dimensions", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_dimensions", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewGatewayError(gatewayName, "get_dimensions",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body))
	}

	var decoded dimensionsResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_dimensions", err)
	}

	dimensions := make(map[kernel.UUID]order.Dimensions, len(decoded.Products))
	for _, p := range decoded.Products {
		id, idErr := kernel.UUIDFromString(p.ProductID)
		if idErr != nil {
			return nil, errs.NewGatewayError(gatewayName, "get_dimensions", idErr)
		}
		dimensions[id] = order.Dimensions{
			WeightKg: p.WeightKg,
			LengthCm: p.LengthCm,
			WidthCm:  p.WidthCm,
			HeightCm: p.HeightCm,
		}
	}

	return dimensions, nil
}
