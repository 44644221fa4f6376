package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sugarcheck/backend/internal/domain"
	"golang.org/x/time/rate"
)

const requestTimeout = 10 * time.Second

// Client handles barcode lookups against the OpenFoodFacts product API.
// The API is public and unauthenticated.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	log         *logrus.Logger
}

// NewClient creates a new OpenFoodFacts client.
func NewClient(baseURL string, log *logrus.Logger) *Client {
	// Stay well under the published fair-use limit for product queries.
	limiter := rate.NewLimiter(rate.Limit(5), 10)
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
		log:         log,
	}
}

// LookupBarcode resolves a barcode to a single normalized food.
// An unknown barcode is ErrFoodNotFound; an unreachable or malformed API is
// ErrSourceUnavailable.
func (c *Client) LookupBarcode(ctx context.Context, code string) (*domain.FoodItem, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "SugarCheck/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("barcode", code).Warn("openfoodfacts request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	// OpenFoodFacts reports unknown products with 200 + status 0, but some
	// deployments answer 404 directly.
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.log.WithFields(logrus.Fields{"barcode": code, "status": resp.StatusCode}).Warn("openfoodfacts non-200 response")
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrSourceUnavailable, err)
	}

	var product productResponse
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSourceUnavailable, err)
	}
	if product.Status != 1 {
		return nil, domain.ErrFoodNotFound
	}

	item := mapProduct(code, product.Product)
	return &item, nil
}
