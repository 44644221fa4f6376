package usda

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

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
	pageSize       = 10
)

// Client handles communication with the USDA FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	log         *logrus.Logger
}

// NewClient creates a new USDA API client.
func NewClient(apiKey, baseURL string, log *logrus.Logger) *Client {
	// USDA allows 1000 requests per hour (≈0.278/sec) per key.
	limiter := rate.NewLimiter(rate.Limit(0.278), 10)
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		log:         log,
	}
}

// SearchFoods searches the USDA database and returns normalized candidates
// in relevance order, at most pageSize of them.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]domain.FoodItem, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Foundation,SR Legacy,Branded")
	params.Add("pageSize", fmt.Sprintf("%d", pageSize))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry transient failures; 404 and empty result sets are final.
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		body, status, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.log.WithError(err).WithField("attempt", attempt).Warn("usda request failed")
			lastErr = fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
			sleepBackoff(attempt)
			continue
		}

		if status == http.StatusNotFound {
			return nil, domain.ErrFoodNotFound
		}
		if status != http.StatusOK {
			c.log.WithFields(logrus.Fields{"attempt": attempt, "status": status}).Warn("usda non-200 response")
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, status)
			sleepBackoff(attempt)
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSourceUnavailable, err)
		}
		if len(searchResp.Foods) == 0 {
			return nil, domain.ErrFoodNotFound
		}

		items := make([]domain.FoodItem, 0, len(searchResp.Foods))
		for _, food := range searchResp.Foods {
			items = append(items, mapFood(food))
		}
		return items, nil
	}

	return nil, lastErr
}

// GetFoodDetails retrieves a single food by FDC ID.
func (c *Client) GetFoodDetails(ctx context.Context, fdcID string) (*domain.FoodItem, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/food/%s", c.baseURL, url.PathEscape(fdcID))
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	body, status, err := c.doRequest(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, status)
	}

	var food searchFood
	if err := json.Unmarshal(body, &food); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSourceUnavailable, err)
	}
	item := mapFood(food)
	return &item, nil
}

// doRequest executes a GET and returns the body and status code.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "SugarCheck/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func sleepBackoff(attempt int) {
	time.Sleep(exponentialBackoff(attempt))
}

// exponentialBackoff returns the delay after the given attempt number.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
