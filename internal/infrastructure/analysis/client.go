// Package analysis implements the HTTP client for the ArbitrageVault
// analysis backend, which owns all ROI/pricing computation. This client
// only fetches and decodes; normalization happens in the adapter package.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arbitragevault/backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

// TokenProvider supplies the bearer token attached to outbound requests.
// The token comes from the identity provider and is treated as an opaque
// string; this client never inspects its structure.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a fixed token, used in tests and in
// service-account deployments.
type StaticToken string

// Token returns the fixed token.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// Client handles communication with the analysis backend API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      TokenProvider
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new analysis backend client. The backend allows
// 600 requests per minute per token; 600/60 = 10 requests/sec.
func NewClient(baseURL string, tokens TokenProvider) *Client {
	limiter := rate.NewLimiter(rate.Limit(10), 20) // burst of 20 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		tokens:      tokens,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the delay before the given retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// doJSON executes one authenticated request and decodes the response into
// out. Transient failures (transport errors, 5xx) are retried with
// exponential backoff; client errors (4xx) are not retried, and 404 maps
// to domain.ErrNotFound.
func (c *Client) doJSON(ctx context.Context, method, reqURL string, body []byte, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "ArbitrageVault/1.0")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("token provider error: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[ANALYSIS] Request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return domain.ErrNotFound
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			// Client errors are not retried.
			if c.debug {
				log.Printf("[ANALYSIS] Client error - Status: %d, Body: %s", resp.StatusCode, string(respBody))
			}
			return fmt.Errorf("%w: status %d", domain.ErrBackendFailure, resp.StatusCode)
		default:
			log.Printf("[ANALYSIS] Server error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrBackendFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
		}
	}

	return lastErr
}

// ScoreProduct fetches the scored-product record for a single ASIN.
func (c *Client) ScoreProduct(ctx context.Context, asin string) (*domain.ProductScore, error) {
	if c.debug {
		log.Printf("[ANALYSIS] ScoreProduct called for ASIN: %q", asin)
	}

	reqURL := fmt.Sprintf("%s/v1/products/%s/score", c.baseURL, url.PathEscape(asin))

	var score domain.ProductScore
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// batchRequest is the wire shape of a batch analysis request.
type batchRequest struct {
	ASINs []string `json:"asins"`
}

// batchResponse is the wire envelope of a batch analysis response.
type batchResponse struct {
	Items []domain.BatchItem `json:"items"`
}

// AnalyzeBatch submits a list of ASINs for analysis. The response preserves
// request order and tags each item with a per-item success/failure status.
func (c *Client) AnalyzeBatch(ctx context.Context, asins []string) ([]domain.BatchItem, error) {
	if c.debug {
		log.Printf("[ANALYSIS] AnalyzeBatch called with %d ASINs", len(asins))
	}

	body, err := json.Marshal(batchRequest{ASINs: asins})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/analyses/batch", c.baseURL)

	var resp batchResponse
	if err := c.doJSON(ctx, http.MethodPost, reqURL, body, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// DiscoverNiches searches for product niches matching the query.
func (c *Client) DiscoverNiches(ctx context.Context, query string) (*domain.NicheDiscoveryResponse, error) {
	if c.debug {
		log.Printf("[ANALYSIS] DiscoverNiches called with query: %q", query)
	}

	params := url.Values{}
	params.Add("q", query)
	reqURL := fmt.Sprintf("%s/v1/niches/discover?%s", c.baseURL, params.Encode())

	var resp domain.NicheDiscoveryResponse
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// autosourceResponse is the wire envelope of an autosourcing response.
type autosourceResponse struct {
	Products []domain.ProductScore `json:"products"`
}

// Autosource fetches the backend's current ranked autosourcing picks.
func (c *Client) Autosource(ctx context.Context, limit int) ([]domain.ProductScore, error) {
	if c.debug {
		log.Printf("[ANALYSIS] Autosource called with limit: %d", limit)
	}

	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	reqURL := fmt.Sprintf("%s/v1/autosourcing/picks?%s", c.baseURL, params.Encode())

	var resp autosourceResponse
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// PricingByCondition fetches the backend's per-condition pricing for an
// ASIN. The record is passed through untouched: the recommended-condition
// choice and its tie-breaks are the backend's, not ours.
func (c *Client) PricingByCondition(ctx context.Context, asin string) (*domain.ConditionPricing, error) {
	if c.debug {
		log.Printf("[ANALYSIS] PricingByCondition called for ASIN: %q", asin)
	}

	reqURL := fmt.Sprintf("%s/v1/products/%s/pricing-by-condition", c.baseURL, url.PathEscape(asin))

	var pricing domain.ConditionPricing
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &pricing); err != nil {
		return nil, err
	}
	return &pricing, nil
}
