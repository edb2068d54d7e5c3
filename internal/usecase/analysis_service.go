package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/arbitragevault/backend/internal/adapter"
	"github.com/arbitragevault/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	asinRegex            = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL        time.Duration
	AutosourceLimit int
}

// AnalysisService serves the dashboard's three analysis entry points
// (manual batch analysis, niche discovery, autosourcing) plus single-ASIN
// lookups. Flow per request: check cache -> fetch from backend -> adapt to
// the canonical shape -> cache -> return. The cached unit is always the
// fully normalized list, so a refetch replaces it atomically.
type AnalysisService struct {
	cache           domain.CacheRepository
	client          domain.AnalysisClient
	cacheTTL        time.Duration
	autosourceLimit int
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(
	cache domain.CacheRepository,
	client domain.AnalysisClient,
	config AnalysisServiceConfig,
) *AnalysisService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute // Dashboard freshness window
	}

	limit := config.AutosourceLimit
	if limit <= 0 {
		limit = 20
	}

	return &AnalysisService{
		cache:           cache,
		client:          client,
		cacheTTL:        cacheTTL,
		autosourceLimit: limit,
	}
}

// AnalyzeBatch runs a manual analysis over the given ASINs and returns the
// normalized product list. Per-item backend failures are dropped from the
// list; the caller can compare input and output lengths if it wants to
// surface a partial-failure notice.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, asins []string) ([]domain.DisplayableProduct, error) {
	normalized, err := normalizeASINs(asins)
	if err != nil {
		return nil, err
	}

	cacheKey := "analysis:batch:" + strings.Join(normalized, ",")
	if products, ok := s.getCachedProducts(ctx, cacheKey); ok {
		return products, nil
	}

	items, err := s.client.AnalyzeBatch(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}

	products := adapter.Batch(items)
	s.setCachedProducts(ctx, cacheKey, products)
	return products, nil
}

// ScoreProduct fetches and normalizes the scored record for one ASIN.
func (s *AnalysisService) ScoreProduct(ctx context.Context, asin string) (*domain.DisplayableProduct, error) {
	normalized, err := normalizeASIN(asin)
	if err != nil {
		return nil, err
	}

	cacheKey := "analysis:score:" + normalized
	if products, ok := s.getCachedProducts(ctx, cacheKey); ok && len(products) == 1 {
		return &products[0], nil
	}

	score, err := s.client.ScoreProduct(ctx, normalized)
	if err != nil {
		return nil, err
	}

	product := adapter.FromProductScore(score)
	s.setCachedProducts(ctx, cacheKey, []domain.DisplayableProduct{product})
	return &product, nil
}

// DiscoverNiches runs niche discovery for a query and returns the
// normalized product list.
func (s *AnalysisService) DiscoverNiches(ctx context.Context, query string) ([]domain.DisplayableProduct, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := "niches:" + normalizeForCacheKey(query)
	if products, ok := s.getCachedProducts(ctx, cacheKey); ok {
		return products, nil
	}

	resp, err := s.client.DiscoverNiches(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}

	products := make([]domain.DisplayableProduct, 0, len(resp.Products))
	for i := range resp.Products {
		products = append(products, adapter.FromNicheProduct(&resp.Products[i]))
	}

	s.setCachedProducts(ctx, cacheKey, products)
	return products, nil
}

// Autosource returns the backend's current ranked picks, normalized.
func (s *AnalysisService) Autosource(ctx context.Context) ([]domain.DisplayableProduct, error) {
	cacheKey := "autosourcing:picks"
	if products, ok := s.getCachedProducts(ctx, cacheKey); ok {
		return products, nil
	}

	picks, err := s.client.Autosource(ctx, s.autosourceLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}

	products := make([]domain.DisplayableProduct, 0, len(picks))
	for i := range picks {
		products = append(products, adapter.FromProductScore(&picks[i]))
	}

	s.setCachedProducts(ctx, cacheKey, products)
	return products, nil
}

// PricingByCondition passes the backend's per-condition pricing record
// through. No client-side recomputation: the recommended condition and
// its tie-breaks belong to the backend.
func (s *AnalysisService) PricingByCondition(ctx context.Context, asin string) (*domain.ConditionPricing, error) {
	normalized, err := normalizeASIN(asin)
	if err != nil {
		return nil, err
	}
	return s.client.PricingByCondition(ctx, normalized)
}

// getCachedProducts retrieves a normalized product list from cache. Cached
// values come back JSON-shaped, so they are re-decoded through the canonical
// type; a corrupt entry counts as a miss.
func (s *AnalysisService) getCachedProducts(ctx context.Context, key string) ([]domain.DisplayableProduct, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var products []domain.DisplayableProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("[ANALYSIS] Discarding corrupt cache entry %q: %v", key, err)
		return nil, false
	}
	return products, true
}

// setCachedProducts stores a normalized product list. Cache failures are
// logged and swallowed; serving the response matters more.
func (s *AnalysisService) setCachedProducts(ctx context.Context, key string, products []domain.DisplayableProduct) {
	if err := s.cache.Set(ctx, key, products, s.cacheTTL); err != nil {
		log.Printf("[ANALYSIS] Failed to cache %q: %v", key, err)
	}
}

// normalizeASIN uppercases and validates a single ASIN.
func normalizeASIN(asin string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(asin))
	if !asinRegex.MatchString(normalized) {
		return "", domain.ErrInvalidRequest
	}
	return normalized, nil
}

// normalizeASINs validates a batch of ASINs. One bad ASIN rejects the whole
// request: silently dropping it would make the positional batch response
// ambiguous for the caller.
func normalizeASINs(asins []string) ([]string, error) {
	if len(asins) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	normalized := make([]string, 0, len(asins))
	for _, asin := range asins {
		n, err := normalizeASIN(asin)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	return normalized, nil
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
