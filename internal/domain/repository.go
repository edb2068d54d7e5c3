package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// AnalysisClient defines the interface for the analysis backend API.
type AnalysisClient interface {
	ScoreProduct(ctx context.Context, asin string) (*ProductScore, error)
	AnalyzeBatch(ctx context.Context, asins []string) ([]BatchItem, error)
	DiscoverNiches(ctx context.Context, query string) (*NicheDiscoveryResponse, error)
	Autosource(ctx context.Context, limit int) ([]ProductScore, error)
	PricingByCondition(ctx context.Context, asin string) (*ConditionPricing, error)
}

// SavedSearchRepository defines the interface for saved-search persistence.
type SavedSearchRepository interface {
	Create(ctx context.Context, search *SavedSearch) error
	GetByID(ctx context.Context, id string) (*SavedSearch, error)
	ListByOwner(ctx context.Context, ownerUID string, limit, offset int) ([]SavedSearch, int, error)
	Delete(ctx context.Context, id, ownerUID string) (bool, error)
}
