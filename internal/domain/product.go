package domain

import "time"

// Source identifies which backend shape a DisplayableProduct was adapted from.
// The set is open: a new analysis entry point adds a tag without touching
// existing adapters.
type Source string

const (
	SourceProductScore   Source = "product_score"
	SourceNicheProduct   Source = "niche_product"
	SourceAnalysisResult Source = "analysis_result"
)

// Recommendation is the backend's buy/hold/skip verdict for a product.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "BUY"
	RecommendationHold Recommendation = "HOLD"
	RecommendationSkip Recommendation = "SKIP"
)

// DisplayableProduct is the canonical view model for one analyzed product,
// regardless of which endpoint produced it. Tables, cards and tooltips all
// consume this shape and nothing else.
//
// Optional metrics are pointers so that "the backend did not produce this
// field" and "the backend produced zero" stay distinct: rendering code shows
// "N/A" for nil and "$0.00" for a real zero. Title keeps its JSON key even
// when nil so clients receive an explicit null rather than a missing key.
type DisplayableProduct struct {
	ASIN            string         `json:"asin"`
	Title           *string        `json:"title"`
	Source          Source         `json:"source"`
	ROIPercent      *float64       `json:"roi_percent,omitempty"`
	VelocityScore   *float64       `json:"velocity_score,omitempty"`
	BSR             *float64       `json:"bsr,omitempty"`
	MarketSellPrice *float64       `json:"market_sell_price,omitempty"`
	MarketBuyPrice  *float64       `json:"market_buy_price,omitempty"`
	Score           *float64       `json:"score,omitempty"`
	Rank            *int           `json:"rank,omitempty"`
	Recommendation  Recommendation `json:"recommendation,omitempty"`
}

// SavedSearch is a persisted snapshot of an already-normalized product list,
// e.g. a discovered niche the user wants to revisit. Products are stored as
// adapted view models, never as raw backend payloads.
type SavedSearch struct {
	ID        string               `json:"id"`
	OwnerUID  string               `json:"ownerUid"`
	Name      string               `json:"name"`
	Source    Source               `json:"source"`
	Products  []DisplayableProduct `json:"products"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
