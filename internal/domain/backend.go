package domain

// Backend payload shapes. The analysis backend's schema is versioned and
// evolving; every field here must be treated as possibly missing per record,
// which is why the numeric ones are Metric rather than float64.

// ProductScore is the scored-product record returned by the scoring and
// autosourcing endpoints. It is the richest shape: it carries a composite
// score, a rank and a recommendation in addition to the raw metrics.
type ProductScore struct {
	ASIN           string  `json:"asin"`
	Title          *string `json:"title"`
	ROIPct         Metric  `json:"roi_pct"`
	VelocityScore  Metric  `json:"velocity_score"`
	BSR            Metric  `json:"bsr"`
	MarketSell     Metric  `json:"expected_sale_price"`
	MarketBuy      Metric  `json:"buy_price"`
	Score          Metric  `json:"score"`
	Rank           *int    `json:"rank,omitempty"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// NicheProduct is a product record inside a niche-discovery response.
// Niche discovery does not rank or score individual products.
type NicheProduct struct {
	ASIN          string  `json:"asin"`
	Title         *string `json:"title"`
	ROIPct        Metric  `json:"roi_pct"`
	VelocityScore Metric  `json:"velocity_score"`
	BSR           Metric  `json:"bsr"`
	CurrentPrice  Metric  `json:"current_price"`
	BuyCost       Metric  `json:"estimated_buy_cost"`
}

// NicheDiscoveryResponse is the envelope for a niche-discovery call.
type NicheDiscoveryResponse struct {
	NicheName string         `json:"niche_name,omitempty"`
	Products  []NicheProduct `json:"products"`
	TotalHits int            `json:"total_hits"`
}

// AnalysisResult is the legacy per-ASIN record returned by the manual batch
// analysis endpoint. Velocity detail lives in a nested block that the
// backend replaces with an error sentinel when its data sources fail; in
// that case none of the velocity-derived fields may be surfaced.
type AnalysisResult struct {
	ASIN     string        `json:"asin"`
	Title    *string       `json:"title"`
	ROIPct   Metric        `json:"roi_percent"`
	Velocity *VelocityData `json:"velocity_data"`
}

// VelocityData is the nested velocity block of an AnalysisResult. A
// non-empty Error marks the whole block as unusable regardless of what
// else the backend happened to populate.
type VelocityData struct {
	Error     string `json:"error,omitempty"`
	Score     Metric `json:"velocity_score"`
	BSR       Metric `json:"bsr"`
	SellPrice Metric `json:"market_sell_price"`
	BuyPrice  Metric `json:"market_buy_price"`
}

// HasError reports whether the block carries the backend's error sentinel.
func (v *VelocityData) HasError() bool {
	return v == nil || v.Error != ""
}

// BatchItem wraps one entry of a batch analysis response with its
// per-item outcome. Failed items carry no result.
type BatchItem struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Result *AnalysisResult `json:"result,omitempty"`
}

// Batch item status values.
const (
	BatchStatusSuccess = "success"
	BatchStatusFailed  = "failed"
)

// Succeeded reports whether the item can contribute to a product list.
func (b BatchItem) Succeeded() bool {
	return b.Status == BatchStatusSuccess && b.Result != nil
}

// ConditionPricing is the consumption shape of the backend's unified
// pricing-by-condition feature. The computation behind it (tie-breaks,
// rounding, recommended-condition choice) is upstream and opaque; this
// service passes the records through without recomputing anything.
type ConditionPricing struct {
	ASIN       string           `json:"asin"`
	Conditions []ConditionOffer `json:"conditions"`
}

// ConditionOffer is one condition row of a ConditionPricing record.
type ConditionOffer struct {
	Condition   string `json:"condition"`
	BuyPrice    Metric `json:"buy_price"`
	ROIPct      Metric `json:"roi_pct"`
	SellerCount int    `json:"seller_count"`
	Recommended bool   `json:"recommended"`
}
