// Package adapter normalizes the backend's heterogeneous result shapes into
// the canonical DisplayableProduct view model. One pure function per shape;
// none of them can fail. A field the source does not produce stays absent in
// the output — it is never coerced to zero or an empty string.
package adapter

import "github.com/arbitragevault/backend/internal/domain"

// FromProductScore converts a scored-product record. Score, rank and
// recommendation pass through unchanged from the input.
func FromProductScore(rec *domain.ProductScore) domain.DisplayableProduct {
	p := domain.DisplayableProduct{
		ASIN:            rec.ASIN,
		Title:           rec.Title,
		Source:          domain.SourceProductScore,
		ROIPercent:      rec.ROIPct.Ptr(),
		VelocityScore:   rec.VelocityScore.Ptr(),
		BSR:             rec.BSR.Ptr(),
		MarketSellPrice: rec.MarketSell.Ptr(),
		MarketBuyPrice:  rec.MarketBuy.Ptr(),
		Score:           rec.Score.Ptr(),
	}
	if rec.Rank != nil {
		rank := *rec.Rank
		p.Rank = &rank
	}
	p.Recommendation = parseRecommendation(rec.Recommendation)
	return p
}

// FromNicheProduct converts a niche-discovery record. Niche discovery does
// not rank or score individual products, so Score and Rank stay absent.
func FromNicheProduct(rec *domain.NicheProduct) domain.DisplayableProduct {
	return domain.DisplayableProduct{
		ASIN:            rec.ASIN,
		Title:           rec.Title,
		Source:          domain.SourceNicheProduct,
		ROIPercent:      rec.ROIPct.Ptr(),
		VelocityScore:   rec.VelocityScore.Ptr(),
		BSR:             rec.BSR.Ptr(),
		MarketSellPrice: rec.CurrentPrice.Ptr(),
		MarketBuyPrice:  rec.BuyCost.Ptr(),
	}
}

// FromAnalysisResult converts a legacy analysis record. The caller supplies
// the positional rank (1-based); pass rank <= 0 for an unranked context.
// When the velocity block carries the backend's error sentinel, every
// velocity-derived field is omitted rather than defaulted.
func FromAnalysisResult(rec *domain.AnalysisResult, rank int) domain.DisplayableProduct {
	p := domain.DisplayableProduct{
		ASIN:       rec.ASIN,
		Title:      rec.Title,
		Source:     domain.SourceAnalysisResult,
		ROIPercent: rec.ROIPct.Ptr(),
	}
	if rank > 0 {
		p.Rank = &rank
	}
	if !rec.Velocity.HasError() {
		p.VelocityScore = rec.Velocity.Score.Ptr()
		p.BSR = rec.Velocity.BSR.Ptr()
		p.MarketSellPrice = rec.Velocity.SellPrice.Ptr()
		p.MarketBuyPrice = rec.Velocity.BuyPrice.Ptr()
	}
	return p
}

// parseRecommendation maps the backend's free-form recommendation string
// onto the known tags. Unknown values are dropped rather than surfaced,
// so a backend schema change cannot leak odd labels into the UI.
func parseRecommendation(s string) domain.Recommendation {
	switch domain.Recommendation(s) {
	case domain.RecommendationBuy, domain.RecommendationHold, domain.RecommendationSkip:
		return domain.Recommendation(s)
	}
	return ""
}
