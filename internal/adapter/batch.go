package adapter

import "github.com/arbitragevault/backend/internal/domain"

// Batch converts an ordered batch-analysis response into a product list.
// Only successful items contribute; they keep their original relative order
// and are ranked 1..n by output position, regardless of where the failures
// sat in the input. Failed items are dropped silently here — reporting them
// is the calling layer's job, not this transform's.
func Batch(items []domain.BatchItem) []domain.DisplayableProduct {
	products := make([]domain.DisplayableProduct, 0, len(items))
	for _, item := range items {
		if !item.Succeeded() {
			continue
		}
		products = append(products, FromAnalysisResult(item.Result, len(products)+1))
	}
	return products
}
