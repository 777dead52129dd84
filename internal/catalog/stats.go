package catalog

import (
	"math"

	"go-firestore-catalog/internal/model"
)

// Aggregate computes the review count and the mean rating rounded to one decimal.
func Aggregate(reviews []model.Review) model.ReviewStats {
	if len(reviews) == 0 {
		return model.ReviewStats{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))

	return model.ReviewStats{
		Count:         len(reviews),
		AverageRating: math.Round(avg*10) / 10,
	}
}

func StatsByProduct(reviews []model.Review) map[string]model.ReviewStats {
	grouped := make(map[string][]model.Review)
	for _, r := range reviews {
		grouped[r.ProductId] = append(grouped[r.ProductId], r)
	}

	stats := make(map[string]model.ReviewStats, len(grouped))
	for productId, rs := range grouped {
		stats[productId] = Aggregate(rs)
	}
	return stats
}

// DisplayStats falls back to the product's stored rating when it has no reviews yet.
// It is for rendering only; sorting uses the aggregated stats.
func DisplayStats(p model.Product, stats model.ReviewStats) model.ReviewStats {
	if stats.Count > 0 {
		return stats
	}
	return model.ReviewStats{Count: p.Reviews, AverageRating: p.Rating}
}
