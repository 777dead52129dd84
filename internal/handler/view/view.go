package view

import (
	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/model"
)

type ProductSummary struct {
	model.Product
	Stats model.ReviewStats `json:"stats"`
}

// Summaries attaches display stats to every product.
func Summaries(products []model.Product, stats map[string]model.ReviewStats) []ProductSummary {
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSummary{Product: p, Stats: catalog.DisplayStats(p, stats[p.Id])})
	}
	return out
}

type NewArrival struct {
	model.NewArrival
	Product        model.Product `json:"product"`
	ProductMissing bool          `json:"productMissing"`
}

func NewArrivals(items []model.NewArrival, resolver catalog.Resolver) []NewArrival {
	out := make([]NewArrival, 0, len(items))
	for _, item := range items {
		r := resolver.Resolve(item.ProductId)
		out = append(out, NewArrival{
			NewArrival:     item,
			Product:        catalog.Product(r),
			ProductMissing: catalog.IsMissing(r),
		})
	}
	return out
}

type BestSelling struct {
	model.BestSelling
	Product        model.Product `json:"product"`
	ProductMissing bool          `json:"productMissing"`
}

func BestSellers(items []model.BestSelling, resolver catalog.Resolver) []BestSelling {
	out := make([]BestSelling, 0, len(items))
	for _, item := range items {
		r := resolver.Resolve(item.ProductId)
		out = append(out, BestSelling{
			BestSelling:    item,
			Product:        catalog.Product(r),
			ProductMissing: catalog.IsMissing(r),
		})
	}
	return out
}

type Review struct {
	model.Review
	ProductName    string `json:"productName"`
	ProductMissing bool   `json:"productMissing"`
}

func Reviews(reviews []model.Review, resolver catalog.Resolver) []Review {
	out := make([]Review, 0, len(reviews))
	for _, rv := range reviews {
		r := resolver.Resolve(rv.ProductId)
		out = append(out, Review{
			Review:         rv,
			ProductName:    catalog.Product(r).Name,
			ProductMissing: catalog.IsMissing(r),
		})
	}
	return out
}
