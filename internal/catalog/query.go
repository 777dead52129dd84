package catalog

import (
	"sort"
	"strings"

	"go-firestore-catalog/internal/model"
)

type SortKey string

const (
	SortFeatured SortKey = "featured"
	SortNewest   SortKey = "newest"
	SortRating   SortKey = "rating"
	SortName     SortKey = "name"
)

// AllCategories disables the category filter.
const AllCategories = "all"

const PageSize = 10

type Query struct {
	Search   string
	Category string
	SortBy   SortKey
}

// ParseSortKey falls back to SortFeatured for empty or unknown keys.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNewest, SortRating, SortName, SortFeatured:
		return k
	default:
		return SortFeatured
	}
}

// Apply searches, filters and sorts products. The input slice is never modified.
func Apply(products []model.Product, q Query, stats map[string]model.ReviewStats) []model.Product {
	result := make([]model.Product, 0, len(products))

	search := strings.ToLower(q.Search)
	category := strings.TrimSpace(q.Category)
	filterCategory := category != "" && !strings.EqualFold(category, AllCategories)

	for _, p := range products {
		if search != "" && !Matches(p, search) {
			continue
		}
		if filterCategory && !strings.EqualFold(p.Category, category) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, ParseSortKey(string(q.SortBy)), stats)
	return result
}

// Matches reports whether the lowercased term is contained in the name, description, category or any spec.
func Matches(p model.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, spec := range p.Specs {
		if strings.Contains(strings.ToLower(spec), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []model.Product, key SortKey, stats map[string]model.ReviewStats) {
	var less func(a, b model.Product) bool

	switch key {
	case SortNewest:
		less = func(a, b model.Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case SortRating:
		// a missing entry is the zero value, so it sorts as 0
		less = func(a, b model.Product) bool {
			return stats[a.Id].AverageRating > stats[b.Id].AverageRating
		}
	case SortName:
		less = func(a, b model.Product) bool {
			return a.Name < b.Name
		}
	default:
		less = func(a, b model.Product) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}
			return a.Name < b.Name
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// Paginate returns the 1-based page of products. Pages outside [1, PageCount] are empty.
func Paginate(products []model.Product, page int) []model.Product {
	if page < 1 {
		return []model.Product{}
	}

	start := (page - 1) * PageSize
	if start >= len(products) {
		return []model.Product{}
	}

	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// ClampPage moves page into [1, PageCount(total)]; an empty list still has page 1.
func ClampPage(page, total int) int {
	last := PageCount(total)
	if last == 0 {
		last = 1
	}
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}
