package catalog

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"go-firestore-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func sampleCatalog() []model.Product {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []model.Product{
		{Name: "MacBook Pro 14", Category: model.CategoryLaptops, Description: "Apple laptop", Featured: true},
		{Name: "Surface Pro 9", Category: model.CategoryLaptops, Description: "Tablet laptop", Featured: true},
		{Name: "iPad Pro Keyboard", Category: model.CategoryAccessories, Description: "Magic keyboard"},
		{Name: "AirPods Pro", Category: model.CategoryAudioEquipment, Description: "Wireless earbuds"},
		{Name: "Dell XPS 13", Category: model.CategoryLaptops, Description: "Compact ultrabook", Featured: true},
		{Name: "HP Envy", Category: model.CategoryLaptops, Description: "Slim laptop", Featured: true},
		{Name: "Sony WH-1000XM5", Category: model.CategoryAudioEquipment, Description: "Noise cancelling headphones", Featured: true},
		{Name: "Lenovo ThinkPad X1", Category: model.CategoryLaptops, Description: "Business laptop"},
		{Name: "Asus Router AX6000", Category: model.CategoryNetworkDevices, Description: "WiFi 6 router", Specs: []string{"Ports: 4"}},
		{Name: "Logitech Mouse", Category: model.CategoryAccessories, Description: "Wireless mouse"},
		{Name: "Acer Aspire", Category: model.CategoryDesktops, Description: "Tower desktop"},
		{Name: "Mac Mini", Category: model.CategoryDesktops, Description: "Small desktop", Specs: []string{"Chip: M2"}},
	}
	for i := range items {
		items[i].Id = fmt.Sprintf("p%02d", i+1)
		items[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}
	return items
}

func TestApply_SearchProScenario(t *testing.T) {
	products := sampleCatalog()
	require.Len(t, products, 12)

	featured := 0
	for _, p := range products {
		if p.Featured {
			featured++
		}
	}
	require.Equal(t, 5, featured)

	result := Apply(products, Query{Search: "pro", Category: AllCategories, SortBy: SortFeatured}, nil)

	assert.Equal(t, []string{"MacBook Pro 14", "Surface Pro 9", "AirPods Pro", "iPad Pro Keyboard"}, names(result))
	assert.Equal(t, 1, PageCount(len(result)))
	assert.Equal(t, result, Paginate(result, 1))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	before := names(products)

	_ = Apply(products, Query{SortBy: SortName}, nil)

	assert.Equal(t, before, names(products))
}

func TestApply_FeaturedOrdering(t *testing.T) {
	result := Apply(sampleCatalog(), Query{}, nil)

	seenUnfeatured := false
	for i, p := range result {
		if !p.Featured {
			seenUnfeatured = true
		} else {
			assert.False(t, seenUnfeatured, "featured product %q after an unfeatured one", p.Name)
		}
		if i > 0 && result[i-1].Featured == p.Featured {
			assert.LessOrEqual(t, result[i-1].Name, p.Name)
		}
	}
}

func TestApply_UnknownSortFallsBackToFeatured(t *testing.T) {
	products := sampleCatalog()
	assert.Equal(t,
		names(Apply(products, Query{SortBy: SortFeatured}, nil)),
		names(Apply(products, Query{SortBy: "popularity"}, nil)))
}

func TestApply_SortByNameIsIdempotent(t *testing.T) {
	once := Apply(sampleCatalog(), Query{SortBy: SortName}, nil)
	twice := Apply(once, Query{SortBy: SortName}, nil)

	assert.True(t, sort.SliceIsSorted(once, func(i, j int) bool { return once[i].Name < once[j].Name }))
	assert.Equal(t, once, twice)
}

func TestApply_SortByNewest(t *testing.T) {
	result := Apply(sampleCatalog(), Query{SortBy: SortNewest}, nil)

	assert.Equal(t, "Mac Mini", result[0].Name)
	assert.Equal(t, "MacBook Pro 14", result[len(result)-1].Name)
}

func TestApply_SortByRatingTreatsMissingAsZero(t *testing.T) {
	products := sampleCatalog()[:4]
	stats := map[string]model.ReviewStats{
		"p03": {Count: 2, AverageRating: 4.5},
		"p04": {Count: 1, AverageRating: 3},
	}

	result := Apply(products, Query{SortBy: SortRating}, stats)

	// unrated products keep their input order after the rated ones
	assert.Equal(t, []string{"iPad Pro Keyboard", "AirPods Pro", "MacBook Pro 14", "Surface Pro 9"}, names(result))
}

func TestApply_SearchMatchesEveryField(t *testing.T) {
	products := sampleCatalog()

	cases := map[string]string{
		"name":        "thinkpad",
		"description": "EARBUDS",
		"category":    "network",
		"spec":        "chip: m2",
	}
	for field, term := range cases {
		t.Run(field, func(t *testing.T) {
			result := Apply(products, Query{Search: term}, nil)
			require.Len(t, result, 1)
			assert.True(t, Matches(result[0], strings.ToLower(term)))
		})
	}
}

func TestApply_SearchIsSubset(t *testing.T) {
	products := sampleCatalog()
	result := Apply(products, Query{Search: "a"}, nil)

	ids := make(map[string]bool)
	for _, p := range products {
		ids[p.Id] = true
	}
	for _, p := range result {
		assert.True(t, ids[p.Id])
		assert.True(t, Matches(p, "a"))
	}
}

func TestApply_WhitespaceSearchIsNotSkipped(t *testing.T) {
	products := []model.Product{
		{Id: "a", Name: "Dell XPS 13", Category: model.CategoryLaptops},
		{Id: "b", Name: "Mouse", Category: model.CategoryAccessories},
	}

	assert.Empty(t, Apply(products, Query{Search: "   "}, nil))
	assert.Equal(t, []string{"Dell XPS 13"}, names(Apply(products, Query{Search: " "}, nil)))
	assert.Len(t, Apply(products, Query{Search: ""}, nil), 2)
}

func TestApply_CategoryFilter(t *testing.T) {
	products := sampleCatalog()

	laptops := Apply(products, Query{Category: "laptops"}, nil)
	assert.Len(t, laptops, 5)
	for _, p := range laptops {
		assert.Equal(t, model.CategoryLaptops, p.Category)
	}

	assert.Len(t, Apply(products, Query{Category: "ALL"}, nil), 12)
	assert.Len(t, Apply(products, Query{Category: ""}, nil), 12)
	assert.Empty(t, Apply(products, Query{Category: "Phones"}, nil))
}

func TestPaginate_ReconstructsList(t *testing.T) {
	products := make([]model.Product, 0, 23)
	for i := 0; i < 23; i++ {
		products = append(products, model.Product{Id: fmt.Sprintf("p%d", i)})
	}

	pages := PageCount(len(products))
	require.Equal(t, 3, pages)

	var joined []model.Product
	for page := 1; page <= pages; page++ {
		joined = append(joined, Paginate(products, page)...)
	}
	assert.Equal(t, products, joined)
	assert.Len(t, Paginate(products, 3), 3)
}

func TestPaginate_OutOfRange(t *testing.T) {
	products := sampleCatalog()

	assert.Empty(t, Paginate(products, 0))
	assert.Empty(t, Paginate(products, -1))
	assert.Empty(t, Paginate(products, 3))
	assert.NotNil(t, Paginate(nil, 1))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 25))
	assert.Equal(t, 3, ClampPage(9, 25))
	assert.Equal(t, 2, ClampPage(2, 25))
	assert.Equal(t, 1, ClampPage(4, 0))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey(" Newest "))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("cheapest"))
}
