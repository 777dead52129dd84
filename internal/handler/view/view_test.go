package view

import (
	"testing"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrivals_DanglingReference(t *testing.T) {
	resolver := catalog.NewResolver([]model.Product{{Id: "p1", Name: "Dell XPS 13"}})

	items := NewArrivals([]model.NewArrival{
		{Id: "n1", ProductId: "p1"},
		{Id: "n2", ProductId: "deleted"},
	}, resolver)

	require.Len(t, items, 2)
	assert.Equal(t, "Dell XPS 13", items[0].Product.Name)
	assert.False(t, items[0].ProductMissing)
	assert.Equal(t, "Product deleted (Not Found)", items[1].Product.Name)
	assert.True(t, items[1].ProductMissing)
}

func TestBestSellers_DanglingReference(t *testing.T) {
	items := BestSellers([]model.BestSelling{{Id: "b1", ProductId: "gone", Sales: 3}}, catalog.NewResolver(nil))

	require.Len(t, items, 1)
	assert.Equal(t, "Product gone (Not Found)", items[0].Product.Name)
	assert.Equal(t, 3, items[0].Sales)
}

func TestSummaries_DisplayFallback(t *testing.T) {
	products := []model.Product{
		{Id: "p1", Rating: 4.1, Reviews: 9},
		{Id: "p2", Rating: 4.1, Reviews: 9},
	}
	stats := map[string]model.ReviewStats{"p2": {Count: 1, AverageRating: 2}}

	out := Summaries(products, stats)

	assert.Equal(t, model.ReviewStats{Count: 9, AverageRating: 4.1}, out[0].Stats)
	assert.Equal(t, model.ReviewStats{Count: 1, AverageRating: 2}, out[1].Stats)
}

func TestReviews_ProductName(t *testing.T) {
	out := Reviews([]model.Review{{ProductId: "p1"}, {ProductId: "x"}},
		catalog.NewResolver([]model.Product{{Id: "p1", Name: "AirPods Pro"}}))

	assert.Equal(t, "AirPods Pro", out[0].ProductName)
	assert.Equal(t, "Product x (Not Found)", out[1].ProductName)
	assert.True(t, out[1].ProductMissing)
}
