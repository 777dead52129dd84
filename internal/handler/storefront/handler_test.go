package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/catalogcache"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository"
	"go-firestore-catalog/internal/repository/inmemory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testApp struct {
	e        *echo.Echo
	products *inmemory.ProductRepository
	reviews  *inmemory.ReviewRepository
	repos    repository.Set
}

func seedProducts() []model.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []model.Product{
		{Id: "mbp", Name: "MacBook Pro 14", Category: model.CategoryLaptops, Description: "Apple laptop", Featured: true,
			Specs: []string{"Chip: M3", "RAM: 16GB"}, FullDescription: "Fast.\n• Long battery\n• Bright display"},
		{Id: "mba", Name: "MacBook Air 13", Category: model.CategoryLaptops, Description: "Thin laptop"},
		{Id: "xps", Name: "Dell XPS 13", Category: model.CategoryLaptops, Description: "Compact ultrabook", Featured: true},
		{Id: "tp", Name: "Lenovo ThinkPad", Category: model.CategoryLaptops, Description: "Business laptop", Rating: 4.4, Reviews: 12},
		{Id: "swift", Name: "Acer Swift", Category: model.CategoryLaptops, Description: "Light laptop"},
		{Id: "pods", Name: "AirPods Pro", Category: model.CategoryAudioEquipment, Description: "Earbuds"},
	}
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}
	for i := 0; i < 14; i++ {
		products = append(products, model.Product{
			Id:        fmt.Sprintf("cable-%02d", i),
			Name:      fmt.Sprintf("Cable %02d", i),
			Category:  model.CategoryAccessories,
			CreatedAt: base,
		})
	}
	return products
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	products := inmemory.NewProductRepository(seedProducts())
	reviews := inmemory.NewReviewRepository([]model.Review{
		{Id: "r1", ProductId: "mbp", AuthorName: "Ann", Rating: 4},
		{Id: "r2", ProductId: "mbp", AuthorName: "Bob", Rating: 5},
		{Id: "r3", ProductId: "pods", AuthorName: "Cid", Rating: 2},
	})
	repos := repository.Set{
		Products: products,
		Reviews:  reviews,
		NewArrivals: inmemory.NewNewArrivalRepository([]model.NewArrival{
			{Id: "n1", ProductId: "mbp", DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{Id: "n2", ProductId: "deleted-id", DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}),
		BestSelling: inmemory.NewBestSellingRepository([]model.BestSelling{
			{Id: "b1", ProductId: "xps", Sales: 40},
			{Id: "b2", ProductId: "gone", Sales: 90},
		}),
		Testimonials: inmemory.NewTestimonialRepository([]model.Testimonial{
			{Id: "t1", Quote: "Great", Author: "Dee", Featured: true},
			{Id: "t2", Quote: "Nice", Author: "Eve"},
		}),
		Messages: inmemory.NewContactEmailRepository(nil),
	}

	e := echo.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	New(repos, catalogcache.New(products, 0), catalog.NewRanker(nil)).RegisterRoutes(e.Group("/api/v1"))

	return testApp{e: e, products: products, reviews: reviews, repos: repos}
}

func (a testApp) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

type productPage struct {
	Records    []view.ProductSummary `json:"records"`
	Pagination response.Pagination  `json:"pagination"`
}

func TestPing(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", env.Message)
}

func TestCategories(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body categoriesResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "all", body.All)
	assert.Equal(t, model.AllowedCategories, body.Categories)
}

func TestListProducts_SearchFilterSort(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/v1/products?q=macbook&category=laptops", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page productPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Records, 2)
	assert.Equal(t, "MacBook Pro 14", page.Records[0].Name, "featured first")
	assert.Equal(t, "MacBook Air 13", page.Records[1].Name)
	assert.Equal(t, model.ReviewStats{Count: 2, AverageRating: 4.5}, page.Records[0].Stats)
	assert.Equal(t, response.Pagination{Page: 1, PageSize: 10, PageCount: 1, Total: 2}, page.Pagination)
}

func TestListProducts_SortByRating(t *testing.T) {
	app := newTestApp(t)

	_, env := app.do(t, http.MethodGet, "/api/v1/products?sort=rating", "")

	var page productPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.NotEmpty(t, page.Records)
	assert.Equal(t, "MacBook Pro 14", page.Records[0].Name)
	assert.Equal(t, "AirPods Pro", page.Records[1].Name)
}

func TestListProducts_PageClamped(t *testing.T) {
	app := newTestApp(t)

	_, env := app.do(t, http.MethodGet, "/api/v1/products?page=99", "")
	var page productPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 2, page.Pagination.PageCount)
	assert.Equal(t, 20, page.Pagination.Total)
	assert.Len(t, page.Records, 10)

	_, env = app.do(t, http.MethodGet, "/api/v1/products?page=abc", "")
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestListProducts_EmptyResultIsNotAnError(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/products?q=toaster", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page productPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Empty(t, page.Records)
	assert.NotNil(t, page.Records)
	assert.Equal(t, 0, page.Pagination.PageCount)
}

func TestListProducts_StoreFailureIs500(t *testing.T) {
	app := newTestApp(t)
	app.products.SetFailure(errors.New("unavailable"))

	rec, env := app.do(t, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestGetProduct(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/products/mbp", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail productDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "MacBook Pro 14", detail.Product.Name)
	assert.Equal(t, model.ReviewStats{Count: 2, AverageRating: 4.5}, detail.Product.Stats)
	assert.Len(t, detail.Reviews, 2)
	assert.Equal(t, []catalog.SpecRow{{Key: "Chip", Value: "M3"}, {Key: "RAM", Value: "16GB"}}, detail.SpecTable)
	assert.Len(t, detail.DescriptionBlocks, 3)

	require.Len(t, detail.Related, 3)
	assert.Equal(t, "MacBook Air 13", detail.Related[0].Name)
	for _, r := range detail.Related {
		assert.NotEqual(t, "mbp", r.Id)
		assert.Equal(t, model.CategoryLaptops, r.Category)
	}
}

func TestGetProduct_DisplayFallback(t *testing.T) {
	_, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/products/tp", "")

	var detail productDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, model.ReviewStats{Count: 12, AverageRating: 4.4}, detail.Product.Stats)
	assert.Empty(t, detail.Reviews)
}

func TestGetProduct_NotFound(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/products/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", env.Message)
}

func TestListReviews(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/v1/products/pods/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body reviewsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, model.ReviewStats{Count: 1, AverageRating: 2}, body.Stats)

	rec, _ = app.do(t, http.MethodGet, "/api/v1/products/nope/reviews", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitReview(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/products/pods/reviews",
		`{"authorName":"  Fay ","rating":5,"comment":"Love them"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body submitReviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.NotEmpty(t, body.ReviewId)
	assert.Equal(t, model.ReviewStats{Count: 2, AverageRating: 3.5}, body.Stats)
	require.Len(t, body.Reviews, 2)

	var created model.Review
	for _, r := range body.Reviews {
		if r.Id == body.ReviewId {
			created = r
		}
	}
	assert.Equal(t, "Fay", created.AuthorName)
	assert.False(t, created.Verified)
}

func TestSubmitReview_Validation(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/products/pods/reviews", `{"authorName":" ","rating":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "authorName")
	assert.Contains(t, env.Errors, "rating")

	rec, _ = app.do(t, http.MethodPost, "/api/v1/products/pods/reviews", `{"authorName":"Fay","rating":6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	reviews, err := app.reviews.ListByProduct(context.Background(), "pods")
	require.NoError(t, err)
	assert.Len(t, reviews, 1, "invalid reviews are not stored")
}

func TestSubmitReview_UnknownProduct(t *testing.T) {
	rec, _ := newTestApp(t).do(t, http.MethodPost, "/api/v1/products/nope/reviews", `{"authorName":"Fay","rating":4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitReview_StoreFailure(t *testing.T) {
	app := newTestApp(t)
	app.reviews.SetFailure(errors.New("unavailable"))

	rec, env := app.do(t, http.MethodPost, "/api/v1/products/pods/reviews", `{"authorName":"Fay","rating":4}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, submitReviewFailure, env.Message)
}

func TestNewArrivals_ResolvesMissingProducts(t *testing.T) {
	rec, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/new-arrivals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []view.NewArrival
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "MacBook Pro 14", items[0].Product.Name)
	assert.Equal(t, "Product deleted-id (Not Found)", items[1].Product.Name)
	assert.True(t, items[1].ProductMissing)
}

func TestBestSelling(t *testing.T) {
	_, env := newTestApp(t).do(t, http.MethodGet, "/api/v1/best-selling", "")

	var items []view.BestSelling
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Product gone (Not Found)", items[0].Product.Name)
	assert.Equal(t, "Dell XPS 13", items[1].Product.Name)
}

func TestTestimonials(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]int{"": 2, "?featured=true": 1, "?featured=false": 1}
	for query, want := range cases {
		rec, env := app.do(t, http.MethodGet, "/api/v1/testimonials"+query, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var items []model.Testimonial
		require.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, want, query)
	}

	rec, _ := app.do(t, http.MethodGet, "/api/v1/testimonials?featured=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContact(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/contact",
		`{"name":"Gus","email":"gus@example.com","subject":"Quote","message":"Need 20 laptops"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created createdResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.Id)

	messages, err := app.repos.Messages.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Read)

	rec, env = app.do(t, http.MethodPost, "/api/v1/contact", `{"name":"","email":"nope","message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.Errors, 3)
}
