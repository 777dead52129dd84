package storefront

import (
	"strconv"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

type categoriesResponse struct {
	All        string   `json:"all"`
	Categories []string `json:"categories"`
}

type productDetail struct {
	Product           view.ProductSummary        `json:"product"`
	Reviews           []model.Review             `json:"reviews"`
	SpecTable         []catalog.SpecRow          `json:"specTable"`
	DescriptionBlocks []catalog.DescriptionBlock `json:"descriptionBlocks"`
	Related           []view.ProductSummary      `json:"related"`
}

func (h *Handler) ping(c echo.Context) error {
	return response.WriteSuccessResponse(c, "pong", nil)
}

func (h *Handler) categories(c echo.Context) error {
	return response.WriteSuccessResponse(c, "", categoriesResponse{
		All:        catalog.AllCategories,
		Categories: model.AllowedCategories,
	})
}

func (h *Handler) listProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []model.Product
		reviews  []model.Review
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		products, err = h.catalog.Products(gctx)
		return
	})
	group.Go(func() (err error) {
		reviews, err = h.repos.Reviews.List(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	stats := catalog.StatsByProduct(reviews)
	filtered := catalog.Apply(products, catalog.Query{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		SortBy:   catalog.ParseSortKey(c.QueryParam("sort")),
	}, stats)

	requested, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		requested = 1
	}
	page := catalog.ClampPage(requested, len(filtered))

	return response.WriteSuccessResponse(c, "", response.DataWithPagination{
		Records: view.Summaries(catalog.Paginate(filtered, page), stats),
		Pagination: response.Pagination{
			Page:      page,
			PageSize:  catalog.PageSize,
			PageCount: catalog.PageCount(len(filtered)),
			Total:     len(filtered),
		},
	})
}

func (h *Handler) getProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var (
		product  *model.Product
		reviews  []model.Review
		products []model.Product
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		product, err = h.repos.Products.GetById(gctx, id)
		return
	})
	group.Go(func() (err error) {
		reviews, err = h.repos.Reviews.ListByProduct(gctx, id)
		return
	})
	group.Go(func() (err error) {
		products, err = h.catalog.Products(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	stats := catalog.Aggregate(reviews)
	related := h.ranker.Related(*product, products)

	return response.WriteSuccessResponse(c, "", productDetail{
		Product:           view.ProductSummary{Product: *product, Stats: catalog.DisplayStats(*product, stats)},
		Reviews:           reviews,
		SpecTable:         catalog.SpecTable(product.Specs),
		DescriptionBlocks: catalog.DescriptionBlocks(product.FullDescription),
		Related:           view.Summaries(related, nil),
	})
}
