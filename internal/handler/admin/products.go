package admin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/export"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const exportFilename = "products.xlsx"

type productRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Specs           []string `json:"specs"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Featured        bool     `json:"featured"`
}

func (r productRequest) validate() error {
	fields := validate.New()
	fields.Required("name", r.Name)
	fields.Category("category", r.Category)
	fields.Check(r.Rating >= 0 && r.Rating <= 5, "rating", "must be between 0 and 5")
	fields.Check(r.Reviews >= 0, "reviews", "must not be negative")
	return fields.Err()
}

func validatePatch(p model.ProductPatch) error {
	fields := validate.New()
	if p.Name != nil {
		fields.Required("name", *p.Name)
	}
	if p.Category != nil {
		fields.Category("category", *p.Category)
	}
	if p.Rating != nil {
		fields.Check(*p.Rating >= 0 && *p.Rating <= 5, "rating", "must be between 0 and 5")
	}
	if p.Reviews != nil {
		fields.Check(*p.Reviews >= 0, "reviews", "must not be negative")
	}
	return fields.Err()
}

func (h *Handler) productsWithStats(ctx context.Context) ([]model.Product, map[string]model.ReviewStats, error) {
	var (
		products []model.Product
		reviews  []model.Review
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		products, err = h.repos.Products.List(gctx)
		return
	})
	group.Go(func() (err error) {
		reviews, err = h.repos.Reviews.List(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return products, catalog.StatsByProduct(reviews), nil
}

func (h *Handler) listProducts(c echo.Context) error {
	products, stats, err := h.productsWithStats(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "", view.Summaries(products, stats))
}

func (h *Handler) exportProducts(c echo.Context) error {
	products, stats, err := h.productsWithStats(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, products, stats); err != nil {
		return response.WriteErrorResponse(c, fmt.Errorf("export products: %w", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", exportFilename))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *Handler) getProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var (
		product *model.Product
		reviews []model.Review
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
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.ProductSummary{
		Product: *product,
		Stats:   catalog.Aggregate(reviews),
	})
}

func (h *Handler) createProduct(c echo.Context) error {
	ctx := c.Request().Context()

	payload := productRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}
	if err := payload.validate(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	id, err := h.repos.Products.Create(ctx, model.Product{
		Name:            strings.TrimSpace(payload.Name),
		Category:        payload.Category,
		Description:     payload.Description,
		FullDescription: payload.FullDescription,
		Specs:           payload.Specs,
		Image:           payload.Image,
		Images:          payload.Images,
		Rating:          payload.Rating,
		Reviews:         payload.Reviews,
		Featured:        payload.Featured,
	})
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	h.cache.Invalidate()

	log.Ctx(ctx).Info().Str("productId", id).Msg("product created")
	return response.WriteCreatedResponse(c, "product created", createdResponse{Id: id})
}

func (h *Handler) updateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	patch := model.ProductPatch{}
	if err := c.Bind(&patch); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}
	if err := validatePatch(patch); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	if err := h.repos.Products.Update(ctx, id, patch); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	h.cache.Invalidate()

	return response.WriteSuccessResponse(c, "product updated", nil)
}

func (h *Handler) deleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.repos.Products.Delete(ctx, id); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	h.cache.Invalidate()

	log.Ctx(ctx).Info().Str("productId", id).Msg("product deleted")
	return response.WriteSuccessResponse(c, "product deleted", nil)
}
