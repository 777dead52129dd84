package admin

import (
	"strings"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

type adminReviewRequest struct {
	ProductId  string `json:"productId"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Verified   bool   `json:"verified"`
}

type adminReviewsResponse struct {
	Stats   model.ReviewStats `json:"stats"`
	Reviews []view.Review     `json:"reviews"`
}

// listReviews lists every review, or one product's reviews with ?productId=.
func (h *Handler) listReviews(c echo.Context) error {
	ctx := c.Request().Context()
	productId := c.QueryParam("productId")

	var (
		reviews  []model.Review
		resolver catalog.Resolver
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		if productId != "" {
			reviews, err = h.repos.Reviews.ListByProduct(gctx, productId)
		} else {
			reviews, err = h.repos.Reviews.List(gctx)
		}
		return
	})
	group.Go(func() (err error) {
		resolver, err = h.resolver(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", adminReviewsResponse{
		Stats:   catalog.Aggregate(reviews),
		Reviews: view.Reviews(reviews, resolver),
	})
}

func (h *Handler) createReview(c echo.Context) error {
	ctx := c.Request().Context()

	payload := adminReviewRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.Review(payload.AuthorName, payload.Rating)
	if err := h.checkProductRef(ctx, fields, "productId", payload.ProductId); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	id, err := h.repos.Reviews.Create(ctx, model.Review{
		ProductId:  payload.ProductId,
		AuthorName: strings.TrimSpace(payload.AuthorName),
		Rating:     payload.Rating,
		Comment:    strings.TrimSpace(payload.Comment),
		Verified:   payload.Verified,
	})
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteCreatedResponse(c, "review created", createdResponse{Id: id})
}

func (h *Handler) deleteReview(c echo.Context) error {
	if err := h.repos.Reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "review deleted", nil)
}
